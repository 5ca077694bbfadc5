// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/herd-ledger/backend/internal/domain/valueobject"
)

// BatchResponse represents an available batch in API responses.
type BatchResponse struct {
	BatchID           string  `json:"batch_id"`
	PurchaseDate      string  `json:"purchase_date"`
	Breed             string  `json:"breed,omitempty"`
	AverageWeightKg   *string `json:"average_weight_kg,omitempty"`
	PricePerHead      string  `json:"price_per_head"`
	PurchaseNotes     string  `json:"purchase_notes"`
	PurchasedQuantity int     `json:"purchased_quantity"`
	SoldQuantity      int     `json:"sold_quantity"`
	RemainingQuantity int     `json:"remaining_quantity"`
	Selectable        bool    `json:"selectable"`
}

// BatchListResponse represents the response for listing available batches.
type BatchListResponse struct {
	Batches []BatchResponse `json:"batches"`
}

// ToBatchResponse converts an AvailableBatch to a BatchResponse DTO.
func ToBatchResponse(b valueobject.AvailableBatch) BatchResponse {
	response := BatchResponse{
		BatchID:           b.BatchID.String(),
		PurchaseDate:      b.PurchaseDate.Format("2006-01-02"),
		Breed:             b.Breed,
		PricePerHead:      b.PricePerHead.String(),
		PurchaseNotes:     b.PurchaseNotes,
		PurchasedQuantity: b.PurchasedQuantity,
		SoldQuantity:      b.SoldQuantity,
		RemainingQuantity: b.RemainingQuantity,
		Selectable:        b.IsSelectable(),
	}

	if b.AverageWeightKg != nil {
		weight := b.AverageWeightKg.String()
		response.AverageWeightKg = &weight
	}

	return response
}
