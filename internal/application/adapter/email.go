// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/herd-ledger/backend/internal/domain/entity"
)

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ResendID string
}

// EmailSender defines the interface for sending emails.
type EmailSender interface {
	// Send sends an email.
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// QueuePasswordResetInput represents the input for queueing a password reset email.
type QueuePasswordResetInput struct {
	UserID    uuid.UUID
	UserEmail string
	UserName  string
	ResetURL  string
	ExpiresIn string
}

// EmailService defines the interface for queueing domain emails.
type EmailService interface {
	// QueuePasswordResetEmail queues a password reset email for async delivery.
	QueuePasswordResetEmail(ctx context.Context, input QueuePasswordResetInput) error
}

// EmailQueueRepository defines the interface for the email queue.
type EmailQueueRepository interface {
	// Create adds a new email job to the queue.
	Create(ctx context.Context, job *entity.EmailJob) error

	// GetPendingJobs retrieves up to limit pending jobs that are due.
	GetPendingJobs(ctx context.Context, limit int) ([]*entity.EmailJob, error)

	// Update persists changes to an email job.
	Update(ctx context.Context, job *entity.EmailJob) error
}
