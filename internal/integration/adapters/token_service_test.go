package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/herd-ledger/backend/internal/integration/persistence/model"
)

type stubTokenRepository struct {
	refreshTokens map[string]bool // token -> valid
	resetTokens   map[string]*model.PasswordResetTokenModel
}

func newStubTokenRepository() *stubTokenRepository {
	return &stubTokenRepository{
		refreshTokens: make(map[string]bool),
		resetTokens:   make(map[string]*model.PasswordResetTokenModel),
	}
}

func (r *stubTokenRepository) SaveRefreshToken(_ context.Context, token string, _ uuid.UUID, _ time.Time) error {
	r.refreshTokens[token] = true
	return nil
}

func (r *stubTokenRepository) IsRefreshTokenValid(_ context.Context, token string) (bool, error) {
	return r.refreshTokens[token], nil
}

func (r *stubTokenRepository) InvalidateRefreshToken(_ context.Context, token string) error {
	r.refreshTokens[token] = false
	return nil
}

func (r *stubTokenRepository) InvalidateAllUserRefreshTokens(_ context.Context, _ uuid.UUID) error {
	for token := range r.refreshTokens {
		r.refreshTokens[token] = false
	}
	return nil
}

func (r *stubTokenRepository) SavePasswordResetToken(_ context.Context, token string, userID uuid.UUID, email string, expiresAt time.Time) error {
	r.resetTokens[token] = &model.PasswordResetTokenModel{
		Token:     token,
		UserID:    userID,
		Email:     email,
		ExpiresAt: expiresAt,
	}
	return nil
}

func (r *stubTokenRepository) GetPasswordResetToken(_ context.Context, token string) (*model.PasswordResetTokenModel, error) {
	return r.resetTokens[token], nil
}

func (r *stubTokenRepository) InvalidatePasswordResetToken(_ context.Context, token string) error {
	delete(r.resetTokens, token)
	return nil
}

type stubBlacklist struct {
	revoked map[string]bool
}

func (b *stubBlacklist) Add(_ context.Context, token string, _ time.Duration) error {
	b.revoked[token] = true
	return nil
}

func (b *stubBlacklist) Contains(_ context.Context, token string) (bool, error) {
	return b.revoked[token], nil
}

func TestTokenService_GenerateAndValidate(t *testing.T) {
	repo := newStubTokenRepository()
	service := NewTokenService("unit-test-secret", repo, nil)
	ctx := context.Background()
	userID := uuid.New()

	pair, err := service.GenerateTokenPair(ctx, userID, "joao@rioverde.com")
	if err != nil {
		t.Fatalf("GenerateTokenPair failed: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("expected both tokens to be generated")
	}
	if !repo.refreshTokens[pair.RefreshToken] {
		t.Error("expected refresh token to be stored")
	}

	t.Run("access token carries the user", func(t *testing.T) {
		claims, err := service.ValidateAccessToken(ctx, pair.AccessToken)
		if err != nil {
			t.Fatalf("ValidateAccessToken failed: %v", err)
		}
		if claims.UserID != userID {
			t.Errorf("expected user %s, got %s", userID, claims.UserID)
		}
		if claims.Email != "joao@rioverde.com" {
			t.Errorf("unexpected email %q", claims.Email)
		}
	})

	t.Run("refresh token is not accepted as access token", func(t *testing.T) {
		if _, err := service.ValidateAccessToken(ctx, pair.RefreshToken); err == nil {
			t.Error("expected refresh token to be rejected on the access path")
		}
	})

	t.Run("access token is not accepted as refresh token", func(t *testing.T) {
		if _, err := service.ValidateRefreshToken(ctx, pair.AccessToken); err == nil {
			t.Error("expected access token to be rejected on the refresh path")
		}
	})

	t.Run("tampered token is rejected", func(t *testing.T) {
		other := NewTokenService("a-different-secret", repo, nil)
		if _, err := other.ValidateAccessToken(ctx, pair.AccessToken); err == nil {
			t.Error("expected token signed with another secret to be rejected")
		}
	})
}

func TestTokenService_RevokeAccessToken(t *testing.T) {
	repo := newStubTokenRepository()
	blacklist := &stubBlacklist{revoked: make(map[string]bool)}
	service := NewTokenService("unit-test-secret", repo, blacklist)
	ctx := context.Background()

	pair, err := service.GenerateTokenPair(ctx, uuid.New(), "joao@rioverde.com")
	if err != nil {
		t.Fatalf("GenerateTokenPair failed: %v", err)
	}

	if _, err := service.ValidateAccessToken(ctx, pair.AccessToken); err != nil {
		t.Fatalf("token should validate before revocation: %v", err)
	}

	if err := service.RevokeAccessToken(ctx, pair.AccessToken); err != nil {
		t.Fatalf("RevokeAccessToken failed: %v", err)
	}

	if _, err := service.ValidateAccessToken(ctx, pair.AccessToken); err == nil {
		t.Error("expected revoked token to be rejected")
	}
}

func TestPasswordResetTokenService_RoundTrip(t *testing.T) {
	repo := newStubTokenRepository()
	service := NewPasswordResetTokenService(repo)
	ctx := context.Background()
	userID := uuid.New()

	reset, err := service.GenerateResetToken(ctx, userID, "joao@rioverde.com")
	if err != nil {
		t.Fatalf("GenerateResetToken failed: %v", err)
	}
	if reset.Token == "" {
		t.Fatal("expected a non-empty reset token")
	}

	validated, err := service.ValidateResetToken(ctx, reset.Token)
	if err != nil {
		t.Fatalf("ValidateResetToken failed: %v", err)
	}
	if validated.UserID != userID {
		t.Errorf("expected user %s, got %s", userID, validated.UserID)
	}

	if err := service.InvalidateResetToken(ctx, reset.Token); err != nil {
		t.Fatalf("InvalidateResetToken failed: %v", err)
	}
	if _, err := service.ValidateResetToken(ctx, reset.Token); err == nil {
		t.Error("expected invalidated token to be rejected")
	}
}
