package payment

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Intent is the provider-side handle for a pending payment. ClientSecret is
// opaque; it flows through to the client unchanged.
type Intent struct {
	ID           string
	ClientSecret string
	Amount       float64
	Currency     string
}

// Provider is the external payment collaborator. A production integration
// (PG사 연동) replaces MockProvider without touching the API layer.
type Provider interface {
	CreateIntent(ctx context.Context, amount float64, currency string) (*Intent, error)
	Confirm(ctx context.Context, intentID string) error
}

// MockProvider issues opaque identifiers and accepts every confirmation.
type MockProvider struct{}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (p *MockProvider) CreateIntent(ctx context.Context, amount float64, currency string) (*Intent, error) {
	id := fmt.Sprintf("pi_mock_%s", uuid.NewString())
	return &Intent{
		ID:           id,
		ClientSecret: fmt.Sprintf("%s_secret_%s", id, uuid.NewString()),
		Amount:       amount,
		Currency:     currency,
	}, nil
}

func (p *MockProvider) Confirm(ctx context.Context, intentID string) error {
	// Mock 연동: 항상 성공
	return nil
}

var _ Provider = (*MockProvider)(nil)
