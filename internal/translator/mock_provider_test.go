package translator_test

import (
	"context"

	"tafseel/backend/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockProvider is a testify mock of the external translation collaborator.
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) TranslateBatch(ctx context.Context, texts []string, source string, target models.Language) ([]string, error) {
	args := m.Called(ctx, texts, source, target)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
