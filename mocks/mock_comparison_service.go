package mocks

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"xactdiff/internal/domain"
	"xactdiff/internal/service"
)

// MockComparisonService is a mock implementation of service.ComparisonService.
type MockComparisonService struct {
	mock.Mock
}

func (m *MockComparisonService) Compare(ctx context.Context, firstID, secondID uuid.UUID) (*domain.ComparisonReport, error) {
	args := m.Called(ctx, firstID, secondID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ComparisonReport), args.Error(1)
}

func (m *MockComparisonService) CompareFiles(ctx context.Context, first, second service.UploadInput) (*domain.ComparisonReport, error) {
	args := m.Called(ctx, first, second)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ComparisonReport), args.Error(1)
}

func (m *MockComparisonService) GetByID(ctx context.Context, id uuid.UUID) (*domain.ComparisonReport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ComparisonReport), args.Error(1)
}

// Export writes the string passed as the first Return value to w.
func (m *MockComparisonService) Export(ctx context.Context, id uuid.UUID, format domain.ExportFormat, w io.Writer) error {
	args := m.Called(ctx, id, format, w)
	if body, ok := args.Get(0).(string); ok {
		_, _ = io.WriteString(w, body)
		return args.Error(1)
	}
	return args.Error(0)
}
