package mocks

import (
	"github.com/stretchr/testify/mock"

	"xactdiff/internal/domain"
)

// MockDocumentParser is a mock implementation of service.DocumentParser.
type MockDocumentParser struct {
	mock.Mock
}

func (m *MockDocumentParser) ParseDocument(text string, pageCount int, filename string) (*domain.Document, error) {
	args := m.Called(text, pageCount, filename)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentParser) SummaryStrategy() domain.SummaryStrategy {
	args := m.Called()
	return args.Get(0).(domain.SummaryStrategy)
}
