package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"xactdiff/internal/domain"
	"xactdiff/internal/port"
)

type reportRepo struct {
	cache *cache[*domain.ComparisonReport]
}

// NewReportRepo creates an in-memory ReportStore.
func NewReportRepo(ttl time.Duration, maxEntries int) port.ReportStore {
	return &reportRepo{cache: newCache[*domain.ComparisonReport](ttl, maxEntries)}
}

func (r *reportRepo) SaveReport(_ context.Context, report *domain.ComparisonReport) error {
	r.cache.put(report.ID, report)
	return nil
}

func (r *reportRepo) GetReport(_ context.Context, id uuid.UUID) (*domain.ComparisonReport, error) {
	report, ok := r.cache.get(id)
	if !ok {
		return nil, domain.ErrReportNotFound
	}
	return report, nil
}
