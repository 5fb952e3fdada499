package adapters

import (
	"context"
	"valet/internal/domain"
)

type Dispatcher interface {
	Dispatch(ctx context.Context, req domain.RequestDescriptor) *domain.Envelope
}

type AverageCache interface {
	Get(key domain.AverageKey) (float64, bool)
	Set(key domain.AverageKey, value float64)
	CleanBatch(keys []domain.AverageKey)
}
