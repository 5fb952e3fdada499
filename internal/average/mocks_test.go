package average

import (
	"context"

	"valet/internal/domain"

	"github.com/stretchr/testify/mock"
)

type MockAverageCalculator struct{ mock.Mock }

func (m *MockAverageCalculator) Average(ctx context.Context, weeks int, from, to string) (float64, error) {
	args := m.Called(ctx, weeks, from, to)
	return args.Get(0).(float64), args.Error(1)
}

type MockAverageCache struct{ mock.Mock }

func (m *MockAverageCache) Get(key domain.AverageKey) (float64, bool) {
	args := m.Called(key)
	return args.Get(0).(float64), args.Bool(1)
}

func (m *MockAverageCache) Set(key domain.AverageKey, value float64) {
	m.Called(key, value)
}

func (m *MockAverageCache) CleanBatch(keys []domain.AverageKey) {
	m.Called(keys)
}
