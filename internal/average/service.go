package average

import (
	"context"
	"strings"
	"valet/internal/adapters"
	"valet/internal/domain"

	"github.com/sirupsen/logrus"
)

const defaultWeeks = 10

type AverageCalculator interface {
	Average(ctx context.Context, weeks int, from, to string) (float64, error)
}

type Service struct {
	calc         AverageCalculator
	cache        adapters.AverageCache
	defaultWeeks int
	logger       logrus.FieldLogger
}

// Get returns the average of the pair over weeks, served from the cache when present.
// Input is validated before the cache is consulted so rejected keys never hit it.
func (s *Service) Get(ctx context.Context, weeks int, from, to string) (View, error) {
	if err := ValidateInput(weeks, from, to); err != nil {
		return View{}, err
	}

	key := domain.AverageKey{From: strings.ToUpper(from), To: strings.ToUpper(to), Weeks: weeks}
	view := View{From: key.From, To: key.To, Series: key.Series(), Weeks: weeks}

	if s.cache != nil {
		if avg, ok := s.cache.Get(key); ok {
			view.Average = avg
			view.Cached = true
			return view, nil
		}
	}

	avg, err := s.calc.Average(ctx, weeks, key.From, key.To)
	if err != nil {
		return View{}, err
	}

	if s.cache != nil {
		s.cache.Set(key, avg)
	}
	s.logger.WithFields(logrus.Fields{"series": view.Series, "weeks": weeks}).Debug("Average computed and cached")

	view.Average = avg
	return view, nil
}

func (s *Service) DefaultWeeks() int {
	return s.defaultWeeks
}

func NewService(calc AverageCalculator, cache adapters.AverageCache, defaultWeeksCount int, logger logrus.FieldLogger) *Service {
	if defaultWeeksCount <= 0 {
		defaultWeeksCount = defaultWeeks
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Service{calc: calc, cache: cache, defaultWeeks: defaultWeeksCount, logger: logger}
}
