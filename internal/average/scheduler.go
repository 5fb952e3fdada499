package average

import (
	"context"
	"sync"
	"time"
	"valet/internal/adapters"
	"valet/internal/domain"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const defaultRefreshInterval = time.Hour

// Scheduler periodically refreshes the cached averages of the configured pairs.
type Scheduler struct {
	calc     AverageCalculator
	cache    adapters.AverageCache
	keys     []domain.AverageKey
	interval time.Duration
	logger   logrus.FieldLogger
	// -----
	mu    sync.Mutex
	sched gocron.Scheduler
}

func (s *Scheduler) Start(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}

	job := func(jobCtx context.Context) {
		execID := uuid.NewString()
		if _, refreshErr := RefreshAverages(jobCtx, execID, s.calc, s.cache, s.keys, s.logger); refreshErr != nil {
			s.logger.WithField("exec_id", execID).Errorf("Refresh averages job failed: %v", refreshErr)
		}
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(job),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		_ = scheduler.Shutdown()
		return err
	}

	s.mu.Lock()
	s.sched = scheduler
	s.mu.Unlock()
	scheduler.Start()

	go func() {
		<-ctx.Done()
		if sdErr := s.Shutdown(); sdErr != nil {
			s.logger.Errorf("Scheduler shutdown error: %v", sdErr)
		}
	}()
	return nil
}

func (s *Scheduler) Shutdown() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sched == nil {
		return nil
	}
	err := s.sched.Shutdown()
	s.sched = nil
	return err
}

func (s *Scheduler) running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sched != nil
}

func NewScheduler(calc AverageCalculator, cache adapters.AverageCache, keys []domain.AverageKey, interval time.Duration, logger logrus.FieldLogger) *Scheduler {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Scheduler{calc: calc, cache: cache, keys: keys, interval: interval, logger: logger}
}
