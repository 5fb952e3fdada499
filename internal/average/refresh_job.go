package average

import (
	"context"
	"fmt"
	"sync"
	"time"
	"valet/internal/adapters"
	"valet/internal/domain"

	"github.com/sirupsen/logrus"
)

const numWorkers = 5
const perRequestTimeout = 15 * time.Second

type refreshedAverage struct {
	Key   domain.AverageKey
	Value float64
}

// RefreshAverages recomputes the averages of keys and stores them in the cache.
// Keys that could not be recomputed are evicted so stale values are not served.
func RefreshAverages(ctx context.Context, execID string, calc AverageCalculator, cache adapters.AverageCache, keys []domain.AverageKey, logger logrus.FieldLogger) (int, error) {
	log := logger.WithField("exec_id", execID)

	unique := getUniqueKeys(keys)
	if len(unique) == 0 {
		log.Info("Nothing to refresh this time")
		return 0, nil
	}

	log.Infof("Refreshing %d averages", len(unique))

	results := processInParallel(ctx, calc, unique, log)

	stale := make([]domain.AverageKey, 0, len(unique))
	for _, key := range unique {
		if v, ok := results[key]; ok {
			cache.Set(key, v)
			continue
		}
		// can happen when Valet is down or the series has no data in the window
		log.Warnf("Average for %s wasn't refreshed, it'll be retried next time", key)
		stale = append(stale, key)
	}
	if len(stale) > 0 {
		cache.CleanBatch(stale)
	}

	if len(results) == 0 {
		return 0, fmt.Errorf("none of %d averages were refreshed", len(unique))
	}

	log.Infof("%d averages were successfully refreshed", len(results))
	return len(results), nil
}

func getUniqueKeys(keys []domain.AverageKey) []domain.AverageKey {
	seen := make(map[string]struct{}, len(keys))
	unique := make([]domain.AverageKey, 0, len(keys))
	for _, key := range keys {
		if _, ok := seen[key.String()]; ok {
			continue
		}
		seen[key.String()] = struct{}{}
		unique = append(unique, key)
	}
	return unique
}

func processInParallel(ctx context.Context, calc AverageCalculator, keys []domain.AverageKey, logger logrus.FieldLogger) map[domain.AverageKey]float64 {
	workQueue := make(chan domain.AverageKey, len(keys))
	for _, key := range keys {
		workQueue <- key
	}
	close(workQueue)

	resultsCh := make(chan refreshedAverage, len(keys))

	var wg sync.WaitGroup
	for i := 0; i < min(numWorkers, len(keys)); i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			runWorker(ctx, workerID, workQueue, calc, resultsCh, logger)
		}(i)
	}

	wg.Wait()
	close(resultsCh)

	results := make(map[domain.AverageKey]float64, len(keys))
	for r := range resultsCh {
		results[r.Key] = r.Value
	}
	return results
}

func runWorker(ctx context.Context, workerID int, workQueue <-chan domain.AverageKey, calc AverageCalculator, resultsCh chan<- refreshedAverage, logger logrus.FieldLogger) {
	for {
		select {
		case <-ctx.Done():
			return
		case key, ok := <-workQueue:
			if !ok {
				return
			}
			processKey(ctx, workerID, key, calc, resultsCh, logger)
		}
	}
}

func processKey(ctx context.Context, workerID int, key domain.AverageKey, calc AverageCalculator, resultsCh chan<- refreshedAverage, logger logrus.FieldLogger) {
	reqCtx, cancel := context.WithTimeout(ctx, perRequestTimeout)
	defer cancel()

	avg, err := calc.Average(reqCtx, key.Weeks, key.From, key.To)
	if err != nil {
		logger.WithError(err).Warnf("Average %s wasn't computed by worker %d", key, workerID)
		return
	}
	resultsCh <- refreshedAverage{Key: key, Value: avg}
}
