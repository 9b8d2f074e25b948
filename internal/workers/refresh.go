package workers

import (
	"context"
	"sync"
	"time"

	"recipekeep/internal/logger"
)

// RefreshJob reconciles the local recipe copy in the background. Triggers
// arriving while a reconcile is running or inside the throttle window
// coalesce into a single refresh, so a burst of UI events costs one
// round trip at most every throttle interval.
type RefreshJob struct {
	reconciler Reconciler
	throttle   time.Duration
	logger     *logger.Logger

	trigger chan struct{}
	stop    chan struct{}
	once    sync.Once
}

func NewRefreshJob(reconciler Reconciler, throttle time.Duration, logger *logger.Logger) *RefreshJob {
	return &RefreshJob{
		reconciler: reconciler,
		throttle:   throttle,
		logger:     logger,
		trigger:    make(chan struct{}, 1),
		stop:       make(chan struct{}),
	}
}

// Run starts the background loop and returns immediately.
func (j *RefreshJob) Run() {
	go j.loop()
}

// Trigger requests a refresh. It never blocks: a trigger landing on top of
// an already pending one is absorbed.
func (j *RefreshJob) Trigger() {
	select {
	case j.trigger <- struct{}{}:
	default:
	}
}

// Stop terminates the background loop. Safe to call more than once.
func (j *RefreshJob) Stop() {
	j.once.Do(func() { close(j.stop) })
}

func (j *RefreshJob) loop() {
	var lastRun time.Time

	for {
		select {
		case <-j.stop:
			return
		case <-j.trigger:
		}

		// enforce the minimum gap since the previous reconcile
		if wait := j.throttle - time.Since(lastRun); wait > 0 {
			timer := time.NewTimer(wait)
			select {
			case <-j.stop:
				timer.Stop()
				return
			case <-timer.C:
			}
		}

		if err := j.reconciler.Reconcile(context.Background()); err != nil {
			j.logger.Warn().Err(err).Msg("background refresh failed")
		}
		lastRun = time.Now()
	}
}
