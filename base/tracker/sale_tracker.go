package tracker

import (
	"sync"
	"time"

	"github.com/viney-shih/goroutines"

	"github.com/x-xyz/salesbot/base/ctx"
	"github.com/x-xyz/salesbot/base/goroutine"
	"github.com/x-xyz/salesbot/base/log"
	"github.com/x-xyz/salesbot/base/metrics"
	"github.com/x-xyz/salesbot/domain"
)

var metOnce sync.Once
var met metrics.Service

const (
	DefaultWorkers         = 16
	DefaultQueueLength     = 1024
	DefaultScheduleTimeout = 3 * time.Second
)

type SaleHandler interface {
	HandleEvent(c ctx.Ctx, event *domain.ChainEvent) Outcome
}

type SaleTrackerCfg struct {
	Source     domain.EventSource
	EventTypes []string
	Handler    SaleHandler
	ErrorCh    chan<- error

	Workers         int
	QueueLength     int
	ScheduleTimeout time.Duration
}

// SaleTracker feeds subscribed sale events to the handler on a worker pool
type SaleTracker struct {
	source          domain.EventSource
	eventTypes      []string
	handler         SaleHandler
	errorCh         chan<- error
	pool            *goroutines.Pool
	scheduleTimeout time.Duration
	stoppedCh       chan interface{}
}

func NewSaleTracker(cfg *SaleTrackerCfg) *SaleTracker {
	metOnce.Do(func() {
		met = metrics.New("tracker")
	})
	workers := cfg.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}
	queue := cfg.QueueLength
	if queue <= 0 {
		queue = DefaultQueueLength
	}
	timeout := cfg.ScheduleTimeout
	if timeout <= 0 {
		timeout = DefaultScheduleTimeout
	}
	eventTypes := cfg.EventTypes
	if len(eventTypes) == 0 {
		eventTypes = domain.SaleEventTypes
	}
	return &SaleTracker{
		source:          cfg.Source,
		eventTypes:      eventTypes,
		handler:         cfg.Handler,
		errorCh:         cfg.ErrorCh,
		pool:            goroutines.NewPool(workers, goroutines.WithTaskQueueLength(queue), goroutines.WithPreAllocWorkers(workers/2)),
		scheduleTimeout: timeout,
		stoppedCh:       make(chan interface{}),
	}
}

func (t *SaleTracker) Start(c ctx.Ctx) {
	go func() {
		defer close(t.stoppedCh)
		if err := t.loop(c); err != nil && t.errorCh != nil {
			t.errorCh <- err
		}
	}()
}

// Wait blocks until the subscription ended and the pool was released
func (t *SaleTracker) Wait() {
	<-t.stoppedCh
}

func (t *SaleTracker) loop(c ctx.Ctx) error {
	defer t.pool.Release()
	c.WithField("eventTypes", t.eventTypes).Info("subscribing to sale events")
	return t.source.Subscribe(c, t.eventTypes, func(event *domain.ChainEvent) {
		t.dispatch(c, event)
	}, func(err error) {
		met.BumpSum("source.err", 1)
		c.WithField("err", err).Warn("event source error")
	})
}

func (t *SaleTracker) dispatch(c ctx.Ctx, event *domain.ChainEvent) {
	err := t.pool.ScheduleWithTimeout(t.scheduleTimeout, func() {
		if goroutine.Recover("handleEvent", func() { t.handler.HandleEvent(c, event) }) {
			met.BumpSum("handler.panic", 1)
		}
	})
	if err != nil {
		met.BumpSum("schedule.err", 1)
		c.WithFields(log.Fields{
			"err":  err,
			"txId": event.TransactionId,
		}).Error("failed to schedule event")
	}
}
