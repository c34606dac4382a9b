package services

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/winnipegconnect/backend/internal/domain/entities"
	"github.com/winnipegconnect/backend/internal/domain/providers"
	"github.com/winnipegconnect/backend/internal/domain/repositories"
)

const (
	trackTimeout = 5 * time.Second

	// DefaultAnalyticsBuffer is the number of search events queued for the
	// background writer before new events are dropped
	DefaultAnalyticsBuffer = 256
)

// SearchAnalyticsService records provider searches without blocking callers.
// Events are queued and written by a single worker; when the queue is full
// they are dropped.
type SearchAnalyticsService struct {
	repo repositories.SearchAnalyticsRepository
	sink providers.AnalyticsSink

	mu      sync.RWMutex
	closed  bool
	events  chan *entities.SearchEvent
	done    chan struct{}
	dropped atomic.Uint64
	once    sync.Once
}

// NewSearchAnalyticsService creates a new analytics service with the default
// queue size. sink may be nil.
func NewSearchAnalyticsService(repo repositories.SearchAnalyticsRepository, sink providers.AnalyticsSink) *SearchAnalyticsService {
	return NewSearchAnalyticsServiceWithBuffer(repo, sink, DefaultAnalyticsBuffer)
}

// NewSearchAnalyticsServiceWithBuffer creates an analytics service queueing up
// to buffer events
func NewSearchAnalyticsServiceWithBuffer(repo repositories.SearchAnalyticsRepository, sink providers.AnalyticsSink, buffer int) *SearchAnalyticsService {
	if buffer <= 0 {
		buffer = DefaultAnalyticsBuffer
	}
	s := &SearchAnalyticsService{
		repo:   repo,
		sink:   sink,
		events: make(chan *entities.SearchEvent, buffer),
		done:   make(chan struct{}),
	}
	go s.run()
	return s
}

// Track queues event for storage and publishing. It never blocks; the event is
// dropped when the queue is full or the service is closed.
func (s *SearchAnalyticsService) Track(event *entities.SearchEvent) {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		s.drop(event, "analytics closed")
		return
	}

	select {
	case s.events <- event:
	default:
		s.drop(event, "analytics queue full")
	}
}

// Dropped returns the number of events that were not queued
func (s *SearchAnalyticsService) Dropped() uint64 {
	return s.dropped.Load()
}

func (s *SearchAnalyticsService) drop(event *entities.SearchEvent, reason string) {
	s.dropped.Add(1)
	log.Warn().Str("event_id", event.ID).Str("reason", reason).Msg("dropping search event")
}

func (s *SearchAnalyticsService) run() {
	defer close(s.done)
	for event := range s.events {
		s.record(event)
	}
}

func (s *SearchAnalyticsService) record(event *entities.SearchEvent) {
	// detached from the request, which has usually finished by now
	ctx, cancel := context.WithTimeout(context.Background(), trackTimeout)
	defer cancel()

	if err := s.repo.LogEvent(ctx, event); err != nil {
		log.Warn().Err(err).Str("event_id", event.ID).Msg("failed to log search event")
	}
	if s.sink != nil {
		if err := s.sink.Publish(ctx, event); err != nil {
			log.Warn().Err(err).Str("event_id", event.ID).Msg("failed to publish search event")
		}
	}
}

// ZeroResultQueries returns recent searches that found no provider
func (s *SearchAnalyticsService) ZeroResultQueries(ctx context.Context, limit int) ([]*entities.SearchEvent, error) {
	return s.repo.GetZeroResultQueries(ctx, limit)
}

// Close stops accepting events, drains the queue and closes the sink. Calls
// after the first are no-ops.
func (s *SearchAnalyticsService) Close() error {
	var err error
	s.once.Do(func() {
		s.mu.Lock()
		s.closed = true
		close(s.events)
		s.mu.Unlock()

		<-s.done
		if s.sink != nil {
			err = s.sink.Close()
		}
	})
	return err
}
