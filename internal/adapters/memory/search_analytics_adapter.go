package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/winnipegconnect/backend/internal/domain/entities"
	"github.com/winnipegconnect/backend/internal/domain/repositories"
)

// DefaultAnalyticsCapacity is the number of events kept when no capacity is given
const DefaultAnalyticsCapacity = 1000

// SearchAnalyticsAdapter keeps the most recent search events in a ring buffer
type SearchAnalyticsAdapter struct {
	mu     sync.Mutex
	events []*entities.SearchEvent
	next   int
	full   bool
}

var _ repositories.SearchAnalyticsRepository = (*SearchAnalyticsAdapter)(nil)

// NewSearchAnalyticsAdapter creates a buffer holding up to capacity events
func NewSearchAnalyticsAdapter(capacity int) *SearchAnalyticsAdapter {
	if capacity <= 0 {
		capacity = DefaultAnalyticsCapacity
	}
	return &SearchAnalyticsAdapter{events: make([]*entities.SearchEvent, capacity)}
}

// LogEvent stores event, overwriting the oldest one when the buffer is full
func (a *SearchAnalyticsAdapter) LogEvent(_ context.Context, event *entities.SearchEvent) error {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.events[a.next] = event
	a.next = (a.next + 1) % len(a.events)
	if a.next == 0 {
		a.full = true
	}
	return nil
}

// GetZeroResultQueries returns zero-result events, newest first
func (a *SearchAnalyticsAdapter) GetZeroResultQueries(_ context.Context, limit int) ([]*entities.SearchEvent, error) {
	if limit <= 0 {
		limit = 100
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	size := a.next
	if a.full {
		size = len(a.events)
	}

	out := make([]*entities.SearchEvent, 0)
	for i := 0; i < size && len(out) < limit; i++ {
		idx := (a.next - 1 - i + len(a.events)) % len(a.events)
		if e := a.events[idx]; e != nil && e.ResultCount == 0 {
			out = append(out, e)
		}
	}
	return out, nil
}
