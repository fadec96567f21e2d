package cronedit

import (
	"net/url"
	"sync"
)

// Subscription is released when its consumer no longer wants updates.
type Subscription interface {
	Unsubscribe()
}

// Source publishes externally supplied expressions, such as a value read
// from a route or query parameter.
type Source interface {
	Subscribe(fn func(cron string)) Subscription
}

// QueryParam is the parameter QuerySource reads the expression from.
const QueryParam = "cron"

// QuerySource publishes the "cron" parameter of every query it is given.
// Queries without the parameter, or with an empty value, publish nothing.
type QuerySource struct {
	mu          sync.Mutex
	nextID      int
	subscribers map[int]func(string)
}

// NewQuerySource creates a QuerySource with no subscribers.
func NewQuerySource() *QuerySource {
	return &QuerySource{subscribers: make(map[int]func(string))}
}

// Subscribe registers fn until the returned subscription is released.
func (q *QuerySource) Subscribe(fn func(cron string)) Subscription {
	q.mu.Lock()
	defer q.mu.Unlock()

	id := q.nextID
	q.nextID++
	q.subscribers[id] = fn
	return &querySubscription{source: q, id: id}
}

// Publish hands the "cron" value of query to every subscriber.
func (q *QuerySource) Publish(query url.Values) {
	cron := InitialCron(query, "")
	if cron == "" {
		return
	}

	q.mu.Lock()
	subscribers := make([]func(string), 0, len(q.subscribers))
	for _, fn := range q.subscribers {
		subscribers = append(subscribers, fn)
	}
	q.mu.Unlock()

	for _, fn := range subscribers {
		fn(cron)
	}
}

// Subscribers returns the number of live subscriptions.
func (q *QuerySource) Subscribers() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.subscribers)
}

type querySubscription struct {
	source *QuerySource
	id     int
	once   sync.Once
}

func (s *querySubscription) Unsubscribe() {
	s.once.Do(func() {
		s.source.mu.Lock()
		defer s.source.mu.Unlock()
		delete(s.source.subscribers, s.id)
	})
}

// InitialCron returns the "cron" parameter of query, or fallback when it is
// missing or empty.
func InitialCron(query url.Values, fallback string) string {
	if cron := query.Get(QueryParam); cron != "" {
		return cron
	}
	return fallback
}
