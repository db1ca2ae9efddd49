package analytics

import (
	"context"
	"log"
	"sync"
	"time"
)

// Refresh topics with their fixed intervals.
const (
	TopicAlerts      = "alerts"
	TopicPredictions = "predictions"
	TopicStores      = "stores"
	TopicROI         = "roi"
)

var topicIntervals = map[string]time.Duration{
	TopicAlerts:      30 * time.Second,
	TopicPredictions: 30 * time.Second,
	TopicStores:      60 * time.Second,
	TopicROI:         120 * time.Second,
}

// RefreshEvent tells subscribers that a topic's data was refreshed.
type RefreshEvent struct {
	Topic string
	At    time.Time
}

// Scheduler owns all auto-refresh timers for the analytics layer. Consumers
// subscribe to a topic instead of running their own intervals, so mounting
// several views never multiplies fetch traffic.
type Scheduler struct {
	service   *Service
	intervals map[string]time.Duration

	mu     sync.Mutex
	nextID int
	subs   map[string]map[int]chan RefreshEvent
}

// NewScheduler builds a scheduler over service with the default topic intervals.
func NewScheduler(service *Service) *Scheduler {
	return &Scheduler{
		service:   service,
		intervals: topicIntervals,
		subs:      make(map[string]map[int]chan RefreshEvent),
	}
}

// Subscribe registers interest in a topic. The returned cancel func must be
// called on consumer teardown; after cancel no further events are delivered.
func (s *Scheduler) Subscribe(topic string) (<-chan RefreshEvent, func()) {
	ch := make(chan RefreshEvent, 1)

	s.mu.Lock()
	s.nextID++
	id := s.nextID
	if s.subs[topic] == nil {
		s.subs[topic] = make(map[int]chan RefreshEvent)
	}
	s.subs[topic][id] = ch
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if subs, ok := s.subs[topic]; ok {
			delete(subs, id)
		}
	}
	return ch, cancel
}

// Run drives one ticker per topic until ctx is cancelled. On each tick the
// topic's data is re-fetched (repopulating the cache) and subscribers are
// notified; a slow subscriber is skipped rather than blocking the loop.
func (s *Scheduler) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for topic, interval := range s.intervals {
		wg.Add(1)
		go func(topic string, interval time.Duration) {
			defer wg.Done()
			ticker := time.NewTicker(interval)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					s.refresh(ctx, topic)
				}
			}
		}(topic, interval)
	}
	wg.Wait()
}

func (s *Scheduler) refresh(ctx context.Context, topic string) {
	var err error
	switch topic {
	case TopicAlerts:
		s.service.cache.Invalidate(cacheKey(EndpointAlerts, nil))
		_, err = s.service.GetAlerts(ctx, "")
	case TopicPredictions:
		s.service.cache.Invalidate(cacheKey(EndpointPredictions, nil))
		_, err = s.service.GetPredictions(ctx, "")
	case TopicStores:
		s.service.cache.Invalidate(cacheKey(EndpointStores, nil))
		_, err = s.service.GetStores(ctx, StoreFilters{})
	case TopicROI:
		s.service.cache.Invalidate(cacheKey(EndpointSalesHistory, nil))
		_, err = s.service.GetSalesHistory(ctx, "monthly")
	}
	if err != nil {
		log.Printf("Scheduled refresh for %s failed: %v", topic, err)
		return
	}
	s.notify(topic)
}

func (s *Scheduler) notify(topic string) {
	event := RefreshEvent{Topic: topic, At: time.Now()}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ch := range s.subs[topic] {
		select {
		case ch <- event:
		default:
		}
	}
}
