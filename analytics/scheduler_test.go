package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSchedulerRefreshNotifiesSubscribers(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)}
	fetcher := &fakeFetcher{payloads: map[string]string{EndpointAlerts: `{"alerts":[]}`}}
	service := newTestService(fetcher, 30*time.Second, clock)
	scheduler := NewScheduler(service)

	events, cancel := scheduler.Subscribe(TopicAlerts)
	defer cancel()

	scheduler.refresh(context.Background(), TopicAlerts)

	select {
	case event := <-events:
		assert.Equal(t, TopicAlerts, event.Topic)
	case <-time.After(time.Second):
		t.Fatal("expected a refresh event")
	}
}

func TestSchedulerRefreshInvalidatesCache(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)}
	fetcher := &fakeFetcher{payloads: map[string]string{EndpointAlerts: `{"alerts":[]}`}}
	service := newTestService(fetcher, 30*time.Second, clock)
	scheduler := NewScheduler(service)

	_, err := service.GetAlerts(context.Background(), "")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), fetcher.callCount())

	// A scheduled refresh refetches even though the TTL has not elapsed.
	scheduler.refresh(context.Background(), TopicAlerts)
	assert.Equal(t, int64(2), fetcher.callCount())
}

func TestSchedulerCancelStopsDelivery(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)}
	fetcher := &fakeFetcher{payloads: map[string]string{EndpointAlerts: `{"alerts":[]}`}}
	service := newTestService(fetcher, 30*time.Second, clock)
	scheduler := NewScheduler(service)

	events, cancel := scheduler.Subscribe(TopicAlerts)
	cancel()

	scheduler.refresh(context.Background(), TopicAlerts)

	select {
	case <-events:
		t.Fatal("cancelled subscriber must not receive events")
	default:
	}
}

func TestSchedulerRunStopsOnContextCancel(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)}
	fetcher := &fakeFetcher{payloads: map[string]string{
		EndpointAlerts:       `{"alerts":[]}`,
		EndpointPredictions:  `{"predictions":[]}`,
		EndpointStores:       `{"stores":[]}`,
		EndpointSalesHistory: `{"monthly":[],"daily":[],"regional":[]}`,
	}}
	service := newTestService(fetcher, 30*time.Second, clock)

	scheduler := NewScheduler(service)
	scheduler.intervals = map[string]time.Duration{TopicAlerts: 5 * time.Millisecond}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		scheduler.Run(ctx)
		close(done)
	}()

	time.Sleep(25 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancellation")
	}
	assert.Greater(t, fetcher.callCount(), int64(0))
}
