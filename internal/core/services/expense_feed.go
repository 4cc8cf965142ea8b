package services

import (
	"sync"

	"github.com/SscSPs/trip_ledger_app/internal/core/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// ExpenseFeed is an in-process broker that pushes the full expense list of a
// trip to every live subscriber of that trip.
//
// Each subscriber holds at most one undelivered list. A publish replaces an
// older list the subscriber has not read yet, so slow readers see the latest
// state and never block publishers.
type ExpenseFeed struct {
	mu          sync.Mutex
	subs        map[string]map[*feedSubscription]struct{}
	subscribers prometheus.Gauge
}

type feedSubscription struct {
	ch chan []domain.Expense
}

// NewExpenseFeed creates an empty feed. The subscriber gauge is registered
// with reg when reg is not nil.
func NewExpenseFeed(reg prometheus.Registerer) *ExpenseFeed {
	gauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "trip_ledger",
		Name:      "ledger_stream_subscribers",
		Help:      "Live ledger subscriptions currently open.",
	})
	if reg != nil {
		reg.MustRegister(gauge)
	}
	return &ExpenseFeed{
		subs:        make(map[string]map[*feedSubscription]struct{}),
		subscribers: gauge,
	}
}

// Subscribe registers interest in a trip. The returned channel is closed by the
// returned cancel func or when the trip is closed. Cancel is safe to call more
// than once.
func (f *ExpenseFeed) Subscribe(tripID string) (<-chan []domain.Expense, func()) {
	sub := &feedSubscription{ch: make(chan []domain.Expense, 1)}

	f.mu.Lock()
	if f.subs[tripID] == nil {
		f.subs[tripID] = make(map[*feedSubscription]struct{})
	}
	f.subs[tripID][sub] = struct{}{}
	f.subscribers.Inc()
	f.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			f.mu.Lock()
			defer f.mu.Unlock()
			f.remove(tripID, sub)
		})
	}
	return sub.ch, cancel
}

// Publish delivers expenses to every subscriber of the trip.
func (f *ExpenseFeed) Publish(tripID string, expenses []domain.Expense) {
	snapshot := make([]domain.Expense, len(expenses))
	copy(snapshot, expenses)

	f.mu.Lock()
	defer f.mu.Unlock()

	for sub := range f.subs[tripID] {
		select {
		case sub.ch <- snapshot:
			continue
		default:
		}
		// Drop the stale list, then retry once
		select {
		case <-sub.ch:
		default:
		}
		select {
		case sub.ch <- snapshot:
		default:
		}
	}
}

// HasSubscribers reports whether anyone is listening to the trip.
func (f *ExpenseFeed) HasSubscribers(tripID string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.subs[tripID]) > 0
}

// CloseTrip closes every subscription of the trip.
func (f *ExpenseFeed) CloseTrip(tripID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for sub := range f.subs[tripID] {
		f.remove(tripID, sub)
	}
}

// remove must be called with f.mu held.
func (f *ExpenseFeed) remove(tripID string, sub *feedSubscription) {
	subs, ok := f.subs[tripID]
	if !ok {
		return
	}
	if _, ok := subs[sub]; !ok {
		return
	}
	delete(subs, sub)
	close(sub.ch)
	f.subscribers.Dec()
	if len(subs) == 0 {
		delete(f.subs, tripID)
	}
}
