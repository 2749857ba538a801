// Package mirror keeps an in-memory copy of the backend's order and
// menu state reasonably fresh. It owns nothing: every refresh throws
// the previous copy away and rebuilds it from a full fetch.
package mirror

import (
	"context"
	"sync"
	"time"

	"cozinha/internal/metrics"
	"cozinha/internal/models"
	"cozinha/internal/monitoring"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Fetcher is the subset of the backend client the mirror needs.
type Fetcher interface {
	FetchOrders(ctx context.Context) ([]models.Order, error)
	FetchItems(ctx context.Context) ([]models.Item, error)
}

// Snapshot is one consistent view of the mirrored state. Orders and
// Lookup always come from the same refresh.
type Snapshot struct {
	Orders    []models.Order
	Lookup    models.CategoryLookup
	FetchedAt time.Time
}

// Mirror holds the current snapshot and drives its refresh cycle:
// an initial fetch, a push subscription that treats any message as
// "something changed", and a fallback poll ticker.
type Mirror struct {
	fetcher Fetcher
	monitor *monitoring.Monitor
	logger  *zap.SugaredLogger
	wsURL   string
	poll    time.Duration

	mu   sync.RWMutex
	snap Snapshot

	subMu       sync.Mutex
	subscribers map[int]chan struct{}
	nextSubID   int
}

// New creates a mirror polling every poll interval and subscribing to
// the push channel at wsURL. An empty wsURL disables the subscription
// and leaves the poll as the only refresh source.
func New(fetcher Fetcher, wsURL string, poll time.Duration, monitor *monitoring.Monitor, logger *zap.SugaredLogger) *Mirror {
	return &Mirror{
		fetcher:     fetcher,
		monitor:     monitor,
		logger:      logger,
		wsURL:       wsURL,
		poll:        poll,
		subscribers: make(map[int]chan struct{}),
	}
}

// Snapshot returns the current mirrored state. Safe for concurrent
// use; the slices inside must be treated as read-only.
func (m *Mirror) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snap
}

// Refresh performs one full fetch of orders and items and swaps the
// snapshot. Concurrent refreshes are allowed and unordered: whichever
// finishes last wins, which is acceptable because the backend owns the
// truth and the swap below is atomic under the lock.
func (m *Mirror) Refresh(ctx context.Context, trigger string) {
	orders, err := m.fetcher.FetchOrders(ctx)
	if err != nil {
		metrics.RefreshErrorsTotal.WithLabelValues("orders").Inc()
		m.monitor.RecordRefreshError(err)
		m.logger.Warnw("order fetch failed", "trigger", trigger, "error", err)
		return
	}
	items, err := m.fetcher.FetchItems(ctx)
	if err != nil {
		metrics.RefreshErrorsTotal.WithLabelValues("items").Inc()
		m.monitor.RecordRefreshError(err)
		m.logger.Warnw("item fetch failed", "trigger", trigger, "error", err)
		return
	}

	m.mu.Lock()
	m.snap = Snapshot{
		Orders:    orders,
		Lookup:    models.BuildCategoryLookup(items),
		FetchedAt: time.Now(),
	}
	m.mu.Unlock()

	metrics.RefreshTotal.Inc()
	metrics.RefreshTrigger.WithLabelValues(trigger).Inc()
	m.monitor.RecordRefresh(len(orders))
	m.notify()
}

// Subscribe registers for change notifications. The returned channel
// receives a signal after every completed refresh; the cancel func
// must be called on teardown.
func (m *Mirror) Subscribe() (<-chan struct{}, func()) {
	m.subMu.Lock()
	defer m.subMu.Unlock()

	id := m.nextSubID
	m.nextSubID++
	ch := make(chan struct{}, 1)
	m.subscribers[id] = ch

	return ch, func() {
		m.subMu.Lock()
		defer m.subMu.Unlock()
		delete(m.subscribers, id)
	}
}

func (m *Mirror) notify() {
	m.subMu.Lock()
	defer m.subMu.Unlock()
	for _, ch := range m.subscribers {
		select {
		case ch <- struct{}{}:
		default:
			// Subscriber already has a pending signal.
		}
	}
}

// Run blocks until ctx is cancelled, driving the refresh cycle. The
// ticker and the push connection are both torn down deterministically
// on cancellation.
func (m *Mirror) Run(ctx context.Context) {
	m.Refresh(ctx, "initial")

	if m.wsURL != "" {
		go m.listenPush(ctx)
	}

	ticker := time.NewTicker(m.poll)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Refresh(ctx, "poll")
		}
	}
}

// listenPush subscribes to the backend's push channel. Message content
// is never parsed; any frame means "refetch everything". Errors are
// swallowed on purpose: there is no reconnect, the poll is the
// recovery path.
func (m *Mirror) listenPush(ctx context.Context) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, m.wsURL, nil)
	if err != nil {
		m.logger.Debugw("push channel unavailable, polling only", "url", m.wsURL, "error", err)
		return
	}

	// Unblock the read loop when the mirror is torn down.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
		case <-done:
		}
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			m.logger.Debugw("push channel closed", "error", err)
			return
		}
		// Fire-and-forget: a signal during an in-flight refresh just
		// starts another one, last write wins.
		go m.Refresh(ctx, "push")
	}
}
