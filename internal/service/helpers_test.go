package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/mdshopp/storefront/internal/repo"
	"github.com/mdshopp/storefront/internal/search"
	"github.com/mdshopp/storefront/pkg/kvstore"
)

type recordedEvent struct {
	Topic string
	Key   string
	Event map[string]any
}

type recorder struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (r *recorder) PublishEvent(_ context.Context, topic, key string, event any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, recordedEvent{Topic: topic, Key: key, Event: event.(map[string]any)})
	return nil
}

func (r *recorder) Close() error { return nil }

func (r *recorder) types(topic string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, e := range r.events {
		if e.Topic == topic {
			out = append(out, e.Event["type"].(string))
		}
	}
	return out
}

// manualScheduler captures scheduled callbacks so tests decide when the
// simulated payment confirmation fires.
type manualScheduler struct {
	mu      sync.Mutex
	pending []func()
	delays  []time.Duration
}

func (m *manualScheduler) Schedule(d time.Duration, f func()) func() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending = append(m.pending, f)
	m.delays = append(m.delays, d)
	return func() bool { return true }
}

func (m *manualScheduler) fireAll() {
	m.mu.Lock()
	fns := m.pending
	m.pending = nil
	m.mu.Unlock()
	for _, f := range fns {
		f()
	}
}

type testEnv struct {
	Store    kvstore.Store
	Events   *recorder
	Catalog  *CatalogService
	Carts    *CartService
	Orders   *OrderService
	Checkout *CheckoutService
	Sched    *manualScheduler
	Now      time.Time
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := kvstore.NewMemory()
	rec := &recorder{}
	catalogRepo := repo.NewCatalogRepo(repo.SeedProducts())

	env := &testEnv{
		Store:   store,
		Events:  rec,
		Catalog: &CatalogService{Repo: catalogRepo, Search: search.NewMemory(), Events: rec},
		Carts:   &CartService{Repo: repo.NewCartRepo(), Catalog: catalogRepo, Events: rec},
		Orders:  &OrderService{Repo: &repo.OrderRepo{Store: store}, Events: rec},
		Sched:   &manualScheduler{},
		Now:     time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
	require.NoError(t, env.Catalog.Reindex(context.Background()))

	env.Checkout = NewCheckoutService(env.Carts, env.Orders, 2*time.Second)
	env.Checkout.Schedule = env.Sched.Schedule
	env.Checkout.Now = func() time.Time { return env.Now }
	return env
}

func (env *testEnv) cartWith(t *testing.T, productIDs ...int) uuid.UUID {
	t.Helper()
	id := uuid.New()
	for _, pid := range productIDs {
		_, _, err := env.Carts.AddToCart(context.Background(), id, pid)
		require.NoError(t, err)
	}
	return id
}
