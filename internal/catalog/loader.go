package catalog

import (
	"context"
	"log/slog"
	"sync"

	"github.com/neotechlabs/storefront/internal/domain"
)

// Fetcher is the subset of the client the loader needs.
type Fetcher interface {
	FetchProducts(ctx context.Context) ([]domain.Product, error)
	FetchProductsByCategory(ctx context.Context, category string) ([]domain.Product, error)
}

// State is the product browsing view-state: the current list, a loading
// flag and a display-ready error ("" when none).
type State struct {
	Products []domain.Product
	Loading  bool
	Err      string
}

// Loader tracks the latest product fetch per category and notifies
// subscribers as the state changes. It guards against stale responses:
// when rapid category switches overlap, only the result matching the
// newest request is applied; a superseded in-flight fetch is discarded.
type Loader struct {
	fetcher Fetcher
	logger  *slog.Logger

	mu       sync.Mutex
	gen      uint64
	category string
	state    State
	subs     map[int]func(State)
	nextSub  int
}

// NewLoader creates a product loader over the given fetcher.
func NewLoader(fetcher Fetcher, logger *slog.Logger) *Loader {
	return &Loader{
		fetcher: fetcher,
		logger:  logger,
		subs:    make(map[int]func(State)),
	}
}

// Load fetches products for a category ("" means all products) and
// publishes the result, unless a newer Load started in the meantime.
// It blocks until the fetch resolves or ctx is cancelled.
func (l *Loader) Load(ctx context.Context, category string) {
	l.mu.Lock()
	l.gen++
	gen := l.gen
	l.category = category
	l.state.Loading = true
	l.state.Err = ""
	state := l.state
	l.mu.Unlock()
	l.notify(state)

	var products []domain.Product
	var err error
	if category != "" {
		products, err = l.fetcher.FetchProductsByCategory(ctx, category)
	} else {
		products, err = l.fetcher.FetchProducts(ctx)
	}

	l.mu.Lock()
	if gen != l.gen {
		// A newer request started while this one was in flight.
		l.mu.Unlock()
		l.logger.Debug("discarding stale product fetch", slog.String("category", category))
		return
	}

	l.state.Loading = false
	if err != nil {
		l.state.Err = domain.ErrorMessage(err)
		l.logger.Warn("product fetch failed", slog.String("category", category), slog.Any("error", err))
	} else {
		l.state.Products = products
	}
	state = l.state
	l.mu.Unlock()
	l.notify(state)
}

// Refetch reloads the current category. This is the manual retry for
// fetch failures.
func (l *Loader) Refetch(ctx context.Context) {
	l.mu.Lock()
	category := l.category
	l.mu.Unlock()
	l.Load(ctx, category)
}

// State returns a snapshot of the current view-state.
func (l *Loader) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Subscribe registers a state callback and returns an unsubscribe
// function.
func (l *Loader) Subscribe(fn func(State)) func() {
	l.mu.Lock()
	defer l.mu.Unlock()

	id := l.nextSub
	l.nextSub++
	l.subs[id] = fn

	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		delete(l.subs, id)
	}
}

func (l *Loader) notify(state State) {
	l.mu.Lock()
	fns := make([]func(State), 0, len(l.subs))
	for _, fn := range l.subs {
		fns = append(fns, fn)
	}
	l.mu.Unlock()

	for _, fn := range fns {
		fn(state)
	}
}
