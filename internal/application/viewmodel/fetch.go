// Package viewmodel holds the dashboard view state: metric fetchers, the
// landing fade, chart selection, the detail modal, the sidebar and the router.
// It has no knowledge of how the state is drawn.
package viewmodel

import (
	"context"
	"sync"
)

// Status is the lifecycle phase of a metric fetch.
type Status int

const (
	StatusLoading Status = iota
	StatusLoaded
	StatusErrored
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusLoaded:
		return "loaded"
	case StatusErrored:
		return "errored"
	default:
		return "unknown"
	}
}

// State is the value exposed by a Fetcher: Loading, Loaded(Data) or Errored(Err).
type State[T any] struct {
	Status Status
	Data   T
	Err    error
}

// Loaded reports whether Data holds a successful response.
func (s State[T]) Loaded() bool { return s.Status == StatusLoaded }

// LoadFunc issues one read against the backend.
type LoadFunc[T any] func(ctx context.Context) (T, error)

// Fetcher owns one piece of dashboard state and fills it from a single read per mount.
// There is no retry, caching or de-duplication: each Mount issues its own request and
// the last response to resolve on a live mount replaces the state wholesale.
type Fetcher[T any] struct {
	name string
	load LoadFunc[T]

	mu       sync.Mutex
	state    State[T]
	onChange func(name string)

	wg sync.WaitGroup
}

// NewFetcher cria um fetcher no estado Loading.
func NewFetcher[T any](name string, load LoadFunc[T]) *Fetcher[T] {
	return &Fetcher[T]{
		name:  name,
		load:  load,
		state: State[T]{Status: StatusLoading},
	}
}

// Name returns the widget name the fetcher feeds.
func (f *Fetcher[T]) Name() string { return f.name }

// OnChange registers a callback invoked after every state transition.
func (f *Fetcher[T]) OnChange(fn func(name string)) {
	f.mu.Lock()
	f.onChange = fn
	f.mu.Unlock()
}

// State returns a copy of the current state.
func (f *Fetcher[T]) State() State[T] {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Mount is one activation of a fetcher. Completions arriving after Unmount are discarded.
type Mount struct {
	// lock é o mutex do fetcher dono; alive só muda sob ele.
	lock   sync.Locker
	alive  bool
	cancel context.CancelFunc
}

// Unmount cancels the in-flight request and makes any late completion a no-op.
// Calling it more than once is safe.
func (m *Mount) Unmount() {
	m.lock.Lock()
	m.alive = false
	m.lock.Unlock()
	m.cancel()
}

// isAlive informa se a montagem ainda pode gravar estado.
func (m *Mount) isAlive() bool {
	m.lock.Lock()
	defer m.lock.Unlock()
	return m.alive
}

// Mount inicia uma leitura e coloca o estado em Loading.
func (f *Fetcher[T]) Mount(ctx context.Context) *Mount {
	mctx, cancel := context.WithCancel(ctx)
	m := &Mount{lock: &f.mu, alive: true, cancel: cancel}

	f.set(m, State[T]{Status: StatusLoading})

	f.wg.Add(1)
	go func() {
		defer f.wg.Done()
		defer cancel()
		data, err := f.load(mctx)
		if err != nil {
			f.set(m, State[T]{Status: StatusErrored, Err: err})
			return
		}
		f.set(m, State[T]{Status: StatusLoaded, Data: data})
	}()

	return m
}

// Wait blocks until every request issued by this fetcher has resolved.
func (f *Fetcher[T]) Wait() {
	f.wg.Wait()
}

// set grava o estado somente se a montagem ainda estiver viva.
func (f *Fetcher[T]) set(m *Mount, next State[T]) {
	f.mu.Lock()
	if !m.alive {
		f.mu.Unlock()
		return
	}
	f.state = next
	notify := f.onChange
	f.mu.Unlock()

	if notify != nil {
		notify(f.name)
	}
}
