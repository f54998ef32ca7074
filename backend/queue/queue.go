package queue

import (
	"sync"

	eapache "gopkg.in/eapache/queue.v1"
)

// ConcurrentQueue is an unbounded thread-safe FIFO. Push never blocks and
// never fails; TryPop returns immediately whether or not an item is
// available. IsEmpty and Size are advisory only since another goroutine may
// change the queue the moment they return.
type ConcurrentQueue[T any] struct {
	items *eapache.Queue
	mux   sync.Mutex
}

func NewConcurrentQueue[T any]() *ConcurrentQueue[T] {
	return &ConcurrentQueue[T]{
		items: eapache.New(),
	}
}

func (s *ConcurrentQueue[T]) Push(item T) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.items.Add(item)
}

func (s *ConcurrentQueue[T]) TryPop() (T, bool) {
	s.mux.Lock()
	defer s.mux.Unlock()
	var empty T
	if s.items.Length() == 0 {
		return empty, false
	}
	return s.items.Remove().(T), true
}

func (s *ConcurrentQueue[T]) IsEmpty() bool {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.items.Length() == 0
}

func (s *ConcurrentQueue[T]) Size() int {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.items.Length()
}
