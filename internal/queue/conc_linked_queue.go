package queue

import "sync/atomic"

type concNode[T any] struct {
	v  T
	nx atomic.Pointer[concNode[T]]
}

// ConcLinkedQueue is a lock-free MPMC FIFO. The parallel exact search
// (internal/search) uses one instance per call to hand feature indices
// out to worker goroutines: every worker Pops until the queue is empty,
// so no feature is scheduled to two workers and no central mutex is
// needed on the hot path.
type ConcLinkedQueue[T any] struct {
	headPtr, tail atomic.Pointer[concNode[T]]
}

// NewConcLinkedQueue returns an empty, ready-to-use ConcLinkedQueue.
func NewConcLinkedQueue[T any]() *ConcLinkedQueue[T] {
	c := &ConcLinkedQueue[T]{}
	sentinel := new(concNode[T])
	c.headPtr.Store(sentinel)
	c.tail.Store(sentinel)
	return c
}

func (c *ConcLinkedQueue[T]) Push(item T) {
	newNode := &concNode[T]{v: item}
	var oldTail *concNode[T]
	for added := false; !added; {
		oldTail = c.tail.Load()
		oldTailNext := oldTail.nx.Load()
		if oldTailNext != nil {
			c.tail.CompareAndSwap(oldTail, oldTailNext)
		} else {
			added = oldTail.nx.CompareAndSwap(oldTailNext, newNode)
		}
	}
	c.tail.CompareAndSwap(oldTail, newNode)
}

func (c *ConcLinkedQueue[T]) Pop() (T, error) {
	var oldHead *concNode[T]
	for removed := false; !removed; {
		oldHeadPtr, oldTail := c.headPtr.Load(), c.tail.Load()
		oldHead = oldHeadPtr.nx.Load()
		if oldTail == oldHeadPtr {
			if oldHead == nil {
				return *new(T), &EmptyQueueError{}
			}
			c.tail.CompareAndSwap(oldTail, oldHead)
		} else {
			removed = c.headPtr.CompareAndSwap(oldHeadPtr, oldHead)
		}
	}
	return oldHead.v, nil
}

func (c *ConcLinkedQueue[T]) Peek() T {
	if n := c.headPtr.Load().nx.Load(); n != nil {
		return n.v
	}
	return *new(T)
}

func (c *ConcLinkedQueue[T]) Empty() bool {
	return c.headPtr.Load().nx.Load() == nil
}
