// Package concurrency implements a channel based pool of reusable resources,
// such as per-worker scratch arenas, for concurrent operations.
package concurrency

import (
	"sync"
)

// Pool stores a channel of interchangeable resources (e.g. disjoint
// partitions of a scratch arena) and a channel of errors.
// A resource is held by exactly one running [Task] at a time.
type Pool[T any] struct {
	sync.WaitGroup
	Resources chan T
	Errors    chan error
}

// NewPool instantiates a new [Pool] holding the given resources.
func NewPool[T any](resources []T) *Pool[T] {
	ch := make(chan T, len(resources))
	for i := range resources {
		ch <- resources[i]
	}
	return &Pool[T]{
		Resources: ch,
		Errors:    make(chan error, len(resources)),
	}
}

// Task is a function using a resource of the pool.
type Task[T any] func(resource T) (err error)

// Run runs a [Task] in a new goroutine once a resource is available.
// If an error was already reported, the task is skipped.
func (p *Pool[T]) Run(f Task[T]) {
	p.Add(1)
	go func() {
		defer p.Done()
		if len(p.Errors) != 0 {
			return
		}
		resource := <-p.Resources
		if err := f(resource); err != nil {
			select {
			case p.Errors <- err:
			default:
			}
		}
		p.Resources <- resource
	}()
}

// Wait waits until all tasks have finished and returns
// the first encountered error, if any.
func (p *Pool[T]) Wait() (err error) {
	p.WaitGroup.Wait()
	select {
	case err = <-p.Errors:
	default:
	}
	return
}

// ForEach runs f(i, resource) for i in [0, n) over the resources of the pool
// and waits for completion.
func (p *Pool[T]) ForEach(n int, f func(i int, resource T) error) error {
	for i := 0; i < n; i++ {
		p.Run(func(r T) error { return f(i, r) })
	}
	return p.Wait()
}
