package testtypes

import (
	"fmt"
	"sync/atomic"
)

// Greeter returns a greeting for a name.
type Greeter interface {
	Greet(name string) string
}

// NewGreeter returns the default Greeter implementation.
func NewGreeter() Greeter {
	return &greeter{}
}

type greeter struct{}

func (*greeter) Greet(name string) string {
	return "hello " + name
}

var idCounter atomic.Int64

// RequestID carries a per-request identifier. Each call to [NewRequestID]
// returns a fresh value, so two scopes resolving it with a scoped lifetime
// observe different identifiers.
type RequestID struct {
	Value string
}

// NewRequestID returns a RequestID with a process-unique value.
func NewRequestID() *RequestID {
	return &RequestID{
		Value: fmt.Sprintf("req-%d", idCounter.Add(1)),
	}
}

// CloseCounter counts how many times it has been closed. Register it with a
// scoped lifetime and resolve it during a request to observe the scope being
// closed.
type CloseCounter struct {
	closed atomic.Int32
}

// NewCloseCounter returns a new CloseCounter.
func NewCloseCounter() *CloseCounter {
	return &CloseCounter{}
}

func (c *CloseCounter) Close() {
	c.closed.Add(1)
}

// Closed returns the number of times Close has been called.
func (c *CloseCounter) Closed() int {
	return int(c.closed.Load())
}

// Resource has no Close method of its own. Tests release it through a custom
// close function attached at registration.
type Resource struct {
	released atomic.Bool
}

// NewResource returns a new Resource.
func NewResource() *Resource {
	return &Resource{}
}

// Release marks the resource as released.
func (r *Resource) Release() {
	r.released.Store(true)
}

// Released reports whether Release has been called.
func (r *Resource) Released() bool {
	return r.released.Load()
}

// FailingCloser always fails to close.
type FailingCloser struct{}

// NewFailingCloser returns a new FailingCloser.
func NewFailingCloser() *FailingCloser {
	return &FailingCloser{}
}

func (*FailingCloser) Close() error {
	return fmt.Errorf("close failed")
}
