package goja

import (
	"sync"
)

// singleton guards a lazily constructed adapter. Bootstrap runs at most
// once even under concurrent first access; a recorded failure is permanent
// and every later call observes the same error without retrying.
type singleton struct {
	once    sync.Once
	adapter *Adapter
	err     error
}

func (s *singleton) get(opts ...FunctionalOption) (*Adapter, error) {
	s.once.Do(func() {
		s.adapter, s.err = New(opts...)
	})
	return s.adapter, s.err
}

var processAdapter singleton

// Default returns the process-wide adapter, bootstrapping the embedded
// compiler on first call. All callers share one execution scope; see
// Adapter.Parse for the concurrency discipline. If bootstrap fails, the
// failure is permanent for the process lifetime.
func Default() (*Adapter, error) {
	return processAdapter.get()
}
