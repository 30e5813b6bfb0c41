package router

import (
	"sync"
	"time"
)

// Stats tracks attempt outcomes for a single provider in a chain.
type Stats struct {
	mu sync.RWMutex

	totalRequests int64
	totalFailures int64

	lastFailure time.Time
	lastError   error
}

func NewStats() *Stats {
	return &Stats{}
}

func (s *Stats) RecordSuccess() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.totalRequests++
}

func (s *Stats) RecordFailure(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.totalRequests++
	s.totalFailures++

	s.lastFailure = time.Now()
	s.lastError = err
}

func (s *Stats) Metrics() (totalRequests, totalFailures int64) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.totalRequests, s.totalFailures
}

func (s *Stats) LastFailure() (time.Time, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.lastFailure, s.lastError
}
