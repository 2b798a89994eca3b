package fetch

import (
	"context"
	"fmt"
	"sync"
)

// Memory serves resources from an in-memory map and records every
// request made against it. Used in tests to stand in for the real
// supplier.
type Memory struct {
	mutex     sync.Mutex
	resources map[string][]byte
	requests  []string
}

func NewMemory(resources map[string][]byte) *Memory {
	if resources == nil {
		resources = map[string][]byte{}
	}
	return &Memory{resources: resources}
}

func (m *Memory) Fetch(ctx context.Context, name string) ([]byte, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.requests = append(m.requests, name)

	body, found := m.resources[name]
	if !found {
		return nil, fmt.Errorf("fetching %s: status 404 Not Found", name)
	}
	return body, nil
}

// Requests returns the names requested so far, in order.
func (m *Memory) Requests() []string {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	reqs := make([]string, len(m.requests))
	copy(reqs, m.requests)
	return reqs
}

// RequestCount returns how many times the named resource has been
// requested.
func (m *Memory) RequestCount(name string) int {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	n := 0
	for _, r := range m.requests {
		if r == name {
			n++
		}
	}
	return n
}
