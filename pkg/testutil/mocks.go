package testutil

import (
	"github.com/arthur-debert/markbind/pkg/dom"
)

// MockDocument is a mock implementation of dom.Document for testing.
type MockDocument struct {
	QueryFunc func(selector string) (dom.Element, error)

	// Selectors records every selector passed to Query.
	Selectors []string
}

// Query records selector and runs the mock's query function. Without one
// no root is ever found.
func (m *MockDocument) Query(selector string) (dom.Element, error) {
	m.Selectors = append(m.Selectors, selector)
	if m.QueryFunc != nil {
		return m.QueryFunc(selector)
	}
	return nil, nil
}
