package store

import (
	"fjacquet/nexus-classifier/internal/models"
)

// MockKeywordStore is a mock implementation of KeywordStore for testing.
type MockKeywordStore struct {
	Overrides map[models.Category][]string
	LoadError error
	Calls     int
}

// LoadKeywordOverrides returns the configured overrides or error.
func (m *MockKeywordStore) LoadKeywordOverrides() (map[models.Category][]string, error) {
	m.Calls++
	if m.LoadError != nil {
		return nil, m.LoadError
	}
	result := make(map[models.Category][]string, len(m.Overrides))
	for k, v := range m.Overrides {
		result[k] = append([]string(nil), v...)
	}
	return result, nil
}
