package mocks

import (
	"server-launcher/core/server"

	"github.com/stretchr/testify/mock"
)

// Store is a mock implementation of storage.Store
type Store struct {
	mock.Mock
}

func (m *Store) Load() (*server.Configuration, error) {
	args := m.Called()
	if cfg, ok := args.Get(0).(*server.Configuration); ok {
		return cfg, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) Save(cfg *server.Configuration) error {
	args := m.Called(cfg)
	return args.Error(0)
}

func (m *Store) Path() string {
	args := m.Called()
	return args.String(0)
}
