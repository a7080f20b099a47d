package mocks

import (
	"context"

	"server-launcher/core/launcher"

	"github.com/stretchr/testify/mock"
)

// Spawner is a mock implementation of launcher.Spawner
type Spawner struct {
	mock.Mock
}

func (m *Spawner) Spawn(ctx context.Context, cmd launcher.Command) (int, error) {
	args := m.Called(ctx, cmd)
	return args.Int(0), args.Error(1)
}
