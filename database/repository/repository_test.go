package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"rmadmin/config"
	memoryRepo "rmadmin/database/repository/memory"
)

func TestOpen_Memory(t *testing.T) {
	store, closeFn, err := Open(context.Background(), &config.Config{Datastore: config.DatastoreMemory}, zap.NewNop())
	require.NoError(t, err)
	defer closeFn()

	assert.IsType(t, &memoryRepo.Store{}, store)
}

func TestOpen_Unknown(t *testing.T) {
	_, _, err := Open(context.Background(), &config.Config{Datastore: "sqlite"}, zap.NewNop())
	assert.Error(t, err)
}
