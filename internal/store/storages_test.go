package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-auth-service/internal/config"
	"github.com/MKhiriev/go-auth-service/internal/logger"
)

func TestNewStorages_Memory(t *testing.T) {
	for _, dsn := range []string{"", "memory"} {
		t.Run("dsn="+dsn, func(t *testing.T) {
			storages, err := NewStorages(context.Background(), config.Storage{DB: config.DB{DSN: dsn}}, logger.Nop())
			require.NoError(t, err)
			require.NotNil(t, storages.UserRepository)
			assert.NoError(t, storages.Close())
		})
	}
}

func TestNewStorages_UnsupportedDSN(t *testing.T) {
	_, err := NewStorages(context.Background(), config.Storage{DB: config.DB{DSN: "mysql://localhost"}}, logger.Nop())
	require.ErrorIs(t, err, ErrUnsupportedDSN)
}
