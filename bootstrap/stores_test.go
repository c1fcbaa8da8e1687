package bootstrap

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeongjingoo/tech/config"
)

func TestOpenStoresMemory(t *testing.T) {
	log, hook := test.NewNullLogger()

	stores, closeFn, err := OpenStores(context.Background(), config.Config{DBDriver: config.DriverMemory}, log)
	require.NoError(t, err)
	defer closeFn()

	assert.NotNil(t, stores.Schools)
	assert.NotNil(t, stores.Technicians)
	assert.NotNil(t, stores.Events)
	require.NotNil(t, hook.LastEntry())
	assert.Contains(t, hook.LastEntry().Message, "in-memory")
}

func TestOpenStoresMissingURI(t *testing.T) {
	log, _ := test.NewNullLogger()

	_, closeFn, err := OpenStores(context.Background(), config.Config{DBDriver: config.DriverMongo}, log)
	defer closeFn()
	assert.ErrorIs(t, err, config.ErrMissingMongoURI)
}
