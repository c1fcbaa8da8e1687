package database

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/jeongjingoo/tech/config"
)

func TestConnectMissingURI(t *testing.T) {
	_, err := Connect(context.Background(), "", "schools")
	assert.ErrorIs(t, err, config.ErrMissingMongoURI)

	_, err = NewConnector("").Client(context.Background())
	assert.ErrorIs(t, err, config.ErrMissingMongoURI)
}

func TestConnectorDialsOnce(t *testing.T) {
	var dials int32
	conn := NewConnector("mongodb://127.0.0.1:27017")
	conn.dial = func(ctx context.Context, uri string) (*mongo.Client, error) {
		atomic.AddInt32(&dials, 1)
		// connect is lazy in the v2 driver, no server is contacted here
		return mongo.Connect(options.Client().ApplyURI(uri))
	}

	var wg sync.WaitGroup
	clients := make([]*mongo.Client, 16)
	for i := range clients {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c, err := conn.Client(context.Background())
			assert.NoError(t, err)
			clients[i] = c
		}(i)
	}
	wg.Wait()

	assert.EqualValues(t, 1, atomic.LoadInt32(&dials))
	for _, c := range clients {
		require.NotNil(t, c)
		assert.Same(t, clients[0], c)
	}

	db, err := conn.Database(context.Background(), "schools")
	require.NoError(t, err)
	assert.Equal(t, "schools", db.Name())
	_ = conn.Disconnect(context.Background())
}

func TestConnectorRemembersFailure(t *testing.T) {
	var dials int32
	boom := errors.New("boom")
	conn := NewConnector("mongodb://127.0.0.1:27017")
	conn.dial = func(ctx context.Context, uri string) (*mongo.Client, error) {
		atomic.AddInt32(&dials, 1)
		return nil, boom
	}

	_, err := conn.Client(context.Background())
	assert.ErrorIs(t, err, boom)
	_, err = conn.Client(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.EqualValues(t, 1, dials)
}

func TestConnectorDisconnectBeforeDial(t *testing.T) {
	conn := NewConnector("mongodb://127.0.0.1:27017")
	conn.dial = func(ctx context.Context, uri string) (*mongo.Client, error) {
		t.Fatal("Disconnect must not dial")
		return nil, nil
	}
	assert.NoError(t, conn.Disconnect(context.Background()))
}

func TestConnectorConcurrentDisconnect(t *testing.T) {
	conn := NewConnector("mongodb://127.0.0.1:27017")
	conn.dial = func(ctx context.Context, uri string) (*mongo.Client, error) {
		return mongo.Connect(options.Client().ApplyURI(uri))
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := conn.Client(context.Background())
			if err != nil {
				assert.ErrorIs(t, err, ErrDisconnected)
			}
		}()
		go func() {
			defer wg.Done()
			assert.NoError(t, conn.Disconnect(context.Background()))
		}()
	}
	wg.Wait()

	require.NoError(t, conn.Disconnect(context.Background()))
	_, err := conn.Client(context.Background())
	assert.ErrorIs(t, err, ErrDisconnected)
}
