package database

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/jeongjingoo/tech/config"
)

// ErrDisconnected is returned by Client after Disconnect.
var ErrDisconnected = errors.New("mongo client disconnected")

// DialFunc opens a client for uri. It is swapped out in tests.
type DialFunc func(ctx context.Context, uri string) (*mongo.Client, error)

// Connector memoizes a single mongo client. The first successful or failed
// attempt is final; later callers get the same client or the same error.
type Connector struct {
	uri  string
	dial DialFunc

	once   sync.Once
	mu     sync.Mutex // guards client and err
	client *mongo.Client
	err    error
}

func NewConnector(uri string) *Connector {
	return &Connector{uri: uri, dial: dialMongo}
}

func dialMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(err, "mongo connect")
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, errors.Wrap(err, "mongo ping")
	}
	return client, nil
}

// Client returns the memoized client, dialing on first use.
func (c *Connector) Client(ctx context.Context) (*mongo.Client, error) {
	if c.uri == "" {
		return nil, config.ErrMissingMongoURI
	}
	c.once.Do(func() {
		client, err := c.dial(ctx, c.uri)
		c.mu.Lock()
		c.client, c.err = client, err
		c.mu.Unlock()
	})
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.client == nil && c.err == nil {
		return nil, ErrDisconnected
	}
	return c.client, c.err
}

// Database returns a handle to the named logical database.
func (c *Connector) Database(ctx context.Context, name string) (*mongo.Database, error) {
	client, err := c.Client(ctx)
	if err != nil {
		return nil, err
	}
	return client.Database(name), nil
}

// Disconnect closes the client if one was dialed. Later Client calls
// return ErrDisconnected.
func (c *Connector) Disconnect(ctx context.Context) error {
	c.mu.Lock()
	client := c.client
	c.client = nil
	c.mu.Unlock()
	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}

var (
	sharedMu sync.Mutex
	shared   *Connector
)

// Connect returns the process-wide database handle, creating the shared
// connector on first call.
func Connect(ctx context.Context, uri, dbName string) (*mongo.Database, error) {
	if uri == "" {
		return nil, config.ErrMissingMongoURI
	}
	sharedMu.Lock()
	if shared == nil {
		shared = NewConnector(uri)
	}
	conn := shared
	sharedMu.Unlock()

	return conn.Database(ctx, dbName)
}

// Disconnect closes the process-wide client, if any.
func Disconnect(ctx context.Context) error {
	sharedMu.Lock()
	defer sharedMu.Unlock()
	if shared == nil {
		return nil
	}
	return shared.Disconnect(ctx)
}
