// Package dgraph implements the graph store client on top of the
// official Dgraph gRPC API.
package dgraph

import (
	"context"
	"sync"

	"github.com/dgraph-io/dgo/v240"
	"github.com/dgraph-io/dgo/v240/protos/api"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	apperrors "granefapi/pkg/errors"
)

// Client is the process-wide graph store connection. It is explicitly
// constructed and injected; Connect may be called again at any time to
// replace a broken connection.
type Client struct {
	mu             sync.RWMutex
	conn           *grpc.ClientConn
	dgraph         *dgo.Dgraph
	maxMessageSize int
	logger         *zap.Logger
}

// NewClient creates an unconnected client
func NewClient(maxMessageSize int, logger *zap.Logger) *Client {
	return &Client{
		maxMessageSize: maxMessageSize,
		logger:         logger,
	}
}

// Connect establishes the connection to the graph store, closing any
// previous one first.
func (c *Client) Connect(ctx context.Context, address string) error {
	conn, err := grpc.NewClient(address,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(
			grpc.MaxCallRecvMsgSize(c.maxMessageSize),
			grpc.MaxCallSendMsgSize(c.maxMessageSize),
		),
	)
	if err != nil {
		return apperrors.NewStoreUnavailableError().WithCause(err)
	}

	c.mu.Lock()
	previous := c.conn
	c.conn = conn
	c.dgraph = dgo.NewDgraphClient(api.NewDgraphClient(conn))
	c.mu.Unlock()

	if previous != nil {
		if err := previous.Close(); err != nil {
			c.logger.Warn("Failed to close previous store connection", zap.Error(err))
		}
	}

	c.logger.Info("Connected to graph store", zap.String("address", address))
	return nil
}

// Close releases the connection
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil {
		return nil
	}
	err := c.conn.Close()
	c.conn = nil
	c.dgraph = nil
	return err
}

// Query executes finished query text in a read-only transaction. The
// transaction is discarded on every exit path.
func (c *Client) Query(ctx context.Context, query string, vars map[string]string) ([]byte, error) {
	c.mu.RLock()
	dg := c.dgraph
	c.mu.RUnlock()

	if dg == nil {
		return nil, apperrors.NewStoreUnavailableError()
	}

	txn := dg.NewReadOnlyTxn()
	defer func() {
		if err := txn.Discard(ctx); err != nil {
			c.logger.Warn("Failed to discard read-only transaction", zap.Error(err))
		}
	}()

	resp, err := txn.QueryWithVars(ctx, query, vars)
	if err != nil {
		return nil, apperrors.NewQueryFailedError(err)
	}

	return resp.GetJson(), nil
}
