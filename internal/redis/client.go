// Package redis wraps the go-redis client so repositories depend on a small
// interface that tests can back with miniredis.
package redis

import (
	"context"
	"crypto/tls"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-alignment/internal/errors"
)

// Client is the go-redis surface the repositories depend on. Single-node
// and cluster clients satisfy it, as does a client pointed at miniredis.
type Client interface {
	redis.UniversalClient
}

// Options configures the connection. One endpoint dials a single node, more
// than one dials a cluster.
type Options struct {
	Endpoints       []string
	PoolSize        int
	MinIdleConns    int
	ConnMaxIdleTime time.Duration
	MaxRetries      int
	UseTLS          bool
}

// Validate checks that at least one endpoint is set
func (o *Options) Validate() error {
	if o == nil {
		return errors.InvalidArgument("redis options are required")
	}
	vb := errors.NewValidationBuilder()
	if len(o.Endpoints) == 0 {
		vb.RequiredField("Endpoints")
	}
	for _, e := range o.Endpoints {
		errors.ValidateRequired("Endpoints", e, vb)
	}
	return vb.Build()
}

// NewClient builds a client without touching the network
func NewClient(opts *Options) (Client, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	universal := &redis.UniversalOptions{
		Addrs:           opts.Endpoints,
		PoolSize:        opts.PoolSize,
		MinIdleConns:    opts.MinIdleConns,
		ConnMaxIdleTime: opts.ConnMaxIdleTime,
		MaxRetries:      opts.MaxRetries,
	}
	if opts.UseTLS {
		universal.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	return redis.NewUniversalClient(universal), nil
}

// Connect builds a client and pings it, closing the client if the ping fails
func Connect(ctx context.Context, opts *Options) (Client, error) {
	client, err := NewClient(opts)
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to reach redis")
	}

	return client, nil
}
