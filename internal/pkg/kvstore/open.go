package kvstore

import (
	"context"
	"fmt"
)

// Driver names accepted by Open.
const (
	DriverMemory   = "memory"
	DriverFile     = "file"
	DriverRedis    = "redis"
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverSpanner  = "spanner"
)

// Options selects and configures a backend.
type Options struct {
	Driver          string
	FilePath        string
	RedisAddr       string
	MongoURI        string
	MongoDatabase   string
	MongoCollection string
	PostgresDSN     string
	SpannerDatabase string
}

// Open builds the backend named by opts.Driver.
func Open(ctx context.Context, opts Options) (Backend, error) {
	var (
		b   Backend
		err error
	)
	switch opts.Driver {
	case "", DriverMemory:
		return NewMemoryBackend(), nil
	case DriverFile:
		b, err = NewFileBackend(opts.FilePath)
	case DriverRedis:
		b, err = DialRedis(ctx, opts.RedisAddr)
	case DriverMongo:
		b, err = DialMongo(ctx, opts.MongoURI, opts.MongoDatabase, opts.MongoCollection)
	case DriverPostgres:
		b, err = OpenPostgres(ctx, opts.PostgresDSN)
	case DriverSpanner:
		b, err = DialSpanner(ctx, opts.SpannerDatabase)
	default:
		return nil, fmt.Errorf("kvstore: unknown driver %q", opts.Driver)
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}
