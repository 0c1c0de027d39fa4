package cache

import (
	"context"
	"time"

	"github.com/allegro/bigcache/v3"
	"go.uber.org/zap"

	"github.com/wippyai/xrm"
	"github.com/wippyai/xrm/database"
	"github.com/wippyai/xrm/errors"
)

// value encoding inside the cache: 1-byte marker, then the value text
const (
	missMarker byte = 0
	hitMarker  byte = 1
)

// Config tunes the result cache. The zero value picks working defaults.
type Config struct {
	LifeWindow   time.Duration // entry lifetime, default 5 minutes
	CleanWindow  time.Duration // sweep interval for expired entries
	Shards       int           // shard count, must be a power of two
	MaxEntrySize int           // expected entry size in bytes
	Logger       *zap.Logger   // diagnostics, nil for none
	Resolver     *xrm.Resolver // query pipeline, nil for the default
}

// Resolver answers queries against a fixed database through an in-memory
// result cache. Both hits and definitive misses are cached.
type Resolver struct {
	db       *database.Database
	resolver *xrm.Resolver
	cache    *bigcache.BigCache
	log      *zap.Logger
}

// NewResolver builds a caching resolver for db
func NewResolver(db *database.Database, cfg Config) (*Resolver, error) {
	life := cfg.LifeWindow
	if life <= 0 {
		life = 5 * time.Minute
	}

	bcfg := bigcache.DefaultConfig(life)
	bcfg.Verbose = false
	if cfg.CleanWindow > 0 {
		bcfg.CleanWindow = cfg.CleanWindow
	}
	if cfg.Shards > 0 {
		bcfg.Shards = cfg.Shards
	}
	if cfg.MaxEntrySize > 0 {
		bcfg.MaxEntrySize = cfg.MaxEntrySize
	}
	if cfg.Logger != nil {
		bcfg.Logger = zap.NewStdLog(cfg.Logger)
		bcfg.Verbose = true
	}

	bc, err := bigcache.New(context.Background(), bcfg)
	if err != nil {
		return nil, errors.AllocationFailed("create result cache", err)
	}

	inner := cfg.Resolver
	if inner == nil {
		inner = xrm.NewResolver()
	}

	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &Resolver{
		db:       db,
		resolver: inner,
		cache:    bc,
		log:      log,
	}, nil
}

// query names cannot contain NUL, so it separates name and class safely
func key(name, class string) string {
	return name + "\x00" + class
}

// Resolve answers a query, consulting the cache first. Every call returns
// a fresh Resource, so closing one result does not disturb later ones.
// Errors other than a definitive miss are never cached.
func (r *Resolver) Resolve(name, class string) (*xrm.Resource, error) {
	k := key(name, class)

	if data, err := r.cache.Get(k); err == nil && len(data) > 0 {
		if data[0] == missMarker {
			return nil, errors.NoMatch(name)
		}
		return xrm.NewResource(string(data[1:])), nil
	}

	res, err := r.resolver.Resolve(r.db, name, class)
	if err != nil {
		if errors.IsKind(err, errors.KindNoMatch) {
			if serr := r.cache.Set(k, []byte{missMarker}); serr != nil {
				r.log.Debug("failed to cache miss",
					zap.String("name", name),
					zap.Error(serr))
			}
		}
		return nil, err
	}

	value := res.Value()
	buf := make([]byte, 1+len(value))
	buf[0] = hitMarker
	copy(buf[1:], value)
	if serr := r.cache.Set(k, buf); serr != nil {
		r.log.Debug("failed to cache result",
			zap.String("name", name),
			zap.Error(serr))
	}

	return res, nil
}

// Len returns the number of cached entries, counting misses
func (r *Resolver) Len() int {
	return r.cache.Len()
}

// Flush drops every cached entry
func (r *Resolver) Flush() error {
	return r.cache.Reset()
}

// Close releases the cache. The resolver must not be used afterwards.
func (r *Resolver) Close() error {
	return r.cache.Close()
}
