// Package kvstore is the string key/value storage used for state that must
// survive a restart: the order blob and the admin session flag.
package kvstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	pkgdb "github.com/mdshopp/storefront/pkg/db"
)

var ErrConflict = errors.New("kvstore: concurrent update conflict")

// UpdateFunc receives the current value (found=false when absent) and
// returns the value to store.
type UpdateFunc func(current string, found bool) (string, error)

type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	// Update runs fn and writes its result as one critical section.
	// An error from fn aborts the write and is returned unchanged.
	Update(ctx context.Context, key string, fn UpdateFunc) error
	Close() error
}

// Open picks a backend from the url scheme: memory://, sqlite://,
// postgres://, redis://.
func Open(ctx context.Context, url string) (Store, error) {
	switch {
	case url == "" || strings.HasPrefix(url, "memory://"):
		return NewMemory(), nil
	case strings.HasPrefix(url, "redis://"), strings.HasPrefix(url, "rediss://"):
		return NewRedisStore(ctx, url)
	case strings.HasPrefix(url, "sqlite://"), strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		db, err := pkgdb.Open(ctx, url)
		if err != nil {
			return nil, err
		}
		return NewGormStore(ctx, db)
	default:
		return nil, fmt.Errorf("kvstore: unsupported storage url %q", url)
	}
}
