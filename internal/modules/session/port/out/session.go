package out

import (
	"context"

	"rovi/internal/modules/session/domain"
)

// SessionStore persists the baseline session bundle. Load reports ok=false
// when no session has been written yet.
type SessionStore interface {
	Load(ctx context.Context) (domain.Data, bool, error)
	Save(ctx context.Context, data domain.Data) error
	Clear(ctx context.Context) error
}

// OverrideStore persists the sparse override maps alongside the session.
type OverrideStore interface {
	Load(ctx context.Context) (domain.Overrides, bool, error)
	Save(ctx context.Context, overrides domain.Overrides) error
	Clear(ctx context.Context) error
}

// ChangeWatcher reports slot names whose backing file changed on disk,
// including writes made by other processes. The channel closes when the
// context is cancelled or the watcher is closed.
type ChangeWatcher interface {
	Watch(ctx context.Context) (<-chan string, error)
	Close() error
}
