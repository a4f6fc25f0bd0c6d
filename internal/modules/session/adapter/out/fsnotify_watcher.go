package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"rovi/internal/modules/session/domain"
	sessionout "rovi/internal/modules/session/port/out"
)

// SlotWatcher turns filesystem events on the data dir into slot names, which
// is how one process learns about writes made by another. Temp files from
// the atomic-write dance are filtered out; only the rename of the final slot
// file surfaces.
type SlotWatcher struct {
	dir     string
	watcher *fsnotify.Watcher
}

func NewSlotWatcher(dataDir string) sessionout.ChangeWatcher {
	return &SlotWatcher{dir: dataDir}
}

func (w *SlotWatcher) Watch(ctx context.Context) (<-chan string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fw.Add(w.dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", w.dir, err)
	}
	w.watcher = fw

	out := make(chan string, 8)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-fw.Events:
				if !ok {
					return
				}
				slot, tracked := slotFor(event.Name)
				if !tracked || !event.Op.Has(fsnotify.Create|fsnotify.Write|fsnotify.Rename|fsnotify.Remove) {
					continue
				}
				select {
				case out <- slot:
				default:
					// Subscriber is behind; it re-reads on the next
					// notification anyway.
				}
			case _, ok := <-fw.Errors:
				if !ok {
					return
				}
			}
		}
	}()
	return out, nil
}

func (w *SlotWatcher) Close() error {
	if w.watcher == nil {
		return nil
	}
	return w.watcher.Close()
}

func slotFor(path string) (string, bool) {
	name := filepath.Base(path)
	if !strings.HasSuffix(name, ".json") {
		return "", false
	}
	slot := strings.TrimSuffix(name, ".json")
	if slot != domain.SlotSession && slot != domain.SlotOverrides {
		return "", false
	}
	return slot, true
}
