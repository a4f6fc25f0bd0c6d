package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"rovi/internal/modules/session/domain"
	sessionout "rovi/internal/modules/session/port/out"
)

// slotFile is one named JSON document in the data dir. Writes go through a
// temp file and rename so a concurrent reader never sees a half-written slot.
type slotFile struct {
	dir  string
	slot string
}

func (f slotFile) path() string {
	return filepath.Join(f.dir, f.slot+".json")
}

func (f slotFile) read(v any) (bool, error) {
	payload, err := os.ReadFile(f.path())
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read slot %s: %w", f.slot, err)
	}
	if err := json.Unmarshal(payload, v); err != nil {
		return false, fmt.Errorf("decode slot %s: %w", f.slot, err)
	}
	return true, nil
}

func (f slotFile) write(v any) error {
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	payload, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal slot %s: %w", f.slot, err)
	}
	tmp := f.path() + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o644); err != nil {
		return fmt.Errorf("write slot %s: %w", f.slot, err)
	}
	if err := os.Rename(tmp, f.path()); err != nil {
		return fmt.Errorf("commit slot %s: %w", f.slot, err)
	}
	return nil
}

func (f slotFile) remove() error {
	if err := os.Remove(f.path()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove slot %s: %w", f.slot, err)
	}
	return nil
}

type FileSessionStore struct {
	file slotFile
}

func NewFileSessionStore(dataDir string) sessionout.SessionStore {
	return &FileSessionStore{file: slotFile{dir: dataDir, slot: domain.SlotSession}}
}

func (s *FileSessionStore) Load(_ context.Context) (domain.Data, bool, error) {
	data := domain.Data{}
	ok, err := s.file.read(&data)
	if err != nil {
		return domain.Data{}, false, err
	}
	return data, ok, nil
}

func (s *FileSessionStore) Save(_ context.Context, data domain.Data) error {
	return s.file.write(data)
}

func (s *FileSessionStore) Clear(_ context.Context) error {
	return s.file.remove()
}

type FileOverrideStore struct {
	file slotFile
}

func NewFileOverrideStore(dataDir string) sessionout.OverrideStore {
	return &FileOverrideStore{file: slotFile{dir: dataDir, slot: domain.SlotOverrides}}
}

func (s *FileOverrideStore) Load(_ context.Context) (domain.Overrides, bool, error) {
	o := domain.Overrides{}
	ok, err := s.file.read(&o)
	if err != nil {
		return domain.Overrides{}, false, err
	}
	return o.Normalized(), ok, nil
}

func (s *FileOverrideStore) Save(_ context.Context, overrides domain.Overrides) error {
	return s.file.write(overrides)
}

func (s *FileOverrideStore) Clear(_ context.Context) error {
	return s.file.remove()
}
