package generator

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// ErrPathRequired is returned when a storage operation receives an empty path.
var ErrPathRequired = errors.New("generator: storage path is required")

// Storage abstracts where build artifacts land. The directory sink is the
// production path; the memory sink backs tests and dry runs.
type Storage interface {
	WriteFile(ctx context.Context, path string, content []byte) error
	ReadFile(ctx context.Context, path string) ([]byte, error)
	RemoveAll(ctx context.Context) error
	List(ctx context.Context) ([]string, error)
}

// MemoryStorage keeps build artifacts in a map.
type MemoryStorage struct {
	mu    sync.RWMutex
	files map[string][]byte
}

// NewMemoryStorage builds an empty in-memory sink.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{files: map[string][]byte{}}
}

func (m *MemoryStorage) WriteFile(_ context.Context, path string, content []byte) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return ErrPathRequired
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	buf := make([]byte, len(content))
	copy(buf, content)
	m.files[path] = buf
	return nil
}

func (m *MemoryStorage) ReadFile(_ context.Context, path string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	content, ok := m.files[strings.TrimSpace(path)]
	if !ok {
		return nil, fmt.Errorf("generator: %s: %w", path, os.ErrNotExist)
	}
	return content, nil
}

func (m *MemoryStorage) RemoveAll(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files = map[string][]byte{}
	return nil
}

func (m *MemoryStorage) List(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	paths := make([]string, 0, len(m.files))
	for path := range m.files {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths, nil
}

// DirStorage writes build artifacts beneath a root directory on disk.
type DirStorage struct {
	root string
}

// NewDirStorage builds a sink rooted at dir.
func NewDirStorage(dir string) (*DirStorage, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, ErrPathRequired
	}
	return &DirStorage{root: dir}, nil
}

func (d *DirStorage) WriteFile(ctx context.Context, path string, content []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return ErrPathRequired
	}
	target := filepath.Join(d.root, filepath.FromSlash(path))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("generator: ensure dir %s: %w", filepath.Dir(target), err)
	}
	if err := os.WriteFile(target, content, 0o644); err != nil {
		return fmt.Errorf("generator: write %s: %w", target, err)
	}
	return nil
}

func (d *DirStorage) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	content, err := os.ReadFile(filepath.Join(d.root, filepath.FromSlash(path)))
	if err != nil {
		return nil, fmt.Errorf("generator: read %s: %w", path, err)
	}
	return content, nil
}

func (d *DirStorage) RemoveAll(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.RemoveAll(d.root); err != nil {
		return fmt.Errorf("generator: clean %s: %w", d.root, err)
	}
	return nil
}

func (d *DirStorage) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var paths []string
	err := filepath.WalkDir(d.root, func(path string, entry os.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if entry.IsDir() {
			return nil
		}
		rel, relErr := filepath.Rel(d.root, path)
		if relErr != nil {
			return relErr
		}
		paths = append(paths, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("generator: list %s: %w", d.root, err)
	}
	sort.Strings(paths)
	return paths, nil
}
