package decks

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"strings"
	"syscall"

	"github.com/randomtoy/tarot-deck/internal/domain"
)

// DefaultExt is the image extension card files are expected to have.
const DefaultExt = ".jpg"

// Store discovers card IDs from image files in a single directory. Only
// directory entries are read, never file contents.
type Store struct {
	fsys   fs.FS
	name   string
	ext    string
	logger *slog.Logger
}

// NewDirStore returns a Store over the directory dir.
func NewDirStore(dir, ext string, logger *slog.Logger) *Store {
	return NewFSStore(os.DirFS(dir), dir, ext, logger)
}

// NewFSStore returns a Store over the root of fsys. name is only used in
// errors and logs.
func NewFSStore(fsys fs.FS, name, ext string, logger *slog.Logger) *Store {
	if ext == "" {
		ext = DefaultExt
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{fsys: fsys, name: name, ext: ext, logger: logger}
}

// Load scans the directory and returns the sorted catalog. Files whose stems
// collide (Fool.jpg, Fool.JPG) keep the first one in filename order.
func (s *Store) Load(ctx context.Context) (domain.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return domain.Catalog{}, err
	}

	info, err := fs.Stat(s.fsys, ".")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
			return domain.Catalog{}, fmt.Errorf("%w: %s", domain.ErrCatalogNotFound, s.name)
		}
		return domain.Catalog{}, fmt.Errorf("stat %s: %w", s.name, err)
	}
	if !info.IsDir() {
		return domain.Catalog{}, fmt.Errorf("%w: %s is not a directory", domain.ErrCatalogNotFound, s.name)
	}

	// fs.ReadDir returns entries sorted by filename.
	entries, err := fs.ReadDir(s.fsys, ".")
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("read dir %s: %w", s.name, err)
	}

	ids := make([]domain.CardID, 0, len(entries))
	seen := make(map[domain.CardID]string, len(entries))
	for _, e := range entries {
		name := e.Name()
		ext := path.Ext(name)
		if !strings.EqualFold(ext, s.ext) || !s.isRegular(e) {
			continue
		}
		id := domain.CardID(strings.TrimSuffix(name, ext))
		if first, dup := seen[id]; dup {
			s.logger.DebugContext(ctx, "skipping duplicate card", "file", name, "kept", first)
			continue
		}
		seen[id] = name
		ids = append(ids, id)
	}

	catalog, err := domain.NewCatalog(ids)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("%w: no %s files in %s", err, s.ext, s.name)
	}

	s.logger.InfoContext(ctx, "loaded card catalog", "dir", s.name, "cards", catalog.Len())
	return catalog, nil
}

func (s *Store) isRegular(e fs.DirEntry) bool {
	if e.Type().IsRegular() {
		return true
	}
	if e.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := fs.Stat(s.fsys, e.Name())
	return err == nil && info.Mode().IsRegular()
}
