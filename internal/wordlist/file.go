package wordlist

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// FileStore reads each list from <dir>/<name>.txt. A missing or unreadable
// file yields an empty list and a warning; it never fails the analysis.
type FileStore struct {
	dir    string
	logger *zap.Logger

	mu    sync.RWMutex
	lists map[string][]string

	watcher *fsnotify.Watcher
	stop    chan struct{}
}

// NewFileStore loads every list from dir
func NewFileStore(dir string, logger *zap.Logger) *FileStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &FileStore{
		dir:    dir,
		logger: logger,
		lists:  make(map[string][]string, len(Names)),
		stop:   make(chan struct{}),
	}
	for _, name := range Names {
		s.Reload(name)
	}
	return s
}

// Dir returns the directory the lists are read from
func (s *FileStore) Dir() string {
	return s.dir
}

// Path returns the file backing a list
func (s *FileStore) Path(name string) string {
	return filepath.Join(s.dir, FileName(name))
}

// Reload re-reads one list from disk
func (s *FileStore) Reload(name string) {
	words := s.load(name)
	s.mu.Lock()
	s.lists[name] = words
	s.mu.Unlock()
}

func (s *FileStore) load(name string) []string {
	path := s.Path(name)
	f, err := os.Open(path)
	if err != nil {
		s.logger.Warn("word list unavailable, using empty list",
			zap.String("list", name),
			zap.String("path", path),
			zap.Error(err))
		return nil
	}
	defer func() { _ = f.Close() }()

	words, err := Parse(f)
	if err != nil {
		s.logger.Warn("word list unreadable, using empty list",
			zap.String("list", name),
			zap.String("path", path),
			zap.Error(err))
		return nil
	}
	s.logger.Debug("word list loaded", zap.String("list", name), zap.Int("words", len(words)))
	return words
}

func (s *FileStore) Get(name string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lists[name]
}

// Append writes the word to the end of the list file and makes it visible
// to subsequent Get calls.
func (s *FileStore) Append(name, word string) error {
	if !Known(name) {
		return fmt.Errorf("%w: %s", ErrUnknownList, name)
	}
	if !Appendable(name) {
		return fmt.Errorf("%w: %s", ErrReadOnlyList, name)
	}
	word = normalise(word)
	if word == "" {
		return errors.New("empty word")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("create word list dir: %w", err)
	}

	path := s.Path(name)
	prefix := ""
	if data, err := os.ReadFile(path); err == nil && len(data) > 0 && !strings.HasSuffix(string(data), "\n") {
		prefix = "\n"
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	if _, err := f.WriteString(prefix + word + "\n"); err != nil {
		_ = f.Close()
		return fmt.Errorf("append to %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}

	old := s.lists[name]
	updated := make([]string, len(old), len(old)+1)
	copy(updated, old)
	s.lists[name] = append(updated, word)
	return nil
}

// Watch reloads a list whenever its file is written, created or replaced.
// It returns once the watcher is running; events are handled until ctx is
// done or Close is called.
func (s *FileStore) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	// Watch the directory so editors that replace files are still seen
	if err := watcher.Add(s.dir); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("watch %s: %w", s.dir, err)
	}

	s.mu.Lock()
	s.watcher = watcher
	s.mu.Unlock()

	go s.processEvents(ctx, watcher)
	return nil
}

func (s *FileStore) processEvents(ctx context.Context, watcher *fsnotify.Watcher) {
	for {
		select {
		case <-s.stop:
			return
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			name := listForPath(event.Name)
			if name == "" {
				continue
			}
			s.logger.Info("word list changed, reloading",
				zap.String("list", name),
				zap.String("op", event.Op.String()))
			s.Reload(name)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			s.logger.Warn("word list watcher error", zap.Error(err))
		}
	}
}

// Close stops watching
func (s *FileStore) Close() error {
	s.mu.Lock()
	watcher := s.watcher
	s.watcher = nil
	select {
	case <-s.stop:
	default:
		close(s.stop)
	}
	s.mu.Unlock()

	if watcher != nil {
		return watcher.Close()
	}
	return nil
}

func listForPath(path string) string {
	base := filepath.Base(path)
	for _, name := range Names {
		if base == FileName(name) {
			return name
		}
	}
	return ""
}

var (
	_ Store = (*FileStore)(nil)
	_ Store = (*MemoryStore)(nil)
)
