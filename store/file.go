package store

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/Eyob-T295/summit-connect/model"
)

// selfWriteWindow is how long after our own write filesystem events for the
// store file are ignored. One write can surface as several events.
const selfWriteWindow = 500 * time.Millisecond

// FileStore keeps the collection as a JSON array in a single file and uses a
// filesystem watcher to detect writes made by other processes.
type FileStore struct {
	path string

	mu        sync.Mutex
	subs      map[int]func()
	nextSub   int
	lastWrite time.Time

	watcher *fsnotify.Watcher
	done    chan struct{}
}

// NewFileStore creates a file-backed store under dir. The directory is created
// if needed; the data file itself appears on first save.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{
		path: filepath.Join(dir, Key+".json"),
		subs: make(map[int]func()),
	}, nil
}

// Path returns the location of the data file.
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Load() []model.LeadRecord {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("failed to read lead store, treating as empty", "path", s.path, "error", err)
		}
		return []model.LeadRecord{}
	}

	var leads []model.LeadRecord
	if err := json.Unmarshal(data, &leads); err != nil {
		slog.Warn("failed to parse lead store, treating as empty", "path", s.path, "error", err)
		return []model.LeadRecord{}
	}
	if leads == nil {
		leads = []model.LeadRecord{}
	}
	return leads
}

func (s *FileStore) Save(leads []model.LeadRecord) {
	data, err := json.Marshal(leads)
	if err != nil {
		slog.Error("failed to serialize lead collection", "error", err)
		return
	}

	s.markSelfWrite()
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		slog.Error("failed to write lead store", "path", s.path, "error", err)
	}
}

func (s *FileStore) Clear() {
	s.markSelfWrite()
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		slog.Error("failed to clear lead store", "path", s.path, "error", err)
	}
}

func (s *FileStore) markSelfWrite() {
	s.mu.Lock()
	s.lastWrite = time.Now()
	s.mu.Unlock()
}

// Subscribe starts the watcher on first use and registers fn for changes made
// by other writers. Events within selfWriteWindow of our own writes are
// suppressed, matching the browser storage event that never fires for the
// writing context.
func (s *FileStore) Subscribe(fn func()) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.watcher == nil {
		if err := s.startWatcher(); err != nil {
			slog.Warn("external change notification unavailable", "path", s.path, "error", err)
			// Subscription still registers; it just never fires.
		}
	}

	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// startWatcher must be called with s.mu held.
func (s *FileStore) startWatcher() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	// Watch the directory: the data file may not exist yet, and removal
	// plus recreation would drop a direct file watch.
	if err := watcher.Add(filepath.Dir(s.path)); err != nil {
		watcher.Close()
		return err
	}

	s.watcher = watcher
	s.done = make(chan struct{})

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Name != s.path {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
					continue
				}
				s.notifyExternal()
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Warn("lead store watcher error", "error", err)
			case <-s.done:
				return
			}
		}
	}()

	return nil
}

func (s *FileStore) notifyExternal() {
	s.mu.Lock()
	if time.Since(s.lastWrite) < selfWriteWindow {
		s.mu.Unlock()
		return
	}
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Close stops the watcher. Further Subscribe calls will not restart it.
func (s *FileStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.watcher == nil {
		return nil
	}
	close(s.done)
	err := s.watcher.Close()
	s.watcher = nil
	return err
}
