package settingssdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// Credentials is the locally persisted session. The presence of AuthToken is
// the only signal that the user is signed in. RefreshToken is stored so it
// survives restarts but nothing in this package ever uses it.
type Credentials struct {
	AuthToken    string `json:"authToken,omitempty"`
	RefreshToken string `json:"refreshToken,omitempty"`
}

// TokenStore holds the current bearer credential.
//
// Set is called on sign-in, Clear on sign-out and on forced invalidation by
// the Gateway. Listeners registered with OnInvalidate run after every Clear.
type TokenStore interface {
	Get() (Credentials, error)
	Set(Credentials) error
	Clear() error
	OnInvalidate(fn func())
}

// listeners is shared by the TokenStore implementations.
type listeners struct {
	mu  sync.Mutex
	fns []func()
}

func (l *listeners) add(fn func()) {
	if fn == nil {
		return
	}
	l.mu.Lock()
	l.fns = append(l.fns, fn)
	l.mu.Unlock()
}

func (l *listeners) notify() {
	l.mu.Lock()
	fns := make([]func(), len(l.fns))
	copy(fns, l.fns)
	l.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// ============================================================================
// MemoryTokenStore
// ============================================================================

// MemoryTokenStore keeps credentials in process memory.
type MemoryTokenStore struct {
	mu    sync.RWMutex
	creds Credentials
	ls    listeners
}

// NewMemoryTokenStore returns an empty, signed-out store.
func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{}
}

func (m *MemoryTokenStore) Get() (Credentials, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.creds, nil
}

func (m *MemoryTokenStore) Set(c Credentials) error {
	m.mu.Lock()
	m.creds = c
	m.mu.Unlock()
	return nil
}

// Clear removes the auth token. The refresh token is dropped too; a signed-out
// store has nothing left to send.
func (m *MemoryTokenStore) Clear() error {
	m.mu.Lock()
	m.creds = Credentials{}
	m.mu.Unlock()
	m.ls.notify()
	return nil
}

func (m *MemoryTokenStore) OnInvalidate(fn func()) { m.ls.add(fn) }

// ============================================================================
// FileTokenStore
// ============================================================================

// FileTokenStore persists credentials as a small JSON document with the keys
// "authToken" and "refreshToken". A missing file reads as signed out.
type FileTokenStore struct {
	path string
	mu   sync.Mutex
	ls   listeners
}

// NewFileTokenStore returns a store backed by the file at path. The file is
// not touched until the first Set or Clear.
func NewFileTokenStore(path string) *FileTokenStore {
	return &FileTokenStore{path: path}
}

// Path returns the backing file location.
func (f *FileTokenStore) Path() string { return f.path }

func (f *FileTokenStore) Get() (Credentials, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return Credentials{}, nil
	}
	if err != nil {
		return Credentials{}, fmt.Errorf("read session file: %w", err)
	}
	if len(data) == 0 {
		return Credentials{}, nil
	}

	var c Credentials
	if err := json.Unmarshal(data, &c); err != nil {
		return Credentials{}, fmt.Errorf("decode session file: %w", err)
	}
	return c, nil
}

func (f *FileTokenStore) Set(c Credentials) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.write(c)
}

// Clear rewrites the file without an auth token and notifies listeners.
func (f *FileTokenStore) Clear() error {
	f.mu.Lock()
	err := f.write(Credentials{})
	f.mu.Unlock()
	if err != nil {
		return err
	}
	f.ls.notify()
	return nil
}

func (f *FileTokenStore) OnInvalidate(fn func()) { f.ls.add(fn) }

func (f *FileTokenStore) write(c Credentials) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session file: %w", err)
	}

	if dir := filepath.Dir(f.path); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create session dir: %w", err)
		}
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace session file: %w", err)
	}
	return nil
}
