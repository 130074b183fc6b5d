package driver

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"yulfmt/internal/format"
)

// Current schema version - increment when CachePayload format changes
const cacheSchemaVersion uint16 = 2

// Key identifies one formatting input.
type Key [sha256.Size]byte

// CachePayload is the stored result of formatting a clean input.
type CachePayload struct {
	Schema    uint16
	Version   string
	Indent    int
	Formatted string
}

// Cache stores formatted output on disk, keyed by content and settings.
// Thread-safe for concurrent access.
type Cache struct {
	mu  sync.RWMutex
	dir string
}

// OpenCache opens the cache in dir, or in $XDG_CACHE_HOME/yulfmt when dir is empty.
func OpenCache(dir string) (*Cache, error) {
	if dir == "" {
		base := os.Getenv("XDG_CACHE_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, err
			}
			base = filepath.Join(home, ".cache")
		}
		dir = filepath.Join(base, "yulfmt")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir}, nil
}

// Dir returns the cache directory.
func (c *Cache) Dir() string {
	return c.dir
}

// KeyFor hashes everything that influences the formatted output. Verify is
// part of the key because a verified result is a stronger claim than an
// unverified one.
func KeyFor(source []byte, version string, opts format.Options) Key {
	h := sha256.New()
	var buf [8]byte
	binary.LittleEndian.PutUint16(buf[:2], cacheSchemaVersion)
	h.Write(buf[:2])
	h.Write([]byte(version))
	h.Write([]byte{0})
	binary.LittleEndian.PutUint64(buf[:], uint64(opts.Indent))
	h.Write(buf[:])
	h.Write([]byte{flag(opts.TopLevel), flag(opts.Verify)})
	h.Write(source)

	var k Key
	copy(k[:], h.Sum(nil))
	return k
}

func flag(b bool) byte {
	if b {
		return 1
	}
	return 0
}

func (c *Cache) pathFor(key Key) string {
	hexKey := hex.EncodeToString(key[:])
	return filepath.Join(c.dir, "fmt", hexKey[:2], hexKey+".mp")
}

// Put serializes and writes a payload to the cache.
func (c *Cache) Put(key Key, payload *CachePayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()

	payload.Schema = cacheSchemaVersion
	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Atomic replace
	if err := os.Rename(f.Name(), p); err != nil {
		return err
	}
	committed = true
	return nil
}

// Get reads a payload. Entries from another schema count as misses.
func (c *Cache) Get(key Key) (*CachePayload, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer f.Close()

	var out CachePayload
	if err := msgpack.NewDecoder(f).Decode(&out); err != nil {
		return nil, false, err
	}
	if out.Schema != cacheSchemaVersion {
		return nil, false, nil
	}
	return &out, true, nil
}

// DropAll removes every cached entry.
func (c *Cache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return os.RemoveAll(filepath.Join(c.dir, "fmt"))
}
