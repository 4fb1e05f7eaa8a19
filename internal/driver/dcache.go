package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"volt/internal/diag"
	"volt/internal/source"
)

// Current schema version - increment when DiskPayload format changes
const diskCacheSchemaVersion uint16 = 1

// DiskCache хранит диагностики разбора по хешу содержимого файла.
// Совпал хеш и конфигурация — файл можно не перечитывать парсером.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// DiskPayload is the serialized parse outcome of one file.
type DiskPayload struct {
	Schema      uint16
	Diagnostics []CachedDiagnostic
}

// CachedDiagnostic carries enough to rebuild a diag.Diagnostic. Kind is
// referenced by Reason: коды каталога стабильны между запусками.
type CachedDiagnostic struct {
	Reason  string
	Start   uint32
	End     uint32
	Line    uint32
	Col     uint32
	Details map[string]any
}

// Restore кладёт диагностики из payload обратно в bag.
func (p *DiskPayload) Restore(bag *diag.Bag, fileID source.FileID) {
	for _, c := range p.Diagnostics {
		k, ok := diag.ByReason(c.Reason)
		if !ok {
			// каталог изменился, запись устарела
			continue
		}
		sp := source.Span{File: fileID, Start: c.Start, End: c.End}
		pos := source.Position{Line: c.Line, Col: c.Col, Offset: c.Start}
		bag.Add(k.New(sp, pos, c.Details))
	}
}

// OpenDiskCache initializes and returns a disk cache at the standard location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// OpenDiskCacheAt открывает кеш в произвольной директории (тесты).
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// cacheKey: H(file hash || конфигурация). Разные диалекты — разные записи.
func cacheKey(f *source.File, cfg Config) [32]byte {
	h := sha256.New()
	_, _ = h.Write(f.Hash[:])
	_, _ = h.Write([]byte(cfg.SourceType))
	_, _ = h.Write([]byte(cfg.Dialects.String()))
	if cfg.AllowReturnOutsideFunction {
		_, _ = h.Write([]byte{1})
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

func (c *DiskCache) pathFor(key [32]byte) string {
	hexKey := hex.EncodeToString(key[:])
	// Для удобства читаемости/очистки — подкаталог "parse".
	return filepath.Join(c.dir, "parse", hexKey+".mp")
}

// Store serializes the bag for the file+config combination.
func (c *DiskCache) Store(f *source.File, cfg Config, bag *diag.Bag) error {
	if c == nil {
		return nil
	}
	payload := DiskPayload{Schema: diskCacheSchemaVersion}
	for _, d := range bag.Items() {
		payload.Diagnostics = append(payload.Diagnostics, CachedDiagnostic{
			Reason:  d.Kind.Reason,
			Start:   d.Primary.Start,
			End:     d.Primary.End,
			Line:    d.Pos.Line,
			Col:     d.Pos.Col,
			Details: d.Details,
		})
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(cacheKey(f, cfg))
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := msgpack.NewEncoder(tmp).Encode(&payload); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(tmp.Name(), p)
}

// Load reads the cached payload for the file+config combination.
func (c *DiskCache) Load(f *source.File, cfg Config) (*DiskPayload, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	fh, err := os.Open(c.pathFor(cacheKey(f, cfg)))
	if err != nil {
		return nil, false
	}
	defer fh.Close()

	var payload DiskPayload
	if err := msgpack.NewDecoder(fh).Decode(&payload); err != nil {
		return nil, false
	}
	if payload.Schema != diskCacheSchemaVersion {
		return nil, false
	}
	return &payload, true
}

// DropAll invalidates the cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	err := os.RemoveAll(filepath.Join(c.dir, "parse"))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
