package driver

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"prim/internal/diag"
	"prim/internal/project"
	"prim/internal/source"
)

// Поднимать при каждом изменении формата DiskPayload.
const diskCacheSchemaVersion uint16 = 1

// DefaultCacheApp is the cache subdirectory under XDG_CACHE_HOME.
const DefaultCacheApp = "prim"

// DiskCache хранит диагностики проверенных файлов на диске, ключ считается
// от содержимого файла и действующей конфигурации.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// DiskPayload stores the diagnostics of one checked file.
type DiskPayload struct {
	// Schema version for safe invalidation when the format changes
	Schema uint16
	Diags  []CachedDiagnostic
}

// CachedDiagnostic is a diag.Diagnostic with spans reduced to byte offsets.
// FileID живёт только внутри одного процесса, в кеш он не попадает; при
// чтении спаны привязываются к живому файлу заново.
type CachedDiagnostic struct {
	Code     uint16
	Severity uint8
	Message  string
	Start    uint32
	End      uint32
	Notes    []CachedNote
	Fixes    []CachedFix
}

// CachedNote mirrors diag.Note without the FileID.
type CachedNote struct {
	Start uint32
	End   uint32
	Msg   string
}

// CachedFix mirrors diag.Fix. Only materialized fixes are cached.
type CachedFix struct {
	ID            string
	Title         string
	Kind          uint8
	Applicability uint8
	Preferred     bool
	RequiresAll   bool
	Edits         []CachedEdit
}

// CachedEdit mirrors diag.TextEdit without the FileID.
type CachedEdit struct {
	Start   uint32
	End     uint32
	NewText string
	OldText string
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

func (c *DiskCache) pathFor(key project.Digest) string {
	hexKey := fmt.Sprintf("%x", key[:])
	// Подкаталог с версией схемы: после смены формата старые файлы
	// просто перестают находиться.
	return filepath.Join(c.dir, fmt.Sprintf("checks-v%d", diskCacheSchemaVersion), hexKey+".mp")
}

// Put serializes and writes a payload to the disk cache.
func (c *DiskCache) Put(key project.Digest, payload *DiskPayload) error {
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
	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Get reads and deserializes a payload from the disk cache.
func (c *DiskCache) Get(key project.Digest, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	p := c.pathFor(key)
	f, err := os.Open(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer func() {
		_ = f.Close()
	}()
	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	return true, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	// тривиально: переименуем каталог и удалим целиком
	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		return err
	}
	return os.RemoveAll(old)
}

// checkCacheKey строит ключ кеша: содержимое файла + действующая
// конфигурация. Версия схемы зашита в путь внутри кеша.
func checkCacheKey(file *source.File, cfg project.Config) project.Digest {
	return project.Combine(project.Digest(file.Hash), cfg.Hash())
}

// cacheable reports whether every fix is materialized. Ленивые thunk-фиксы
// в кеш не сериализуются, такие файлы проверяются заново каждый раз.
func cacheable(items []diag.Diagnostic) bool {
	for _, d := range items {
		for _, f := range d.Fixes {
			if f.Thunk != nil && len(f.Edits) == 0 {
				return false
			}
		}
	}
	return true
}

// toDiskPayload strips FileIDs from diagnostics for serialization.
func toDiskPayload(items []diag.Diagnostic) *DiskPayload {
	payload := &DiskPayload{
		Schema: diskCacheSchemaVersion,
		Diags:  make([]CachedDiagnostic, 0, len(items)),
	}
	for _, d := range items {
		cached := CachedDiagnostic{
			Code:     uint16(d.Code),
			Severity: uint8(d.Severity),
			Message:  d.Message,
			Start:    d.Primary.Start,
			End:      d.Primary.End,
		}
		for _, n := range d.Notes {
			cached.Notes = append(cached.Notes, CachedNote{Start: n.Span.Start, End: n.Span.End, Msg: n.Msg})
		}
		for _, f := range d.Fixes {
			cf := CachedFix{
				ID:            f.ID,
				Title:         f.Title,
				Kind:          uint8(f.Kind),
				Applicability: uint8(f.Applicability),
				Preferred:     f.IsPreferred,
				RequiresAll:   f.RequiresAll,
			}
			for _, e := range f.Edits {
				cf.Edits = append(cf.Edits, CachedEdit{
					Start:   e.Span.Start,
					End:     e.Span.End,
					NewText: e.NewText,
					OldText: e.OldText,
				})
			}
			cached.Fixes = append(cached.Fixes, cf)
		}
		payload.Diags = append(payload.Diags, cached)
	}
	return payload
}

// Bind converts the payload back to diagnostics with every span rebound to
// the live FileID. ok is false for payloads of a different schema version.
func (p *DiskPayload) Bind(fileID source.FileID) ([]diag.Diagnostic, bool) {
	if p == nil || p.Schema != diskCacheSchemaVersion {
		return nil, false
	}
	span := func(start, end uint32) source.Span {
		return source.Span{File: fileID, Start: start, End: end}
	}
	out := make([]diag.Diagnostic, 0, len(p.Diags))
	for _, cached := range p.Diags {
		d := diag.Diagnostic{
			Severity: diag.Severity(cached.Severity),
			Code:     diag.Code(cached.Code),
			Message:  cached.Message,
			Primary:  span(cached.Start, cached.End),
		}
		for _, n := range cached.Notes {
			d.Notes = append(d.Notes, diag.Note{Span: span(n.Start, n.End), Msg: n.Msg})
		}
		for _, cf := range cached.Fixes {
			f := diag.Fix{
				ID:            cf.ID,
				Title:         cf.Title,
				Kind:          diag.FixKind(cf.Kind),
				Applicability: diag.FixApplicability(cf.Applicability),
				IsPreferred:   cf.Preferred,
				RequiresAll:   cf.RequiresAll,
			}
			for _, e := range cf.Edits {
				f.Edits = append(f.Edits, diag.TextEdit{
					Span:    span(e.Start, e.End),
					NewText: e.NewText,
					OldText: e.OldText,
				})
			}
			d.Fixes = append(d.Fixes, f)
		}
		out = append(out, d)
	}
	return out, true
}

// loadCachedDiagnostics наполняет bag из кеша. false означает промах или
// ошибку чтения: кеш даёт только ускорение, его сбой не фатален.
func loadCachedDiagnostics(cache *DiskCache, key project.Digest, fileID source.FileID, bag *diag.Bag) bool {
	if cache == nil {
		return false
	}
	var payload DiskPayload
	ok, err := cache.Get(key, &payload)
	if err != nil || !ok {
		return false
	}
	diags, ok := payload.Bind(fileID)
	if !ok {
		return false
	}
	for _, d := range diags {
		bag.Add(d)
	}
	return true
}

// storeCachedDiagnostics пишет диагностики файла в кеш. Наборы, урезанные
// лимитом диагностик, не кешируются, иначе повторный прогон с большим
// лимитом показал бы меньше, чем есть.
func storeCachedDiagnostics(cache *DiskCache, key project.Digest, bag *diag.Bag) {
	if cache == nil {
		return
	}
	items := bag.Items()
	if len(items) >= int(bag.Cap()) || !cacheable(items) {
		return
	}
	_ = cache.Put(key, toDiskPayload(items))
}
