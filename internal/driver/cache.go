package driver

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"

	"mygo/internal/lexer"
	"mygo/internal/source"
	"mygo/internal/token"
)

// Current schema version - increment when cachedTokens format changes
const tokenCacheSchema uint16 = 1

// TokenCache хранит результаты лексера на диске по хэшу содержимого файла.
// Thread-safe for concurrent access.
type TokenCache struct {
	mu  sync.RWMutex
	dir string
}

type cachedTokens struct {
	Schema uint16
	Tokens []token.Token
	Errors []lexer.Error
}

// CacheKey identifies one lexing result: normalised content plus the options
// that change the output.
type CacheKey [32]byte

func cacheKey(file *source.File, keepTrivia bool) CacheKey {
	h := sha256.New()
	var hdr [3]byte
	binary.LittleEndian.PutUint16(hdr[:2], tokenCacheSchema)
	if keepTrivia {
		hdr[2] = 1
	}
	h.Write(hdr[:])
	h.Write(file.Hash[:])
	var key CacheKey
	h.Sum(key[:0])
	return key
}

// OpenTokenCache opens the cache under $XDG_CACHE_HOME/app (or ~/.cache/app).
func OpenTokenCache(app string) (*TokenCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cache dir: %w", err)
		}
		base = filepath.Join(home, ".cache")
	}
	return NewTokenCache(filepath.Join(base, app))
}

// NewTokenCache opens a cache rooted at dir, creating it if needed.
func NewTokenCache(dir string) (*TokenCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cache dir: %w", err)
	}
	return &TokenCache{dir: dir}, nil
}

// Dir returns the cache root.
func (c *TokenCache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

func (c *TokenCache) pathFor(key CacheKey) string {
	hexKey := hex.EncodeToString(key[:])
	// подкаталог по первым двум символам, чтобы не держать тысячи файлов в одном
	return filepath.Join(c.dir, "tokens", hexKey[:2], hexKey+".mp.zst")
}

// put serializes tokens and errors (msgpack inside zstd) and replaces the
// entry atomically.
func (c *TokenCache) put(key CacheKey, tokens []token.Token, errs []*lexer.Error) (err error) {
	if c == nil {
		return nil
	}
	payload := cachedTokens{Schema: tokenCacheSchema, Tokens: tokens, Errors: make([]lexer.Error, len(errs))}
	for i, e := range errs {
		payload.Errors[i] = *e
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
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()

	zw, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		return err
	}
	if err = msgpack.NewEncoder(zw).Encode(&payload); err != nil {
		_ = zw.Close()
		return err
	}
	if err = zw.Close(); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// get loads the entry for key and rebinds every span to file.
func (c *TokenCache) get(key CacheKey, file *source.File) ([]token.Token, []*lexer.Error, bool, error) {
	if c == nil {
		return nil, nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil, false, nil
		}
		return nil, nil, false, err
	}
	defer f.Close()

	zr, err := zstd.NewReader(f)
	if err != nil {
		return nil, nil, false, fmt.Errorf("cache entry %s: %w", f.Name(), err)
	}
	defer zr.Close()

	var payload cachedTokens
	if err := msgpack.NewDecoder(zr).Decode(&payload); err != nil {
		return nil, nil, false, fmt.Errorf("cache entry %s: %w", f.Name(), err)
	}
	if payload.Schema != tokenCacheSchema || len(payload.Tokens) == 0 {
		return nil, nil, false, nil
	}

	// FileID зависит от FileSet текущего прогона
	tokens := payload.Tokens
	for i := range tokens {
		tokens[i].Span.File = file.ID
		for j := range tokens[i].Leading {
			tokens[i].Leading[j].Span.File = file.ID
		}
	}
	errs := make([]*lexer.Error, len(payload.Errors))
	for i := range payload.Errors {
		e := payload.Errors[i]
		e.Span.File = file.ID
		errs[i] = &e
	}
	return tokens, errs, true, nil
}

// Clear removes every cached entry.
func (c *TokenCache) Clear() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	// переименуем каталог и удалим
	old := filepath.Join(c.dir, "tokens.old-"+time.Now().Format("20060102150405"))
	if err := os.Rename(filepath.Join(c.dir, "tokens"), old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return os.RemoveAll(old)
}
