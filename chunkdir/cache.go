package chunkdir

import (
	"encoding/binary"
	"fmt"
	"log/slog"

	"github.com/cespare/xxhash/v2"
	"github.com/vmihailenco/msgpack/v5"
	"go.etcd.io/bbolt"
)

var dirsBucket = []byte("chunkdirs")

// Options configures a Cache.
type Options struct {
	// Logger receives debug records for hits, misses and stores.
	// nil means slog.Default().
	Logger *slog.Logger

	// ReadOnly opens the database without write access; Entries still
	// works but never stores new scans.
	ReadOnly bool
}

// Cache persists chunk directory scans in a Bolt database, keyed by the
// xxhash of the file's contents. Safe for concurrent use.
type Cache struct {
	bdb      *bbolt.DB
	logger   *slog.Logger
	readOnly bool
}

// Open opens or creates the cache database at path.
func Open(path string, opts Options) (*Cache, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	bdb, err := bbolt.Open(path, 0o644, &bbolt.Options{ReadOnly: opts.ReadOnly})
	if err != nil {
		return nil, fmt.Errorf("opening chunkdir cache %s: %w", path, err)
	}
	if !opts.ReadOnly {
		err = bdb.Update(func(btx *bbolt.Tx) error {
			_, err := btx.CreateBucketIfNotExists(dirsBucket)
			return err
		})
		if err != nil {
			bdb.Close()
			return nil, fmt.Errorf("opening chunkdir cache %s: %w", path, err)
		}
	}
	return &Cache{bdb: bdb, logger: logger, readOnly: opts.ReadOnly}, nil
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	return c.bdb.Close()
}

// Entries returns the chunk directory for the given file contents, from
// cache when a scan of identical bytes was stored before, otherwise by
// scanning (and storing the result unless the cache is read-only).
func (c *Cache) Entries(data []byte, order binary.ByteOrder) ([]Entry, error) {
	key := contentKey(data)

	if entries, ok, err := c.lookup(key); err != nil {
		return nil, err
	} else if ok {
		c.logger.Debug("chunkdir cache hit", slog.String("key", hexKey(key)), slog.Int("chunks", len(entries)))
		return entries, nil
	}

	entries, err := Scan(data, order)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("chunkdir cache miss", slog.String("key", hexKey(key)), slog.Int("chunks", len(entries)))

	if !c.readOnly {
		if err := c.store(key, entries); err != nil {
			return nil, err
		}
	}
	return entries, nil
}

// Put stores a directory for the given file contents, replacing any previous
// entry for identical bytes.
func (c *Cache) Put(data []byte, entries []Entry) error {
	return c.store(contentKey(data), entries)
}

func (c *Cache) lookup(key [8]byte) ([]Entry, bool, error) {
	var raw []byte
	err := c.bdb.View(func(btx *bbolt.Tx) error {
		buck := btx.Bucket(dirsBucket)
		if buck == nil {
			return nil
		}
		if v := buck.Get(key[:]); v != nil {
			raw = make([]byte, len(v))
			copy(raw, v)
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	if raw == nil {
		return nil, false, nil
	}
	var entries []Entry
	if err := msgpack.Unmarshal(raw, &entries); err != nil {
		return nil, false, fmt.Errorf("decoding cached chunkdir %s: %w", hexKey(key), err)
	}
	return entries, true, nil
}

func (c *Cache) store(key [8]byte, entries []Entry) error {
	raw, err := msgpack.Marshal(entries)
	if err != nil {
		panic(fmt.Errorf("failed to encode chunkdir entries using MsgPack: %w", err))
	}
	err = c.bdb.Update(func(btx *bbolt.Tx) error {
		buck, err := btx.CreateBucketIfNotExists(dirsBucket)
		if err != nil {
			return err
		}
		return buck.Put(key[:], raw)
	})
	if err != nil {
		return fmt.Errorf("storing chunkdir %s: %w", hexKey(key), err)
	}
	c.logger.Debug("chunkdir cache store", slog.String("key", hexKey(key)), slog.Int("chunks", len(entries)))
	return nil
}

func contentKey(data []byte) [8]byte {
	var key [8]byte
	binary.BigEndian.PutUint64(key[:], xxhash.Sum64(data))
	return key
}

func hexKey(key [8]byte) string {
	return fmt.Sprintf("%x", key[:])
}
