// Package chunkdir scans the chunk directory of an asset file — the sequence
// of chunk headers and payload locations — and optionally caches scan results
// on disk, keyed by content hash, so tools that repeatedly open the same
// large terrain and model files skip the walk.
//
// Scanning does not interpret any chunk's payload; it records where each one
// lives. Judging tags and decoding payloads stays with the format reader.
package chunkdir

import (
	"encoding/binary"

	"github.com/warchive/chunkio"
)

// Entry locates one chunk within a file.
type Entry struct {
	FourCC uint32 `msgpack:"f"`
	Offset int64  `msgpack:"o"` // payload offset, just past the header
	Size   uint32 `msgpack:"s"` // payload size from the header
}

// Tag returns the entry's tag as in-file characters, for logs and listings.
func (e Entry) Tag() string {
	return chunkio.FourCCString(e.FourCC, false)
}

// Scan walks the whole buffer as consecutive header/payload pairs and
// returns one entry per chunk in file order. A header or payload running
// past the end of the data is malformed and returns a *chunkio.DataError.
func Scan(data []byte, order binary.ByteOrder) ([]Entry, error) {
	b := chunkio.NewByteBuffer(data)
	var entries []Entry
	for !b.IsEOF() {
		h, err := chunkio.ReadChunkHeader(b, order)
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{
			FourCC: h.FourCC,
			Offset: int64(b.Pos()),
			Size:   h.Size,
		})
		if err := b.Skip(int(h.Size)); err != nil {
			return nil, err
		}
	}
	return entries, nil
}
