package chunkio

import (
	"bytes"
	"fmt"
)

// StringBlockChunk holds an ordered list of null-terminated strings, the
// plain variant of the string-block pattern (file name lists and the like).
// Duplicates are permitted and order is preserved, both in memory and on the
// wire.
type StringBlockChunk struct {
	data        []string
	fourcc      uint32
	initialized bool
}

// NewStringBlockChunk returns an uninitialized string block bound to the
// given tag.
func NewStringBlockChunk(fourcc uint32) StringBlockChunk {
	return StringBlockChunk{fourcc: fourcc}
}

// FourCC returns the tag bound to this chunk.
func (c *StringBlockChunk) FourCC() uint32 { return c.fourcc }

// Initialize marks the chunk initialized with no entries.
func (c *StringBlockChunk) Initialize() {
	c.data = nil
	c.initialized = true
}

// InitializeWith copies the strings in as given, preserving order and
// duplicates, and marks the chunk initialized.
func (c *StringBlockChunk) InitializeWith(strings []string) {
	c.data = make([]string, len(strings))
	copy(c.data, strings)
	c.initialized = true
}

// Read consumes size bytes and splits them on NUL terminators, one entry per
// terminated run. A trailing run with no terminator is malformed data and
// returns a *DataError.
func (c *StringBlockChunk) Read(b *ByteBuffer, size uint32) error {
	data, err := b.readView(int(size))
	if err != nil {
		return err
	}
	entries, _, err := splitStringBlock(data, b.Bytes(), b.Pos()-int(size), c.fourcc)
	if err != nil {
		return err
	}
	c.data = entries
	c.initialized = true
	return nil
}

// Write appends each entry's bytes followed by a NUL, in insertion order.
// Panics if the chunk was never initialized.
func (c *StringBlockChunk) Write(b *ByteBuffer) {
	if !c.initialized {
		panic(fmt.Errorf("writing uninitialized chunk %s", FourCCString(c.fourcc, false)))
	}
	for _, s := range c.data {
		b.Append([]byte(s))
		b.AppendByte(0)
	}
}

// ByteSize returns the sum of each entry's length plus its terminator.
func (c *StringBlockChunk) ByteSize() uint32 {
	var n uint32
	for _, s := range c.data {
		n += uint32(len(s)) + 1
	}
	return n
}

// IsInitialized reports whether the chunk holds valid data. It stays true
// after Clear.
func (c *StringBlockChunk) IsInitialized() bool { return c.initialized }

// Size returns the number of entries.
func (c *StringBlockChunk) Size() int { return len(c.data) }

// Add appends a string unconditionally; duplicates are allowed.
func (c *StringBlockChunk) Add(s string) {
	c.data = append(c.data, s)
}

// Remove erases the entry at index, shifting subsequent entries down.
// Panics on an out-of-range index.
func (c *StringBlockChunk) Remove(index int) {
	if index < 0 || index >= len(c.data) {
		panic(fmt.Errorf("chunk %s: Remove(%d) out of range, %d entries", FourCCString(c.fourcc, false), index, len(c.data)))
	}
	c.data = append(c.data[:index], c.data[index+1:]...)
}

// Clear removes all entries. The chunk stays initialized.
func (c *StringBlockChunk) Clear() {
	c.data = c.data[:0]
}

// At returns the entry at the given position. Panics on an out-of-range
// index.
func (c *StringBlockChunk) At(index int) string { return c.data[index] }

// Strings returns the underlying slice for iteration.
func (c *StringBlockChunk) Strings() []string { return c.data }

// StringBlockEntry is one entry of an OffsetStringBlockChunk: the string
// plus its byte offset within the serialized block. Offsets are cumulative
// encoded length, not free-standing IDs: removing or changing an earlier
// entry shifts every later offset.
type StringBlockEntry struct {
	Offset uint32
	Value  string
}

// OffsetStringBlockChunk holds null-terminated strings addressed by their
// byte offset within the serialized block; other chunks reference entries by
// that offset. The wire layout is identical to StringBlockChunk — offsets
// are recovered by scanning, never stored.
//
// Add deduplicates by exact content. InitializeWith deliberately does not:
// the two paths have always behaved differently in this family and format
// readers depend on bulk initialization preserving their input verbatim.
type OffsetStringBlockChunk struct {
	data        []StringBlockEntry
	fourcc      uint32
	initialized bool
}

// NewOffsetStringBlockChunk returns an uninitialized offset string block
// bound to the given tag.
func NewOffsetStringBlockChunk(fourcc uint32) OffsetStringBlockChunk {
	return OffsetStringBlockChunk{fourcc: fourcc}
}

// FourCC returns the tag bound to this chunk.
func (c *OffsetStringBlockChunk) FourCC() uint32 { return c.fourcc }

// Initialize marks the chunk initialized with no entries.
func (c *OffsetStringBlockChunk) Initialize() {
	c.data = nil
	c.initialized = true
}

// InitializeWith stores each string in encoding order, assigning cumulative
// offsets. Duplicate inputs are stored as-is, not collapsed; only Add
// deduplicates.
func (c *OffsetStringBlockChunk) InitializeWith(strings []string) {
	c.data = make([]StringBlockEntry, 0, len(strings))
	var off uint32
	for _, s := range strings {
		c.data = append(c.data, StringBlockEntry{Offset: off, Value: s})
		off += uint32(len(s)) + 1
	}
	c.initialized = true
}

// Read consumes size bytes, splitting on NUL terminators and recording each
// entry's starting offset within the block. A trailing unterminated run is
// malformed data and returns a *DataError.
func (c *OffsetStringBlockChunk) Read(b *ByteBuffer, size uint32) error {
	data, err := b.readView(int(size))
	if err != nil {
		return err
	}
	strings, offsets, err := splitStringBlock(data, b.Bytes(), b.Pos()-int(size), c.fourcc)
	if err != nil {
		return err
	}
	c.data = make([]StringBlockEntry, len(strings))
	for i, s := range strings {
		c.data[i] = StringBlockEntry{Offset: offsets[i], Value: s}
	}
	c.initialized = true
	return nil
}

// Write appends each entry's bytes followed by a NUL, in offset order.
// Panics if the chunk was never initialized.
func (c *OffsetStringBlockChunk) Write(b *ByteBuffer) {
	if !c.initialized {
		panic(fmt.Errorf("writing uninitialized chunk %s", FourCCString(c.fourcc, false)))
	}
	for _, e := range c.data {
		b.Append([]byte(e.Value))
		b.AppendByte(0)
	}
}

// ByteSize returns the sum of each entry's length plus its terminator.
func (c *OffsetStringBlockChunk) ByteSize() uint32 {
	var n uint32
	for _, e := range c.data {
		n += uint32(len(e.Value)) + 1
	}
	return n
}

// IsInitialized reports whether the chunk holds valid data. It stays true
// after Clear.
func (c *OffsetStringBlockChunk) IsInitialized() bool { return c.initialized }

// Size returns the number of entries.
func (c *OffsetStringBlockChunk) Size() int { return len(c.data) }

// Add appends a string unless an entry with identical content already
// exists; in that case nothing changes and the existing entry keeps its
// offset (look it up with OffsetOf). A new entry's offset is the block's
// current ByteSize.
func (c *OffsetStringBlockChunk) Add(s string) {
	for _, e := range c.data {
		if e.Value == s {
			return
		}
	}
	c.data = append(c.data, StringBlockEntry{Offset: c.ByteSize(), Value: s})
}

// OffsetOf returns the offset of the entry with exactly the given content.
func (c *OffsetStringBlockChunk) OffsetOf(s string) (uint32, bool) {
	for _, e := range c.data {
		if e.Value == s {
			return e.Offset, true
		}
	}
	return 0, false
}

// Remove erases the entry at index and renumbers the offsets of every entry
// after it, since offsets are cumulative encoded length. Panics on an
// out-of-range index.
func (c *OffsetStringBlockChunk) Remove(index int) {
	if index < 0 || index >= len(c.data) {
		panic(fmt.Errorf("chunk %s: Remove(%d) out of range, %d entries", FourCCString(c.fourcc, false), index, len(c.data)))
	}
	removed := uint32(len(c.data[index].Value)) + 1
	c.data = append(c.data[:index], c.data[index+1:]...)
	for i := index; i < len(c.data); i++ {
		c.data[i].Offset -= removed
	}
}

// Clear removes all entries. The chunk stays initialized.
func (c *OffsetStringBlockChunk) Clear() {
	c.data = c.data[:0]
}

// At returns the entry at the given position. Position and byte offset are
// different axes: use OffsetOf to search by offset-bearing content. Panics
// on an out-of-range index.
func (c *OffsetStringBlockChunk) At(index int) StringBlockEntry { return c.data[index] }

// Entries returns the underlying slice for iteration.
func (c *OffsetStringBlockChunk) Entries() []StringBlockEntry { return c.data }

// splitStringBlock splits a serialized string block into entries and their
// starting offsets. full/base locate the block within the whole stream for
// error reporting.
func splitStringBlock(data, full []byte, base int, fourcc uint32) ([]string, []uint32, error) {
	var entries []string
	var offsets []uint32
	for off := 0; off < len(data); {
		rel := bytes.IndexByte(data[off:], 0)
		if rel < 0 {
			return nil, nil, dataErrf(full, base+off, nil, "chunk %s: unterminated string run of %d bytes", FourCCString(fourcc, false), len(data)-off)
		}
		entries = append(entries, string(data[off:off+rel]))
		offsets = append(offsets, uint32(off))
		off += rel + 1
	}
	return entries, offsets, nil
}
