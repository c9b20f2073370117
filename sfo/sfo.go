// Package sfo parses System File Objects (PSF), the key/value metadata
// format used by param.sfo. The title scan reads TITLE and TITLE_ID from
// each installed application's param.sfo.
package sfo

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strconv"

	"github.com/kevinmel2000/Vita3K/errors"
)

// Magic is the PSF header magic, "\0PSF" in little-endian byte order.
const Magic = 0x46535000

// Value formats from the PSF index table.
const (
	FormatUTF8Special = 0x0004 // UTF-8, not null-terminated
	FormatUTF8        = 0x0204 // UTF-8, null-terminated
	FormatUint32      = 0x0404
)

const (
	headerSize = 20
	entrySize  = 16
)

// Entry is one key/value pair from an SFO image.
type Entry struct {
	Key    string
	Format uint16
	Data   []byte
}

// File is a parsed SFO image.
type File struct {
	Version uint32
	Entries []Entry

	index map[string]int
}

// Parse decodes an SFO image. The whole image must be in memory; param.sfo
// files are at most a few kilobytes.
func Parse(data []byte) (*File, error) {
	if len(data) < headerSize {
		return nil, errors.InvalidData(errors.PhaseParse, []string{"sfo", "header"},
			fmt.Sprintf("image too short: %d bytes", len(data)))
	}

	magic := binary.LittleEndian.Uint32(data[0:])
	if magic != Magic {
		return nil, errors.InvalidData(errors.PhaseParse, []string{"sfo", "header"},
			fmt.Sprintf("bad magic %#08x", magic))
	}

	version := binary.LittleEndian.Uint32(data[4:])
	keyTableStart := binary.LittleEndian.Uint32(data[8:])
	dataTableStart := binary.LittleEndian.Uint32(data[12:])
	numEntries := binary.LittleEndian.Uint32(data[16:])

	indexEnd := headerSize + int64(numEntries)*entrySize
	if indexEnd > int64(len(data)) {
		return nil, errors.OutOfBounds(errors.PhaseParse, []string{"sfo", "index"},
			int(indexEnd), len(data))
	}
	if int64(keyTableStart) > int64(len(data)) || int64(dataTableStart) > int64(len(data)) {
		return nil, errors.InvalidData(errors.PhaseParse, []string{"sfo", "header"},
			"table offsets past end of image")
	}

	f := &File{
		Version: version,
		Entries: make([]Entry, 0, numEntries),
		index:   make(map[string]int, numEntries),
	}

	for i := uint32(0); i < numEntries; i++ {
		off := headerSize + int(i)*entrySize
		keyOffset := binary.LittleEndian.Uint16(data[off:])
		format := binary.LittleEndian.Uint16(data[off+2:])
		dataLen := binary.LittleEndian.Uint32(data[off+4:])
		dataOffset := binary.LittleEndian.Uint32(data[off+12:])

		keyStart := int64(keyTableStart) + int64(keyOffset)
		if keyStart >= int64(len(data)) {
			return nil, errors.OutOfBounds(errors.PhaseParse, []string{"sfo", "key"},
				int(keyStart), len(data))
		}
		key := readCString(data[keyStart:])

		valStart := int64(dataTableStart) + int64(dataOffset)
		valEnd := valStart + int64(dataLen)
		if valEnd > int64(len(data)) {
			return nil, errors.OutOfBounds(errors.PhaseParse, []string{"sfo", key},
				int(valEnd), len(data))
		}

		f.index[key] = len(f.Entries)
		f.Entries = append(f.Entries, Entry{
			Key:    key,
			Format: format,
			Data:   data[valStart:valEnd],
		})
	}

	return f, nil
}

// Get returns the value for key rendered as a string: UTF-8 values with any
// trailing NUL stripped, integer values in decimal. The second result is
// false when the key is absent.
func (f *File) Get(key string) (string, bool) {
	i, ok := f.index[key]
	if !ok {
		return "", false
	}
	e := f.Entries[i]

	switch e.Format {
	case FormatUint32:
		if len(e.Data) < 4 {
			return "", false
		}
		return strconv.FormatUint(uint64(binary.LittleEndian.Uint32(e.Data)), 10), true
	default:
		return string(bytes.TrimRight(e.Data, "\x00")), true
	}
}

// GetUint returns the value for an integer-format key.
func (f *File) GetUint(key string) (uint32, bool) {
	i, ok := f.index[key]
	if !ok {
		return 0, false
	}
	e := f.Entries[i]
	if e.Format != FormatUint32 || len(e.Data) < 4 {
		return 0, false
	}
	return binary.LittleEndian.Uint32(e.Data), true
}

func readCString(data []byte) string {
	if i := bytes.IndexByte(data, 0); i >= 0 {
		return string(data[:i])
	}
	return string(data)
}
