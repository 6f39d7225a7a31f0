package fbx

import (
	"encoding/binary"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// BinaryWriter adapts an io.WriteSeeker to the write/tell/seek sink
// described in spec.md §5 and §6. Every Node writes a forward end_offset
// placeholder, then seeks back to patch it once the node's size is known —
// the "write placeholder, seek back" strategy from DESIGN NOTES §9, which
// this module prefers since its sinks (files, in-memory seekable buffers)
// make seeking cheap.
type BinaryWriter struct {
	w io.WriteSeeker
}

// NewBinaryWriter wraps sink for binary FBX emission.
func NewBinaryWriter(sink io.WriteSeeker) *BinaryWriter {
	return &BinaryWriter{w: sink}
}

// Tell returns the sink's current absolute byte position.
func (w *BinaryWriter) Tell() (int64, error) {
	pos, err := w.w.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, errors.Wrap(err, "fbx: tell")
	}
	return pos, nil
}

// SeekTo moves the sink to an absolute byte position.
func (w *BinaryWriter) SeekTo(pos int64) error {
	if _, err := w.w.Seek(pos, io.SeekStart); err != nil {
		return errors.Wrap(err, "fbx: seek")
	}
	return nil
}

func (w *BinaryWriter) putBytes(b []byte) error {
	if _, err := w.w.Write(b); err != nil {
		return errors.Wrap(err, "fbx: write")
	}
	return nil
}

func (w *BinaryWriter) putUint8(v byte) error { return w.putBytes([]byte{v}) }

func (w *BinaryWriter) putUint32(v uint32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	return w.putBytes(buf[:])
}

func (w *BinaryWriter) putUint64(v uint64) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	return w.putBytes(buf[:])
}

func (w *BinaryWriter) putInt16(v int16) error {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], uint16(v))
	return w.putBytes(buf[:])
}

func (w *BinaryWriter) putInt32(v int32) error { return w.putUint32(uint32(v)) }
func (w *BinaryWriter) putInt64(v int64) error { return w.putUint64(uint64(v)) }

// AsciiWriter accumulates the indentation bookkeeping shared by every Node's
// textual emission: two spaces per depth, matching spec.md §4.2.
type AsciiWriter struct {
	w     io.Writer
	depth int
}

// NewAsciiWriter wraps sink for ASCII FBX emission.
func NewAsciiWriter(sink io.Writer) *AsciiWriter {
	return &AsciiWriter{w: sink}
}

func (w *AsciiWriter) indent() error {
	if w.depth == 0 {
		return nil
	}
	_, err := io.WriteString(w.w, strings.Repeat("  ", w.depth))
	return errors.Wrap(err, "fbx: write")
}

func (w *AsciiWriter) raw(s string) error {
	_, err := io.WriteString(w.w, s)
	return errors.Wrap(err, "fbx: write")
}
