package fbx

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/pkg/errors"
)

// countingReader tracks how many bytes have been read so DecodeNode can
// recognize when it has reached a child node's declared end_offset.
type countingReader struct {
	r   io.Reader
	pos int64
}

func (r *countingReader) Read(p []byte) (int, error) {
	n, err := r.r.Read(p)
	r.pos += int64(n)
	return n, err
}

func (r *countingReader) discard(n int64) error {
	_, err := io.CopyN(io.Discard, r, n)
	return err
}

// DecodeNode reads one binary-encoded Node (and its subtree) back out of r.
// It exists to support the round-trip invariant of spec.md §8 ("emitting
// and re-parsing any built Record tree yields a structurally identical
// tree"); it understands exactly the subset of the format this package's
// own EmitBinary produces (uncompressed arrays only — zip-compressed arrays
// are a declared Non-goal, so DecodeNode does not need to, and does not,
// support them).
func DecodeNode(r io.Reader) (*Node, error) {
	cr := &countingReader{r: r}
	n, err := decodeNode(cr)
	if err != nil {
		return nil, errors.Wrap(err, "fbx: decode")
	}
	return n, nil
}

func decodeNode(r *countingReader) (*Node, error) {
	var endOffset, numProps, propListSize uint32
	if err := binary.Read(r, binary.LittleEndian, &endOffset); err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.LittleEndian, &numProps); err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.LittleEndian, &propListSize); err != nil {
		return nil, err
	}
	_ = propListSize

	var nameLen uint8
	if err := binary.Read(r, binary.LittleEndian, &nameLen); err != nil {
		return nil, err
	}
	if endOffset == 0 && numProps == 0 && nameLen == 0 {
		// the 13-byte NULL_RECORD sentinel; nothing more to read for it.
		return nil, nil
	}

	nameBuf := make([]byte, nameLen)
	if _, err := io.ReadFull(r, nameBuf); err != nil {
		return nil, err
	}
	n := &Node{Name: string(nameBuf)}

	for i := uint32(0); i < numProps; i++ {
		p, err := decodeProperty(r)
		if err != nil {
			return nil, errors.Wrapf(err, "node %q property %d", n.Name, i)
		}
		n.Properties = append(n.Properties, p)
	}

	for r.pos < int64(endOffset) {
		child, err := decodeNode(r)
		if err != nil {
			return nil, err
		}
		if child == nil {
			break // consumed the NULL_RECORD terminator
		}
		n.Children = append(n.Children, child)
	}

	if r.pos < int64(endOffset) {
		if err := r.discard(int64(endOffset) - r.pos); err != nil {
			return nil, err
		}
	}
	return n, nil
}

func decodeProperty(r *countingReader) (*Property, error) {
	var tag [1]byte
	if _, err := io.ReadFull(r, tag[:]); err != nil {
		return nil, err
	}
	switch Tag(tag[0]) {
	case TagBool:
		var v uint8
		if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
			return nil, err
		}
		return NewBool(v != 0), nil
	case TagInt16:
		var v int16
		if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
			return nil, err
		}
		return NewInt16(v), nil
	case TagInt32:
		var v int32
		if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
			return nil, err
		}
		return NewInt32(v), nil
	case TagFloat32:
		var v uint32
		if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
			return nil, err
		}
		return NewFloat32(math.Float32frombits(v)), nil
	case TagFloat64:
		var v uint64
		if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
			return nil, err
		}
		return NewFloat64(math.Float64frombits(v)), nil
	case TagInt64:
		var v int64
		if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
			return nil, err
		}
		return NewInt64(v), nil
	case TagString:
		var n uint32
		if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
			return nil, err
		}
		buf := make([]byte, n)
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, err
		}
		return NewString(string(buf)), nil
	case TagRaw:
		var n uint32
		if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
			return nil, err
		}
		buf := make([]byte, n)
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, err
		}
		return NewRaw(buf), nil
	case TagInt32Array:
		count, _, payload, err := decodeArrayHeader(r)
		if err != nil {
			return nil, err
		}
		out := make([]int32, count)
		for i := range out {
			out[i] = int32(binary.LittleEndian.Uint32(payload[i*4:]))
		}
		return NewInt32Array(out), nil
	case TagFloat64Array:
		count, _, payload, err := decodeArrayHeader(r)
		if err != nil {
			return nil, err
		}
		out := make([]float64, count)
		for i := range out {
			out[i] = math.Float64frombits(binary.LittleEndian.Uint64(payload[i*8:]))
		}
		return NewFloat64Array(out), nil
	case TagFloat32Array:
		count, _, payload, err := decodeArrayHeader(r)
		if err != nil {
			return nil, err
		}
		out := make([]float32, count)
		for i := range out {
			out[i] = math.Float32frombits(binary.LittleEndian.Uint32(payload[i*4:]))
		}
		return NewFloat32Array(out), nil
	case TagInt64Array:
		count, _, payload, err := decodeArrayHeader(r)
		if err != nil {
			return nil, err
		}
		out := make([]int64, count)
		for i := range out {
			out[i] = int64(binary.LittleEndian.Uint64(payload[i*8:]))
		}
		return NewInt64Array(out), nil
	case TagBoolArray:
		count, _, payload, err := decodeArrayHeader(r)
		if err != nil {
			return nil, err
		}
		out := make([]bool, count)
		for i := range out {
			out[i] = payload[i] != 0
		}
		return NewBoolArray(out), nil
	}
	return nil, errors.Wrapf(ErrInvalidProperty, "tag %q", tag[0])
}

func decodeArrayHeader(r *countingReader) (count, encoding uint32, payload []byte, err error) {
	if err = binary.Read(r, binary.LittleEndian, &count); err != nil {
		return
	}
	if err = binary.Read(r, binary.LittleEndian, &encoding); err != nil {
		return
	}
	var size uint32
	if err = binary.Read(r, binary.LittleEndian, &size); err != nil {
		return
	}
	if encoding != arrayEncodingUncompressed {
		err = errors.New("fbx: compressed arrays not supported")
		return
	}
	payload = make([]byte, size)
	_, err = io.ReadFull(r, payload)
	return
}
