package fbx_test

import (
	"errors"
	"io"
)

// seekBuffer is a minimal in-memory io.WriteSeeker, standing in for the
// files and byte buffers spec.md §5 requires the sink to behave like.
type seekBuffer struct {
	buf []byte
	pos int64
}

func (s *seekBuffer) Write(p []byte) (int, error) {
	end := s.pos + int64(len(p))
	if end > int64(len(s.buf)) {
		grown := make([]byte, end)
		copy(grown, s.buf)
		s.buf = grown
	}
	copy(s.buf[s.pos:end], p)
	s.pos = end
	return len(p), nil
}

func (s *seekBuffer) Seek(offset int64, whence int) (int64, error) {
	var pos int64
	switch whence {
	case io.SeekStart:
		pos = offset
	case io.SeekCurrent:
		pos = s.pos + offset
	case io.SeekEnd:
		pos = int64(len(s.buf)) + offset
	default:
		return 0, errors.New("seekBuffer: invalid whence")
	}
	if pos < 0 {
		return 0, errors.New("seekBuffer: negative position")
	}
	s.pos = pos
	return pos, nil
}

func (s *seekBuffer) Bytes() []byte { return s.buf }
