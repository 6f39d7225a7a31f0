package fbx

import (
	"fmt"
	"strconv"
	"strings"
)

// EmitAscii writes the property's textual form per spec.md §4.1: booleans
// as a bare T/F, integers in decimal, doubles with enough precision to
// round-trip, strings double-quoted, arrays as "*N {\n a: v0,v1,...\n }".
func (p *Property) EmitAscii(w *AsciiWriter) error {
	switch p.tag {
	case TagBool:
		if p.scalar.(bool) {
			return w.raw("T")
		}
		return w.raw("F")
	case TagInt16:
		return w.raw(strconv.FormatInt(int64(p.scalar.(int16)), 10))
	case TagInt32:
		return w.raw(strconv.FormatInt(int64(p.scalar.(int32)), 10))
	case TagInt64:
		return w.raw(strconv.FormatInt(p.scalar.(int64), 10))
	case TagFloat32:
		return w.raw(formatFloat(float64(p.scalar.(float32)), 32))
	case TagFloat64:
		return w.raw(formatFloat(p.scalar.(float64), 64))
	case TagString:
		return w.raw(fmt.Sprintf("%q", p.scalar.(string)))
	case TagRaw:
		return w.raw(fmt.Sprintf("%q", string(p.scalar.([]byte))))
	case TagInt32Array:
		return emitAsciiArray(w, len(p.arrInt), func(i int) string {
			return strconv.FormatInt(int64(p.arrInt[i]), 10)
		})
	case TagFloat64Array:
		return emitAsciiArray(w, len(p.arrF64), func(i int) string {
			return formatFloat(p.arrF64[i], 64)
		})
	case TagFloat32Array:
		return emitAsciiArray(w, len(p.arrF32), func(i int) string {
			return formatFloat(float64(p.arrF32[i]), 32)
		})
	case TagInt64Array:
		return emitAsciiArray(w, len(p.arrI64), func(i int) string {
			return strconv.FormatInt(p.arrI64[i], 10)
		})
	case TagBoolArray:
		return emitAsciiArray(w, len(p.arrB), func(i int) string {
			if p.arrB[i] {
				return "1"
			}
			return "0"
		})
	}
	return ErrInvalidProperty
}

// formatFloat renders the shortest representation that parses back to the
// exact same value at the given bit size (so 1.5 prints as "1.5"); the
// digit count therefore varies with the value.
func formatFloat(v float64, bitSize int) string {
	return strconv.FormatFloat(v, 'g', -1, bitSize)
}

func emitAsciiArray(w *AsciiWriter, n int, elem func(int) string) error {
	if err := w.raw(fmt.Sprintf("*%d {\n", n)); err != nil {
		return err
	}
	w.depth++
	if err := w.indent(); err != nil {
		return err
	}
	if err := w.raw("a: "); err != nil {
		return err
	}
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		parts[i] = elem(i)
	}
	if err := w.raw(strings.Join(parts, ",")); err != nil {
		return err
	}
	if err := w.raw("\n"); err != nil {
		return err
	}
	w.depth--
	if err := w.indent(); err != nil {
		return err
	}
	return w.raw("}")
}
