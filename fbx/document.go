package fbx

import "io"

// FBXVersion is the file format version this module writes (FBX 7.4,
// spec.md §1/§6).
const FBXVersion uint32 = 7400

// binaryMagic is the fixed 23-byte binary file signature from spec.md §6:
// "Kaydara FBX Binary  " followed by 0x00 0x1A 0x00.
var binaryMagic = []byte{
	'K', 'a', 'y', 'd', 'a', 'r', 'a', ' ', 'F', 'B', 'X', ' ', 'B', 'i', 'n', 'a', 'r', 'y', ' ', ' ',
	0x00, 0x1A, 0x00,
}

// footMagic and footTail are the fixed literal byte sequences the binary
// footer embeds (spec.md §4.3.2, §9: "a fixed FileId magic is accepted by
// all known consumers" — the footer magics are the same kind of
// compatibility literal, carried over from original_source/code/FBXExporter.cpp's
// GENERIC_FOOTID and the unnamed 16-byte tail).
var footMagic = []byte{
	0xfa, 0xbc, 0xab, 0x09, 0xd0, 0xc8, 0xd4, 0x66,
	0xb1, 0x76, 0xfb, 0x83, 0x1c, 0xf7, 0x26, 0x7e,
}

var footTail = []byte{
	0xf8, 0x5a, 0x8c, 0x6a, 0xde, 0xf5, 0xd9, 0x7e,
	0xec, 0xe9, 0x0c, 0xe3, 0x75, 0x8f, 0x29, 0x0b,
}

// Document is the fixed top-level section sequence of spec.md §3:
//
//	FBXHeaderExtension, FileId, CreationTime, Creator,
//	GlobalSettings, Documents, References, Definitions, Objects, Connections
//
// Package scene assembles a Document from a scene (scene.Exporter.Build),
// building the skeleton sections with fbx/builder's helpers.
type Document struct {
	HeaderExtension *Node
	FileId          *Node
	CreationTime    *Node
	Creator         *Node
	GlobalSettings  *Node
	Documents       *Node
	References      *Node
	Definitions     *Node
	Objects         *Node
	Connections     *Node
}

func (d *Document) sections() []*Node {
	return []*Node{
		d.HeaderExtension, d.FileId, d.CreationTime, d.Creator,
		d.GlobalSettings, d.Documents, d.References, d.Definitions,
		d.Objects, d.Connections,
	}
}

// WriteBinary emits the complete binary FBX file: the fixed file header,
// every top-level section in spec.md §3's order, the top-level list's own
// NULL_RECORD terminator, and the binary footer of spec.md §4.3.2.
func (d *Document) WriteBinary(sink io.WriteSeeker) error {
	w := NewBinaryWriter(sink)

	if err := w.putBytes(binaryMagic); err != nil {
		return err
	}
	if err := w.putUint32(FBXVersion); err != nil {
		return err
	}

	for _, section := range d.sections() {
		if section == nil {
			continue
		}
		if err := section.EmitBinary(w); err != nil {
			return err
		}
	}

	// the implicit top-level sibling list (FBXHeaderExtension..Connections)
	// closes with its own NULL_RECORD, same as any other children list.
	if err := w.putBytes(make([]byte, nullRecordSize)); err != nil {
		return err
	}

	return d.writeBinaryFooter(w)
}

func (d *Document) writeBinaryFooter(w *BinaryWriter) error {
	if err := w.putBytes(footMagic); err != nil {
		return err
	}
	if err := w.putBytes(make([]byte, 4)); err != nil {
		return err
	}

	pos, err := w.Tell()
	if err != nil {
		return err
	}
	pad := 16 - int(pos%16)
	if err := w.putBytes(make([]byte, pad)); err != nil {
		return err
	}

	if err := w.putUint32(FBXVersion); err != nil {
		return err
	}
	if err := w.putBytes(make([]byte, 120)); err != nil {
		return err
	}
	return w.putBytes(footTail)
}

// asciiHeaderLines is the leading comment block every mainstream ASCII FBX
// writer (including assimp's own) prepends; spec.md's grammar doesn't
// forbid it and real consumers expect it.
var asciiHeaderLines = []string{
	"; FBX 7.4.0 project file",
	"; Created by the fbxexport Go module",
	"; -------------------------------------------------",
	"",
}

// WriteAscii emits the complete ASCII FBX file: the leading comment block
// followed by every top-level section in order. ASCII files carry no
// footer (spec.md §4.3 item 10 is binary-only).
func (d *Document) WriteAscii(sink io.Writer) error {
	for _, line := range asciiHeaderLines {
		if _, err := io.WriteString(sink, line+"\n"); err != nil {
			return err
		}
	}

	w := NewAsciiWriter(sink)
	for _, section := range d.sections() {
		if section == nil {
			continue
		}
		if err := section.EmitAscii(w); err != nil {
			return err
		}
	}
	return nil
}
