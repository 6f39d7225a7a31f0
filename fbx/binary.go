package fbx

import "github.com/pkg/errors"

// ErrNameTooLong is returned when a Node's name does not fit the one-byte
// length prefix the binary format uses (spec.md §3: "name ... length fits
// in one byte").
var ErrNameTooLong = errors.New("fbx: node name longer than 255 bytes")

// EmitBinary writes the node and its subtree using the binary record layout
// of spec.md §4.2. It reserves four bytes for end_offset, writes the body,
// then seeks back to patch the placeholder — the "write placeholder, seek
// back" strategy documented in DESIGN NOTES §9, mirroring assimp's
// Node::Begin/EndProperties/End exactly (original_source/code/FBXExporter.h).
func (n *Node) EmitBinary(w *BinaryWriter) error {
	if len(n.Name) > 255 {
		return errors.Wrapf(ErrNameTooLong, "%q", n.Name)
	}

	startPos, err := w.Tell()
	if err != nil {
		return err
	}

	if err := w.putUint32(0); err != nil { // end_offset placeholder
		return err
	}
	if err := w.putUint32(uint32(len(n.Properties))); err != nil {
		return err
	}
	if err := w.putUint32(uint32(n.propertyListSize())); err != nil {
		return err
	}
	if err := w.putUint8(byte(len(n.Name))); err != nil {
		return err
	}
	if err := w.putBytes([]byte(n.Name)); err != nil {
		return err
	}

	for _, p := range n.Properties {
		if err := p.EmitBinary(w); err != nil {
			return errors.Wrapf(err, "node %q", n.Name)
		}
	}

	for _, c := range n.Children {
		if err := c.EmitBinary(w); err != nil {
			return err
		}
	}

	if len(n.Children) > 0 {
		if err := w.putBytes(make([]byte, nullRecordSize)); err != nil {
			return err
		}
	}

	endPos, err := w.Tell()
	if err != nil {
		return err
	}
	if err := w.SeekTo(startPos); err != nil {
		return err
	}
	if err := w.putUint32(uint32(endPos)); err != nil {
		return err
	}
	return w.SeekTo(endPos)
}
