package fbx_test

import (
	"bytes"
	"encoding/binary"
	"reflect"
	"testing"

	"github.com/davecgh/go-spew/spew"

	"github.com/mogaika/fbxexport/fbx"
)

func sampleTree() *fbx.Node {
	return fbx.NewNode("Root", fbx.NewString("root-prop")).AddChildren(
		fbx.NewNode("Leaf1", fbx.NewInt32(7), fbx.NewFloat64(1.5)),
		fbx.NewNode("Leaf2"),
		fbx.NewNode("Branch").AddChild(
			fbx.NewNode("Grandchild", fbx.NewInt32Array([]int32{1, -2, 3})),
		),
	)
}

// TestRoundTripThroughNodeTree is spec.md §8's "round trip through the node
// tree" invariant: emitting and re-parsing a built Record tree yields a
// structurally identical tree.
func TestRoundTripThroughNodeTree(t *testing.T) {
	original := sampleTree()

	buf := &seekBuffer{}
	w := fbx.NewBinaryWriter(buf)
	if err := original.EmitBinary(w); err != nil {
		t.Fatalf("EmitBinary: %v", err)
	}

	decoded, err := fbx.DecodeNode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("DecodeNode: %v", err)
	}

	if !reflect.DeepEqual(original, decoded) {
		t.Errorf("round trip mismatch:\noriginal: %s\ndecoded:  %s",
			spew.Sdump(original), spew.Sdump(decoded))
	}
}

// TestRecordOffsetClosure is spec.md §8's "record offset closure" invariant:
// end_offset must equal the position immediately after the node's last
// child (or its NULL_RECORD terminator).
func TestRecordOffsetClosure(t *testing.T) {
	n := fbx.NewNode("Parent", fbx.NewInt32(1)).AddChildren(
		fbx.NewNode("Child", fbx.NewFloat64(2.5)),
	)

	buf := &seekBuffer{}
	w := fbx.NewBinaryWriter(buf)
	if err := n.EmitBinary(w); err != nil {
		t.Fatalf("EmitBinary: %v", err)
	}

	raw := buf.Bytes()
	endOffset := binary.LittleEndian.Uint32(raw[0:4])
	if int(endOffset) != len(raw) {
		t.Errorf("end_offset = %d, want %d (total emitted length)", endOffset, len(raw))
	}
}

// TestPropertyListSizeField checks the property_list_size header field
// against the sum of each property's WireSize (spec.md §8's "property size
// accounting" invariant, read straight off the wire this time instead of
// through DecodeNode, which ignores the field).
func TestPropertyListSizeField(t *testing.T) {
	n := fbx.NewNode("N", fbx.NewInt32(1), fbx.NewString("abc"), fbx.NewFloat64(2))
	want := 0
	for _, p := range n.Properties {
		want += p.WireSize()
	}

	buf := &seekBuffer{}
	w := fbx.NewBinaryWriter(buf)
	if err := n.EmitBinary(w); err != nil {
		t.Fatalf("EmitBinary: %v", err)
	}

	raw := buf.Bytes()
	propListSize := binary.LittleEndian.Uint32(raw[8:12])
	if int(propListSize) != want {
		t.Errorf("property_list_size = %d, want %d", propListSize, want)
	}
}

func TestNameTooLong(t *testing.T) {
	longName := make([]byte, 256)
	for i := range longName {
		longName[i] = 'a'
	}
	n := fbx.NewNode(string(longName))

	buf := &seekBuffer{}
	w := fbx.NewBinaryWriter(buf)
	if err := n.EmitBinary(w); err == nil {
		t.Error("EmitBinary: want error for a 256-byte node name, got nil")
	}
}
