package scene

import (
	"testing"

	"github.com/Pallinder/go-randomdata"
	"github.com/go-gl/mathgl/mgl32"
)

// TestVertexDedupSoundness is spec.md §8's "vertex dedup soundness"
// invariant: equal source vertices must remap to the same table index, and
// every table entry must equal the vertex that produced it.
func TestVertexDedupSoundness(t *testing.T) {
	pool := make([]mgl32.Vec3, 20)
	for i := range pool {
		pool[i] = mgl32.Vec3{
			float32(randomdata.Number(-1000, 1000)),
			float32(randomdata.Number(-1000, 1000)),
			float32(randomdata.Number(-1000, 1000)),
		}
	}

	in := make([]mgl32.Vec3, 200)
	for i := range in {
		in[i] = pool[randomdata.Number(0, len(pool))]
	}

	unique, remap := dedupVec3(in)

	for i, v := range in {
		if unique[remap[i]] != v {
			t.Fatalf("unique[remap[%d]] = %v, want %v", i, unique[remap[i]], v)
		}
	}
	for i := range in {
		for j := range in {
			if in[i] == in[j] && remap[i] != remap[j] {
				t.Fatalf("equal source vertices %d,%d mapped to different table indices (%d != %d)",
					i, j, remap[i], remap[j])
			}
		}
	}
}

// TestPolygonTerminatorEncoding is spec.md §8's "polygon terminator"
// invariant: decoding PolygonVertexIndex reproduces the input faces iff the
// last index of every polygon is -(v+1) and no other index is negative.
func TestPolygonTerminatorEncoding(t *testing.T) {
	faces := [][]int{{0, 1, 2}, {0, 2, 3, 4}}
	remap := []int{0, 1, 2, 3, 4}

	out := buildPolygonVertexIndex(faces, remap)
	if len(out) != 7 {
		t.Fatalf("len(out) = %d, want 7", len(out))
	}

	pos := 0
	for _, face := range faces {
		for j := range face {
			isLast := j == len(face)-1
			v := out[pos]
			if isLast != (v < 0) {
				t.Errorf("index %d: negative=%v, want isLast=%v", pos, v < 0, isLast)
			}
			if isLast {
				decoded := -(v + 1)
				if int(decoded) != remap[face[j]] {
					t.Errorf("index %d: decoded terminator %d, want %d", pos, decoded, remap[face[j]])
				}
			}
			pos++
		}
	}
}
