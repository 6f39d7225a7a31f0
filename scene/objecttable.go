package scene

import (
	"github.com/mogaika/fbxexport/fbx"
	"github.com/mogaika/fbxexport/fbx/builder"
)

// objectTable is the per-export mutable state of spec.md §3: the UID
// counter, per-kind UID maps, the texture dedup map, and the ordered
// connection list. It is owned exclusively by one Exporter call and never
// exposed outside package scene, mirroring the teacher's FBXBuilder (which
// held the analogous lastId counter and objects/connections nodes).
type objectTable struct {
	nextUID int64

	meshUID         []int64
	meshMaterialIdx []int
	materialUID     []int64
	textureUID      map[string]int64 // keyed by resolved texture path

	connections []*fbx.Node
	objectsNode *fbx.Node

	modelCount   int32
	textureCount int32
}

func newObjectTable(seed int64) *objectTable {
	return &objectTable{
		nextUID:     seed,
		textureUID:  make(map[string]int64),
		objectsNode: builder.Objects(),
	}
}

func (t *objectTable) allocUID() int64 {
	uid := t.nextUID
	t.nextUID++
	return uid
}

func (t *objectTable) connect(kind string, from, to int64, property ...string) {
	t.connections = append(t.connections, builder.C(kind, from, to, property...))
}
