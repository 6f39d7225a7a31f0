package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"github.com/mogaika/fbxexport/fbx"
	"github.com/mogaika/fbxexport/fbx/builder"
)

// buildGeometry translates one input mesh into a Geometry record per
// spec.md §4.4's Geometry subsection, grounded on the teacher's
// pack/wad/mesh/export_fbx.go (vertex/index emission shape) generalized
// from a fixed GoW vertex format to the generic scene.Mesh interface.
func (e *Exporter) buildGeometry(index int, mesh Mesh) (*fbx.Node, int64, error) {
	uid := e.objects.allocUID()
	name := fmt.Sprintf("%d\x00\x01Geometry", index)

	unique, remap := dedupVec3(mesh.Vertices())

	g := builder.Geometry(uid, name, "Mesh")
	g.AddChild(N("GeometryVersion", builder.I32(124)))
	g.AddChild(verticesNode(unique))

	polyIndex := buildPolygonVertexIndex(mesh.Faces(), remap)
	g.AddChild(N("PolygonVertexIndex", fbx.NewInt32Array(polyIndex)))

	hasNormals := mesh.Normals() != nil
	if hasNormals {
		g.AddChild(buildNormalLayer(mesh.Faces(), mesh.Normals()))
	}

	uvChannels := mesh.UVChannels()
	hasUV := len(uvChannels) > 0
	if hasUV {
		uvLayer, err := e.buildUVLayer(0, mesh.Faces(), uvChannels[0])
		if err != nil {
			return nil, 0, errors.Wrapf(err, "geometry %d", index)
		}
		g.AddChild(uvLayer)
		for k := 1; k < len(uvChannels); k++ {
			e.warnf("geometry %d: UV channel %d dropped (only channel 0 is exported)", index, k)
		}
	}

	g.AddChild(buildMaterialLayer())
	g.AddChild(buildLayer(hasNormals, hasUV))

	return g, uid, nil
}

// N is a package-local alias matching fbx/builder's own N, used here to
// build plain leaf nodes outside the builder package's helper set.
func N(name string, props ...*fbx.Property) *fbx.Node { return fbx.NewNode(name, props...) }

func verticesNode(unique []mgl32.Vec3) *fbx.Node {
	flat := make([]float64, 0, len(unique)*3)
	for _, v := range unique {
		flat = append(flat, float64(v[0]), float64(v[1]), float64(v[2]))
	}
	return N("Vertices", fbx.NewFloat64Array(flat))
}

// dedupVec3 builds a deduplicated table keyed by exact (x,y,z) equality
// (spec.md §4.4/§8's vertex-dedup invariant) and returns, for each source
// vertex, its index into the table.
func dedupVec3(in []mgl32.Vec3) (unique []mgl32.Vec3, remap []int) {
	index := make(map[mgl32.Vec3]int, len(in))
	remap = make([]int, len(in))
	for i, v := range in {
		if idx, ok := index[v]; ok {
			remap[i] = idx
			continue
		}
		idx := len(unique)
		index[v] = idx
		unique = append(unique, v)
		remap[i] = idx
	}
	return unique, remap
}

// buildPolygonVertexIndex applies spec.md §4.4's mandatory polygon
// terminator encoding: the last index of every face is replaced by
// -(idx+1).
func buildPolygonVertexIndex(faces [][]int, remap []int) []int32 {
	total := 0
	for _, f := range faces {
		total += len(f)
	}
	out := make([]int32, 0, total)
	for _, face := range faces {
		for j, srcIdx := range face {
			idx := int32(remap[srcIdx])
			if j == len(face)-1 {
				idx = -(idx + 1)
			}
			out = append(out, idx)
		}
	}
	return out
}

// buildNormalLayer emits LayerElementNormal with one normal per
// polygon-vertex, looked up from the per-source-vertex Normals() list
// (spec.md §4.4).
func buildNormalLayer(faces [][]int, normals []mgl32.Vec3) *fbx.Node {
	flat := make([]float64, 0)
	for _, face := range faces {
		for _, srcIdx := range face {
			n := normals[srcIdx]
			flat = append(flat, float64(n[0]), float64(n[1]), float64(n[2]))
		}
	}
	return N("LayerElementNormal",
		builder.I32(0)).AddChildren(
		builder.Version(102),
		N("Name", builder.Str("")),
		N("MappingInformationType", builder.Str("ByPolygonVertex")),
		N("ReferenceInformationType", builder.Str("Direct")),
		N("Normals", fbx.NewFloat64Array(flat)),
	)
}

// buildUVLayer emits LayerElementUV for one channel. UVs are deduplicated
// by exact equality and referenced via UVIndex (IndexToDirect); per
// spec.md §4.4's documented off-by-one, the last vertex of every face is
// not assigned a UVIndex entry.
func (e *Exporter) buildUVLayer(channel int, faces [][]int, uvs []UV) (*fbx.Node, error) {
	coerced := make([]UV, len(uvs))
	for i, uv := range uvs {
		if uv.W != 0 {
			e.warnf("UV channel %d: 3-component UV coerced to 2 components", channel)
		}
		coerced[i] = UV{U: uv.U, V: uv.V}
	}

	unique, remap := dedupUV(coerced)
	flat := make([]float64, 0, len(unique)*2)
	for _, uv := range unique {
		flat = append(flat, float64(uv.U), float64(uv.V))
	}

	var indices []int32
	for _, face := range faces {
		if len(face) == 0 {
			continue
		}
		for _, srcIdx := range face[:len(face)-1] {
			indices = append(indices, int32(remap[srcIdx]))
		}
	}

	return N("LayerElementUV", builder.I32(int32(channel))).AddChildren(
		builder.Version(101),
		N("Name", builder.Str("")),
		N("MappingInformationType", builder.Str("ByPolygonVertex")),
		N("ReferenceInformationType", builder.Str("IndexToDirect")),
		N("UV", fbx.NewFloat64Array(flat)),
		N("UVIndex", fbx.NewInt32Array(indices)),
	), nil
}

func dedupUV(in []UV) (unique []UV, remap []int) {
	index := make(map[UV]int, len(in))
	remap = make([]int, len(in))
	for i, uv := range in {
		if idx, ok := index[uv]; ok {
			remap[i] = idx
			continue
		}
		idx := len(unique)
		index[uv] = idx
		unique = append(unique, uv)
		remap[i] = idx
	}
	return unique, remap
}

func buildMaterialLayer() *fbx.Node {
	return N("LayerElementMaterial", builder.I32(0)).AddChildren(
		builder.Version(101),
		N("Name", builder.Str("")),
		N("MappingInformationType", builder.Str("AllSame")),
		N("ReferenceInformationType", builder.Str("IndexToDirect")),
		N("Materials", fbx.NewInt32Array([]int32{0})),
	)
}

func buildLayer(hasNormals, hasUV bool) *fbx.Node {
	layer := N("Layer", builder.I32(0)).AddChild(builder.Version(100))
	if hasNormals {
		layer.AddChild(layerElementRef("LayerElementNormal"))
	}
	layer.AddChild(layerElementRef("LayerElementMaterial"))
	if hasUV {
		layer.AddChild(layerElementRef("LayerElementUV"))
	}
	return layer
}

func layerElementRef(typ string) *fbx.Node {
	return N("LayerElement").AddChildren(
		N("Type", builder.Str(typ)),
		N("TypedIndex", builder.I32(0)),
	)
}
