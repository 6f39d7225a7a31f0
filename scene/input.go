// Package scene translates a read-only in-memory 3D scene graph into an
// FBX 7.4 document built from package fbx and fbx/builder — the
// counterpart of the teacher's pack/wad/*/export_fbx.go translators, which
// consumed utils/fbxbuilder the same way this package consumes fbx/builder.
package scene

import "github.com/go-gl/mathgl/mgl32"

// Scene is the read-only scene graph adapter this package translates. The
// caller owns the underlying data; Scene is consulted once per Build call
// and never mutated.
type Scene interface {
	Root() Node
	Meshes() []Mesh
	Materials() []Material
}

// Node is one node of the scene's transform hierarchy.
type Node interface {
	Name() string
	Matrix() mgl32.Mat4
	MeshIndices() []int
	Children() []Node
}

// UV is one texture coordinate; W is only meaningful when the source mesh
// declared 3-component UVs (§4.4's 2-vs-3 coercion still drops it).
type UV struct {
	U, V, W float32
}

// Mesh is one input mesh, indexed by position in Scene.Meshes().
type Mesh interface {
	Vertices() []mgl32.Vec3
	Normals() []mgl32.Vec3 // nil if the source mesh has none
	UVChannels() [][]UV
	Faces() [][]int
	MaterialIndex() int
}

// ColorKey enumerates the material color properties spec.md §6 names.
type ColorKey int

const (
	ColorAmbient ColorKey = iota
	ColorDiffuse
	ColorSpecular
	ColorEmissive
	ColorTransparent
)

// ScalarKey enumerates the material scalar properties spec.md §6 names.
type ScalarKey int

const (
	Shininess ScalarKey = iota
	Reflectivity
	Opacity
)

// TextureKind enumerates the texture slot kinds a material can expose.
// Only Diffuse is ever consumed (spec.md §4.4's texture translation is
// diffuse-only); the others are named for completeness since Material's
// interface is otherwise general-purpose.
type TextureKind int

const (
	TextureDiffuse TextureKind = iota
	TextureAmbient
	TextureSpecular
	TextureEmissive
)

// Material is one input material, indexed by position in Scene.Materials().
type Material interface {
	Name() string
	Color(key ColorKey) [3]float32
	Scalar(key ScalarKey) float32
	HasScalar(key ScalarKey) bool
	TextureCount(kind TextureKind) int
	TexturePath(kind TextureKind, i int) string
}

// Logger receives non-fatal degradation warnings (spec.md §6/§7), such as a
// 3-component UV channel being coerced down to 2 components.
type Logger interface {
	Warnf(format string, args ...interface{})
}
