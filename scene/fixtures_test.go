package scene_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"

	"github.com/mogaika/fbxexport/scene"
)

// meshFixture is the on-disk shape of scene/testdata/*.yaml: a plain mesh
// description small enough to hand-author per end-to-end scenario, loaded
// with the same library the teacher's sibling WAD config parsing uses.
type meshFixture struct {
	Vertices      [][3]float32 `yaml:"vertices"`
	Normals       [][3]float32 `yaml:"normals"`
	UV            [][2]float32 `yaml:"uv"`
	Faces         [][]int      `yaml:"faces"`
	MaterialIndex int          `yaml:"material_index"`
}

func loadMeshFixture(t *testing.T, name string) *fakeMesh {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("loadMeshFixture(%q): %v", name, err)
	}
	var fx meshFixture
	if err := yaml.Unmarshal(raw, &fx); err != nil {
		t.Fatalf("loadMeshFixture(%q): %v", name, err)
	}

	m := &fakeMesh{faces: fx.Faces, matIndex: fx.MaterialIndex}
	for _, v := range fx.Vertices {
		m.verts = append(m.verts, mgl32.Vec3{v[0], v[1], v[2]})
	}
	if len(fx.Normals) > 0 {
		for _, n := range fx.Normals {
			m.normals = append(m.normals, mgl32.Vec3{n[0], n[1], n[2]})
		}
	}
	if len(fx.UV) > 0 {
		channel := make([]scene.UV, len(fx.UV))
		for i, uv := range fx.UV {
			channel[i] = scene.UV{U: uv[0], V: uv[1]}
		}
		m.uvChannels = [][]scene.UV{channel}
	}
	return m
}

// fakeMesh implements scene.Mesh over plain in-memory slices.
type fakeMesh struct {
	verts      []mgl32.Vec3
	normals    []mgl32.Vec3
	uvChannels [][]scene.UV
	faces      [][]int
	matIndex   int
}

func (m *fakeMesh) Vertices() []mgl32.Vec3    { return m.verts }
func (m *fakeMesh) Normals() []mgl32.Vec3     { return m.normals }
func (m *fakeMesh) UVChannels() [][]scene.UV  { return m.uvChannels }
func (m *fakeMesh) Faces() [][]int            { return m.faces }
func (m *fakeMesh) MaterialIndex() int        { return m.matIndex }

// fakeMaterial implements scene.Material with explicit per-key maps, so
// each test only has to populate the keys it cares about.
type fakeMaterial struct {
	name     string
	colors   map[scene.ColorKey][3]float32
	scalars  map[scene.ScalarKey]float32
	texPaths map[scene.TextureKind][]string
}

func newFakeMaterial(name string) *fakeMaterial {
	return &fakeMaterial{
		name:     name,
		colors:   make(map[scene.ColorKey][3]float32),
		scalars:  make(map[scene.ScalarKey]float32),
		texPaths: make(map[scene.TextureKind][]string),
	}
}

func (m *fakeMaterial) Name() string { return m.name }
func (m *fakeMaterial) Color(key scene.ColorKey) [3]float32 {
	if c, ok := m.colors[key]; ok {
		return c
	}
	return [3]float32{0, 0, 0}
}
func (m *fakeMaterial) Scalar(key scene.ScalarKey) float32 { return m.scalars[key] }
func (m *fakeMaterial) HasScalar(key scene.ScalarKey) bool { _, ok := m.scalars[key]; return ok }
func (m *fakeMaterial) TextureCount(kind scene.TextureKind) int {
	return len(m.texPaths[kind])
}
func (m *fakeMaterial) TexturePath(kind scene.TextureKind, i int) string {
	return m.texPaths[kind][i]
}

// fakeNode implements scene.Node as a plain tree.
type fakeNode struct {
	name     string
	matrix   mgl32.Mat4
	meshIdxs []int
	children []scene.Node
}

func newFakeNode(name string) *fakeNode {
	return &fakeNode{name: name, matrix: mgl32.Ident4()}
}

func (n *fakeNode) Name() string          { return n.name }
func (n *fakeNode) Matrix() mgl32.Mat4    { return n.matrix }
func (n *fakeNode) MeshIndices() []int    { return n.meshIdxs }
func (n *fakeNode) Children() []scene.Node { return n.children }

// fakeScene implements scene.Scene.
type fakeScene struct {
	root      scene.Node
	meshes    []scene.Mesh
	materials []scene.Material
}

func (s *fakeScene) Root() scene.Node            { return s.root }
func (s *fakeScene) Meshes() []scene.Mesh        { return s.meshes }
func (s *fakeScene) Materials() []scene.Material { return s.materials }
