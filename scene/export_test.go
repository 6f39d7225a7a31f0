package scene_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/mogaika/fbxexport/fbx"
	"github.com/mogaika/fbxexport/scene"
)

func childrenNamed(n *fbx.Node, name string) []*fbx.Node {
	var out []*fbx.Node
	for _, c := range n.Children {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// findP returns the first "P" entry of a Properties70 block whose name
// (first property) matches name, or nil.
func findP(p70 *fbx.Node, name string) *fbx.Node {
	if p70 == nil {
		return nil
	}
	for _, c := range p70.Children {
		if c.Name == "P" && len(c.Properties) > 0 && c.Properties[0].StringValue() == name {
			return c
		}
	}
	return nil
}

func approxEqual(a, b, eps float64) bool { return math.Abs(a-b) <= eps }

func TestEmptyScene(t *testing.T) {
	root := newFakeNode("Root")
	s := &fakeScene{root: root}

	doc, err := scene.NewExporter(scene.DefaultOptions()).Build(s)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	countNode := doc.Definitions.FindChild("Count")
	if countNode == nil || countNode.Properties[0].Int32() != 3 {
		t.Errorf("Definitions.Count = %v, want 3", countNode)
	}
	if len(doc.Objects.Children) != 0 {
		t.Errorf("Objects has %d children, want 0", len(doc.Objects.Children))
	}
	if len(doc.Connections.Children) != 0 {
		t.Errorf("Connections has %d children, want 0", len(doc.Connections.Children))
	}

	p70 := doc.GlobalSettings.FindChild("Properties70")
	if p70 == nil || len(p70.Children) != 21 {
		t.Errorf("GlobalSettings.Properties70 has %d entries, want 21", len(p70.Children))
	}
}

func TestUnitCube(t *testing.T) {
	mesh := loadMeshFixture(t, "cube.yaml")
	mat := newFakeMaterial("Default")

	root := newFakeNode("Root")
	modelNode := newFakeNode("Cube")
	modelNode.meshIdxs = []int{0}
	root.children = []scene.Node{modelNode}

	s := &fakeScene{root: root, meshes: []scene.Mesh{mesh}, materials: []scene.Material{mat}}

	doc, err := scene.NewExporter(scene.DefaultOptions()).Build(s)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	geoms := childrenNamed(doc.Objects, "Geometry")
	if len(geoms) != 1 {
		t.Fatalf("Objects has %d Geometry children, want 1", len(geoms))
	}
	vertices := geoms[0].FindChild("Vertices")
	if got := len(vertices.Properties[0].Float64Array()); got != 24 {
		t.Errorf("Vertices has %d doubles, want 24", got)
	}

	pvi := geoms[0].FindChild("PolygonVertexIndex").Properties[0].Int32Array()
	if len(pvi) != 24 {
		t.Fatalf("PolygonVertexIndex has %d entries, want 24", len(pvi))
	}
	for i, v := range pvi {
		wantNeg := (i+1)%4 == 0
		if (v < 0) != wantNeg {
			t.Errorf("PolygonVertexIndex[%d] = %d, want negative=%v", i, v, wantNeg)
		}
	}

	mats := childrenNamed(doc.Objects, "Material")
	if len(mats) != 1 {
		t.Fatalf("Objects has %d Material children, want 1", len(mats))
	}
	if got := mats[0].FindChild("ShadingModel").Properties[0].StringValue(); got != "lambert" {
		t.Errorf("ShadingModel = %q, want lambert", got)
	}

	models := childrenNamed(doc.Objects, "Model")
	if len(models) != 1 {
		t.Fatalf("Objects has %d Model children, want 1", len(models))
	}
	if got := models[0].Properties[2].StringValue(); got != "Mesh" {
		t.Errorf("Model kind = %q, want Mesh", got)
	}

	geomUID := geoms[0].Properties[0].Int64()
	matUID := mats[0].Properties[0].Int64()
	modelUID := models[0].Properties[0].Int64()

	wantConns := map[[2]int64]bool{
		{geomUID, modelUID}: false,
		{matUID, modelUID}:  false,
		{modelUID, 0}:       false,
	}
	for _, c := range doc.Connections.Children {
		if c.Properties[0].StringValue() != "OO" {
			continue
		}
		key := [2]int64{c.Properties[1].Int64(), c.Properties[2].Int64()}
		if _, ok := wantConns[key]; ok {
			wantConns[key] = true
		}
	}
	for k, found := range wantConns {
		if !found {
			t.Errorf("missing OO connection %v", k)
		}
	}
}

func TestTriangleWithNormalsAndUV(t *testing.T) {
	mesh := loadMeshFixture(t, "triangle.yaml")
	mat := newFakeMaterial("Default")

	root := newFakeNode("Root")
	modelNode := newFakeNode("Tri")
	modelNode.meshIdxs = []int{0}
	root.children = []scene.Node{modelNode}

	s := &fakeScene{root: root, meshes: []scene.Mesh{mesh}, materials: []scene.Material{mat}}

	doc, err := scene.NewExporter(scene.DefaultOptions()).Build(s)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	geom := childrenNamed(doc.Objects, "Geometry")[0]

	normals := geom.FindChild("LayerElementNormal").FindChild("Normals").Properties[0].Float64Array()
	if len(normals) != 9 {
		t.Errorf("Normals has %d doubles, want 9", len(normals))
	}

	uvLayer := geom.FindChild("LayerElementUV")
	uv := uvLayer.FindChild("UV").Properties[0].Float64Array()
	if len(uv) != 6 {
		t.Errorf("UV has %d doubles, want 6", len(uv))
	}
	uvIndex := uvLayer.FindChild("UVIndex").Properties[0].Int32Array()
	if len(uvIndex) != 2 {
		t.Errorf("UVIndex has %d entries, want 2 (one fewer than the 3 polygon-vertices)", len(uvIndex))
	}
}

func TestTwoMeshesUnderOneNode(t *testing.T) {
	meshA := &fakeMesh{
		verts: []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		faces: [][]int{{0, 1, 2}},
	}
	meshB := &fakeMesh{
		verts: []mgl32.Vec3{{0, 0, 1}, {1, 0, 1}, {0, 1, 1}},
		faces: [][]int{{0, 1, 2}},
	}
	mat := newFakeMaterial("Default")

	root := newFakeNode("Root")
	combined := newFakeNode("Combined")
	combined.meshIdxs = []int{0, 1}
	root.children = []scene.Node{combined}

	s := &fakeScene{
		root:      root,
		meshes:    []scene.Mesh{meshA, meshB},
		materials: []scene.Material{mat},
	}

	doc, err := scene.NewExporter(scene.DefaultOptions()).Build(s)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	models := childrenNamed(doc.Objects, "Model")
	if len(models) != 3 {
		t.Fatalf("Objects has %d Model children, want 3 (1 Null + 2 Mesh)", len(models))
	}

	var nullCount, meshCount int
	for _, m := range models {
		switch m.Properties[2].StringValue() {
		case "Null":
			nullCount++
		case "Mesh":
			meshCount++
		}
	}
	if nullCount != 1 || meshCount != 2 {
		t.Errorf("got %d Null + %d Mesh models, want 1 Null + 2 Mesh", nullCount, meshCount)
	}
}

func TestImportedTransformChainRoundTrip(t *testing.T) {
	leaf := newFakeNode("X")

	rotationNode := newFakeNode("X_$AssimpFbx$_Rotation")
	rotationNode.matrix = mgl32.HomogRotate3DX(mgl32.DegToRad(90))
	rotationNode.children = []scene.Node{leaf}

	translationNode := newFakeNode("X_$AssimpFbx$_Translation")
	translationNode.matrix = mgl32.Translate3D(1, 2, 3)
	translationNode.children = []scene.Node{rotationNode}

	root := newFakeNode("Root")
	root.children = []scene.Node{translationNode}

	s := &fakeScene{root: root}

	doc, err := scene.NewExporter(scene.DefaultOptions()).Build(s)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	models := childrenNamed(doc.Objects, "Model")
	if len(models) != 1 {
		t.Fatalf("Objects has %d Model children, want 1 (only \"X\")", len(models))
	}
	if got := models[0].Properties[1].StringValue(); got != "X\x00\x01Model" {
		t.Errorf("Model name = %q, want X\\x00\\x01Model", got)
	}

	p70 := models[0].FindChild("Properties70")
	translation := findP(p70, "Lcl Translation")
	rotation := findP(p70, "Lcl Rotation")
	if translation == nil || rotation == nil {
		t.Fatalf("Properties70 missing Lcl Translation/Lcl Rotation")
	}

	wantT := []float64{1, 2, 3}
	for i, want := range wantT {
		got := translation.Properties[4+i].Float64()
		if !approxEqual(got, want, 1e-4) {
			t.Errorf("Lcl Translation[%d] = %v, want %v", i, got, want)
		}
	}

	wantR := []float64{90, 0, 0}
	for i, want := range wantR {
		got := rotation.Properties[4+i].Float64()
		if !approxEqual(got, want, 1e-2) {
			t.Errorf("Lcl Rotation[%d] = %v, want %v", i, got, want)
		}
	}
}

func TestPhongMaterialShininess20(t *testing.T) {
	mat := newFakeMaterial("Shiny")
	mat.scalars[scene.Shininess] = 20
	mat.scalars[scene.Reflectivity] = 0.5

	root := newFakeNode("Root")
	s := &fakeScene{root: root, materials: []scene.Material{mat}}

	doc, err := scene.NewExporter(scene.DefaultOptions()).Build(s)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	matType := childrenNamed(doc.Definitions, "ObjectType")
	var found bool
	for _, ot := range matType {
		if ot.Properties[0].StringValue() != "Material" {
			continue
		}
		tpl := ot.FindChild("PropertyTemplate")
		if tpl.Properties[0].StringValue() != "FbxSurfacePhong" {
			t.Errorf("Material PropertyTemplate = %q, want FbxSurfacePhong", tpl.Properties[0].StringValue())
		}
		found = true
	}
	if !found {
		t.Fatalf("Definitions has no Material ObjectType")
	}

	materials := childrenNamed(doc.Objects, "Material")
	p70 := materials[0].FindChild("Properties70")

	exponent := findP(p70, "ShininessExponent")
	if exponent == nil || !approxEqual(exponent.Properties[4].Float64(), 20, 1e-6) {
		t.Errorf("ShininessExponent missing or wrong: %v", exponent)
	}
	legacy := findP(p70, "Shininess")
	if legacy == nil || !approxEqual(legacy.Properties[4].Float64(), 20, 1e-6) {
		t.Errorf("legacy Shininess missing or wrong: %v", legacy)
	}
	reflectivity := findP(p70, "Reflectivity")
	want := 0.5 * 0.5 * 0.25479
	if reflectivity == nil || !approxEqual(reflectivity.Properties[4].Float64(), want, 1e-6) {
		t.Errorf("Reflectivity missing or wrong: got %v, want %v", reflectivity, want)
	}
}
