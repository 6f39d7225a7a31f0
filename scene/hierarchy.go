package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"github.com/mogaika/fbxexport/fbx"
	"github.com/mogaika/fbxexport/fbx/builder"
)

// buildHierarchy walks the scene's node tree and emits Model records,
// implementing spec.md §4.4's "Model hierarchy" and §4.5's transform-chain
// collapse. The root scene node itself is never emitted (it carries the
// implicit UID 0, spec.md §3); only its descendants produce Model records.
func (e *Exporter) buildHierarchy(root Node) error {
	for _, child := range root.Children() {
		if err := e.walkNode(child, 0, nil); err != nil {
			return err
		}
	}
	return nil
}

// walkNode descends one scene node. chain accumulates transform-chain
// entries while passing through sentinel nodes (spec.md §4.5 step 1);
// parentUID is the Model UID (or 0 for the root) this node's own Model, if
// any, connects to.
func (e *Exporter) walkNode(n Node, parentUID int64, chain []chainEntry) error {
	if isSentinel(n.Name()) {
		children := n.Children()
		if len(children) != 1 {
			return errors.Wrapf(ErrMalformedTransformChain, "node %q has %d children", n.Name(), len(children))
		}

		element := chainElementName(n.Name())
		switch element {
		case "Translation", "RotationOffset", "RotationPivot", "PreRotation", "Rotation",
			"PostRotation", "RotationPivotInverse", "ScalingOffset", "ScalingPivot", "Scaling",
			"ScalingPivotInverse", "GeometricTranslation", "GeometricRotation", "GeometricScaling":
		default:
			return errors.Wrapf(&UnsupportedError{Feature: "transform chain element"}, "node %q element %q", n.Name(), element)
		}
		if propName := fbxChainPropertyName(element); propName != "" {
			trs := DecomposeTRS(n.Matrix())
			chain = append(chain, chainEntry{property: propName, value: chainComponentValue(element, trs)})
		}
		return e.walkNode(children[0], parentUID, chain)
	}

	uid := e.objects.allocUID()
	e.objects.modelCount++

	meshIndices := n.MeshIndices()
	kind := "Null"
	if len(meshIndices) == 1 {
		kind = "Mesh"
	}

	model := e.buildModel(uid, n.Name(), kind, chain, n.Matrix())
	e.objects.objectsNode.AddChild(model)
	e.objects.connect("OO", uid, parentUID)

	switch len(meshIndices) {
	case 0:
		// Null node, nothing further to connect.
	case 1:
		e.connectMesh(uid, meshIndices[0])
	default:
		for _, mi := range meshIndices {
			childUID := e.objects.allocUID()
			e.objects.modelCount++
			child := e.buildModel(childUID, fmt.Sprintf("%s_%d", n.Name(), mi), "Mesh", nil, mgl32.Ident4())
			e.objects.objectsNode.AddChild(child)
			e.objects.connect("OO", childUID, uid)
			e.connectMesh(childUID, mi)
		}
	}

	for _, c := range n.Children() {
		if err := e.walkNode(c, uid, nil); err != nil {
			return err
		}
	}
	return nil
}

// connectMesh wires a Model to its mesh and that mesh's material
// (spec.md §4.5 step 5).
func (e *Exporter) connectMesh(modelUID int64, meshIndex int) {
	if meshIndex < 0 || meshIndex >= len(e.objects.meshUID) {
		return
	}
	e.objects.connect("OO", e.objects.meshUID[meshIndex], modelUID)

	matIdx := e.objects.meshMaterialIdx[meshIndex]
	if matIdx >= 0 && matIdx < len(e.objects.materialUID) {
		e.objects.connect("OO", e.objects.materialUID[matIdx], modelUID)
	}
}

// buildModel constructs one Model record: header, Version=232, the
// Properties70 transform block, InheritType, Shading and Culling
// (spec.md §4.4's "Model hierarchy" subsection).
func (e *Exporter) buildModel(uid int64, name, kind string, chain []chainEntry, matrix mgl32.Mat4) *fbx.Node {
	model := builder.Model(uid, normalizeName(name)+"\x00\x01Model", kind)
	model.AddChild(builder.Version(232))

	p70 := builder.Properties70()
	addTransformProperties(p70, chain, matrix)
	p70.AddChild(builder.P("InheritType", "enum", "", "", int32(InheritRSrs)))
	model.AddChild(p70)

	model.AddChildren(
		N("Shading", builder.Bool(true)),
		N("Culling", builder.Str("CullingOff")),
	)
	return model
}

// chainComponentValue picks which decomposed TRS component a given
// transform-chain element name carries (spec.md §4.5 step 1): rotation
// elements use the decomposed rotation (degrees), scaling elements use the
// decomposed scale, and every offset/pivot/translation element uses the
// decomposed translation.
func chainComponentValue(element string, trs TRS) mgl32.Vec3 {
	switch element {
	case "Rotation", "PreRotation", "PostRotation", "GeometricRotation":
		return trs.Rotation
	case "Scaling", "GeometricScaling":
		return trs.Scaling
	default:
		return trs.Translation
	}
}

// addTransformProperties emits either the accumulated transform chain (one
// P70 entry per element, in order) or, when the chain is empty, the
// non-default components of matrix's own decomposition (spec.md §4.5
// steps 3).
func addTransformProperties(p70 *fbx.Node, chain []chainEntry, matrix mgl32.Mat4) {
	if len(chain) > 0 {
		for _, entry := range chain {
			p70.AddChild(chainPropertyNode(entry.property, entry.value))
		}
		return
	}

	trs := DecomposeTRS(matrix)
	if trs.Translation != (mgl32.Vec3{}) {
		p70.AddChild(chainPropertyNode("Lcl Translation", trs.Translation))
	}
	if trs.Rotation != (mgl32.Vec3{}) {
		p70.AddChild(chainPropertyNode("Lcl Rotation", trs.Rotation))
	}
	if trs.Scaling != (mgl32.Vec3{1, 1, 1}) {
		p70.AddChild(chainPropertyNode("Lcl Scaling", trs.Scaling))
	}
}

func chainPropertyNode(name string, v mgl32.Vec3) *fbx.Node {
	typ, subtype, flags := fbxPropertyType(name)
	return builder.P(name, typ, subtype, flags, f64(v[0]), f64(v[1]), f64(v[2]))
}

func fbxPropertyType(name string) (typ, subtype, flags string) {
	switch name {
	case "Lcl Translation", "Lcl Rotation", "Lcl Scaling":
		return name, "", "A"
	default:
		return "Vector3D", "Vector", ""
	}
}
