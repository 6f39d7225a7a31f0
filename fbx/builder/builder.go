// Package builder supplies small node-constructor helpers for the fixed
// FBX document skeleton, grounded on the teacher's consumer usage of
// github.com/mogaika/fbx/builders/bfbx73 (utils/fbxbuilder/fbxbuilder.go and
// the pack/wad/*/export_fbx.go files). fbx and fbx/builder have no notion
// of meshes or materials; package scene builds on top of this package's
// helpers the way the teacher's export_fbx.go files built on bfbx73.
package builder

import (
	"fmt"

	"github.com/mogaika/fbxexport/fbx"
)

// N builds a leaf or parent node from an already-constructed Property list.
// Most helpers below are thin named wrappers over this, mirroring how every
// bfbx73 function was ultimately a call into the same node constructor.
func N(name string, props ...*fbx.Property) *fbx.Node {
	return fbx.NewNode(name, props...)
}

// Str, I32, I64, F64, Bool are short aliases for the fbx.Property
// constructors most often used while assembling the skeleton, matching the
// terseness of bfbx73's own wrappers.
func Str(v string) *fbx.Property  { return fbx.NewString(v) }
func I32(v int32) *fbx.Property   { return fbx.NewInt32(v) }
func I64(v int64) *fbx.Property   { return fbx.NewInt64(v) }
func F64(v float64) *fbx.Property { return fbx.NewFloat64(v) }
func Bool(v bool) *fbx.Property   { return fbx.NewBool(v) }

// Version emits a "Version: n" leaf, used throughout the skeleton.
func Version(v int32) *fbx.Node { return N("Version", I32(v)) }

// Count emits a "Count: n" leaf, used by Definitions/ObjectType blocks.
func Count(v int32) *fbx.Node { return N("Count", I32(v)) }

// Properties70 starts a Properties70 block; callers AddChild each P node.
func Properties70() *fbx.Node { return N("Properties70") }

// P builds one Properties70 entry. typ and subtype are the FBX property
// type name and its UI subtype (e.g. "double", "Number"); flags is usually
// "" or "A" (animatable). values holds one Go value per property component
// (a single scalar, or 3 float64s for a color/vector) — P is a builder
// convenience that type-switches the way bfbx73.P did; it does not
// bypass fbx.Property's typed constructors, it calls them.
func P(name, typ, subtype, flags string, values ...interface{}) *fbx.Node {
	props := []*fbx.Property{Str(name), Str(typ), Str(subtype), Str(flags)}
	for _, v := range values {
		props = append(props, toProperty(v))
	}
	return N("P", props...)
}

func toProperty(v interface{}) *fbx.Property {
	switch x := v.(type) {
	case bool:
		return fbx.NewBool(x)
	case int16:
		return fbx.NewInt16(x)
	case int32:
		return fbx.NewInt32(x)
	case int64:
		return fbx.NewInt64(x)
	case float32:
		return fbx.NewFloat32(x)
	case float64:
		return fbx.NewFloat64(x)
	case string:
		return fbx.NewString(x)
	case []byte:
		return fbx.NewRaw(x)
	default:
		panic(fmt.Sprintf("fbx/builder: P: unsupported value type %T", v))
	}
}

// ObjectType starts a Definitions "ObjectType: %q" block.
func ObjectType(name string) *fbx.Node { return N("ObjectType", Str(name)) }

// PropertyTemplate starts an ObjectType's "PropertyTemplate: %q" block.
func PropertyTemplate(name string) *fbx.Node { return N("PropertyTemplate", Str(name)) }

// FBXHeaderExtension, FileId, CreationTime, Creator, GlobalSettings,
// Documents, Document, References, Definitions, Objects, Connections build
// the fixed top-level sections of spec.md §3, in the order fbx.Document
// expects them.
func FBXHeaderExtension() *fbx.Node { return N("FBXHeaderExtension") }
func FileId(id []byte) *fbx.Node    { return N("FileId", fbx.NewRaw(id)) }
func CreationTime(v string) *fbx.Node { return N("CreationTime", Str(v)) }
func Creator(v string) *fbx.Node      { return N("Creator", Str(v)) }
func GlobalSettings() *fbx.Node       { return N("GlobalSettings") }
func Documents() *fbx.Node            { return N("Documents") }
func References() *fbx.Node           { return N("References") }
func Definitions() *fbx.Node          { return N("Definitions") }
func Objects() *fbx.Node              { return N("Objects") }
func Connections() *fbx.Node          { return N("Connections") }

// Document builds one entry of the Documents block.
func Document(id int64, name, class string) *fbx.Node {
	return N("Document", I64(id), Str(name), Str(class))
}

// RootNode points a Document at its root model, conventionally id 0.
func RootNode(id int64) *fbx.Node { return N("RootNode", I64(id)) }

// CreationTimeStamp starts the FBXHeaderExtension's CreationTimeStamp block.
func CreationTimeStamp() *fbx.Node { return N("CreationTimeStamp") }

// FBXHeaderVersion, FBXVersion, EncryptionType are leaves inside
// FBXHeaderExtension.
func FBXHeaderVersion(v int32) *fbx.Node { return N("FBXHeaderVersion", I32(v)) }
func FBXVersionNode(v int32) *fbx.Node   { return N("FBXVersion", I32(v)) }
func EncryptionType(v int32) *fbx.Node   { return N("EncryptionType", I32(v)) }

// Model, Geometry, Material, Texture, NodeAttribute build the Objects
// block's per-object headers; callers AddChild the object's own data nodes
// (Properties70, vertex arrays, and so on) afterward.
func Model(id int64, name, kind string) *fbx.Node {
	return N("Model", I64(id), Str(name), Str(kind))
}
func Geometry(id int64, name, kind string) *fbx.Node {
	return N("Geometry", I64(id), Str(name), Str(kind))
}
func Material(id int64, name string) *fbx.Node {
	return N("Material", I64(id), Str(name), Str(""))
}
func Texture(id int64, name string) *fbx.Node {
	return N("Texture", I64(id), Str(name), Str(""))
}
func NodeAttribute(id int64, name, kind string) *fbx.Node {
	return N("NodeAttribute", I64(id), Str(name), Str(kind))
}
func Video(id int64, name string) *fbx.Node {
	return N("Video", I64(id), Str(name), Str("Clip"))
}

// C builds one Connections entry: kind is "OO" (object-object) or "OP"
// (object-property); property is only meaningful for "OP" connections and
// is omitted for "OO".
func C(kind string, from, to int64, property ...string) *fbx.Node {
	props := []*fbx.Property{Str(kind), I64(from), I64(to)}
	for _, p := range property {
		props = append(props, Str(p))
	}
	return N("C", props...)
}
