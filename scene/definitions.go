package scene

import (
	"github.com/mogaika/fbxexport/fbx"
	"github.com/mogaika/fbxexport/fbx/builder"
)

// buildDefinitions assembles the Definitions record of spec.md §4.3.1.
// GlobalSettings/AnimationStack/AnimationLayer are always present with
// count 1; every other category is present only when its count is
// positive, matching the "empty Objects" end-to-end scenario where
// Definitions.Count is exactly 3.
func (e *Exporter) buildDefinitions(meshCount, materialCount int, anyPhong bool) *fbx.Node {
	materialTemplate := "FbxSurfaceLambert"
	if anyPhong {
		materialTemplate = "FbxSurfacePhong"
	}

	total := int32(3) // GlobalSettings + AnimationStack + AnimationLayer, always present
	if e.objects.modelCount > 0 {
		total += e.objects.modelCount
	}
	if meshCount > 0 {
		total += int32(meshCount)
	}
	if materialCount > 0 {
		total += int32(materialCount)
	}
	if e.objects.textureCount > 0 {
		total += e.objects.textureCount
	}

	def := builder.Definitions().AddChildren(
		builder.Version(100),
		builder.Count(total),
		objectTypeWithTemplate("GlobalSettings", 1, ""),
		objectTypeWithTemplate("AnimationStack", 1, "FBXAnimLayer"),
		objectTypeWithTemplate("AnimationLayer", 1, "FBXAnimLayer"),
	)

	if e.objects.modelCount > 0 {
		def.AddChild(modelObjectType(e.objects.modelCount))
	}
	if meshCount > 0 {
		def.AddChild(geometryObjectType(int32(meshCount)))
	}
	if materialCount > 0 {
		def.AddChild(materialObjectType(int32(materialCount), materialTemplate))
	}
	if e.objects.textureCount > 0 {
		def.AddChild(textureObjectType(e.objects.textureCount))
	}

	return def
}

func objectTypeWithTemplate(name string, count int32, template string) *fbx.Node {
	ot := builder.ObjectType(name).AddChild(builder.Count(count))
	if template != "" {
		ot.AddChild(builder.PropertyTemplate(template))
	}
	return ot
}

func modelObjectType(count int32) *fbx.Node {
	return builder.ObjectType("Model").AddChildren(
		builder.Count(count),
		builder.PropertyTemplate("FbxNode").AddChild(
			builder.Properties70().AddChildren(
				builder.P("QuaternionInterpolate", "enum", "", "", int32(0)),
				builder.P("Show", "bool", "", "", int32(1)),
				builder.P("Lcl Translation", "Lcl Translation", "", "A", float64(0), float64(0), float64(0)),
				builder.P("Lcl Rotation", "Lcl Rotation", "", "A", float64(0), float64(0), float64(0)),
				builder.P("Lcl Scaling", "Lcl Scaling", "", "A", float64(1), float64(1), float64(1)),
				builder.P("Visibility", "Visibility", "", "A", float64(1)),
				builder.P("Visibility Inheritance", "Visibility Inheritance", "", "", int32(1)),
			),
		),
	)
}

func geometryObjectType(count int32) *fbx.Node {
	return builder.ObjectType("Geometry").AddChildren(
		builder.Count(count),
		builder.PropertyTemplate("FbxMesh").AddChild(
			builder.Properties70().AddChildren(
				builder.P("Color", "ColorRGB", "Color", "", float64(1), float64(1), float64(1)),
				builder.P("Primary Visibility", "bool", "", "", int32(1)),
				builder.P("Casts Shadows", "bool", "", "", int32(1)),
				builder.P("Receive Shadows", "bool", "", "", int32(1)),
			),
		),
	)
}

func materialObjectType(count int32, template string) *fbx.Node {
	var props *fbx.Node
	if template == "FbxSurfacePhong" {
		props = builder.Properties70().AddChildren(
			builder.P("ShadingModel", "KString", "", "", "Phong"),
			builder.P("MultiLayer", "bool", "", "", int32(0)),
			builder.P("EmissiveColor", "Color", "", "A", float64(0), float64(0), float64(0)),
			builder.P("AmbientColor", "Color", "", "A", float64(0.2), float64(0.2), float64(0.2)),
			builder.P("DiffuseColor", "Color", "", "A", float64(1), float64(1), float64(1)),
			builder.P("SpecularColor", "Color", "", "A", float64(0.2), float64(0.2), float64(0.2)),
			builder.P("ShininessExponent", "Number", "", "A", float64(0)),
			builder.P("ReflectionFactor", "Number", "", "A", float64(0)),
		)
	} else {
		props = builder.Properties70().AddChildren(
			builder.P("ShadingModel", "KString", "", "", "Lambert"),
			builder.P("MultiLayer", "bool", "", "", int32(0)),
			builder.P("EmissiveColor", "Color", "", "A", float64(0), float64(0), float64(0)),
			builder.P("AmbientColor", "Color", "", "A", float64(0.2), float64(0.2), float64(0.2)),
			builder.P("DiffuseColor", "Color", "", "A", float64(1), float64(1), float64(1)),
		)
	}
	return builder.ObjectType("Material").AddChildren(
		builder.Count(count),
		builder.PropertyTemplate(template).AddChild(props),
	)
}

func textureObjectType(count int32) *fbx.Node {
	return builder.ObjectType("Texture").AddChildren(
		builder.Count(count),
		builder.PropertyTemplate("FbxFileTexture").AddChild(
			builder.Properties70().AddChildren(
				builder.P("TextureTypeUse", "enum", "", "", int32(0)),
				builder.P("CurrentMappingType", "enum", "", "", int32(0)),
				builder.P("WrapModeU", "enum", "", "", int32(0)),
				builder.P("WrapModeV", "enum", "", "", int32(0)),
				builder.P("UVSwap", "bool", "", "", int32(0)),
				builder.P("PremultiplyAlpha", "bool", "", "", int32(1)),
				builder.P("UseMaterial", "bool", "", "", int32(0)),
				builder.P("UseMipMap", "bool", "", "", int32(0)),
			),
		),
	)
}
