package scene

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/mogaika/fbxexport/fbx"
	"github.com/mogaika/fbxexport/fbx/builder"
)

// buildMaterial translates one input material into a Material record per
// spec.md §4.4's Material subsection, grounded on the teacher's
// pack/wad/mat/export_fbx.go (Properties70 modern+legacy pairing).
func (e *Exporter) buildMaterial(index int, mat Material) (*fbx.Node, int64, error) {
	uid := e.objects.allocUID()
	name := fmt.Sprintf("%d_%s\x00\x01Material", index, normalizeName(mat.Name()))

	shininess := mat.Scalar(Shininess)
	isPhong := mat.HasScalar(Shininess) && shininess > 0
	shadingModel := "lambert"
	if isPhong {
		shadingModel = "phong"
	}

	m := builder.Material(uid, name)
	m.AddChild(builder.Version(102))
	m.AddChild(N("ShadingModel", builder.Str(shadingModel)))
	m.AddChild(N("MultiLayer", builder.I32(0)))

	p70 := builder.Properties70()
	emissive := newRGB(mat.Color(ColorEmissive))
	ambient := newRGB(mat.Color(ColorAmbient))
	diffuse := newRGB(mat.Color(ColorDiffuse))
	transparent := newRGB(mat.Color(ColorTransparent))

	p70.AddChildren(
		builder.P("EmissiveColor", "Color", "", "A", f64(emissive[0]), f64(emissive[1]), f64(emissive[2])),
		builder.P("AmbientColor", "Color", "", "A", f64(ambient[0]), f64(ambient[1]), f64(ambient[2])),
		builder.P("DiffuseColor", "Color", "", "A", f64(diffuse[0]), f64(diffuse[1]), f64(diffuse[2])),
		builder.P("TransparentColor", "Color", "", "A", f64(transparent[0]), f64(transparent[1]), f64(transparent[2])),
		// Open Question (a): hard-coded to 1.0 regardless of input, matching
		// the documented (if unjustified) source behavior.
		builder.P("TransparencyFactor", "Number", "", "A", float64(1.0)),
	)

	opacity := 1 - transparent.Mean()
	if mat.HasScalar(Opacity) {
		opacity = mat.Scalar(Opacity)
	}

	if isPhong {
		specular := newRGB(mat.Color(ColorSpecular))
		reflect := mat.Scalar(Reflectivity)
		p70.AddChildren(
			builder.P("SpecularColor", "Color", "", "A", f64(specular[0]), f64(specular[1]), f64(specular[2])),
			builder.P("ShininessExponent", "Number", "", "A", float64(shininess)),
			builder.P("ReflectionFactor", "Number", "", "A", float64(reflect)),
			builder.P("Emissive", "ColorRGB", "Color", "", f64(emissive[0]), f64(emissive[1]), f64(emissive[2])),
			builder.P("Ambient", "ColorRGB", "Color", "", f64(ambient[0]), f64(ambient[1]), f64(ambient[2])),
			builder.P("Diffuse", "ColorRGB", "Color", "", f64(diffuse[0]), f64(diffuse[1]), f64(diffuse[2])),
			builder.P("Opacity", "double", "Number", "", float64(opacity)),
			builder.P("Specular", "ColorRGB", "Color", "", f64(specular[0]), f64(specular[1]), f64(specular[2])),
			builder.P("Shininess", "double", "Number", "", float64(shininess)),
			builder.P("Reflectivity", "double", "Number", "", float64(reflectivity(reflect))),
		)
	} else {
		p70.AddChildren(
			builder.P("Emissive", "ColorRGB", "Color", "", f64(emissive[0]), f64(emissive[1]), f64(emissive[2])),
			builder.P("Ambient", "ColorRGB", "Color", "", f64(ambient[0]), f64(ambient[1]), f64(ambient[2])),
			builder.P("Diffuse", "ColorRGB", "Color", "", f64(diffuse[0]), f64(diffuse[1]), f64(diffuse[2])),
			builder.P("Opacity", "double", "Number", "", float64(opacity)),
		)
	}

	m.AddChild(p70)

	if count := mat.TextureCount(TextureDiffuse); count > 1 {
		return nil, 0, errors.Wrapf(&UnsupportedError{Feature: "multi-layer textures"}, "material %q", mat.Name())
	} else if count == 1 {
		path := mat.TexturePath(TextureDiffuse, 0)
		texUID, err := e.buildOrReuseTexture(path)
		if err != nil {
			return nil, 0, errors.Wrapf(err, "material %q", mat.Name())
		}
		e.objects.connect("OP", texUID, uid, "DiffuseColor")
		e.objects.textureCount++
	}

	return m, uid, nil
}

func f64(v float32) float64 { return float64(v) }
