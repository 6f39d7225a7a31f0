package scene

import (
	"path/filepath"

	"github.com/mogaika/fbxexport/fbx"
	"github.com/mogaika/fbxexport/fbx/builder"
)

// buildOrReuseTexture returns the UID of the Texture object for path,
// allocating and emitting it on first use and reusing the cached UID on
// every subsequent material that references the same resolved path
// (spec.md §3's texture_uid[path] dedup table).
func (e *Exporter) buildOrReuseTexture(path string) (int64, error) {
	if uid, ok := e.objects.textureUID[path]; ok {
		return uid, nil
	}

	uid := e.objects.allocUID()
	e.objects.textureUID[path] = uid

	tex := builder.Texture(uid, normalizeName(filepath.Base(path))+"\x00\x01Texture")
	tex.AddChild(N("Type", builder.Str("TextureVideoClip")))
	tex.AddChild(builder.Version(202))
	tex.AddChild(builder.Properties70().AddChildren(
		builder.P("UVSet", "KString", "", "", "default"),
		builder.P("UseMaterial", "bool", "", "", int32(1)),
	))
	tex.AddChild(N("FileName", builder.Str(path)))
	if rel, err := filepath.Rel(filepath.Dir(path), path); err == nil {
		tex.AddChild(N("RelativeFilename", builder.Str(rel)))
	}
	tex.AddChildren(
		N("ModelUVTranslation", fbx.NewFloat64Array([]float64{0, 0})),
		N("ModelUVScaling", fbx.NewFloat64Array([]float64{1, 1})),
		N("Texture_Alpha_Source", builder.Str("None")),
		N("Cropping", fbx.NewInt32Array([]int32{0, 0, 0, 0})),
	)

	e.objects.objectsNode.AddChild(tex)
	return uid, nil
}
