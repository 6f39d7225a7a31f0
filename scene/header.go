package scene

import (
	"time"

	"github.com/mogaika/fbxexport/fbx"
	"github.com/mogaika/fbxexport/fbx/builder"
)

// buildHeaderExtension assembles the FBXHeaderExtension record of
// spec.md §4.3 item 2, grounded on the teacher's
// utils/fbxbuilder/fbxbuilder.go createHeaders.
func (e *Exporter) buildHeaderExtension() *fbx.Node {
	now := time.Now()
	return builder.FBXHeaderExtension().AddChildren(
		builder.FBXHeaderVersion(1003),
		builder.FBXVersionNode(int32(fbx.FBXVersion)),
		builder.EncryptionType(0),
		builder.CreationTimeStamp().AddChildren(
			builder.Version(1000),
			N("Year", builder.I32(int32(now.Year()))),
			N("Month", builder.I32(int32(now.Month()))),
			N("Day", builder.I32(int32(now.Day()))),
			N("Hour", builder.I32(int32(now.Hour()))),
			N("Minute", builder.I32(int32(now.Minute()))),
			N("Second", builder.I32(int32(now.Second()))),
			N("Millisecond", builder.I32(int32(now.Nanosecond()/1e6))),
		),
		builder.Creator(e.opts.Creator),
		N("SceneInfo", builder.Str("GlobalInfo\x00\x01SceneInfo"), builder.Str("UserData")).AddChildren(
			N("Type", builder.Str("UserData")),
			builder.Version(100),
			builder.Properties70(),
		),
	)
}

// buildGlobalSettings assembles the GlobalSettings record of spec.md
// §4.3 item 4. The 21 entries below are the common FBX SDK GlobalSettings
// defaults; every mainstream exporter (including assimp's own
// WriteGlobalSettings) emits the same shape.
func buildGlobalSettings() *fbx.Node {
	p70 := builder.Properties70().AddChildren(
		builder.P("UpAxis", "int", "Integer", "", int32(1)),
		builder.P("UpAxisSign", "int", "Integer", "", int32(1)),
		builder.P("FrontAxis", "int", "Integer", "", int32(2)),
		builder.P("FrontAxisSign", "int", "Integer", "", int32(1)),
		builder.P("CoordAxis", "int", "Integer", "", int32(0)),
		builder.P("CoordAxisSign", "int", "Integer", "", int32(1)),
		builder.P("OriginalUpAxis", "int", "Integer", "", int32(1)),
		builder.P("OriginalUpAxisSign", "int", "Integer", "", int32(1)),
		builder.P("UnitScaleFactor", "double", "Number", "", float64(1)),
		builder.P("OriginalUnitScaleFactor", "double", "Number", "", float64(1)),
		builder.P("AmbientColor", "ColorRGB", "Color", "", float64(0), float64(0), float64(0)),
		builder.P("DefaultCamera", "KString", "", "", "Producer Perspective"),
		builder.P("TimeMode", "enum", "", "", int32(11)),
		builder.P("TimeProtocol", "enum", "", "", int32(2)),
		builder.P("SnapOnFrameMode", "bool", "", "", int32(0)),
		builder.P("TimeSpanStart", "KTime", "Time", "", int64(0)),
		builder.P("TimeSpanStop", "KTime", "Time", "", int64(0)),
		builder.P("CustomFrameRate", "double", "Number", "", float64(-1)),
		builder.P("TimeMarker", "Compound", "", ""),
		builder.P("CurrentTimeMarker", "int", "Integer", "", int32(-1)),
		builder.P("CurrentTimeMarkerStartTime", "KTime", "Time", "", int64(0)),
	)
	return builder.GlobalSettings().AddChildren(
		builder.Version(1000),
		p70,
	)
}

// buildDocuments assembles the Documents record of spec.md §4.3 item 5.
func (e *Exporter) buildDocuments() *fbx.Node {
	docUID := e.objects.allocUID()
	return builder.Documents().AddChildren(
		builder.Count(1),
		builder.Document(docUID, "Scene", "Scene").AddChildren(
			builder.Properties70().AddChildren(
				builder.P("SourceObject", "object", "", ""),
				builder.P("ActiveAnimStackName", "KString", "", "", "Take 001"),
			),
			builder.RootNode(0),
		),
	)
}
