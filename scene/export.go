package scene

import (
	"io"
	"log"

	"github.com/pkg/errors"

	"github.com/mogaika/fbxexport/fbx"
	"github.com/mogaika/fbxexport/fbx/builder"
)

// Options configures an Exporter (see NewExporter). There is no
// config file to load, matching the teacher's fbx-adjacent code: export
// behavior is controlled entirely by explicit constructor parameters, the
// same shape as the teacher's FBXBuilder constructor.
type Options struct {
	Creator      string
	CreationTime string
	FileId       []byte
	UIDSeed      int64
	Logger       Logger
}

const (
	defaultCreator      = "fbxexport Go module"
	defaultCreationTime = "1970-01-01 10:00:00:000"
	defaultUIDSeed      = int64(1000000)
)

var defaultFileId = []byte{
	0x28, 0xb3, 0x2a, 0xeb, 0xb6, 0x24, 0xcc, 0xc2,
	0xbf, 0xc8, 0xb0, 0x2a, 0xa9, 0x2b, 0xfc, 0xf1,
}

// DefaultOptions returns the Options every Exporter uses when a caller
// leaves a field unset.
func DefaultOptions() Options {
	return Options{
		Creator:      defaultCreator,
		CreationTime: defaultCreationTime,
		FileId:       defaultFileId,
		UIDSeed:      defaultUIDSeed,
	}
}

func (o Options) withDefaults() Options {
	if o.Creator == "" {
		o.Creator = defaultCreator
	}
	if o.CreationTime == "" {
		o.CreationTime = defaultCreationTime
	}
	if o.FileId == nil {
		o.FileId = defaultFileId
	}
	if o.UIDSeed == 0 {
		o.UIDSeed = defaultUIDSeed
	}
	return o
}

type stdLogger struct{ l *log.Logger }

func (s stdLogger) Warnf(format string, args ...interface{}) { s.l.Printf("warn: "+format, args...) }

// Exporter owns one export's mutable state: the ObjectTable of spec.md §3
// and the logger used for non-fatal degradation warnings (spec.md §6/§7).
// It is not safe for concurrent use. Sequential calls are independent:
// Build/WriteBinary/WriteAscii each start a fresh objectTable, matching
// spec.md §5's "no state persists across exports".
type Exporter struct {
	opts    Options
	logger  Logger
	objects *objectTable
}

// NewExporter constructs an Exporter from opts, filling unset fields with
// DefaultOptions.
func NewExporter(opts Options) *Exporter {
	opts = opts.withDefaults()
	logger := opts.Logger
	if logger == nil {
		logger = stdLogger{l: log.Default()}
	}
	return &Exporter{opts: opts, logger: logger}
}

func (e *Exporter) warnf(format string, args ...interface{}) {
	e.logger.Warnf(format, args...)
}

// Build translates s into a complete fbx.Document (spec.md §4.3/§4.4/§4.5).
func (e *Exporter) Build(s Scene) (*fbx.Document, error) {
	e.objects = newObjectTable(e.opts.UIDSeed)

	meshes := s.Meshes()
	for i, mesh := range meshes {
		g, uid, err := e.buildGeometry(i, mesh)
		if err != nil {
			return nil, errors.Wrapf(err, "mesh %d", i)
		}
		e.objects.objectsNode.AddChild(g)
		e.objects.meshUID = append(e.objects.meshUID, uid)
		e.objects.meshMaterialIdx = append(e.objects.meshMaterialIdx, mesh.MaterialIndex())
	}

	materials := s.Materials()
	anyPhong := false
	for _, mat := range materials {
		if mat.HasScalar(Shininess) && mat.Scalar(Shininess) > 0 {
			anyPhong = true
		}
	}
	for i, mat := range materials {
		m, uid, err := e.buildMaterial(i, mat)
		if err != nil {
			return nil, errors.Wrapf(err, "material %d", i)
		}
		e.objects.objectsNode.AddChild(m)
		e.objects.materialUID = append(e.objects.materialUID, uid)
	}

	if err := e.buildHierarchy(s.Root()); err != nil {
		return nil, errors.Wrap(err, "hierarchy")
	}

	connectionsNode := builder.Connections()
	connectionsNode.AddChildren(e.objects.connections...)

	doc := &fbx.Document{
		HeaderExtension: e.buildHeaderExtension(),
		FileId:          builder.FileId(e.opts.FileId),
		CreationTime:    builder.CreationTime(e.opts.CreationTime),
		Creator:         builder.Creator(e.opts.Creator),
		GlobalSettings:  buildGlobalSettings(),
		Documents:       e.buildDocuments(),
		References:      builder.References(),
		Definitions:     e.buildDefinitions(len(meshes), len(materials), anyPhong),
		Objects:         e.objects.objectsNode,
		Connections:     connectionsNode,
	}
	return doc, nil
}

// WriteBinary translates s and writes the binary FBX file to sink.
func (e *Exporter) WriteBinary(sink io.WriteSeeker, s Scene) error {
	doc, err := e.Build(s)
	if err != nil {
		return err
	}
	return doc.WriteBinary(sink)
}

// WriteAscii translates s and writes the ASCII FBX file to sink.
func (e *Exporter) WriteAscii(sink io.Writer, s Scene) error {
	doc, err := e.Build(s)
	if err != nil {
		return err
	}
	return doc.WriteAscii(sink)
}
