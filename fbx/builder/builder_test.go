package builder_test

import (
	"testing"

	"github.com/mogaika/fbxexport/fbx/builder"
)

func TestPBuildsFourHeaderPropsPlusValues(t *testing.T) {
	n := builder.P("DiffuseColor", "Color", "", "A", float64(1), float64(0.5), float64(0))
	if n.Name != "P" {
		t.Fatalf("name = %q, want P", n.Name)
	}
	if len(n.Properties) != 7 {
		t.Fatalf("len(Properties) = %d, want 7 (4 header + 3 values)", len(n.Properties))
	}
}

func TestCOmitsPropertyForOOConnections(t *testing.T) {
	n := builder.C("OO", 100, 200)
	if len(n.Properties) != 3 {
		t.Fatalf("len(Properties) = %d, want 3 (kind, from, to)", len(n.Properties))
	}
}

func TestCIncludesPropertyForOPConnections(t *testing.T) {
	n := builder.C("OP", 100, 200, "DiffuseColor")
	if len(n.Properties) != 4 {
		t.Fatalf("len(Properties) = %d, want 4 (kind, from, to, property)", len(n.Properties))
	}
}

func TestPPanicsOnUnsupportedType(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("P: want panic for an unsupported value type, got none")
		}
	}()
	builder.P("Bad", "int", "", "", struct{}{})
}
