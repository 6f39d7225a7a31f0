package scene

// RGB is a material color triple, adapted from the teacher's ColorFloat
// (utils/colorf.go) for the FBX material property math in spec.md §4.4
// (Opacity and Reflectivity derivation) instead of pixel blending.
type RGB [3]float32

// Mean returns the average of the three components, used to derive Opacity
// from TransparentColor when the scene supplies no explicit opacity.
func (c RGB) Mean() float32 {
	return (c[0] + c[1] + c[2]) / 3
}

func newRGB(c [3]float32) RGB { return RGB(c) }

// reflectivity implements spec.md §4.4's documented (not physically
// motivated) formula Reflectivity = R²·0.25479, one of DESIGN.md's Open
// Question decisions.
func reflectivity(r float32) float32 {
	return r * r * 0.25479
}
