package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// sentinelTag marks a synthetic transform-chain node inserted by an
// importer that flattened FBX's pivot chain into a generic scene graph
// (spec.md §4.5, original_source/code/FBXExporter.h's MAGIC_NODE_TAG).
const sentinelTag = "_$AssimpFbx$_"

// RotOrder mirrors FBXExporter.h's RotOrder enum. Only EulerXYZ is ever
// produced by this exporter; the remaining members are named for
// completeness, matching the FBX SDK's own property enumeration.
type RotOrder int

const (
	RotOrderEulerXYZ RotOrder = iota
	RotOrderEulerXZY
	RotOrderEulerYZX
	RotOrderEulerYXZ
	RotOrderEulerZXY
	RotOrderEulerZYX
	RotOrderSphericXYZ
)

// InheritType mirrors FBXExporter.h's TransformInheritance enum. Only RSrs
// is ever produced: every Model's InheritType is written as InheritRSrs, and
// scene.Node offers no way to request another value.
type InheritType int

const (
	InheritRrSs InheritType = iota
	InheritRSrs
	InheritRrs
)

// TRS is a decomposed local transform: translation in scene units,
// rotation in degrees (Euler XYZ), scale as a per-axis factor.
type TRS struct {
	Translation mgl32.Vec3
	Rotation    mgl32.Vec3
	Scaling     mgl32.Vec3
}

// DecomposeTRS splits a 4x4 local matrix into translation, Euler rotation
// (degrees) and per-axis scale, adapted from the teacher's
// utils/math.go (QuatToEuler) generalized from a God of War joint matrix to
// an arbitrary scene node matrix.
func DecomposeTRS(m mgl32.Mat4) TRS {
	// Mat4 is column-major [16]float32: column c occupies m[c*4:c*4+4].
	translation := mgl32.Vec3{m[12], m[13], m[14]}

	scale := mgl32.Vec3{
		vec3Len(m[0], m[1], m[2]),
		vec3Len(m[4], m[5], m[6]),
		vec3Len(m[8], m[9], m[10]),
	}

	rot := mgl32.Ident4()
	if scale[0] != 0 {
		rot[0], rot[1], rot[2] = m[0]/scale[0], m[1]/scale[0], m[2]/scale[0]
	}
	if scale[1] != 0 {
		rot[4], rot[5], rot[6] = m[4]/scale[1], m[5]/scale[1], m[6]/scale[1]
	}
	if scale[2] != 0 {
		rot[8], rot[9], rot[10] = m[8]/scale[2], m[9]/scale[2], m[10]/scale[2]
	}

	q := mgl32.Mat4ToQuat(rot)

	return TRS{
		Translation: translation,
		Rotation:    radToDegV3(quatToEuler(q)),
		Scaling:     scale,
	}
}

func vec3Len(x, y, z float32) float32 {
	return float32(math.Sqrt(float64(x*x + y*y + z*z)))
}

// quatToEuler returns radians, adapted verbatim from the teacher's
// utils/math.go QuatToEuler (itself adapted from a standard quaternion to
// Euler-XYZ derivation).
func quatToEuler(q mgl32.Quat) (e mgl32.Vec3) {
	sinrCosp := float64(2 * (q.W*q.X() + q.Y()*q.Z()))
	cosrCosp := float64(1 - 2*(q.X()*q.X()+q.Y()*q.Y()))
	e[0] = float32(math.Atan2(sinrCosp, cosrCosp))

	sinp := float64(2 * (q.W*q.Y() - q.Z()*q.X()))
	if math.Abs(sinp) >= 1 {
		half := float32(math.Pi / 2)
		if sinp < 0 {
			half = -half
		}
		e[1] = half
	} else {
		e[1] = float32(math.Asin(sinp))
	}

	sinyCosp := float64(2 * (q.W*q.Z() + q.X()*q.Y()))
	cosyCosp := float64(1 - 2*(q.Y()*q.Y()+q.Z()*q.Z()))
	e[2] = float32(math.Atan2(sinyCosp, cosyCosp))
	return e
}

// radToDegV3 and degToRadV3 convert a Euler vector between radians and
// degrees. The teacher's equivalents (DegreeToRadiansV3/RadiansToDegreeV3
// in utils/math.go) multiplied by 1/(2*Pi), which is neither conversion —
// fixed here to the standard 180/Pi and Pi/180 factors spec.md §4.5
// requires ("converted from radians to degrees, factor 360/2*Pi").
func radToDegV3(v mgl32.Vec3) mgl32.Vec3 {
	const k = float32(180 / math.Pi)
	return v.Mul(k)
}

func degToRadV3(v mgl32.Vec3) mgl32.Vec3 {
	const k = float32(math.Pi / 180)
	return v.Mul(k)
}

// isSentinel reports whether a scene node name marks a synthetic
// transform-chain element (spec.md §4.5).
func isSentinel(name string) bool {
	return chainElementName(name) != ""
}

// chainElementName returns the transform-chain element name suffix after
// sentinelTag, or "" if name does not carry the sentinel.
func chainElementName(name string) string {
	idx := indexOf(name, sentinelTag)
	if idx < 0 {
		return ""
	}
	return name[idx+len(sentinelTag):]
}

func indexOf(s, substr string) int {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return i
		}
	}
	return -1
}

// fbxChainPropertyName maps a transform-chain element name (as produced by
// chainElementName) to its Properties70 key, per spec.md §4.5's name map.
// Inverse-pivot elements return "" since their partner pivot records the
// value and the inverse is never itself emitted.
func fbxChainPropertyName(element string) string {
	switch element {
	case "Translation":
		return "Lcl Translation"
	case "Rotation":
		return "Lcl Rotation"
	case "Scaling":
		return "Lcl Scaling"
	case "RotationPivotInverse", "ScalingPivotInverse":
		return ""
	default:
		return element
	}
}

// chainEntry is one accumulated transform-chain component (spec.md §4.5).
type chainEntry struct {
	property string // Properties70 key, already mapped
	value    mgl32.Vec3
}
