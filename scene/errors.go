package scene

import "fmt"

// ErrMalformedTransformChain is returned when a sentinel transform node
// (spec.md §4.5) has a number of children other than exactly one.
var ErrMalformedTransformChain = fmt.Errorf("scene: malformed transform chain")

// UnsupportedError reports a feature the input scene requested that this
// exporter declines to handle (spec.md §7): multi-layer textures, more than
// one diffuse texture per material, or an unrecognised transform-chain
// element.
type UnsupportedError struct {
	Feature string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("scene: unsupported: %s", e.Feature)
}
