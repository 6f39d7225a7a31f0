package scene

import "golang.org/x/text/unicode/norm"

// normalizeName applies Unicode NFC normalization to object names before
// they are embedded in FBX name strings, so that names arriving from
// different source encodings compare and sort consistently once written.
func normalizeName(s string) string {
	return norm.NFC.String(s)
}
