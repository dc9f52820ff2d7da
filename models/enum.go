package models

// IsKnown reports whether v is one of the known values of its enumeration.
//
// Enumerations in this module are string types, so decoding never fails on a value
// the client was not built with: the raw string is kept and re-encoded unchanged.
// IsKnown lets callers tell those forward-compatible values apart from the
// documented ones. Matching is exact and case-sensitive.
func IsKnown[T ~string](v T, known []T) bool {
	for _, k := range known {
		if v == k {
			return true
		}
	}
	return false
}

// Ptr returns a pointer to v. Optional model fields are pointers.
func Ptr[T any](v T) *T {
	return &v
}
