package v5

import "fmt"

// Location is a relative address: Parents hops up the hierarchy, then the
// Interior path down. The zero Location refers to the current context.
type Location struct {
	Parents  uint8
	Interior Junctions
}

// Ancestor carries an ancestor count into a conversion.
type Ancestor uint8

// Parent marks a single ancestor hop in a conversion. Each Parent argument
// adds one to the resulting Location's Parents.
type Parent struct{}

// NewLocation builds a Location from its parts.
func NewLocation(parents uint8, interior Junctions) Location {
	return Location{Parents: parents, Interior: interior}
}

// ParentCount returns the number of ancestor hops.
func (l Location) ParentCount() uint8 {
	return l.Parents
}

// Junctions returns the interior path, never nil.
func (l Location) Junctions() Junctions {
	if l.Interior == nil {
		return Here{}
	}

	return l.Interior
}

// Len returns the number of interior junctions.
func (l Location) Len() int {
	return JunctionsLen(l.Interior)
}

// IsHere reports whether l refers to the current context.
func (l Location) IsHere() bool {
	return l.Parents == 0 && l.Len() == 0
}

// Equal reports whether both locations have the same parents and interior.
func (l Location) Equal(other Location) bool {
	return l.Parents == other.Parents && JunctionsEqual(l.Interior, other.Interior)
}

func (l Location) String() string {
	return fmt.Sprintf("Location{Parents: %d, Interior: %v}", l.Parents, l.Junctions())
}
