package v5

import (
	"fmt"
	"strings"
)

// Junctions is an interior path of at most eight junctions. The variant
// always matches the number of junctions held; a nil Junctions is Here.
type Junctions interface {
	// Len returns the number of junctions.
	Len() int
	// At returns the i-th junction. It panics if i is out of range.
	At(i int) Junction
	// Slice returns a copy of the junctions.
	Slice() []Junction

	isJunctions()
}

// Here is the empty interior path.
type Here struct{}

func (Here) Len() int          { return 0 }
func (Here) At(i int) Junction { panic("v5: Here has no junctions") }
func (Here) Slice() []Junction { return nil }
func (Here) String() string    { return "Here" }
func (Here) isJunctions()      {}

// X1 holds exactly 1 junction. Copies share the array. The zero X1
// holds no array and is not valid; build it with NewX1.
type X1 struct{ arc *[1]Junction }

// NewX1 builds an X1 from its junctions.
func NewX1(j [1]Junction) X1 { return X1{arc: &j} }

func (x X1) Len() int           { return 1 }
func (x X1) At(i int) Junction  { return x.arc[i] }
func (x X1) Slice() []Junction  { return append([]Junction(nil), x.arc[:]...) }
func (x X1) Array() [1]Junction { return *x.arc }
func (x X1) String() string     { return formatJunctions("X1", x.arc[:]) }
func (X1) isJunctions()         {}

// X2 holds exactly 2 junctions. Copies share the array. The zero X2
// holds no array and is not valid; build it with NewX2.
type X2 struct{ arc *[2]Junction }

// NewX2 builds an X2 from its junctions.
func NewX2(j [2]Junction) X2 { return X2{arc: &j} }

func (x X2) Len() int           { return 2 }
func (x X2) At(i int) Junction  { return x.arc[i] }
func (x X2) Slice() []Junction  { return append([]Junction(nil), x.arc[:]...) }
func (x X2) Array() [2]Junction { return *x.arc }
func (x X2) String() string     { return formatJunctions("X2", x.arc[:]) }
func (X2) isJunctions()         {}

// X3 holds exactly 3 junctions. Copies share the array. The zero X3
// holds no array and is not valid; build it with NewX3.
type X3 struct{ arc *[3]Junction }

// NewX3 builds an X3 from its junctions.
func NewX3(j [3]Junction) X3 { return X3{arc: &j} }

func (x X3) Len() int           { return 3 }
func (x X3) At(i int) Junction  { return x.arc[i] }
func (x X3) Slice() []Junction  { return append([]Junction(nil), x.arc[:]...) }
func (x X3) Array() [3]Junction { return *x.arc }
func (x X3) String() string     { return formatJunctions("X3", x.arc[:]) }
func (X3) isJunctions()         {}

// X4 holds exactly 4 junctions. Copies share the array. The zero X4
// holds no array and is not valid; build it with NewX4.
type X4 struct{ arc *[4]Junction }

// NewX4 builds an X4 from its junctions.
func NewX4(j [4]Junction) X4 { return X4{arc: &j} }

func (x X4) Len() int           { return 4 }
func (x X4) At(i int) Junction  { return x.arc[i] }
func (x X4) Slice() []Junction  { return append([]Junction(nil), x.arc[:]...) }
func (x X4) Array() [4]Junction { return *x.arc }
func (x X4) String() string     { return formatJunctions("X4", x.arc[:]) }
func (X4) isJunctions()         {}

// X5 holds exactly 5 junctions. Copies share the array. The zero X5
// holds no array and is not valid; build it with NewX5.
type X5 struct{ arc *[5]Junction }

// NewX5 builds an X5 from its junctions.
func NewX5(j [5]Junction) X5 { return X5{arc: &j} }

func (x X5) Len() int           { return 5 }
func (x X5) At(i int) Junction  { return x.arc[i] }
func (x X5) Slice() []Junction  { return append([]Junction(nil), x.arc[:]...) }
func (x X5) Array() [5]Junction { return *x.arc }
func (x X5) String() string     { return formatJunctions("X5", x.arc[:]) }
func (X5) isJunctions()         {}

// X6 holds exactly 6 junctions. Copies share the array. The zero X6
// holds no array and is not valid; build it with NewX6.
type X6 struct{ arc *[6]Junction }

// NewX6 builds an X6 from its junctions.
func NewX6(j [6]Junction) X6 { return X6{arc: &j} }

func (x X6) Len() int           { return 6 }
func (x X6) At(i int) Junction  { return x.arc[i] }
func (x X6) Slice() []Junction  { return append([]Junction(nil), x.arc[:]...) }
func (x X6) Array() [6]Junction { return *x.arc }
func (x X6) String() string     { return formatJunctions("X6", x.arc[:]) }
func (X6) isJunctions()         {}

// X7 holds exactly 7 junctions. Copies share the array. The zero X7
// holds no array and is not valid; build it with NewX7.
type X7 struct{ arc *[7]Junction }

// NewX7 builds an X7 from its junctions.
func NewX7(j [7]Junction) X7 { return X7{arc: &j} }

func (x X7) Len() int           { return 7 }
func (x X7) At(i int) Junction  { return x.arc[i] }
func (x X7) Slice() []Junction  { return append([]Junction(nil), x.arc[:]...) }
func (x X7) Array() [7]Junction { return *x.arc }
func (x X7) String() string     { return formatJunctions("X7", x.arc[:]) }
func (X7) isJunctions()         {}

// X8 holds exactly 8 junctions. Copies share the array. The zero X8
// holds no array and is not valid; build it with NewX8.
type X8 struct{ arc *[8]Junction }

// NewX8 builds an X8 from its junctions.
func NewX8(j [8]Junction) X8 { return X8{arc: &j} }

func (x X8) Len() int           { return 8 }
func (x X8) At(i int) Junction  { return x.arc[i] }
func (x X8) Slice() []Junction  { return append([]Junction(nil), x.arc[:]...) }
func (x X8) Array() [8]Junction { return *x.arc }
func (x X8) String() string     { return formatJunctions("X8", x.arc[:]) }
func (X8) isJunctions()         {}

// NewJunctions builds the variant matching len(js). It fails when js holds
// more junctions than any variant can.
func NewJunctions(js ...Junction) (Junctions, error) {
	switch len(js) {
	case 0:
		return Here{}, nil
	case 1:
		return NewX1([1]Junction(js)), nil
	case 2:
		return NewX2([2]Junction(js)), nil
	case 3:
		return NewX3([3]Junction(js)), nil
	case 4:
		return NewX4([4]Junction(js)), nil
	case 5:
		return NewX5([5]Junction(js)), nil
	case 6:
		return NewX6([6]Junction(js)), nil
	case 7:
		return NewX7([7]Junction(js)), nil
	case 8:
		return NewX8([8]Junction(js)), nil
	default:
		return nil, fmt.Errorf("%w: got %d", ErrTooManyJunctions, len(js))
	}
}

// JunctionsLen is j.Len(), with nil counted as Here.
func JunctionsLen(j Junctions) int {
	if j == nil {
		return 0
	}

	return j.Len()
}

// JunctionsEqual reports whether a and b hold equal junctions in the same
// order. Nil equals Here.
func JunctionsEqual(a, b Junctions) bool {
	n := JunctionsLen(a)
	if n != JunctionsLen(b) {
		return false
	}

	for i := range n {
		if a.At(i) != b.At(i) {
			return false
		}
	}

	return true
}

func formatJunctions(variant string, js []Junction) string {
	parts := make([]string, len(js))
	for i, j := range js {
		parts[i] = fmt.Sprint(j)
	}

	return variant + "(" + strings.Join(parts, ", ") + ")"
}
