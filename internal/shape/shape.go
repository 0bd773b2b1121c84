package shape

import (
	"fmt"
	"strconv"
	"strings"

	"xcm-generator/internal/diagnostic"
)

// MaxArity bounds both the ancestor prefix depth and the interior length.
// Generated code volume grows with its square.
const MaxArity = 8

//go:generate go tool stringer -type=Prefix -trimprefix=Prefix -output=prefix_string.go
//go:generate go tool stringer -type=Interior -trimprefix=Interior -output=interior_string.go

// Prefix is the way a shape states its ancestor count.
type Prefix int

const (
	_ Prefix = iota // zero value is not a valid prefix

	PrefixAncestor // an Ancestor value carries the count
	PrefixArray    // a fixed-size array, no ancestors
	PrefixParents  // repeated Parent markers, one per ancestor
	PrefixNone     // a plain tuple or a single junction, no ancestors
)

// Interior is the way a shape supplies the interior path.
type Interior int

const (
	_ Interior = iota

	InteriorElements  // k separately convertible junctions
	InteriorJunctions // a ready-made Junctions value
	InteriorSingle    // exactly one canonical Junction
)

// Target is the canonical type a shape converts into.
type Target int

const (
	TargetLocation Target = iota
	TargetJunctions
)

func (t Target) String() string {
	if t == TargetJunctions {
		return "Junctions"
	}

	return "Location"
}

// Shape is a single literal input form.
type Shape struct {
	Target    Target
	Prefix    Prefix
	Parents   int // literal parent markers, PrefixParents only
	Junctions int // interior length, InteriorElements and PrefixArray only
	Interior  Interior
}

// FuncName returns the name of the generated function converting this shape.
func (s Shape) FuncName() string {
	if s.Target == TargetJunctions {
		return "JunctionsFrom" + strconv.Itoa(s.Junctions)
	}

	var sb strings.Builder

	sb.WriteString("LocationFrom")

	switch s.Prefix {
	case PrefixAncestor:
		sb.WriteString("Ancestor")
	case PrefixArray:
		sb.WriteString("Array")
		sb.WriteString(strconv.Itoa(s.Junctions))

		return sb.String()
	case PrefixParents:
		sb.WriteString("Parents")
		sb.WriteString(strconv.Itoa(s.Parents))
	case PrefixNone:
	}

	switch s.Interior {
	case InteriorElements:
		sb.WriteString("X")
		sb.WriteString(strconv.Itoa(s.Junctions))
	case InteriorJunctions:
		sb.WriteString("Junctions")
	case InteriorSingle:
		sb.WriteString("Junction")
	}

	return sb.String()
}

// Signature renders the literal input form, e.g. "(Parent, Parent, J0, J1)".
// Two shapes with the same signature would be ambiguous.
func (s Shape) Signature() string {
	if s.Prefix == PrefixArray {
		return fmt.Sprintf("[Junction; %d]", s.Junctions)
	}

	if s.Interior == InteriorSingle && s.Prefix == PrefixNone {
		return "Junction"
	}

	var parts []string

	switch s.Prefix {
	case PrefixAncestor:
		parts = append(parts, "Ancestor")
	case PrefixParents:
		for range s.Parents {
			parts = append(parts, "Parent")
		}
	}

	switch s.Interior {
	case InteriorElements:
		for i := range s.Junctions {
			parts = append(parts, "J"+strconv.Itoa(i))
		}
	case InteriorJunctions:
		parts = append(parts, "Junctions")
	}

	return "(" + strings.Join(parts, ", ") + ")"
}

// ParentCount is the ancestor count a conversion of this shape produces when
// the count is fixed by the shape itself. It is -1 for PrefixAncestor.
func (s Shape) ParentCount() int {
	switch s.Prefix {
	case PrefixAncestor:
		return -1
	case PrefixParents:
		return s.Parents
	default:
		return 0
	}
}

func (s Shape) String() string {
	return s.Target.String() + " " + s.Signature()
}

// LocationShapes lists every shape converted into a Location, in emission order.
func LocationShapes(maxJunctions, maxParents int) []Shape {
	var res []Shape

	for k := 0; k <= maxJunctions; k++ {
		res = append(res,
			Shape{Target: TargetLocation, Prefix: PrefixAncestor, Junctions: k, Interior: InteriorElements},
			Shape{Target: TargetLocation, Prefix: PrefixArray, Junctions: k, Interior: InteriorElements},
		)

		for p := 0; p <= maxParents; p++ {
			res = append(res, Shape{
				Target:    TargetLocation,
				Prefix:    PrefixParents,
				Parents:   p,
				Junctions: k,
				Interior:  InteriorElements,
			})
		}
	}

	res = append(res,
		Shape{Target: TargetLocation, Prefix: PrefixAncestor, Interior: InteriorJunctions},
		Shape{Target: TargetLocation, Prefix: PrefixNone, Junctions: 1, Interior: InteriorSingle},
	)

	for p := 0; p <= maxParents; p++ {
		res = append(res, Shape{Target: TargetLocation, Prefix: PrefixParents, Parents: p, Interior: InteriorJunctions})
	}

	return res
}

// JunctionsShapes lists the tuple shapes converted into Junctions. There is no
// zero-length tuple; Here is only ever built explicitly.
func JunctionsShapes(maxJunctions int) []Shape {
	res := make([]Shape, 0, maxJunctions)
	for k := 1; k <= maxJunctions; k++ {
		res = append(res, Shape{Target: TargetJunctions, Prefix: PrefixNone, Junctions: k, Interior: InteriorElements})
	}

	return res
}

// Validate reports shapes that would produce ambiguous or unsupported
// conversions.
func Validate(shapes []Shape) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	names := make(map[string]struct{}, len(shapes))
	signatures := make(map[string]struct{}, len(shapes))

	for _, s := range shapes {
		if s.Junctions < 0 || s.Junctions > MaxArity {
			diags.AddError("arity_out_of_range",
				fmt.Sprintf("interior length %d outside 0..%d", s.Junctions, MaxArity),
				s.Target.String(), s.Signature())
		}

		if s.Parents < 0 || s.Parents > MaxArity {
			diags.AddError("arity_out_of_range",
				fmt.Sprintf("parent count %d outside 0..%d", s.Parents, MaxArity),
				s.Target.String(), s.Signature())
		}

		if s.Target == TargetJunctions && s.Junctions == 0 {
			diags.AddError("empty_tuple", "no zero-length tuple converts into Junctions",
				s.Target.String(), s.Signature())
		}

		name := s.FuncName()
		if _, ok := names[name]; ok {
			diags.AddError("duplicate_name", "function "+name+" is emitted twice",
				s.Target.String(), s.Signature())
		}

		names[name] = struct{}{}

		key := s.String()
		if _, ok := signatures[key]; ok {
			diags.AddError("ambiguous_shape", "input shape is converted twice",
				s.Target.String(), s.Signature())
		}

		signatures[key] = struct{}{}
	}

	return diags
}
