package gen

import (
	"fmt"
	"strconv"
	"strings"

	"xcm-generator/internal/shape"
)

// locationConversion builds the function converting s into a Location.
func locationConversion(s shape.Shape) conversionData {
	var params []string

	parents := strconv.Itoa(s.ParentCount())

	switch s.Prefix {
	case shape.PrefixAncestor:
		params = append(params, "a Ancestor")
		parents = "uint8(a)"
	case shape.PrefixParents:
		for range s.Parents {
			params = append(params, "_ Parent")
		}
	}

	var interior string

	switch s.Interior {
	case shape.InteriorJunctions:
		params = append(params, "interior Junctions")
		interior = "interior"
	case shape.InteriorSingle:
		params = append(params, "j Junction")
		interior = "NewX1([1]Junction{j})"
	case shape.InteriorElements:
		if s.Prefix == shape.PrefixArray {
			if s.Junctions == 0 {
				params = append(params, "_ [0]Junction")
			} else {
				params = append(params, fmt.Sprintf("j [%d]Junction", s.Junctions))
			}

			interior = arrayInterior(s.Junctions)
		} else {
			params = append(params, elementParams(s.Junctions)...)
			interior = elementsInterior(s.Junctions)
		}
	}

	return conversionData{
		Name:      s.FuncName(),
		Signature: s.Signature(),
		Params:    strings.Join(params, ", "),
		Result:    "Location",
		Body:      fmt.Sprintf("Location{Parents: %s, Interior: %s}", parents, interior),
	}
}

// elementParams declares k junction-convertible parameters j0..jk-1.
func elementParams(k int) []string {
	params := make([]string, k)
	for i := range k {
		params[i] = fmt.Sprintf("j%d IntoJunction", i)
	}

	return params
}

// elementsInterior converts each parameter in order and wraps them in the
// variant of length k.
func elementsInterior(k int) string {
	if k == 0 {
		return "Here{}"
	}

	elems := make([]string, k)
	for i := range k {
		elems[i] = fmt.Sprintf("j%d.IntoJunction()", i)
	}

	return fmt.Sprintf("NewX%d([%d]Junction{%s})", k, k, strings.Join(elems, ", "))
}

// arrayInterior wraps an already canonical array parameter j.
func arrayInterior(k int) string {
	if k == 0 {
		return "Here{}"
	}

	return fmt.Sprintf("NewX%d(j)", k)
}
