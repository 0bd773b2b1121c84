// Package gen provides deterministic Go code generation for the literal-shape
// conversions of the addressing types.
//
// Generation approach uses text/template + go/format for readable,
// allocation-light Go code.
//
// Components:
//   - Location: one function per shape listed by shape.LocationShapes
//   - Junctions: one function per tuple shape listed by shape.JunctionsShapes,
//     plus the all-or-nothing migration from the previous version
//
// Neither component takes input; passing any is a usage error.
package gen
