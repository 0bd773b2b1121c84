// Package analyze checks that a target package declares what the generated
// conversions assume.
//
// It uses golang.org/x/tools/go/packages with go/types to look up each
// required declaration:
//   - Junction, IntoJunction and Junctions interfaces
//   - Here and the X1..X8 variants with their NewX1..NewX8 constructors
//   - Location with Parents and Interior fields, Ancestor and Parent
//   - the element migration from the previous version
//
// Generated functions that are absent are reported as warnings, so a package
// can be checked before its first generation.
package analyze
