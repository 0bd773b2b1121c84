// Package diagnostic provides structured errors, warnings and notes
// produced while planning and checking generated conversions.
//
// Key capabilities:
//   - Ambiguous or duplicated conversion shapes
//   - Arity outside the supported bound
//   - Declarations missing from the target package
package diagnostic
