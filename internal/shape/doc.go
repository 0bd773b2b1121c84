// Package shape describes the conversion surface emitted by the generator.
//
// A Shape is one literal input form accepted by a generated conversion:
//   - (Ancestor, J0, ..., Jk) and (Ancestor, Junctions)
//   - [Junction; k] arrays
//   - (Parent x p, J0, ..., Jk) and (Parent x p, Junctions)
//   - a single Junction
//   - (J0, ..., Jk) tuples converted into Junctions
//
// Every shape maps to exactly one Go function name. The whole surface is
// derived from MaxArity, so both generator components stay in sync.
package shape
