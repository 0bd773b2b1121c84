package analyze

import (
	"xcm-generator/internal/common"
	"xcm-generator/internal/diagnostic"
)

// DeclKind is the kind of declaration a requirement expects.
type DeclKind int

const (
	DeclType      DeclKind = iota // any named type
	DeclInterface                 // named interface type
	DeclStruct                    // named struct type
	DeclFunc                      // package-level function
)

// String returns a human-readable representation of the DeclKind.
func (k DeclKind) String() string {
	switch k {
	case DeclType:
		return "type"
	case DeclInterface:
		return "interface"
	case DeclStruct:
		return "struct"
	case DeclFunc:
		return "func"
	default:
		return common.UnknownStr
	}
}

// Requirement is a declaration the generated code refers to.
type Requirement struct {
	Name string
	Kind DeclKind
	// Fields lists struct fields that must exist, DeclStruct only.
	Fields []string
	// Methods lists methods that must exist, DeclInterface only.
	Methods []string
}

// Report is the outcome of checking one package.
type Report struct {
	// PkgPath is the import path of the checked package.
	PkgPath string
	// Generated counts generated conversions found in the package.
	Generated int
	// Diagnostics holds missing or mismatched declarations.
	Diagnostics diagnostic.Diagnostics
}
