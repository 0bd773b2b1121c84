package analyze

import (
	"fmt"
	"go/types"
	"strconv"

	"golang.org/x/tools/go/packages"

	"xcm-generator/internal/common"
	"xcm-generator/internal/gen"
	"xcm-generator/internal/shape"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Requirements lists the declarations the generated code of both components
// refers to. prevAlias names the previous version, e.g. "v4".
func Requirements(prevAlias string) []Requirement {
	reqs := []Requirement{
		{Name: "IntoJunction", Kind: DeclInterface, Methods: []string{"IntoJunction"}},
		{Name: "Junction", Kind: DeclInterface, Methods: []string{"IntoJunction"}},
		{Name: "Junctions", Kind: DeclInterface, Methods: []string{"Len", "At", "Slice"}},
		{Name: "Here", Kind: DeclType},
		{Name: "Location", Kind: DeclStruct, Fields: []string{"Parents", "Interior"}},
		{Name: "Ancestor", Kind: DeclType},
		{Name: "Parent", Kind: DeclType},
		{Name: "MigrationError", Kind: DeclStruct, Fields: []string{"Index", "Err"}},
		{Name: "unknownJunctions", Kind: DeclFunc},
		{Name: "zeroJunctions", Kind: DeclFunc},
		{Name: gen.ElementMigrationFunc(prevAlias), Kind: DeclFunc},
	}

	for n := 1; n <= shape.MaxArity; n++ {
		reqs = append(reqs,
			Requirement{Name: "X" + strconv.Itoa(n), Kind: DeclType},
			Requirement{Name: "NewX" + strconv.Itoa(n), Kind: DeclFunc},
		)
	}

	return reqs
}

// Checker loads target packages and checks them against Requirements.
type Checker struct {
	prevAlias string
	dir       string
}

// NewChecker creates a Checker. dir is the working directory for package
// patterns; empty means the current directory.
func NewChecker(prevAlias, dir string) *Checker {
	return &Checker{prevAlias: prevAlias, dir: dir}
}

// Check loads the packages matching patterns and reports one Report each.
func (c *Checker) Check(patterns ...string) ([]Report, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  c.dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []packages.Error
	for _, pkg := range pkgs {
		errs = append(errs, pkg.Errors...)
	}

	if first, ok := common.First(errs); ok {
		return nil, fmt.Errorf("%d package errors, first: %w", len(errs), first)
	}

	reports := make([]Report, 0, len(pkgs))
	for _, pkg := range pkgs {
		reports = append(reports, c.checkPackage(pkg.PkgPath, pkg.Types.Scope()))
	}

	return reports, nil
}

// checkPackage looks up every requirement and generated function in scope.
func (c *Checker) checkPackage(pkgPath string, scope *types.Scope) Report {
	report := Report{PkgPath: pkgPath}

	for _, req := range Requirements(c.prevAlias) {
		if problem := checkRequirement(scope, req); problem != "" {
			report.Diagnostics.AddError("missing_decl", problem, pkgPath, req.Name)
		}
	}

	shapes := append(shape.LocationShapes(shape.MaxArity, shape.MaxArity), shape.JunctionsShapes(shape.MaxArity)...)
	report.Diagnostics.Merge(shape.Validate(shapes))

	generated := make([]string, 0, len(shapes)+1)
	for _, s := range shapes {
		generated = append(generated, s.FuncName())
	}

	generated = append(generated, gen.MigrationFunc(c.prevAlias))

	for _, name := range generated {
		if _, ok := scope.Lookup(name).(*types.Func); ok {
			report.Generated++
			continue
		}

		report.Diagnostics.AddWarning("not_generated", "conversion "+name+" not found, run go generate", pkgPath, name)
	}

	report.Diagnostics.AddInfo("generated",
		fmt.Sprintf("%d of %d conversions present", report.Generated, len(generated)), pkgPath, "")

	return report
}

// checkRequirement returns a description of what is wrong, or "".
func checkRequirement(scope *types.Scope, req Requirement) string {
	obj := scope.Lookup(req.Name)
	if obj == nil {
		return fmt.Sprintf("%s %s is not declared", req.Kind, req.Name)
	}

	if req.Kind == DeclFunc {
		if _, ok := obj.(*types.Func); !ok {
			return req.Name + " is not a function"
		}

		return ""
	}

	typeName, ok := obj.(*types.TypeName)
	if !ok {
		return req.Name + " is not a type"
	}

	switch req.Kind {
	case DeclInterface:
		iface, ok := typeName.Type().Underlying().(*types.Interface)
		if !ok {
			return req.Name + " is not an interface"
		}

		for _, m := range req.Methods {
			if !hasMethod(iface, m) {
				return fmt.Sprintf("interface %s has no method %s", req.Name, m)
			}
		}
	case DeclStruct:
		st, ok := typeName.Type().Underlying().(*types.Struct)
		if !ok {
			return req.Name + " is not a struct"
		}

		for _, f := range req.Fields {
			if !hasField(st, f) {
				return fmt.Sprintf("struct %s has no field %s", req.Name, f)
			}
		}
	}

	return ""
}

func hasMethod(iface *types.Interface, name string) bool {
	for i := range iface.NumMethods() {
		if iface.Method(i).Name() == name {
			return true
		}
	}

	return false
}

func hasField(st *types.Struct, name string) bool {
	for i := range st.NumFields() {
		if st.Field(i).Name() == name {
			return true
		}
	}

	return false
}
