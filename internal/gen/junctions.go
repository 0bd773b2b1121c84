package gen

import (
	"fmt"
	"strings"

	"xcm-generator/internal/shape"
)

// junctionsConversion builds the function converting a tuple shape into
// Junctions.
func junctionsConversion(s shape.Shape) conversionData {
	return conversionData{
		Name:      s.FuncName(),
		Signature: s.Signature(),
		Params:    strings.Join(elementParams(s.Junctions), ", "),
		Result:    "Junctions",
		Body:      elementsInterior(s.Junctions),
	}
}

// buildMigration lists one case per non-empty variant of the previous
// version. The empty variant is part of the template since it cannot fail.
func buildMigration(alias string, maxJunctions int) *migrationData {
	m := &migrationData{
		Name:        MigrationFunc(alias),
		Alias:       alias,
		ElementFunc: ElementMigrationFunc(alias),
	}

	for n := 1; n <= maxJunctions; n++ {
		v := migrationVariant{Len: n, Elements: make([]int, n)}

		idents := make([]string, n)
		for i := range n {
			v.Elements[i] = i
			idents[i] = fmt.Sprintf("j%d", i)
		}

		v.Result = fmt.Sprintf("NewX%d([%d]Junction{%s})", n, n, strings.Join(idents, ", "))
		m.Variants = append(m.Variants, v)
	}

	return m
}

// MigrationFunc names the generated migration from the version imported as
// alias.
func MigrationFunc(alias string) string {
	return "JunctionsFrom" + versionSuffix(alias)
}

// ElementMigrationFunc names the hand-written single junction migration the
// generated migration calls.
func ElementMigrationFunc(alias string) string {
	return "JunctionFrom" + versionSuffix(alias)
}
