package shape

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationShapes_Count(t *testing.T) {
	t.Parallel()

	shapes := LocationShapes(MaxArity, MaxArity)

	// 9 ancestor tuples, 9 arrays, 9x9 parent tuples, (Ancestor, Junctions),
	// Junction and 9 (Parent..., Junctions).
	assert.Len(t, shapes, 9+9+81+1+1+9)

	diags := Validate(shapes)
	require.False(t, diags.HasErrors(), spew.Sdump(diags.Errors))
}

func TestLocationShapes_SmallBound(t *testing.T) {
	t.Parallel()

	got := LocationShapes(1, 1)
	want := []Shape{
		{Target: TargetLocation, Prefix: PrefixAncestor, Junctions: 0, Interior: InteriorElements},
		{Target: TargetLocation, Prefix: PrefixArray, Junctions: 0, Interior: InteriorElements},
		{Target: TargetLocation, Prefix: PrefixParents, Parents: 0, Junctions: 0, Interior: InteriorElements},
		{Target: TargetLocation, Prefix: PrefixParents, Parents: 1, Junctions: 0, Interior: InteriorElements},
		{Target: TargetLocation, Prefix: PrefixAncestor, Junctions: 1, Interior: InteriorElements},
		{Target: TargetLocation, Prefix: PrefixArray, Junctions: 1, Interior: InteriorElements},
		{Target: TargetLocation, Prefix: PrefixParents, Parents: 0, Junctions: 1, Interior: InteriorElements},
		{Target: TargetLocation, Prefix: PrefixParents, Parents: 1, Junctions: 1, Interior: InteriorElements},
		{Target: TargetLocation, Prefix: PrefixAncestor, Interior: InteriorJunctions},
		{Target: TargetLocation, Prefix: PrefixNone, Junctions: 1, Interior: InteriorSingle},
		{Target: TargetLocation, Prefix: PrefixParents, Parents: 0, Interior: InteriorJunctions},
		{Target: TargetLocation, Prefix: PrefixParents, Parents: 1, Interior: InteriorJunctions},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("LocationShapes(1, 1) mismatch (-want +got):\n%s", diff)
	}
}

func TestJunctionsShapes(t *testing.T) {
	t.Parallel()

	shapes := JunctionsShapes(MaxArity)
	require.Len(t, shapes, MaxArity)

	for i, s := range shapes {
		assert.Equal(t, i+1, s.Junctions)
		assert.Equal(t, TargetJunctions, s.Target)
	}

	assert.Equal(t, "JunctionsFrom1", shapes[0].FuncName())
	assert.Equal(t, "(J0)", shapes[0].Signature())
	assert.Equal(t, "JunctionsFrom8", shapes[7].FuncName())

	diags := Validate(shapes)
	assert.False(t, diags.HasErrors())
}

func TestShape_Naming(t *testing.T) {
	t.Parallel()

	tests := []struct {
		shape     Shape
		name      string
		signature string
		parents   int
	}{
		{
			shape:     Shape{Target: TargetLocation, Prefix: PrefixAncestor, Junctions: 2, Interior: InteriorElements},
			name:      "LocationFromAncestorX2",
			signature: "(Ancestor, J0, J1)",
			parents:   -1,
		},
		{
			shape:     Shape{Target: TargetLocation, Prefix: PrefixArray, Junctions: 3, Interior: InteriorElements},
			name:      "LocationFromArray3",
			signature: "[Junction; 3]",
		},
		{
			shape:     Shape{Target: TargetLocation, Prefix: PrefixParents, Parents: 2, Junctions: 1, Interior: InteriorElements},
			name:      "LocationFromParents2X1",
			signature: "(Parent, Parent, J0)",
			parents:   2,
		},
		{
			shape:     Shape{Target: TargetLocation, Prefix: PrefixParents, Interior: InteriorElements},
			name:      "LocationFromParents0X0",
			signature: "()",
		},
		{
			shape:     Shape{Target: TargetLocation, Prefix: PrefixAncestor, Interior: InteriorJunctions},
			name:      "LocationFromAncestorJunctions",
			signature: "(Ancestor, Junctions)",
			parents:   -1,
		},
		{
			shape:     Shape{Target: TargetLocation, Prefix: PrefixNone, Junctions: 1, Interior: InteriorSingle},
			name:      "LocationFromJunction",
			signature: "Junction",
		},
		{
			shape:     Shape{Target: TargetLocation, Prefix: PrefixParents, Parents: 3, Interior: InteriorJunctions},
			name:      "LocationFromParents3Junctions",
			signature: "(Parent, Parent, Parent, Junctions)",
			parents:   3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.name, tt.shape.FuncName())
			assert.Equal(t, tt.signature, tt.shape.Signature())
			assert.Equal(t, tt.parents, tt.shape.ParentCount())
		})
	}
}

func TestValidate_ReportsProblems(t *testing.T) {
	t.Parallel()

	shapes := JunctionsShapes(2)
	shapes = append(shapes,
		shapes[0],
		Shape{Target: TargetJunctions, Prefix: PrefixNone, Interior: InteriorElements},
		Shape{Target: TargetLocation, Prefix: PrefixParents, Parents: MaxArity + 1, Interior: InteriorJunctions},
	)

	diags := Validate(shapes)
	require.True(t, diags.HasErrors())

	codes := map[string]int{}
	for _, d := range diags.Errors {
		codes[d.Code]++
	}

	assert.Equal(t, map[string]int{
		"duplicate_name":     1,
		"ambiguous_shape":    1,
		"empty_tuple":        1,
		"arity_out_of_range": 1,
	}, codes, spew.Sdump(diags.Errors))
}

func TestEnumStrings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Ancestor", PrefixAncestor.String())
	assert.Equal(t, "None", PrefixNone.String())
	assert.Equal(t, "Prefix(0)", Prefix(0).String())
	assert.Equal(t, "Junctions", InteriorJunctions.String())
	assert.Equal(t, "Interior(9)", Interior(9).String())
	assert.Equal(t, "Location (Ancestor, J0)",
		Shape{Target: TargetLocation, Prefix: PrefixAncestor, Junctions: 1, Interior: InteriorElements}.String())
}
