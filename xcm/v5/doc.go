// Package v5 holds the current version of the cross-consensus addressing
// types: Junction, Junctions and Location.
//
// Literal-shape conversions into Location and Junctions, and the migration
// from v4 junctions, are generated by cmd/xcm-generator. Each input shape
// has its own function, named after the shape:
//
//	LocationFromArray2([2]Junction{PalletInstance(50), GeneralIndex(1984)})
//	LocationFromParents1X2(Parent{}, Parachain(1000), AccountId32{ID: id})
//	LocationFromAncestorX1(Ancestor(3), OnlyChild{})
package v5

//go:generate go run ../../cmd/xcm-generator location --config xcm-generator.yaml
//go:generate go run ../../cmd/xcm-generator junctions --config xcm-generator.yaml
