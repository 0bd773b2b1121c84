// Package config loads generator settings from YAML or TOML files.
//
// Example (xcm-generator.yaml):
//
//	package: v5
//	output_dir: .
//	location_file: location_conversions.go
//	junctions_file: junctions_conversions.go
//	comments: true
//	previous:
//	  alias: v4
//	  dir: ../v4
//
// Settings only control where and how files are written. The set of emitted
// conversions is fixed by shape.MaxArity.
package config
