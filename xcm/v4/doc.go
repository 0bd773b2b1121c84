// Package v4 holds the previous version of the cross-consensus addressing
// types. Values are only read here; migration into the current version
// lives in package v5.
package v4
