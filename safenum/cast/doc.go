// Package cast provides checked conversions between fixed-width integer types.
//
// A conversion succeeds only when the target type represents the source value
// exactly; truncation and sign reinterpretation are reported instead of
// silently producing a different value.
package cast
