// Package geom models junction boxes as immutable points in 3-D space.
//
// What:
//
//   - Point is a plain value (X, Y, Z float64). It is copied freely and never mutated.
//   - Distance is the exact Euclidean distance, computed in float64.
//   - ReadPoints / ParsePoint turn "x,y,z" text records into points.
//
// Identity:
//
//	A point set is an arena: callers keep []Point and refer to boxes by their
//	stable index. Two records at identical coordinates are still two different
//	boxes; Point.Equal compares coordinates exactly and is never used for identity.
//
// Errors:
//
//   - ErrFieldCount: a record does not have exactly three comma-separated fields.
//   - ErrBadCoordinate: a field is not a valid floating-point number.
//
// Both are wrapped with the 1-based line number by ReadPoints.
package geom
