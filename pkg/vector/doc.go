// Package vector provides small fixed-dimension real vectors with dot product,
// norm, scaling and ordering by norm.
//
// The dimension is part of the type: Vector[[2]float64] and Vector[[3]float64]
// are distinct types, so mixing dimensions is a compile error rather than a
// runtime condition. Vec2, Vec3 and Vec4 are aliases for the common sizes.
//
// # Basic Usage
//
//	import "github.com/dmitrymomot/mathkit/pkg/vector"
//
//	v := vector.NewVec2(2, 3)
//	w := vector.NewVec2(4, 5)
//
//	v.Dot(w)          // 23
//	v.Scale(3).Dot(w) // 69
//	v.Norm()          // 3.605551275463989
//	v.String()        // "<2, 3>"
//
// # Ordering
//
// Vectors are ordered by norm, not by components. Distinct vectors with equal
// norm compare as Equal, so the ordering is weak:
//
//	vector.NewVec2(1, 0).Compare(vector.NewVec2(0, 1)) // Equal
//	vector.NewVec2(1, 0).Compare(vector.NewVec2(1, 1)) // Less
//
// Compare is suitable for slices.SortFunc:
//
//	slices.SortFunc(vs, vector.Compare[[2]float64])
//
// # NaN Handling
//
// No operation validates its input. A NaN component yields a NaN dot product
// and norm. For ordering, a NaN norm is equal to any other NaN norm and less
// than every non-NaN norm (the semantics of cmp.Compare), which keeps the
// ordering total and deterministic.
package vector
