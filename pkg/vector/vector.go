package vector

import (
	"cmp"
	"math"
	"strconv"
	"strings"
)

// Components is the set of backing arrays a Vector can be built on.
// The array length is the vector dimension.
type Components interface {
	~[2]float64 | ~[3]float64 | ~[4]float64
}

// Vector is an immutable real vector whose dimension is fixed by C.
// The zero value is the zero vector.
type Vector[C Components] struct {
	c C
}

// Common dimensions.
type (
	Vec2 = Vector[[2]float64]
	Vec3 = Vector[[3]float64]
	Vec4 = Vector[[4]float64]
)

// New returns a vector holding a copy of c.
func New[C Components](c C) Vector[C] {
	return Vector[C]{c: c}
}

// NewVec2 returns the 2-dimensional vector (x, y).
func NewVec2(x, y float64) Vec2 {
	return Vec2{c: [2]float64{x, y}}
}

// NewVec3 returns the 3-dimensional vector (x, y, z).
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{c: [3]float64{x, y, z}}
}

// NewVec4 returns the 4-dimensional vector (x, y, z, w).
func NewVec4(x, y, z, w float64) Vec4 {
	return Vec4{c: [4]float64{x, y, z, w}}
}

// Zero returns the zero vector of dimension C.
func Zero[C Components]() Vector[C] {
	return Vector[C]{}
}

// Dim returns the number of components.
func (v Vector[C]) Dim() int {
	return len(v.c)
}

// At returns the i-th component. It panics if i is out of range.
func (v Vector[C]) At(i int) float64 {
	return v.c[i]
}

// X returns the first component.
func (v Vector[C]) X() float64 { return v.c[0] }

// Y returns the second component.
func (v Vector[C]) Y() float64 { return v.c[1] }

// Z returns the third component. It panics for 2-dimensional vectors.
func (v Vector[C]) Z() float64 { return v.At(2) }

// W returns the fourth component. It panics for vectors of dimension below 4.
func (v Vector[C]) W() float64 { return v.At(3) }

// Components returns a copy of the backing array.
func (v Vector[C]) Components() C {
	return v.c
}

// Dot returns the dot product of v and w.
// Terms are summed in index order, so v.Dot(w) == w.Dot(v) exactly.
func (v Vector[C]) Dot(w Vector[C]) float64 {
	var sum float64
	for i := 0; i < len(v.c); i++ {
		sum += v.c[i] * w.c[i]
	}
	return sum
}

// Norm returns the Euclidean norm, the square root of v.Dot(v).
func (v Vector[C]) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// Scale returns v with every component multiplied by s.
func (v Vector[C]) Scale(s float64) Vector[C] {
	for i := 0; i < len(v.c); i++ {
		v.c[i] *= s
	}
	return v
}

// Compare orders v and w by norm. See the package documentation for NaN handling.
func (v Vector[C]) Compare(w Vector[C]) Ordering {
	return Ordering(cmp.Compare(v.Norm(), w.Norm()))
}

// Less reports whether v has a smaller norm than w.
func (v Vector[C]) Less(w Vector[C]) bool {
	return v.Compare(w) == Less
}

// Equivalent reports whether v and w have the same norm.
// Two vectors with NaN norms are equivalent.
func (v Vector[C]) Equivalent(w Vector[C]) bool {
	return v.Compare(w) == Equal
}

// String formats v as "<c0, c1, ..., cN-1>".
func (v Vector[C]) String() string {
	var b strings.Builder
	b.WriteByte('<')
	for i := 0; i < len(v.c); i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatFloat(v.c[i], 'g', -1, 64))
	}
	b.WriteByte('>')
	return b.String()
}

// Dot returns a.Dot(b).
func Dot[C Components](a, b Vector[C]) float64 {
	return a.Dot(b)
}

// Norm returns a.Norm().
func Norm[C Components](a Vector[C]) float64 {
	return a.Norm()
}

// Scale returns a.Scale(s).
func Scale[C Components](a Vector[C], s float64) Vector[C] {
	return a.Scale(s)
}

// Compare returns -1, 0 or +1 depending on whether the norm of a is less than,
// equal to, or greater than the norm of b. It is the comparison function form
// of Vector.Compare, for use with the slices package.
func Compare[C Components](a, b Vector[C]) int {
	return int(a.Compare(b))
}
