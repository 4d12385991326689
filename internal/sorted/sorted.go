// Package sorted implements unchecked search kernels over ascending slices.
//
// All functions assume len(a) >= 1 and that a is sorted in ascending order.
// Callers in the public packages validate this before entering hot loops.
package sorted

// Integer is the set of signed integer types accepted by the kernels.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Float is the set of floating point types accepted by the kernels.
type Float interface {
	~float32 | ~float64
}

// Number is the set of element types accepted by the kernels.
type Number interface {
	Integer | Float
}

// Seek scans outward from guess and returns the side-adjusted position of value.
//
// The result is 0 when value < a[0] and len(a) when no element is greater
// than value. Otherwise it is ub-1+side, where ub is the number of elements
// not greater than value.
func Seek[T Number](a []T, value T, guess int, side int) int {
	n := len(a)
	if value < a[0] {
		return 0
	}

	if value > a[n-1] {
		return n
	}

	guess = clamp(guess, n)

	if a[guess] > value {
		for j := guess - 1; j >= 0; j-- {
			if a[j] <= value {
				return j + side
			}
		}

		return 0
	}

	for j := guess + 1; j < n; j++ {
		if a[j] > value {
			return j - 1 + side
		}
	}

	return n
}

// SeekLowerBound scans outward from guess and returns the first index i with
// a[i] >= value, or len(a) if there is none.
func SeekLowerBound[T Number](a []T, value T, guess int) int {
	n := len(a)
	if value <= a[0] {
		return 0
	}

	if value > a[n-1] {
		return n
	}

	guess = clamp(guess, n)

	if a[guess] >= value {
		for j := guess - 1; j >= 0; j-- {
			if a[j] < value {
				return j + 1
			}
		}

		return 0
	}

	for j := guess + 1; j < n; j++ {
		if a[j] >= value {
			return j
		}
	}

	return n
}

// Interpolate is Seek with a guess derived by linear interpolation between
// the first and last element.
func Interpolate[T Number](a []T, value T, side int) int {
	guess, done := Guess(a, value)
	if done {
		return guess
	}

	return Seek(a, value, guess, side)
}

// InterpolateLowerBound is SeekLowerBound with an interpolated guess.
func InterpolateLowerBound[T Number](a []T, value T) int {
	guess, done := Guess(a, value)
	if done {
		return guess
	}

	return SeekLowerBound(a, value, guess)
}

// Guess estimates the position of value assuming evenly spaced elements.
//
// When value lies outside [a[0], a[last]] the answer is known without a scan
// and done is true: the result is 0 below the range and len(a) above it.
func Guess[T Number](a []T, value T) (int, bool) {
	n := len(a)
	if value < a[0] {
		return 0, true
	}

	if value > a[n-1] {
		return n, true
	}

	first := float64(a[0])
	span := float64(a[n-1]) - first
	if span <= 0 {
		return 0, false
	}

	rel := (float64(value) - first) / span

	return clamp(int(rel*float64(n-1)), n), false
}

// UpperBound returns the first index i >= from with a[i] > value, or len(a).
func UpperBound[T Number](a []T, value T, from int) int {
	lo, hi := from, len(a)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if a[mid] > value {
			hi = mid
		} else {
			lo = mid + 1
		}
	}

	return lo
}

// IsStrictlyAscending reports whether every element is greater than its predecessor.
func IsStrictlyAscending[T Number](a []T) bool {
	for i := 1; i < len(a); i++ {
		if a[i] <= a[i-1] {
			return false
		}
	}

	return true
}

func clamp(i, n int) int {
	if i < 0 {
		return 0
	}

	if i >= n {
		return n - 1
	}

	return i
}
