package pulse

import "golang.org/x/exp/constraints"

// GCD returns the greatest common divisor of a and b (non-negative).
func GCD[T constraints.Integer](a, b T) T {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of xs, or 0 when xs is empty or
// contains a zero.
func LCM[T constraints.Integer](xs ...T) T {
	if len(xs) == 0 {
		return 0
	}
	acc := xs[0]
	for _, x := range xs[1:] {
		if acc == 0 || x == 0 {
			return 0
		}
		acc = acc / GCD(acc, x) * x
	}
	if acc < 0 {
		acc = -acc
	}
	return acc
}
