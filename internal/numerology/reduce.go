package numerology

// Number is a derived numerology figure.
type Number int

// Master numbers are never reduced further.
const (
	Master11 Number = 11
	Master22 Number = 22
	Master33 Number = 33
)

// IsMaster reports whether n is 11, 22 or 33.
func (n Number) IsMaster() bool {
	return n == Master11 || n == Master22 || n == Master33
}

// Valid reports whether n can be produced by a derivation: 0 through 9 or a master number.
func (n Number) Valid() bool {
	return (n >= 0 && n <= 9) || n.IsMaster()
}

// Reduce sums the base-10 digits of n until a single digit remains, stopping
// early whenever an intermediate value is a master number: Reduce(29) is 11,
// not 2. n must be non-negative; negative values are returned unchanged.
func Reduce(n int) Number {
	for {
		v := Number(n)
		if v.IsMaster() || n <= 9 {
			return v
		}
		n = DigitSum(n)
	}
}

// ReductionChain returns every intermediate value Reduce visits, starting with n.
func ReductionChain(n int) []Number {
	chain := []Number{Number(n)}
	for {
		v := Number(n)
		if v.IsMaster() || n <= 9 {
			return chain
		}
		n = DigitSum(n)
		chain = append(chain, Number(n))
	}
}

// DigitSum adds the base-10 digits of a non-negative integer.
func DigitSum(n int) int {
	sum := 0
	for n > 0 {
		sum += n % 10
		n /= 10
	}
	return sum
}
