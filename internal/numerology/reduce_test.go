package numerology

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReduce(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want Number
	}{
		{"zero stays zero", 0, 0},
		{"single digit is terminal", 7, 7},
		{"nine is terminal", 9, 9},
		{"ten reduces to one", 10, 1},
		{"master eleven", 11, 11},
		{"master twenty two", 22, 22},
		{"master thirty three", 33, 33},
		{"intermediate eleven short-circuits", 29, 11},
		{"thirty eight stops at eleven", 38, 11},
		{"thirty nine goes through twelve", 39, 3},
		{"forty four is not a master", 44, 8},
		{"sixty five sums to eleven", 65, 11},
		{"two passes", 99, 9},
		{"year digits", 1990, 1},
		{"year summing to eleven", 2009, 11},
		{"large input", 987654321, 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Reduce(tt.in))
		})
	}
}

func TestReduceProperties(t *testing.T) {
	t.Run("single digits and masters are fixed points", func(t *testing.T) {
		for _, n := range []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 11, 22, 33} {
			assert.Equal(t, Number(n), Reduce(n), "n=%d", n)
		}
	})

	t.Run("larger values reduce through their digit sum", func(t *testing.T) {
		for n := 10; n <= 20000; n++ {
			if Number(n).IsMaster() {
				continue
			}
			got := Reduce(n)
			if got != Reduce(DigitSum(n)) {
				t.Fatalf("Reduce(%d)=%d but Reduce(DigitSum)=%d", n, got, Reduce(DigitSum(n)))
			}
			if !got.Valid() || got == 0 {
				t.Fatalf("Reduce(%d)=%d is outside [1,9] and the master set", n, got)
			}
			if Reduce(int(got)) != got {
				t.Fatalf("Reduce(%d)=%d is not a fixed point", n, got)
			}
		}
	})
}

func TestReductionChain(t *testing.T) {
	assert.Equal(t, []Number{1990, 19, 10, 1}, ReductionChain(1990))
	assert.Equal(t, []Number{29, 11}, ReductionChain(29))
	assert.Equal(t, []Number{22}, ReductionChain(22))
	assert.Equal(t, []Number{5}, ReductionChain(5))
}

func TestDigitSum(t *testing.T) {
	assert.Equal(t, 0, DigitSum(0))
	assert.Equal(t, 19, DigitSum(1990))
	assert.Equal(t, 45, DigitSum(123456789))
}

func TestNumberPredicates(t *testing.T) {
	assert.True(t, Number(22).IsMaster())
	assert.False(t, Number(44).IsMaster())
	assert.True(t, Number(0).Valid())
	assert.True(t, Number(33).Valid())
	assert.False(t, Number(10).Valid())
	assert.False(t, Number(-1).Valid())
}

func TestLetterValue(t *testing.T) {
	want := map[rune]int{
		'a': 1, 'b': 2, 'c': 3, 'd': 4, 'e': 5, 'f': 6, 'g': 7, 'h': 8, 'i': 9,
		'j': 1, 'k': 2, 'l': 3, 'm': 4, 'n': 5, 'o': 6, 'p': 7, 'q': 8, 'r': 9,
		's': 1, 't': 2, 'u': 3, 'v': 4, 'w': 5, 'x': 6, 'y': 7, 'z': 8,
	}
	for r, v := range want {
		assert.Equal(t, v, LetterValue(r), "letter %c", r)
		assert.Equal(t, (int(r-'a')%9)+1, LetterValue(r), "position rule for %c", r)
	}
	for _, r := range []rune{'A', 'Z', '1', ' ', 'é', 'ß', 'я', '`', '{'} {
		assert.Zero(t, LetterValue(r), "rune %q", r)
	}
}
