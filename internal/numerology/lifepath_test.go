package numerology

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"numerology/pkg/domain"
)

func TestLifePathNumber(t *testing.T) {
	tests := []struct {
		name string
		date domain.BirthDate
		want Number
	}{
		// 7 + (1+6) + (1+9+9+0=19 -> 10 -> 1) = 15 -> 6
		{"reference date", domain.BirthDate{Year: 1990, Month: 7, Day: 16}, 6},
		// 11 + (2+9=11) + (2+0+0+9=11) = 33
		{"master components add to a master", domain.BirthDate{Year: 2009, Month: 11, Day: 29}, 33},
		// (1+2=3) + (3+1=4) + (1+9+8+5=23 -> 5) = 12 -> 3
		{"every component reduced", domain.BirthDate{Year: 1985, Month: 12, Day: 31}, 3},
		// 4 + 4 + 2 = 10 -> 1
		{"out of calendar fields still reduce", domain.BirthDate{Year: 2000, Month: 13, Day: 40}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LifePathNumber(tt.date))
		})
	}
}

func TestLifePathNumberIsFixedPoint(t *testing.T) {
	for year := 1900; year <= 2100; year += 7 {
		for month := 1; month <= 12; month++ {
			for day := 1; day <= 31; day++ {
				got := LifePathNumber(domain.BirthDate{Year: year, Month: month, Day: day})
				if !got.Valid() || got == 0 || Reduce(int(got)) != got {
					t.Fatalf("%04d-%02d-%02d produced %d", year, month, day, got)
				}
			}
		}
	}
}
