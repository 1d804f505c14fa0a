package numerology

import "numerology/pkg/domain"

// LifePathNumber reduces month, day and the digit sum of the year on their own,
// then reduces their total. Reducing the components first lets a master number
// survive at the component level (a year summing to 11 contributes 11, not 2).
//
// Calendar correctness is the caller's concern; any positive fields are accepted.
func LifePathNumber(date domain.BirthDate) Number {
	month := Reduce(date.Month)
	day := Reduce(date.Day)
	year := Reduce(DigitSum(date.Year))
	return Reduce(int(month + day + year))
}
