package numerology

// letterValues holds the Pythagorean value of a..z: alphabet position wrapped into 1..9.
var letterValues = [26]int{
	1, 2, 3, 4, 5, 6, 7, 8, 9, // a-i
	1, 2, 3, 4, 5, 6, 7, 8, 9, // j-r
	1, 2, 3, 4, 5, 6, 7, 8, // s-z
}

// LetterValue returns the table value of a lowercase ASCII letter and 0 for any other rune.
func LetterValue(r rune) int {
	if r < 'a' || r > 'z' {
		return 0
	}
	return letterValues[r-'a']
}
