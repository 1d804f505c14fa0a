package numerology

// LetterClass selects which lowercase letters contribute to a name number.
// It is only ever called with runes in a..z.
type LetterClass func(r rune) bool

// AllLetters accepts every letter (Destiny).
func AllLetters(rune) bool { return true }

// Vowels accepts a, e, i, o, u (Soul Urge).
func Vowels(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

// Consonants accepts every letter that is not a vowel, including y (Personality).
func Consonants(r rune) bool {
	return !Vowels(r)
}

// NameNumber lowercases name, keeps only ASCII a..z, sums the values of the
// letters accepted by class and reduces the total. Accented and non-Latin
// letters are dropped, not transliterated. A name with no qualifying letters
// yields 0.
func NameNumber(name string, class LetterClass) Number {
	sum := 0
	for _, r := range name {
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		if r < 'a' || r > 'z' || !class(r) {
			continue
		}
		sum += LetterValue(r)
	}
	return Reduce(sum)
}

// DestinyNumber (also called the Expression number) uses every letter of the name.
func DestinyNumber(name string) Number {
	return NameNumber(name, AllLetters)
}

// SoulUrgeNumber (Heart's Desire) uses the vowels of the name.
func SoulUrgeNumber(name string) Number {
	return NameNumber(name, Vowels)
}

// PersonalityNumber uses the consonants of the name.
func PersonalityNumber(name string) Number {
	return NameNumber(name, Consonants)
}
