// Package numerology implements Pythagorean numerology arithmetic: digit-sum
// reduction with master numbers, the letter value table, and the derivations of
// the Life Path, Destiny, Soul Urge and Personality numbers.
//
// Every function is pure and holds no mutable state, so callers may use them from
// any number of goroutines without synchronization.
//
// Derived results are always in [0,9] or one of the master numbers 11, 22, 33.
// Zero only appears when a name contributes no letters (for example a Soul Urge
// for a name without vowels); it is returned as-is rather than clamped.
package numerology
