package tiles

// difficulty ranks each letter by how hard it is to play: rare consonants
// like Q, Z, J, X rank highest, vowels lowest. Ordering heuristics and the
// swap analyzer both key off this table.
var difficulty = [26]int{
	'A' - 'A': 2,
	'B' - 'A': 5,
	'C' - 'A': 5,
	'D' - 'A': 4,
	'E' - 'A': 1,
	'F' - 'A': 6,
	'G' - 'A': 4,
	'H' - 'A': 6,
	'I' - 'A': 2,
	'J' - 'A': 9,
	'K' - 'A': 7,
	'L' - 'A': 3,
	'M' - 'A': 5,
	'N' - 'A': 3,
	'O' - 'A': 2,
	'P' - 'A': 5,
	'Q' - 'A': 10,
	'R' - 'A': 3,
	'S' - 'A': 3,
	'T' - 'A': 3,
	'U' - 'A': 2,
	'V' - 'A': 8,
	'W' - 'A': 6,
	'X' - 'A': 9,
	'Y' - 'A': 6,
	'Z' - 'A': 10,
}

// Difficulty returns the fixed play-difficulty rank for a letter.
// Higher means rarer and harder to place.
func Difficulty(l Letter) int {
	return difficulty[l.Index()]
}

// DifficultySum returns the summed difficulty of every letter in a word,
// counting repeats.
func DifficultySum(word string) int {
	sum := 0
	for i := 0; i < len(word); i++ {
		l := Letter(word[i])
		if l.Valid() {
			sum += difficulty[l.Index()]
		}
	}
	return sum
}
