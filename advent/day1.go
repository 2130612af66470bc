package main

func init() {
	register("1a", day1a)
	register("1b", day1b)
}

var digitWords = [...]string{"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// digitAt returns the digit that starts at s[i], or -1. If words is set,
// spelled-out digits count too.
func digitAt(s string, i int, words bool) int {
	if c := s[i]; c >= '0' && c <= '9' {
		return int(c - '0')
	}
	if !words {
		return -1
	}
	for d, w := range digitWords {
		if len(s)-i >= len(w) && s[i:i+len(w)] == w {
			return d
		}
	}
	return -1
}

// calibrationValue combines the first and last digits of line into a
// two-digit number. Digits may overlap ("twone" is 21). A line with no
// digits is worth 0.
func calibrationValue(line string, words bool) int {
	first, last := -1, -1
	for i := 0; i < len(line); i++ {
		d := digitAt(line, i, words)
		if d < 0 {
			continue
		}
		if first < 0 {
			first = d
		}
		last = d
	}
	if first < 0 {
		return 0
	}
	return first*10 + last
}

func calibrationSum(input string, words bool) int {
	var sum int
	for _, line := range splitLines(input) {
		sum += calibrationValue(line, words)
	}
	return sum
}

func day1a(_ *config, input string) (int, error) {
	return calibrationSum(input, false), nil
}

func day1b(_ *config, input string) (int, error) {
	return calibrationSum(input, true), nil
}
