package main

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/kr/pretty"
)

const day4Example = `Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53
Card 2: 13 32 20 16 61 | 61 30 68 82 17 32 24 19
Card 3:  1 21 53 59 44 | 69 82 63 72 16 21 14  1
Card 4: 41 92 73 84 69 | 59 84 76 51 58  5 54 83
Card 5: 87 83 26 28 32 | 88 30 70 12 93 22 82 36
Card 6: 31 18 13 56 72 | 74 77 10 23 35 67 36 11
`

func TestParseCard(t *testing.T) {
	got, err := parseCard(0, "Card   3:  1 21 53 59 44 | 69 82 63 72 16 21 14  1")
	if err != nil {
		t.Fatal(err)
	}
	want := &Card{
		ID:             3,
		WinningNumbers: []int{1, 21, 53, 59, 44},
		Numbers:        []int{69, 82, 63, 72, 16, 21, 14, 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %# v; want %# v\ndiff: %v", pretty.Formatter(got), pretty.Formatter(want), pretty.Diff(got, want))
	}
}

func TestParseCardSpacing(t *testing.T) {
	for _, line := range []string{
		"Card 1: 41 48 | 83 86",
		"Card 1:41 48|83 86",
		"Card\t1 :  41\t48  |  83 86",
	} {
		got, err := parseCard(0, line)
		if err != nil {
			t.Errorf("parseCard(%q): %s", line, err)
			continue
		}
		want := &Card{ID: 1, WinningNumbers: []int{41, 48}, Numbers: []int{83, 86}}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("parseCard(%q): got %# v; want %# v", line, pretty.Formatter(got), pretty.Formatter(want))
		}
	}
}

func TestParseCardErrors(t *testing.T) {
	for _, tt := range []struct {
		line  string
		field string
	}{
		{"Card X: 1 | 2", "id"},
		{"Card1: 1 | 2", "id"},
		{"Card1:41 48|83 86", "id"},
		{"Crad 1: 1 | 2", `"Card" keyword`},
		{"Card 1 1 | 2", "id"},
		{"Card 1: | 1 2", "winning numbers"},
		{"Card 1: 1 2 3", "winning numbers"},
		{"Card 1: 1 x | 2", "winning numbers"},
		{"Card 1: 1 2 |", "numbers"},
		{"Card 1: 1 2 | 3 |", "numbers"},
		{"Card 1: 1 2 | 3 4 five", "numbers"},
		{"Card 1: 1 2 | 3 4 ", "numbers"},
	} {
		_, err := parseCard(0, tt.line)
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Errorf("parseCard(%q): got err %v; want *ParseError", tt.line, err)
			continue
		}
		if perr.Field != tt.field {
			t.Errorf("parseCard(%q): got field %q; want %q (err: %s)", tt.line, perr.Field, tt.field, err)
		}
	}
}

func TestCardScore(t *testing.T) {
	for _, tt := range []struct {
		line  string
		wins  int
		score int
	}{
		{"Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53", 4, 8},
		{"Card 2: 13 32 20 16 61 | 61 30 68 82 17 32 24 19", 2, 2},
		{"Card 3:  1 21 53 59 44 | 69 82 63 72 16 21 14  1", 2, 2},
		{"Card 4: 41 92 73 84 69 | 59 84 76 51 58  5 54 83", 1, 1},
		{"Card 5: 87 83 26 28 32 | 88 30 70 12 93 22 82 36", 0, 0},
		{"Card 6: 31 18 13 56 72 | 74 77 10 23 35 67 36 11", 0, 0},
		// Repeats among the numbers each count.
		{"Card 7: 5 | 5 5 5", 3, 4},
		// Repeats among the winning numbers don't.
		{"Card 8: 5 5 5 | 5", 1, 1},
	} {
		c, err := parseCard(0, tt.line)
		if err != nil {
			t.Fatal(err)
		}
		if got := c.winCount(); got != tt.wins {
			t.Errorf("winCount(%q): got %d; want %d", tt.line, got, tt.wins)
		}
		if got := c.winCount(); got > len(c.Numbers) {
			t.Errorf("winCount(%q) = %d exceeds %d numbers", tt.line, got, len(c.Numbers))
		}
		got, ok := c.score()
		if !ok {
			t.Errorf("score(%q) overflowed", tt.line)
			continue
		}
		if got != tt.score {
			t.Errorf("score(%q): got %d; want %d", tt.line, got, tt.score)
		}
	}
}

func TestCardScoreOverflow(t *testing.T) {
	line := "Card 1: 7 |" + strings.Repeat(" 7", 64)
	_, err := day4a(newConfig(), line)
	var oerr *OverflowError
	if !errors.As(err, &oerr) {
		t.Fatalf("got err %v; want *OverflowError", err)
	}
	if oerr.Line != 0 || oerr.Text != line {
		t.Errorf("got line %d, text %q; want line 0, text %q", oerr.Line, oerr.Text, line)
	}
	// 63 matches still fit.
	line = "Card 1: 7 |" + strings.Repeat(" 7", 63)
	got, err := day4a(newConfig(), line)
	if err != nil {
		t.Fatal(err)
	}
	if want := 1 << 62; got != want {
		t.Errorf("got %d; want %d", got, want)
	}
}

func TestCascade(t *testing.T) {
	for _, tt := range []struct {
		wins []int
		want []int
	}{
		{nil, []int{}},
		{[]int{0, 0, 0}, []int{1, 1, 1}},
		{[]int{4, 2, 2, 1, 0}, []int{1, 2, 4, 8, 14}},
		{[]int{4, 2, 2, 1, 0, 0}, []int{1, 2, 4, 8, 14, 1}},
		// Wins past the last card are dropped.
		{[]int{5, 0}, []int{1, 2}},
		{[]int{1, 1, 1, 1}, []int{1, 2, 3, 4}},
	} {
		got, err := cascade(tt.wins)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("cascade(%v): got %v; want %v", tt.wins, got, tt.want)
		}
	}
}

func TestCascadeMonotonic(t *testing.T) {
	wins := []int{4, 2, 2, 1, 0, 0, 3, 1, 1, 0}
	prev := 0
	for n := 0; n <= len(wins); n++ {
		copies, err := cascade(wins[:n])
		if err != nil {
			t.Fatal(err)
		}
		total, err := sumChecked(copies, "test")
		if err != nil {
			t.Fatal(err)
		}
		if total < prev {
			t.Errorf("total for %d cards is %d; less than %d for %d cards", n, total, prev, n-1)
		}
		prev = total
	}
}

func TestCascadeOverflow(t *testing.T) {
	wins := make([]int, 100)
	for i := range wins {
		wins[i] = len(wins)
	}
	_, err := cascade(wins)
	var oerr *OverflowError
	if !errors.As(err, &oerr) {
		t.Fatalf("got err %v; want *OverflowError", err)
	}
}

func TestDay4CascadeOverflowQuotesLine(t *testing.T) {
	var lines []string
	for i := 1; i <= 100; i++ {
		lines = append(lines, fmt.Sprintf("Card %d: 1 2 3 4 5 6 7 | 1 2 3 4 5 6 7", i))
	}
	_, err := day4b(newConfig(), strings.Join(lines, "\n"))
	var oerr *OverflowError
	if !errors.As(err, &oerr) {
		t.Fatalf("got err %v; want *OverflowError", err)
	}
	if oerr.Line < 0 || oerr.Text != lines[oerr.Line] {
		t.Errorf("got line %d, text %q; want the text of that line", oerr.Line, oerr.Text)
	}
}

func TestDay4(t *testing.T) {
	for _, tt := range []struct {
		fn   solution
		name string
		want int
	}{
		{day4a, "4a", 13},
		{day4b, "4b", 30},
	} {
		got, err := tt.fn(newConfig(), day4Example)
		if err != nil {
			t.Fatalf("%s: %s", tt.name, err)
		}
		if got != tt.want {
			t.Errorf("%s: got %d; want %d", tt.name, got, tt.want)
		}
	}
}

func TestDay4Empty(t *testing.T) {
	for _, fn := range []solution{day4a, day4b} {
		got, err := fn(newConfig(), "")
		if err != nil {
			t.Fatal(err)
		}
		if got != 0 {
			t.Errorf("got %d; want 0", got)
		}
	}
}

func TestDay4FailsOnBadLine(t *testing.T) {
	input := strings.Replace(day4Example, "Card 4:", "Card 4", 1)
	_, err := day4b(newConfig(), input)
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("got err %v; want *ParseError", err)
	}
	if perr.Line != 3 {
		t.Errorf("got line %d; want 3", perr.Line)
	}
}
