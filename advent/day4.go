package main

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"

	"github.com/kr/pretty"
)

func init() {
	register("4a", day4a)
	register("4b", day4b)
	registerInspector("4", inspectCard)
}

type Card struct {
	ID             int
	WinningNumbers []int
	Numbers        []int
}

type cardNode struct {
	ID      string   `"Card" Whitespace @Int ":"`
	Winning []string `@Int ( Whitespace @Int )* "|"`
	Numbers []string `@Int ( Whitespace @Int )*`
}

var cardParser = newLineParser[cardNode]()

func cardField(before string) string {
	if field, ok := headerField(before, "Card"); ok {
		return field
	}
	if !strings.Contains(before, "|") {
		return "winning numbers"
	}
	return "numbers"
}

func parseCard(i int, line string) (*Card, error) {
	node, err := parseLine(cardParser, i, line, cardField)
	if err != nil {
		return nil, err
	}
	id, ok := atoi(node.ID)
	if !ok {
		return nil, &OverflowError{Line: i, Text: line, Op: "card id"}
	}
	winning, ok := atoiAll(node.Winning)
	if !ok {
		return nil, &OverflowError{Line: i, Text: line, Op: "winning numbers"}
	}
	numbers, ok := atoiAll(node.Numbers)
	if !ok {
		return nil, &OverflowError{Line: i, Text: line, Op: "numbers"}
	}
	return &Card{ID: id, WinningNumbers: winning, Numbers: numbers}, nil
}

// winCount is how many of c's numbers are winning numbers. A repeated
// number counts each time it appears.
func (c *Card) winCount() int {
	winning := make(map[int]struct{}, len(c.WinningNumbers))
	for _, n := range c.WinningNumbers {
		winning[n] = struct{}{}
	}
	var count int
	for _, n := range c.Numbers {
		if _, ok := winning[n]; ok {
			count++
		}
	}
	return count
}

// score is 1 for the first match, doubled for each match after that.
func (c *Card) score() (int, bool) {
	n := c.winCount()
	if n == 0 {
		return 0, true
	}
	if n-1 >= bits.UintSize-1 {
		return 0, false
	}
	return 1 << (n - 1), true
}

// cascade returns how many copies of each card end up being held when
// card i, with wins[i] matches, wins one copy of each of the next wins[i]
// cards for every copy of card i held. Wins past the last card are
// dropped.
//
// Copies only flow forward, so a single pass in index order suffices:
// by the time card i is reached, every copy of it has been won.
func cascade(wins []int) ([]int, error) {
	copies := make([]int, len(wins))
	for i := range copies {
		copies[i] = 1
	}
	for i, w := range wins {
		for j := i + 1; j <= i+w && j < len(copies); j++ {
			n, ok := addChecked(copies[j], copies[i])
			if !ok {
				return nil, &OverflowError{Line: j, Op: "card copies"}
			}
			copies[j] = n
		}
	}
	return copies, nil
}

func day4a(cfg *config, input string) (int, error) {
	cards, lines, err := parseAll(cfg, input, parseCard)
	if err != nil {
		return 0, err
	}
	scores := make([]int, len(cards))
	for i, c := range cards {
		s, ok := c.score()
		if !ok {
			return 0, &OverflowError{Line: i, Text: lines[i], Op: fmt.Sprintf("score of card %d", c.ID)}
		}
		scores[i] = s
	}
	return sumChecked(scores, "sum of card scores")
}

func day4b(cfg *config, input string) (int, error) {
	cards, lines, err := parseAll(cfg, input, parseCard)
	if err != nil {
		return 0, err
	}
	wins := make([]int, len(cards))
	for i, c := range cards {
		wins[i] = c.winCount()
	}
	copies, err := cascade(wins)
	if err != nil {
		var oerr *OverflowError
		if errors.As(err, &oerr) && oerr.Line >= 0 {
			oerr.Text = lines[oerr.Line]
		}
		return 0, err
	}
	return sumChecked(copies, "total card count")
}

func inspectCard(_ *config, i int, line string) (string, error) {
	c, err := parseCard(i, line)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	pretty.Fprintf(&b, "%# v\n", c)
	fmt.Fprintf(&b, "matches: %d\n", c.winCount())
	if s, ok := c.score(); ok {
		fmt.Fprintf(&b, "score: %d", s)
	} else {
		fmt.Fprint(&b, "score: overflow")
	}
	return b.String(), nil
}
