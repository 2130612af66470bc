package main

import (
	"fmt"
	"strings"

	"github.com/kr/pretty"
)

func init() {
	register("2a", day2a)
	register("2b", day2b)
	registerInspector("2", inspectGame)
}

type Color int

const (
	Red Color = iota
	Green
	Blue
	numColors
)

var colorNames = [numColors]string{"red", "green", "blue"}

func (c Color) String() string {
	if c < 0 || c >= numColors {
		return fmt.Sprintf("Color(%d)", int(c))
	}
	return colorNames[c]
}

func parseColor(s string) (Color, bool) {
	for c, name := range colorNames {
		if s == name {
			return Color(c), true
		}
	}
	return 0, false
}

// A cubeSet holds a number of cubes of each color.
type cubeSet [numColors]int

// defaultLimits is the bag from the puzzle statement.
var defaultLimits = cubeSet{Red: 12, Green: 13, Blue: 14}

func (s cubeSet) String() string {
	parts := make([]string, numColors)
	for c, n := range s {
		parts[c] = fmt.Sprintf("%d %s", n, Color(c))
	}
	return strings.Join(parts, ", ")
}

type Game struct {
	ID     int
	Rounds []Round
}

// A Round is one handful of cubes pulled from the bag.
type Round struct {
	Cubes []Cube
}

type Cube struct {
	Count int
	Color Color
}

type gameNode struct {
	ID     string       `"Game" Whitespace @Int ":"`
	Rounds []*roundNode `@@ ( ";" @@ )*`
}

type roundNode struct {
	Cubes []*cubeNode `@@ ( "," @@ )*`
}

type cubeNode struct {
	Count string `@Int Whitespace`
	Color string `@Word`
}

var gameParser = newLineParser[gameNode]()

func gameField(before string) string {
	if field, ok := headerField(before, "Game"); ok {
		return field
	}
	return "rounds"
}

func parseGame(i int, line string) (*Game, error) {
	node, err := parseLine(gameParser, i, line, gameField)
	if err != nil {
		return nil, err
	}
	id, ok := atoi(node.ID)
	if !ok {
		return nil, &OverflowError{Line: i, Text: line, Op: "game id"}
	}
	g := &Game{ID: id, Rounds: make([]Round, len(node.Rounds))}
	for j, rn := range node.Rounds {
		cubes := make([]Cube, len(rn.Cubes))
		for k, cn := range rn.Cubes {
			n, ok := atoi(cn.Count)
			if !ok {
				return nil, &OverflowError{Line: i, Text: line, Op: "cube count"}
			}
			c, ok := parseColor(cn.Color)
			if !ok {
				return nil, &ParseError{
					Line:   i,
					Text:   line,
					Field:  "color",
					Reason: fmt.Sprintf("unknown color %q (want red, green, or blue)", cn.Color),
				}
			}
			cubes[k] = Cube{Count: n, Color: c}
		}
		g.Rounds[j] = Round{Cubes: cubes}
	}
	return g, nil
}

// possible reports whether every pull in g could have come from a bag
// holding limits.
func (g *Game) possible(limits cubeSet) bool {
	for _, r := range g.Rounds {
		for _, c := range r.Cubes {
			if c.Count > limits[c.Color] {
				return false
			}
		}
	}
	return true
}

// minimumSet is the fewest cubes of each color that make g possible.
func (g *Game) minimumSet() cubeSet {
	var set cubeSet
	for _, r := range g.Rounds {
		for _, c := range r.Cubes {
			set[c.Color] = max(set[c.Color], c.Count)
		}
	}
	return set
}

func (g *Game) power() (int, bool) {
	p := 1
	for _, n := range g.minimumSet() {
		var ok bool
		if p, ok = mulChecked(p, n); !ok {
			return 0, false
		}
	}
	return p, true
}

func day2a(cfg *config, input string) (int, error) {
	games, _, err := parseAll(cfg, input, parseGame)
	if err != nil {
		return 0, err
	}
	var ids []int
	for _, g := range games {
		if g.possible(cfg.limits) {
			ids = append(ids, g.ID)
		}
	}
	return sumChecked(ids, "sum of game ids")
}

func day2b(cfg *config, input string) (int, error) {
	games, lines, err := parseAll(cfg, input, parseGame)
	if err != nil {
		return 0, err
	}
	powers := make([]int, len(games))
	for i, g := range games {
		p, ok := g.power()
		if !ok {
			return 0, &OverflowError{Line: i, Text: lines[i], Op: fmt.Sprintf("power of game %d", g.ID)}
		}
		powers[i] = p
	}
	return sumChecked(powers, "sum of game powers")
}

func inspectGame(cfg *config, i int, line string) (string, error) {
	g, err := parseGame(i, line)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	pretty.Fprintf(&b, "%# v\n", g)
	fmt.Fprintf(&b, "possible: %t\n", g.possible(cfg.limits))
	fmt.Fprintf(&b, "minimum set: %v\n", g.minimumSet())
	if p, ok := g.power(); ok {
		fmt.Fprintf(&b, "power: %d", p)
	} else {
		fmt.Fprint(&b, "power: overflow")
	}
	return b.String(), nil
}
