package main

import (
	"errors"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// All puzzle lines share one lexer. A delimiter token takes in the spaces
// on either side of it, so "1 | 2" and "1|2" lex alike. Any other run of
// spaces is a Whitespace token, which the grammars require where the
// puzzle puts a space: after the keyword, between a count and its color,
// and between numbers.
var lineLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Punct", Pattern: `[ \t]*[:;,|][ \t]*`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Word", Pattern: `[A-Za-z]+`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
})

func newLineParser[G any]() *participle.Parser[G] {
	return participle.MustBuild[G](
		participle.Lexer(lineLexer),
		participle.Map(trimToken, "Punct"),
	)
}

func trimToken(t lexer.Token) (lexer.Token, error) {
	t.Value = strings.TrimSpace(t.Value)
	return t, nil
}

// parseLine parses line i of the input with p. The whole line must match.
// On failure, fieldAt is given the text preceding the failure point and
// names the part of the line that was being parsed.
func parseLine[G any](p *participle.Parser[G], i int, line string, fieldAt func(before string) string) (*G, error) {
	node, err := p.ParseString("", line)
	if err == nil {
		return node, nil
	}
	off := 0
	reason := err.Error()
	var perr participle.Error
	if errors.As(err, &perr) {
		off = perr.Position().Offset
		reason = perr.Message()
	}
	off = min(max(off, 0), len(line))
	return nil, &ParseError{
		Line:   i,
		Text:   line,
		Field:  fieldAt(line[:off]),
		Reason: reason,
		Err:    err,
	}
}

// atoi converts an Int token. Puzzle numbers are 32-bit unsigned; the
// only possible failure for a token of digits is a range error.
func atoi(s string) (int, bool) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return int(n), true
}

func atoiAll(ss []string) ([]int, bool) {
	ns := make([]int, len(ss))
	for i, s := range ss {
		n, ok := atoi(s)
		if !ok {
			return nil, false
		}
		ns[i] = n
	}
	return ns, true
}

// headerField handles the "<keyword> <id>:" prefix common to both grammars.
func headerField(before, keyword string) (field string, ok bool) {
	switch {
	case !strings.Contains(before, keyword):
		return strconv.Quote(keyword) + " keyword", true
	case !strings.Contains(before, ":"):
		return "id", true
	}
	return "", false
}
