package main

import (
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
)

// repl reads lines from the terminal, parsing and scoring each one with
// the given day's rules.
func repl(cfg *config, day string) error {
	return runREPL(cfg, day, &readline.Config{
		Prompt: fmt.Sprintf("day %s> ", day),
	})
}

func runREPL(cfg *config, day string, rlConfig *readline.Config) error {
	inspect, ok := inspectors[day]
	if !ok {
		return fmt.Errorf("no line inspector for day %q", day)
	}
	l, err := readline.NewEx(rlConfig)
	if err != nil {
		return err
	}
	defer l.Close()
	out := rlConfig.Stdout
	if out == nil {
		out = os.Stdout
	}

	for i := 0; ; {
		line, err := l.Readline()
		switch err {
		case nil:
		case readline.ErrInterrupt:
			continue
		case io.EOF:
			return nil
		default:
			return fmt.Errorf("readline error: %s", err)
		}
		if line == "" {
			continue
		}
		desc, err := inspect(cfg, i, line)
		i++
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		fmt.Fprintln(out, desc)
	}
}
