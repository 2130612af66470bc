package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
)

func main() {
	log.SetFlags(0)
	cfg := newConfig()
	configFile := flag.String("config", "", "INI file of puzzle settings")
	flag.BoolVar(&cfg.verbose, "v", false, "Log each parsed input line")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}
	if *configFile != "" {
		if err := cfg.loadFile(*configFile); err != nil {
			log.Fatal(err)
		}
	}

	ctx := context.Background()
	args := flag.Args()
	switch args[0] {
	case "all":
		if len(args) != 2 {
			log.Fatal("usage: advent all <input-dir>")
		}
		results, err := runAll(ctx, cfg, args[1])
		if err != nil {
			log.Fatal(err)
		}
		printResults(os.Stdout, results)
	case "repl":
		if len(args) != 2 {
			log.Fatal("usage: advent repl <day>")
		}
		if err := repl(cfg, args[1]); err != nil {
			log.Fatal(err)
		}
	case "serve":
		addr := "localhost:8787"
		if len(args) > 1 {
			addr = args[1]
		}
		log.Fatal(serve(cfg, addr))
	default:
		fn, ok := solutions[args[0]]
		if !ok {
			log.Fatalf("unknown solution %q", args[0])
		}
		var src string
		if len(args) > 1 {
			src = args[1]
		}
		input, err := readInput(ctx, src)
		if err != nil {
			log.Fatal(err)
		}
		answer, err := fn(cfg, input)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(answer)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `usage:
  %[1]s [flags] <solution> [input]   solve one puzzle (input is a file, - for stdin, or s3://bucket/key)
  %[1]s [flags] all <input-dir>      solve every puzzle, reading <day>.txt from input-dir
  %[1]s [flags] repl <day>           parse and score lines interactively
  %[1]s [flags] serve [addr]         serve solutions over HTTP
where solution is one of:
`, os.Args[0])
	for _, name := range solutionNames() {
		fmt.Fprintln(os.Stderr, name)
	}
	fmt.Fprintln(os.Stderr, "flags:")
	flag.PrintDefaults()
}

// A solution computes one puzzle answer from the full puzzle input.
type solution func(cfg *config, input string) (int, error)

// An inspector parses a single input line and describes how it scores.
type inspector func(cfg *config, i int, line string) (string, error)

var (
	solutions  = make(map[string]solution)
	inspectors = make(map[string]inspector)
)

func register(name string, fn solution) {
	if _, ok := solutions[name]; ok {
		panic(fmt.Sprintf("duplicate solutions registered for %q", name))
	}
	solutions[name] = fn
}

func registerInspector(day string, fn inspector) {
	if _, ok := inspectors[day]; ok {
		panic(fmt.Sprintf("duplicate inspectors registered for day %q", day))
	}
	inspectors[day] = fn
}

func solutionNames() []string {
	var names []string
	for name := range solutions {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return nameLess(names[i], names[j]) })
	return names
}

func nameLess(name0, name1 string) bool {
	n0, s0 := splitName(name0)
	n1, s1 := splitName(name1)
	if n0 < n1 {
		return true
	}
	if n0 > n1 {
		return false
	}
	return s0 < s1
}

// splitName splits a solution name like "12b" into its day and part.
func splitName(name string) (int, string) {
	i := 0
	for ; i < len(name); i++ {
		c := name[i]
		if c < '0' || c > '9' {
			break
		}
	}
	n, err := strconv.Atoi(name[:i])
	if err != nil {
		panic(err)
	}
	return n, name[i:]
}
