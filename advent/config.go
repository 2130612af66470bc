package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/kr/pretty"
	"github.com/vaughan0/go-ini"
)

type config struct {
	limits  cubeSet // day 2 bag contents
	verbose bool
}

func newConfig() *config {
	return &config{limits: defaultLimits}
}

// loadFile reads settings from an INI file. The only section used is
//
//	[cubes]
//	red = 12
//	green = 13
//	blue = 14
//
// and any color left out keeps its current limit.
func (c *config) loadFile(name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := c.load(f); err != nil {
		return fmt.Errorf("%s: %s", name, err)
	}
	return nil
}

func (c *config) load(r io.Reader) error {
	file, err := ini.Load(r)
	if err != nil {
		return err
	}
	for key, val := range file["cubes"] {
		color, ok := parseColor(key)
		if !ok {
			return fmt.Errorf("[cubes]: unknown color %q", key)
		}
		n, err := strconv.Atoi(val)
		if err != nil || n < 0 {
			return fmt.Errorf("[cubes]: bad limit for %s: %q", key, val)
		}
		c.limits[color] = n
	}
	return nil
}

// trace logs a parsed record when running verbosely.
func (c *config) trace(rec interface{}) {
	if c == nil || !c.verbose {
		return
	}
	log.Printf("%# v", pretty.Formatter(rec))
}
