// Command calculator reads an expression per line, prompts for the value
// of each of its unknowns, and prints the evaluated result.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"math/big"
	"os"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"

	"mathexpr"
)

func main() {
	log.SetFlags(0)
	var (
		tree bool
		prec int
		verb string
	)
	flag.BoolVar(&tree, "tree", false, "print parsed expression trees")
	flag.IntVar(&prec, "p", 0, "evaluate to the given precision in bits instead of float64")
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.Parse()
	if prec < 0 {
		log.Fatalf("precision (%d) must be positive", prec)
	}

	prompt := color.New(color.FgCyan)
	warn := color.New(color.FgRed)
	in := bufio.NewScanner(os.Stdin)
	for {
		prompt.Print(">  ")
		if !in.Scan() {
			break
		}
		line := strings.TrimSpace(in.Text())
		if line == "" {
			continue
		}
		e, err := mathexpr.ParseText(line)
		if err != nil {
			warn.Fprintln(os.Stderr, err)
			continue
		}
		if tree {
			fmt.Print(spew.Sdump(e))
		}
		vars, ok := askVars(in, prompt, warn, e.Vars())
		if !ok {
			continue
		}
		if prec > 0 {
			evalBig(e, vars, uint(prec), verb, warn)
			continue
		}
		r, err := e.Evaluate(vars)
		if err != nil {
			warn.Fprintln(os.Stderr, err)
			continue
		}
		fmt.Printf("=  "+verb+"\n", r)
	}
	if err := in.Err(); err != nil {
		log.Fatal(err)
	}
}

// askVars prompts for a numeric value for each free variable.
func askVars(in *bufio.Scanner, prompt, warn *color.Color, names []string) (map[string]float64, bool) {
	vars := make(map[string]float64, len(names))
	for _, name := range names {
		prompt.Printf("%s: ", name)
		if !in.Scan() {
			return nil, false
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(in.Text()), 64)
		if err != nil {
			warn.Fprintln(os.Stderr, err)
			return nil, false
		}
		vars[name] = v
	}
	return vars, true
}

func evalBig(e *mathexpr.Expr, vars map[string]float64, prec uint, verb string, warn *color.Color) {
	ctx := mathexpr.NewContext(mathexpr.Prec(prec))
	for name, v := range vars {
		ctx.Set(name, new(big.Float).SetFloat64(v))
	}
	r := e.EvalBig(ctx)
	if r == nil {
		warn.Fprintln(os.Stderr, ctx.Err())
		return
	}
	fmt.Printf("=  "+verb+"\n", r)
}
