// Command differentiate reads an expression per line and prints it next
// to its simplified derivative.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"

	"mathexpr"
)

func main() {
	log.SetFlags(0)
	var tree bool
	flag.BoolVar(&tree, "tree", false, "print parsed expression trees")
	flag.Parse()

	prompt := color.New(color.FgCyan)
	warn := color.New(color.FgRed)
	in := bufio.NewScanner(os.Stdin)
	for {
		prompt.Print("Differentiate > ")
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
		d, err := e.Differentiate()
		if err != nil {
			warn.Fprintln(os.Stderr, err)
			continue
		}
		fmt.Printf("%s  ->  %s\n", e.Format(), d.Simplify().Format())
	}
	if err := in.Err(); err != nil {
		log.Fatal(err)
	}
}
