package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"

	"github.com/zephyrtronium/exact"
)

const (
	historyFile = ".exact_history"
	prompt      = "> "
)

type calc struct {
	opts  []exact.Option
	round bool
	echo  bool
	out   io.Writer
}

func main() {
	log.SetFlags(0)
	var (
		inname  string
		timeout time.Duration
		steps   int64
		digits  int
		c       calc
	)
	flag.StringVar(&inname, "in", "", "input file with one expression per line (- for stdin)")
	flag.BoolVar(&c.round, "round", false, "always show rounded decimals instead of exact fractions")
	flag.BoolVar(&c.echo, "echo", false, "print how each expression was grouped")
	flag.DurationVar(&timeout, "timeout", exact.DefaultTimeout, "time limit for factorials and powers in one expression")
	flag.Int64Var(&steps, "steps", 0, "limit on multiplication steps in one expression (0 for none)")
	flag.IntVar(&digits, "digits", 0, "limit on predicted digits of a factorial or power (0 for none)")
	flag.Parse()
	c.opts = []exact.Option{exact.Timeout(timeout), exact.Steps(steps), exact.MaxDigits(digits)}
	c.out = os.Stdout

	if flag.NArg() > 0 {
		ok := true
		for _, arg := range flag.Args() {
			ok = c.line(arg, "") && ok
		}
		if !ok {
			os.Exit(1)
		}
		return
	}

	var f *os.File
	switch {
	case inname != "" && inname != "-":
		in, err := os.Open(inname)
		if err != nil {
			log.Fatal(err)
		}
		defer in.Close()
		f = in
	case inname == "" && isatty.IsTerminal(os.Stdin.Fd()):
		c.repl()
		return
	default:
		f = os.Stdin
	}
	scan := bufio.NewScanner(f)
	ok := true
	for scan.Scan() {
		if strings.TrimSpace(scan.Text()) == "" {
			continue
		}
		ok = c.line(scan.Text(), "") && ok
	}
	if err := scan.Err(); err != nil {
		log.Fatal(err)
	}
	if !ok {
		os.Exit(1)
	}
}

// line evaluates one expression and prints its result. If the expression was
// typed after a prompt, errors are marked with a caret under the offending
// character. The result is false if evaluation failed.
func (c *calc) line(expr, prompt string) bool {
	r, err := exact.Evaluate(expr, c.opts...)
	if err != nil {
		var e *exact.Error
		switch {
		case !errors.As(err, &e) || e.Index < 0:
			fmt.Fprintln(c.out, "error:", err)
		case prompt != "":
			fmt.Fprintf(c.out, "%s^ %v\n", strings.Repeat(" ", len([]rune(prompt))+e.Index), err)
		default:
			fmt.Fprintln(c.out, expr)
			fmt.Fprintf(c.out, "%s^ %v\n", strings.Repeat(" ", e.Index), err)
		}
		return false
	}
	if c.echo {
		g, _ := exact.Grouping(expr, c.opts...)
		fmt.Fprintf(c.out, "%s = ", g)
	}
	fmt.Fprintln(c.out, exact.Display(r, c.round))
	return true
}

func (c *calc) repl() {
	fmt.Fprintln(c.out, `exact calculator. "round" toggles rounded results, "exit" or Ctrl+D quits.`)
	home, _ := os.UserHomeDir()
	hist := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	if f, err := os.Open(hist); err == nil {
		ln.ReadHistory(f)
		f.Close()
	}

	for {
		s, err := ln.Prompt(prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				log.Println(err)
			}
			fmt.Fprintln(c.out)
			break
		}
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "":
			continue
		case "exit", "quit":
			ln.AppendHistory(s)
			c.save(ln, hist)
			return
		case "round":
			c.round = !c.round
			mode := "exact"
			if c.round {
				mode = "rounded"
			}
			fmt.Fprintln(c.out, "results are now", mode)
			continue
		}
		c.line(s, prompt)
		ln.AppendHistory(s)
	}
	c.save(ln, hist)
}

func (c *calc) save(ln *liner.State, hist string) {
	f, err := os.Create(hist)
	if err != nil {
		return
	}
	ln.WriteHistory(f)
	f.Close()
}
