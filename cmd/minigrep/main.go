// Package main implements minigrep, a single-line grep over the minire
// matcher.
//
// Usage:
//
//	echo "sally has 3 apples" | minigrep -E '\d apple'
//
// Exit status is 0 when the line matches, 1 when it does not, and 2 on a
// usage error, a read error, or a malformed pattern.
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
	"runtime"

	"github.com/coregx/minire/meta"
)

const version = "0.1.0"

const (
	exitMatch   = 0
	exitNoMatch = 1
	exitError   = 2
)

func getVersion(me string) string {
	return fmt.Sprintf("%s version=%s runtime=%s GOOS=%s GOARCH=%s",
		me, version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr, os.Getenv))
}

// run is main with its environment passed in. It returns the exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer, getenv func(string) string) int {
	me := filepath.Base(args[0])
	logger := log.New(stderr, me+": ", 0)

	flags := flag.NewFlagSet(me, flag.ContinueOnError)
	flags.SetOutput(stderr)
	var (
		pattern     string
		extended    bool
		showVersion bool
	)
	flags.Func("E", "match `pattern` against the line read from stdin", func(s string) error {
		pattern, extended = s, true
		return nil
	})
	flags.BoolVar(&showVersion, "version", showVersion, "show version")
	if err := flags.Parse(args[1:]); err != nil {
		return exitError
	}

	if showVersion {
		fmt.Fprintln(stdout, getVersion(me))
		return exitMatch
	}
	if !extended || flags.NArg() > 0 {
		fmt.Fprintf(stderr, "usage: %s -E <pattern>\n", me)
		return exitError
	}

	app := getConfig(logger, getenv)

	line, errRead := readLine(stdin)
	if errRead != nil {
		logger.Printf("read input line: %v", errRead)
		return exitError
	}

	plan, errPlan := meta.Analyze(pattern, app.matcher)
	if errPlan != nil {
		logger.Printf("%v", errPlan)
		return exitError
	}
	if app.debug {
		gate := plan.Gate()
		logger.Printf("pattern=%q strategy=%s literals=%v prefilters=%d prefilter_bytes=%d",
			pattern, plan.Strategy(), plan.Requirements().Literals, gate.Len(), gate.HeapBytes())
	}

	if !plan.IsMatch(line) {
		return exitNoMatch
	}
	return exitMatch
}

// readLine reads one line from r, keeping its trailing newline so that '$'
// sees the end of the line.
func readLine(r io.Reader) ([]byte, error) {
	line, err := bufio.NewReader(r).ReadBytes('\n')
	if errors.Is(err, io.EOF) {
		return line, nil
	}
	return line, err
}
