package cmd

import (
	"fmt"
	"io"
	"os"
	"sort"

	"golang.org/x/term"

	schema "github.com/kschaper/draft4schema"
)

const (
	ansiGreen = "\x1b[32m"
	ansiRed   = "\x1b[31m"
	ansiDim   = "\x1b[2m"
	ansiReset = "\x1b[0m"
)

func colorEnabled() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func renderOK(msg string) string {
	if !colorEnabled() {
		return msg
	}
	return ansiGreen + msg + ansiReset
}

// renderBag prints an ErrorBag sorted by instance location, indenting
// SubErrors one level per nesting, colorized if stdout is a terminal.
func renderBag(w io.Writer, bag schema.ErrorBag) {
	color := colorEnabled()
	locations := make([]string, 0, len(bag))
	for loc := range bag {
		locations = append(locations, loc)
	}
	sort.Strings(locations)

	for _, loc := range locations {
		for _, v := range bag[loc] {
			printViolation(w, v, 0, color)
		}
	}
}

func printViolation(w io.Writer, v *schema.Violation, depth int, color bool) {
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}
	loc := v.Location
	if loc == "" {
		loc = "#"
	}
	if color {
		fmt.Fprintf(w, "%s%s%s%s %s (%s)\n", indent, ansiRed, loc, ansiReset, v.Message, ansiDimCode(v.Keyword))
	} else {
		fmt.Fprintf(w, "%s%s %s (%s)\n", indent, loc, v.Message, v.Keyword)
	}
	subLocations := make([]string, 0, len(v.SubErrors))
	for subLoc := range v.SubErrors {
		subLocations = append(subLocations, subLoc)
	}
	sort.Strings(subLocations)
	for _, subLoc := range subLocations {
		for _, sub := range v.SubErrors[subLoc] {
			printViolation(w, sub, depth+1, color)
		}
	}
}

func ansiDimCode(keyword string) string {
	return ansiDim + keyword + ansiReset
}
