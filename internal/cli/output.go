package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	passColor    = color.New(color.FgGreen)
	failColor    = color.New(color.FgRed, color.Bold)
	warnColor    = color.New(color.FgYellow)
	headingColor = color.New(color.FgCyan, color.Bold)
)

// printColored writes text line by line, coloring report and dependency
// lines by their status prefix. color.NoColor disables it.
func printColored(w io.Writer, text string) {
	for _, line := range strings.Split(text, "\n") {
		fmt.Fprintln(w, colorLine(line))
	}
}

func colorLine(line string) string {
	switch {
	case strings.HasPrefix(line, "PASS:"), strings.HasPrefix(line, "OK:"):
		return passColor.Sprint(line)
	case strings.HasPrefix(line, "FAIL:"), strings.HasPrefix(line, "VIOLATION:"):
		return failColor.Sprint(line)
	case strings.HasPrefix(line, "WARN:"):
		return warnColor.Sprint(line)
	case strings.HasPrefix(line, "#"):
		return headingColor.Sprint(line)
	}
	return line
}
