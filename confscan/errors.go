package confscan

import (
	"fmt"
	"strconv"
	"strings"
)

// ScanError describes the most recent ERROR token. It stays valid until
// the next Next call that produces another ERROR.
type ScanError struct {
	Text string
	File string
	Line int
}

func (e *ScanError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("line %d: %s", e.Line, e.Text)
	}
	return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Text)
}

// Frame renders a gutter-style code frame for the error given the full
// source of the file it occurred in.
func (e *ScanError) Frame(source string) string {
	if source == "" || e.Line <= 0 {
		return ""
	}

	lines := strings.Split(source, "\n")
	if e.Line > len(lines) {
		return ""
	}

	lineText := lines[e.Line-1]
	lineLabel := strconv.Itoa(e.Line)
	gutterPad := strings.Repeat(" ", len(lineLabel))

	return fmt.Sprintf(
		"  --> line %d\n %s | %s\n %s |",
		e.Line,
		lineLabel,
		lineText,
		gutterPad,
	)
}
