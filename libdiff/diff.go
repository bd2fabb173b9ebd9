package libdiff

import (
	"strings"

	"github.com/keenwrite/definitions/encode"
	"github.com/keenwrite/definitions/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff returns a line diff of the YAML encodings of from and to, each line
// prefixed with "-", "+" or " ". It returns "" when they are equal.
func Diff(from, to *ir.Node) string {
	if ir.Equal(from, to) {
		return ""
	}
	return DiffText(encode.MustString(from), encode.MustString(to))
}

// DiffText is Diff for text already encoded.
func DiffText(from, to string) string {
	if from == to {
		return ""
	}
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
	buf := &strings.Builder{}
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffpatch.DiffInsert:
			prefix = "+"
		case diffpatch.DiffDelete:
			prefix = "-"
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			buf.WriteString(prefix)
			buf.WriteString(line)
			if !strings.HasSuffix(line, "\n") {
				buf.WriteByte('\n')
			}
		}
	}
	return buf.String()
}
