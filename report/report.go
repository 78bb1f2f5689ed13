package report

import (
	"fmt"
	"io"

	"github.com/chenasraf/lockfix/lockfile"
	"github.com/mattn/go-colorable"
	json "github.com/neilotoole/jsoncolor"
	"github.com/samber/lo"
)

// Stdout is a writer that understands ANSI colors on every platform.
func Stdout() io.Writer {
	return colorable.NewColorableStdout()
}

// Message is the one-line summary for a processed lockfile.
func Message(r lockfile.Report) string {
	switch {
	case r.Replacements == 0:
		return fmt.Sprintf("No trailing commas to fix in %s", r.Path)
	case r.DryRun:
		return fmt.Sprintf("Would fix %d trailing %s in %s", r.Replacements, plural(r.Replacements), r.Path)
	case r.Output != r.Path:
		return fmt.Sprintf("Fixed %d trailing %s in %s (written to %s)", r.Replacements, plural(r.Replacements), r.Path, r.Output)
	default:
		return fmt.Sprintf("Fixed %d trailing %s in %s", r.Replacements, plural(r.Replacements), r.Path)
	}
}

// Print writes the summary line, and with verbose one line per change.
func Print(w io.Writer, r lockfile.Report, verbose bool) {
	fmt.Fprintln(w, Message(r))
	if !verbose {
		return
	}
	for _, c := range r.Changes {
		fmt.Fprintf(w, "  line %d: %s\n", c.Line, c.After)
	}
}

// Summary is the --json document.
type Summary struct {
	Files        []lockfile.Report `json:"files"`
	Replacements int               `json:"replacements"`
	Success      bool              `json:"success"`
	Error        string            `json:"error,omitempty"`
}

// PrintJSON encodes all reports and the run error, if any, colored when out
// is a color terminal.
func PrintJSON(out io.Writer, reports []lockfile.Report, runErr error) error {
	summary := Summary{
		Files: reports,
		Replacements: lo.SumBy(reports, func(r lockfile.Report) int {
			return r.Replacements
		}),
		Success: runErr == nil,
	}
	if runErr != nil {
		summary.Error = runErr.Error()
	}

	enc := json.NewEncoder(out)
	if json.IsColorTerminal(out) {
		enc.SetColors(json.DefaultColors())
	}
	enc.SetIndent("", "  ")
	return enc.Encode(summary)
}

func plural(n int) string {
	if n == 1 {
		return "comma"
	}
	return "commas"
}
