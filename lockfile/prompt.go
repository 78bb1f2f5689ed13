package lockfile

import (
	"fmt"
	"os"
	"strings"

	"github.com/chenasraf/lockfix/fixer"
	"github.com/ktr0731/go-fuzzyfinder"
)

// PromptForLockfile lets the user pick one of paths. The preview window shows
// the lines that would change. An aborted prompt returns "" and no error.
func PromptForLockfile(paths []string) (string, error) {
	idx, err := fuzzyfinder.Find(
		paths,
		func(i int) string {
			return paths[i]
		},
		fuzzyfinder.WithPromptString("lockfile> "),
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return "No lockfile selected"
			}
			return Preview(paths[i])
		}))

	if err != nil {
		if err == fuzzyfinder.ErrAbort {
			return "", nil
		}
		return "", err
	}

	return paths[idx], nil
}

// Preview describes the pending changes for path without writing anything.
func Preview(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return "Error reading lockfile: " + err.Error()
	}
	_, res := fixer.Fix(string(data))
	if !res.Changed() {
		return "No trailing commas to fix"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d trailing comma(s) to fix\n\n", res.Replacements)
	for _, c := range res.Changes {
		fmt.Fprintf(&b, "%5d - %s\n", c.Line, c.Before)
		fmt.Fprintf(&b, "%5d + %s\n", c.Line, c.After)
	}
	return b.String()
}
