package main

import (
	"os"
	"strings"

	"postplan-cli/internal/cli"
)

func isAccountID(s string) bool {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "acct-") {
		return false
	}
	// Permissive on purpose; users paste ids.
	return len(s) > len("acct-")
}

// rewriteDirectAccountLookupArgs makes `postplan <account-id>` behave like
// `postplan accounts show <account-id>`. Cobra treats the first non-flag token
// as a subcommand, so argv is rewritten before parsing. Persistent flags may
// come first (`postplan --dir ... acct-x`), so we find the first positional
// token rather than assuming argv[1].
func rewriteDirectAccountLookupArgs(argv []string) []string {
	if len(argv) < 2 {
		return argv
	}

	valueFlags := map[string]bool{
		"--dir":    true,
		"--format": true,
	}
	boolFlags := map[string]bool{
		"--pretty": true,
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		if a == "" {
			continue
		}
		if a == "--" {
			if i+1 < len(argv) && isAccountID(argv[i+1]) {
				out := make([]string, 0, len(argv)+2)
				out = append(out, argv[:i+1]...)
				out = append(out, "accounts", "show")
				out = append(out, argv[i+1:]...)
				return out
			}
			return argv
		}

		if strings.HasPrefix(a, "-") {
			if strings.Contains(a, "=") {
				continue
			}
			if boolFlags[a] {
				continue
			}
			if valueFlags[a] {
				i++ // skip the flag's value
			}
			continue
		}

		// First positional token.
		if isAccountID(a) {
			out := make([]string, 0, len(argv)+2)
			out = append(out, argv[:i]...)
			out = append(out, "accounts", "show")
			out = append(out, argv[i:]...)
			return out
		}
		return argv
	}

	return argv
}

func main() {
	os.Args = rewriteDirectAccountLookupArgs(os.Args)

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
