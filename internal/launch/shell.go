package launch

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"unicode"
)

var defaultShells = []string{"bash", "sh"}

// DetectShell resolves the interpreter used to run scripts. A non-empty
// override (for example "bash -e") wins; otherwise the first of bash and sh
// found on PATH is used.
func DetectShell(override string) ([]string, error) {
	return detectShellInternal(override, exec.LookPath)
}

func detectShellInternal(override string, lookPath func(string) (string, error)) ([]string, error) {
	if args := parseShellCommand(override); len(args) > 0 {
		resolved, ok := resolveExecutableWithLookup(args[0], lookPath)
		if !ok {
			return nil, ErrNoShell
		}
		args[0] = resolved
		return args, nil
	}

	for _, candidate := range defaultShells {
		if resolved, ok := resolveExecutableWithLookup(candidate, lookPath); ok {
			return []string{resolved}, nil
		}
	}
	return nil, ErrNoShell
}

// parseShellCommand splits a command line honouring single and double quotes.
func parseShellCommand(cmd string) []string {
	cmd = strings.TrimSpace(cmd)
	if cmd == "" {
		return nil
	}

	var args []string
	var current strings.Builder
	inSingle := false
	inDouble := false

	for _, r := range cmd {
		switch r {
		case '\'':
			if inDouble {
				current.WriteRune(r)
			} else {
				inSingle = !inSingle
			}
			continue
		case '"':
			if inSingle {
				current.WriteRune(r)
			} else {
				inDouble = !inDouble
			}
			continue
		default:
			if !inSingle && !inDouble && unicode.IsSpace(r) {
				if current.Len() > 0 {
					args = append(args, current.String())
					current.Reset()
				}
				continue
			}
			current.WriteRune(r)
		}
	}

	if current.Len() > 0 {
		args = append(args, current.String())
	}

	if len(args) > 0 {
		args[0] = expandUserPath(args[0])
	}
	return args
}

func expandUserPath(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if len(path) == 1 {
		return home
	}
	if sep := path[1]; sep != '/' && sep != '\\' {
		return path
	}
	return filepath.Join(home, path[2:])
}

func resolveExecutableWithLookup(cmd string, lookPath func(string) (string, error)) (string, bool) {
	if cmd == "" {
		return "", false
	}
	path, err := lookPath(cmd)
	if err != nil || path == "" {
		return "", false
	}
	return path, true
}
