package launch

import (
	"errors"
	"reflect"
	"testing"
)

func lookPathFor(found map[string]string) func(string) (string, error) {
	return func(cmd string) (string, error) {
		if p, ok := found[cmd]; ok {
			return p, nil
		}
		return "", errors.New("not found")
	}
}

func TestDetectShellPrefersBash(t *testing.T) {
	args, err := detectShellInternal("", lookPathFor(map[string]string{
		"bash": "/usr/bin/bash",
		"sh":   "/bin/sh",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(args, []string{"/usr/bin/bash"}) {
		t.Fatalf("expected bash, got %v", args)
	}
}

func TestDetectShellFallsBackToSh(t *testing.T) {
	args, err := detectShellInternal("", lookPathFor(map[string]string{"sh": "/bin/sh"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(args, []string{"/bin/sh"}) {
		t.Fatalf("expected sh, got %v", args)
	}
}

func TestDetectShellOverrideWithArguments(t *testing.T) {
	args, err := detectShellInternal(`zsh -o "err exit"`, lookPathFor(map[string]string{"zsh": "/bin/zsh"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := []string{"/bin/zsh", "-o", "err exit"}
	if !reflect.DeepEqual(args, expected) {
		t.Fatalf("expected %v, got %v", expected, args)
	}
}

func TestDetectShellUnavailable(t *testing.T) {
	if _, err := detectShellInternal("", lookPathFor(nil)); !errors.Is(err, ErrNoShell) {
		t.Fatalf("expected ErrNoShell, got %v", err)
	}
	if _, err := detectShellInternal("fish", lookPathFor(map[string]string{"bash": "/bin/bash"})); !errors.Is(err, ErrNoShell) {
		t.Fatalf("expected ErrNoShell for missing override, got %v", err)
	}
}

func TestParseShellCommand(t *testing.T) {
	tests := []struct {
		in     string
		expect []string
	}{
		{"", nil},
		{"   ", nil},
		{"bash", []string{"bash"}},
		{"bash -e -u", []string{"bash", "-e", "-u"}},
		{`sh -c 'a b'`, []string{"sh", "-c", "a b"}},
	}
	for _, tt := range tests {
		if got := parseShellCommand(tt.in); !reflect.DeepEqual(got, tt.expect) {
			t.Fatalf("parseShellCommand(%q) = %v, want %v", tt.in, got, tt.expect)
		}
	}
}
