package config

import (
	"bytes"
	"testing"
)

func TestExitfWritesMessageAndExitsWithCode1(t *testing.T) {
	var code int
	previous := exit
	exit = func(c int) { code = c }
	t.Cleanup(func() { exit = previous })

	var out bytes.Buffer
	exitf(&out, "fatal: %s", "something broke")

	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if got := out.String(); got != "fatal: something broke\n" {
		t.Fatalf("output = %q", got)
	}
}
