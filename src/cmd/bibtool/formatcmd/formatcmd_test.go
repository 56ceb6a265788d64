package formatcmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bibtool/src/cmd/bibtool/cliopts"
)

func TestFormatCommandWrapsAtWidth(t *testing.T) {
	dir := t.TempDir()
	old, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(old) })
	_ = os.Chdir(dir)
	t.Setenv("BIBTOOL_CONFIG", "")

	in := filepath.Join(dir, "in.bib")
	content := "@misc{key,\n  title = {" + strings.Repeat("word ", 20) + "}\n}\n"
	if err := os.WriteFile(in, []byte(content), 0o644); err != nil {
		t.Fatalf("write bib: %v", err)
	}
	cmd := New(&cliopts.Options{})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--width", "40", in})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out.String(), "\n    word") {
		t.Fatalf("expected wrapped output, got:\n%s", out.String())
	}
}

func TestFormatCommandRejectsNegativeWidth(t *testing.T) {
	t.Setenv("BIBTOOL_CONFIG", "")
	dir := t.TempDir()
	old, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(old) })
	_ = os.Chdir(dir)
	cmd := New(&cliopts.Options{})
	cmd.SetIn(strings.NewReader("@misc{k,\n  title = {T}\n}\n"))
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"--width", "-1"})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected error for negative width")
	}
}
