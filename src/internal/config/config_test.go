package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaultMissingIsEmpty(t *testing.T) {
	dir := t.TempDir()
	old, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(old) })
	_ = os.Chdir(dir)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	r := cfg.Rules()
	if len(r.Required["article"]) != 8 || r.Directive != "biblint" {
		t.Fatalf("expected default rules, got %+v", r)
	}
}

func TestLoadExplicitMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for explicit missing config")
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bibtool.yaml")
	content := `
directive: lint
width: 80
color: never
required:
  Article: [title, author, journal, year]
  thesis: [title, school]
exempt:
  neurips: [doi, number]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Width != 80 || cfg.Color != ColorNever {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
	r := cfg.Rules()
	if r.Directive != "lint" {
		t.Fatalf("directive: %q", r.Directive)
	}
	var got []string
	for _, s := range r.Required["article"] {
		got = append(got, string(s))
	}
	if strings.Join(got, " ") != "title author journal year" {
		t.Fatalf("article override: %v", got)
	}
	if len(r.Required["book"]) != 4 {
		t.Fatalf("book must keep defaults: %v", r.Required["book"])
	}
	if strings.Join(r.Exempt["neurips"], " ") != "doi number" || strings.Join(r.Exempt["acl"], " ") != "doi" {
		t.Fatalf("exempt: %v", r.Exempt)
	}
	if u := cfg.UnknownTypes(); len(u) != 1 || u[0] != "thesis" {
		t.Fatalf("UnknownTypes: %v", u)
	}
}

func TestLoadInvalid(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"badyaml.yaml":  "required: [",
		"badcolor.yaml": "color: rainbow\n",
		"badwidth.yaml": "width: -3\n",
	}
	for name, content := range cases {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
		if _, err := Load(path); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestRulesDoNotLeakBetweenCalls(t *testing.T) {
	cfg := &Config{Exempt: map[string][]string{"acl": {"pages"}}}
	_ = cfg.Rules()
	var empty *Config
	if got := empty.Rules().Exempt["acl"]; len(got) != 1 || got[0] != "doi" {
		t.Fatalf("defaults mutated: %v", got)
	}
}
