package intent

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleRules = `
fallback: "Try asking about projects."
rules:
  - name: greeting
    triggers: ["Hello", "  hi  "]
    response: "Hey there!"
  - name: projects
    triggers: ["project"]
    response: "Here are the projects."
`

func TestParseRulesBuildsOrderedDispatcher(t *testing.T) {
	d, err := ParseRules(strings.NewReader(sampleRules))
	if err != nil {
		t.Fatalf("ParseRules err: %v", err)
	}

	rules := d.Rules()
	if len(rules) != 2 || rules[0].Name != "greeting" || rules[1].Name != "projects" {
		t.Fatalf("unexpected rules: %+v", rules)
	}
	if rules[0].Triggers[0] != "hello" {
		t.Fatalf("expected lowercased trigger, got %q", rules[0].Triggers[0])
	}
	if rules[0].Triggers[1] != "  hi  " {
		t.Fatalf("expected surrounding spaces kept, got %q", rules[0].Triggers[1])
	}

	if got := d.Resolve("HELLO, any project?"); got != "Hey there!" {
		t.Fatalf("expected greeting to win, got %q", got)
	}
	if got := d.Resolve("nothing here"); got != "Try asking about projects." {
		t.Fatalf("expected custom fallback, got %q", got)
	}
}

func TestParseRulesRejectsInvalidTables(t *testing.T) {
	cases := map[string]string{
		"empty document": ``,
		"no rules":       `fallback: "x"`,
		"missing name":   `rules: [{triggers: ["a"], response: "A"}]`,
		"reserved name":  `rules: [{name: fallback, triggers: ["a"], response: "A"}]`,
		"duplicate name": `rules: [{name: a, triggers: ["a"], response: "A"}, {name: a, triggers: ["b"], response: "B"}]`,
		"no response":    `rules: [{name: a, triggers: ["a"]}]`,
		"blank triggers": `rules: [{name: a, triggers: ["", "  "], response: "A"}]`,
		"unknown field":  `rules: [{name: a, triggers: ["a"], response: "A", weight: 3}]`,
		"malformed yaml": `rules: [`,
	}

	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseRules(strings.NewReader(doc))
			if !errors.Is(err, ErrInvalidRules) {
				t.Fatalf("expected ErrInvalidRules, got %v", err)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	if err := os.WriteFile(path, []byte(sampleRules), 0o600); err != nil {
		t.Fatalf("write rules: %v", err)
	}

	d, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile err: %v", err)
	}
	if got := d.Match("hello").Rule; got != "greeting" {
		t.Fatalf("expected greeting, got %s", got)
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}
