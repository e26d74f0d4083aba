package intent

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidRules wraps every validation failure of a rule document.
var ErrInvalidRules = errors.New("invalid intent rules")

// RuleFile is the on-disk layout of a rule table.
type RuleFile struct {
	Fallback string `yaml:"fallback"`
	Rules    []Rule `yaml:"rules"`
}

// LoadFile reads a YAML rule table from path.
func LoadFile(path string) (*Dispatcher, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open rules file %s: %w", path, err)
	}
	defer f.Close()

	d, err := ParseRules(f)
	if err != nil {
		return nil, fmt.Errorf("parse rules file %s: %w", path, err)
	}
	return d, nil
}

// ParseRules decodes and validates a YAML rule table. Triggers are lowercased
// so they line up with Normalize; blank triggers are dropped.
func ParseRules(r io.Reader) (*Dispatcher, error) {
	var doc RuleFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidRules)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidRules, err)
	}

	rules, err := validateRules(doc.Rules)
	if err != nil {
		return nil, err
	}

	return NewDispatcher(rules, doc.Fallback), nil
}

func validateRules(in []Rule) ([]Rule, error) {
	if len(in) == 0 {
		return nil, fmt.Errorf("%w: no rules defined", ErrInvalidRules)
	}

	seen := make(map[string]struct{}, len(in))
	out := make([]Rule, 0, len(in))
	for i, rule := range in {
		name := strings.TrimSpace(rule.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: rule #%d has no name", ErrInvalidRules, i+1)
		}
		if name == FallbackName {
			return nil, fmt.Errorf("%w: rule name %q is reserved", ErrInvalidRules, name)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("%w: duplicate rule name %q", ErrInvalidRules, name)
		}
		seen[name] = struct{}{}

		if strings.TrimSpace(rule.Response) == "" {
			return nil, fmt.Errorf("%w: rule %q has no response", ErrInvalidRules, name)
		}

		triggers := make([]string, 0, len(rule.Triggers))
		for _, trigger := range rule.Triggers {
			if strings.TrimSpace(trigger) == "" {
				continue
			}
			// Surrounding spaces are kept so " ai " can act as a word boundary.
			triggers = append(triggers, strings.ToLower(trigger))
		}
		if len(triggers) == 0 {
			return nil, fmt.Errorf("%w: rule %q has no triggers", ErrInvalidRules, name)
		}

		out = append(out, Rule{Name: name, Triggers: triggers, Response: rule.Response})
	}
	return out, nil
}
