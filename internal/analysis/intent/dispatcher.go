package intent

import "strings"

// FallbackName 是未命中任何规则时 Result.Rule 的取值。
const FallbackName = "fallback"

// Rule maps a set of trigger phrases to one canned response.
type Rule struct {
	Name     string   `json:"name" yaml:"name"`
	Triggers []string `json:"triggers" yaml:"triggers"`
	Response string   `json:"response" yaml:"response"`
}

// Matches reports whether the already-normalized text contains any trigger.
// Empty triggers never match.
func (r Rule) Matches(normalized string) bool {
	for _, trigger := range r.Triggers {
		if trigger == "" {
			continue
		}
		if strings.Contains(normalized, trigger) {
			return true
		}
	}
	return false
}

// Result 描述一次意图匹配的结果。
type Result struct {
	Rule     string `json:"intent"`
	Response string `json:"response"`
	Fallback bool   `json:"fallback"`
}

// Dispatcher evaluates an ordered rule table. It holds no mutable state and is
// safe for concurrent use.
type Dispatcher struct {
	rules    []Rule
	fallback string
}

// NewDispatcher copies rules so later mutation by the caller cannot reorder or
// alter the table. Rules with a blank response are dropped, and an empty
// fallback is replaced by the built-in one, so a reply is never empty.
func NewDispatcher(rules []Rule, fallback string) *Dispatcher {
	copied := make([]Rule, 0, len(rules))
	for _, rule := range rules {
		if strings.TrimSpace(rule.Response) == "" {
			continue
		}
		copied = append(copied, Rule{
			Name:     rule.Name,
			Triggers: append([]string(nil), rule.Triggers...),
			Response: rule.Response,
		})
	}

	if strings.TrimSpace(fallback) == "" {
		fallback = DefaultFallback
	}

	return &Dispatcher{rules: copied, fallback: fallback}
}

// Default returns a dispatcher over the built-in rule table.
func Default() *Dispatcher {
	return NewDispatcher(DefaultRules(), DefaultFallback)
}

// Normalize lowercases and trims the message. No punctuation stripping or
// Unicode folding is applied.
func Normalize(raw string) string {
	return strings.TrimSpace(strings.ToLower(raw))
}

// Resolve returns the response of the first matching rule, or the fallback.
func (d *Dispatcher) Resolve(raw string) string {
	return d.Match(raw).Response
}

// Match is Resolve plus the name of the rule that fired.
func (d *Dispatcher) Match(raw string) Result {
	normalized := Normalize(raw)

	for _, rule := range d.rules {
		if rule.Matches(normalized) {
			return Result{Rule: rule.Name, Response: rule.Response}
		}
	}

	return Result{Rule: FallbackName, Response: d.Fallback(), Fallback: true}
}

// Rules returns a copy of the table in priority order.
func (d *Dispatcher) Rules() []Rule {
	out := make([]Rule, len(d.rules))
	for i, rule := range d.rules {
		out[i] = Rule{
			Name:     rule.Name,
			Triggers: append([]string(nil), rule.Triggers...),
			Response: rule.Response,
		}
	}
	return out
}

// Fallback returns the response used when nothing matches. A zero Dispatcher
// answers with the built-in fallback.
func (d *Dispatcher) Fallback() string {
	if d.fallback == "" {
		return DefaultFallback
	}
	return d.fallback
}
