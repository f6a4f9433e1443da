package chttp

import (
	"fmt"
	"net/url"
	"regexp"

	"github.com/samber/lo"
)

var templateVar = regexp.MustCompile(`\{[^{}]*\}`)

// Templates keeps track of named URL templates and allows building request
// urls from them. Register templates during initialization; expansion is
// read-only and safe for concurrent use afterwards.
type Templates struct {
	pats map[string]string
}

// NewTemplates inits the template set.
func NewTemplates() *Templates {
	return &Templates{make(map[string]string)}
}

// Expand builds the url for the named template, substituting each {var}
// placeholder in order with the corresponding value, path-escaped.
func (t Templates) Expand(name string, vals ...string) (string, error) {
	pat, ok := t.pats[name]
	if !ok {
		return "", fmt.Errorf("no template named: %q, got: %v", name, lo.Keys(t.pats)) //nolint:goerr113
	}

	placeholders := templateVar.FindAllStringIndex(pat, -1)
	if len(placeholders) != len(vals) {
		return "", fmt.Errorf("template %q takes %d values, got %d", name, len(placeholders), len(vals)) //nolint:goerr113
	}

	var out []byte
	prev := 0
	for i, loc := range placeholders {
		out = append(out, pat[prev:loc[0]]...)
		out = append(out, url.PathEscape(vals[i])...)
		prev = loc[1]
	}
	out = append(out, pat[prev:]...)

	return string(out), nil
}

// Named is a convenience method that panics if naming the template fails.
func (t *Templates) Named(name, pat string) string {
	pat, err := t.NamedTemplate(name, pat)
	if err != nil {
		panic("chttp: " + err.Error())
	}

	return pat
}

// NamedTemplate registers 'pat' under the given name while returning it as
// well.
func (t *Templates) NamedTemplate(name, pat string) (string, error) {
	if _, exists := t.pats[name]; exists {
		return pat, fmt.Errorf("template with name %q already exists", name) //nolint:goerr113
	}

	t.pats[name] = pat

	return pat, nil
}
