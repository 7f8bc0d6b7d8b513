package stylesheet

import (
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// Button states encoded in icon file names
const (
	StateHover       = "hover"
	StatePressed     = "pressed"
	StateDeactivated = "deactivated"
	StateInactive    = "inactive"
)

// tokenSeparator splits "<name>[-state]*" file names.
var tokenSeparator = regexp.MustCompile(`[-_]`)

// buttonSelectors maps a button name to its base selector.
// restore has no button of its own: it is the maximize button of a maximized window.
var buttonSelectors = map[string]string{
	"minimize": ".header-button.minimize",
	"maximize": ".header-button.maximize",
	"close":    ".header-button.close",
	"restore":  ".root:maximized .header-button.maximize",
}

// modifier rewrites a selector when its state is present.
type modifier struct {
	state string
	apply func(selector string) string
}

// modifiers are applied in this order.
var modifiers = []modifier{
	{state: StateHover, apply: pseudoClass(":hover")},
	// Unreachable while pressed variants are skipped.
	{state: StatePressed, apply: pseudoClass(":armed")},
	{state: StateDeactivated, apply: pseudoClass(":disabled")},
	{state: StateInactive, apply: inactiveWindow},
}

func pseudoClass(class string) func(string) string {
	return func(selector string) string {
		return selector + class
	}
}

func inactiveWindow(selector string) string {
	switch {
	case strings.HasPrefix(selector, ".header-button"):
		return ".root:inactive " + selector
	case strings.Contains(selector, ":maximized"):
		return strings.ReplaceAll(selector, ":maximized", ":maximized:inactive")
	}
	return selector
}

// UnknownButtonError is returned for icon names outside of minimize, maximize, close and restore.
type UnknownButtonError struct {
	Name string
	File string
}

func (e *UnknownButtonError) Error() string {
	return fmt.Sprintf("Unknown button name '%s'", e.Name)
}

// Variant is a button in a particular visual state, parsed from a file name.
type Variant struct {
	Button string
	States map[string]bool
}

// ParseVariant tokenizes a file name like "restore-hover_inactive.png".
// Empty tokens are discarded; the first token is the button name.
func ParseVariant(filename string) (Variant, error) {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))

	var tokens []string
	for _, tok := range tokenSeparator.Split(base, -1) {
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}
	if len(tokens) == 0 {
		return Variant{}, fmt.Errorf("file name %q has no button name", filename)
	}

	v := Variant{Button: tokens[0], States: make(map[string]bool, len(tokens)-1)}
	for _, state := range tokens[1:] {
		v.States[state] = true
	}
	return v, nil
}

// Has reports whether the variant carries state.
func (v Variant) Has(state string) bool {
	return v.States[state]
}

// Skipped reports whether the variant is left out of the stylesheet (pressed variants).
func (v Variant) Skipped() bool {
	return v.Has(StatePressed)
}

// StateList returns the states in sorted order.
func (v Variant) StateList() []string {
	states := make([]string, 0, len(v.States))
	for s := range v.States {
		states = append(states, s)
	}
	sort.Strings(states)
	return states
}

// Selector computes the CSS selector for the variant.
func (v Variant) Selector() (string, error) {
	selector, ok := buttonSelectors[v.Button]
	if !ok {
		return "", &UnknownButtonError{Name: v.Button}
	}

	for _, m := range modifiers {
		if v.Has(m.state) {
			selector = m.apply(selector)
		}
	}
	return selector, nil
}
