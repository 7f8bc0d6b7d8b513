package stylesheet

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

const pngDataURIPrefix = "data:image/png;base64,"

// InspectedRule is a ruleset read back from a stylesheet.
type InspectedRule struct {
	Selector   string
	Properties []string // declaration names in source order
	Image      []byte   // decoded PNG of a background-image data URI, if any
}

// Summary is the content of a generated stylesheet.
type Summary struct {
	Rules []InspectedRule
}

// ImageRules returns the rules that embed a PNG.
func (s *Summary) ImageRules() []InspectedRule {
	var rules []InspectedRule
	for _, r := range s.Rules {
		if r.Image != nil {
			rules = append(rules, r)
		}
	}
	return rules
}

// Find returns the rule with the given selector.
func (s *Summary) Find(selector string) (InspectedRule, bool) {
	for _, r := range s.Rules {
		if r.Selector == selector {
			return r, true
		}
	}
	return InspectedRule{}, false
}

// Inspect parses a stylesheet and extracts its rulesets.
func Inspect(r io.Reader) (*Summary, error) {
	parser := css.NewParser(parse.NewInput(r), false)
	summary := &Summary{}

	var current *InspectedRule
	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			if err := parser.Err(); err != nil && !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("parse stylesheet: %w", err)
			}
			return summary, nil

		case css.BeginRulesetGrammar:
			summary.Rules = append(summary.Rules, InspectedRule{Selector: joinTokens(parser.Values())})
			current = &summary.Rules[len(summary.Rules)-1]

		case css.EndRulesetGrammar:
			current = nil

		case css.DeclarationGrammar:
			if current == nil {
				continue
			}
			name := string(data)
			current.Properties = append(current.Properties, name)
			if strings.HasSuffix(name, "background-image") {
				img, err := decodeImage(parser.Values())
				if err != nil {
					return nil, fmt.Errorf("rule %q: %w", current.Selector, err)
				}
				current.Image = img
			}
		}
	}
}

func joinTokens(tokens []css.Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.Write(t.Data)
	}
	return b.String()
}

// decodeImage extracts the PNG from url("data:image/png;base64,...") or its unquoted form.
func decodeImage(values []css.Token) ([]byte, error) {
	for _, t := range values {
		var uri []byte
		switch t.TokenType {
		case css.StringToken:
			uri = bytes.Trim(t.Data, `"'`)
		case css.URLToken:
			uri = bytes.TrimSuffix(bytes.TrimPrefix(t.Data, []byte("url(")), []byte(")"))
			uri = bytes.Trim(uri, `"'`)
		default:
			continue
		}

		if !bytes.HasPrefix(uri, []byte(pngDataURIPrefix)) {
			return nil, nil
		}
		img, err := base64.StdEncoding.DecodeString(string(uri[len(pngDataURIPrefix):]))
		if err != nil {
			return nil, fmt.Errorf("decode data URI: %w", err)
		}
		return img, nil
	}
	return nil, nil
}
