package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/yacobolo/headergen"
	"github.com/yacobolo/headergen/internal/stylesheet"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version   string                    `json:"version"`
	Timestamp string                    `json:"timestamp"`
	Result    *headergen.GenerateResult `json:"result,omitempty"`
	Rules     []JSONRule                `json:"rules,omitempty"`
}

// JSONRule is a rule of an inspected stylesheet
type JSONRule struct {
	Selector   string   `json:"selector"`
	Properties []string `json:"properties"`
	ImageBytes int      `json:"image_bytes,omitempty"`
}

// WriteResultJSON writes the generation result as JSON
func WriteResultJSON(w io.Writer, version string, result *headergen.GenerateResult) error {
	return writeJSON(w, JSONOutput{
		Version:   version,
		Timestamp: time.Now().Format(time.RFC3339),
		Result:    result,
	})
}

// WriteSummaryJSON writes an inspected stylesheet as JSON
func WriteSummaryJSON(w io.Writer, version string, summary *stylesheet.Summary) error {
	rules := make([]JSONRule, 0, len(summary.Rules))
	for _, r := range summary.Rules {
		rules = append(rules, JSONRule{
			Selector:   r.Selector,
			Properties: r.Properties,
			ImageBytes: len(r.Image),
		})
	}

	return writeJSON(w, JSONOutput{
		Version:   version,
		Timestamp: time.Now().Format(time.RFC3339),
		Rules:     rules,
	})
}

func writeJSON(w io.Writer, output JSONOutput) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
