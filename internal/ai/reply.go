package ai

import (
	"encoding/json"
	"regexp"
	"strings"
)

type ReplyKind int

const (
	// Structured: the reply was a JSON object.
	Structured ReplyKind = iota
	// FencedStructured: the JSON object sat inside a ```json block.
	FencedStructured
	// RawText: neither; the whole reply is the suggestion.
	RawText
)

func (k ReplyKind) String() string {
	switch k {
	case Structured:
		return "structured"
	case FencedStructured:
		return "fenced"
	default:
		return "raw"
	}
}

// Analysis is the parsed model reply.
type Analysis struct {
	Kind       ReplyKind      `json:"-"`
	Suggestion string         `json:"suggestion"`
	Stats      map[string]any `json:"stats"`
}

// MatchScore returns stats.matchScore when the model supplied a number.
func (a Analysis) MatchScore() (float64, bool) {
	v, ok := a.Stats["matchScore"].(float64)
	return v, ok
}

var fenceRe = regexp.MustCompile("(?s)^```(?:json|JSON)?\\s*(.*?)\\s*```$")

// ParseReply never fails: anything that is not a JSON object, bare or
// fenced, degrades to RawText.
func ParseReply(reply string) Analysis {
	trimmed := strings.TrimSpace(reply)

	if a, ok := decodeObject(trimmed); ok {
		a.Kind = Structured
		return a
	}
	if m := fenceRe.FindStringSubmatch(trimmed); m != nil {
		if a, ok := decodeObject(m[1]); ok {
			a.Kind = FencedStructured
			return a
		}
	}
	return Analysis{Kind: RawText, Suggestion: reply, Stats: map[string]any{}}
}

func decodeObject(s string) (Analysis, bool) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(s), &raw); err != nil || raw == nil {
		return Analysis{}, false
	}

	a := Analysis{Stats: map[string]any{}}
	if v, ok := raw["suggestion"]; ok {
		if err := json.Unmarshal(v, &a.Suggestion); err != nil {
			// a non-string suggestion is passed through verbatim
			a.Suggestion = string(v)
		}
	}
	if v, ok := raw["stats"]; ok {
		var stats map[string]any
		if err := json.Unmarshal(v, &stats); err == nil && stats != nil {
			a.Stats = stats
		}
	}
	return a, true
}
