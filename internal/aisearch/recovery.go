package aisearch

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"

	apperrors "github.com/spec-kit/roster-service/pkg/util"
)

// The recovery pipeline turns the service's free-form reply into candidate
// records. Tiers run in order, each more permissive than the last: strip
// fenced code blocks, isolate the JSON-looking payload from surrounding
// prose, parse strictly, and finally retry once after textual repair.

// Tag marks how a reply was recovered so the caller can surface a
// lower-confidence message for repaired results.
type Tag string

const (
	// TagStrict means the payload parsed without repair.
	TagStrict Tag = "success"
	// TagRecovered means parsing needed the lenient repair pass.
	TagRecovered Tag = "recovered"
)

// Candidate is one loosely-typed record parsed out of the reply. It is
// validated field by field before promotion to a typed Employee; a nil
// Candidate marks a non-object array element.
type Candidate map[string]any

// Outcome carries the parsed candidates, the tier tag, and the isolated
// payload the parse ran on (kept so validation failures can escalate to the
// repair pass over the same text).
type Outcome struct {
	Candidates []Candidate
	Tag        Tag
	Payload    string
}

var (
	fencedJSONBlock = regexp.MustCompile("(?s)```json\\s*(.*?)\\s*```")
	fencedBlock     = regexp.MustCompile("(?s)```\\s*(.*?)\\s*```")

	arrayOfObjects = regexp.MustCompile(`(?s)\[\s*\{.*\}\s*\]`)
	bareObject     = regexp.MustCompile(`(?s)\{.*\}`)

	// Repairs are pinned textual transformations, not a parser: quote bare
	// object keys, then swap single-quote string delimiters for double.
	unquotedKey = regexp.MustCompile(`(\w+):`)
)

// Recover runs the tiers over the raw reply. The error, when non-nil, is a
// RecoveryError: even the repair pass could not produce JSON.
func Recover(raw string) (Outcome, error) {
	payload := IsolatePayload(StripWrappers(raw))

	candidates, err := parseStrict(payload)
	if err == nil {
		return Outcome{Candidates: candidates, Tag: TagStrict, Payload: payload}, nil
	}

	candidates, err = RepairAndParse(payload)
	if err != nil {
		return Outcome{}, apperrors.NewRecoveryError("could not parse results from the AI response", err)
	}
	return Outcome{Candidates: candidates, Tag: TagRecovered, Payload: payload}, nil
}

// StripWrappers removes fenced code-block delimiters, with or without a
// language tag, and trims the rest.
func StripWrappers(raw string) string {
	cleaned := fencedJSONBlock.ReplaceAllString(raw, "$1")
	cleaned = fencedBlock.ReplaceAllString(cleaned, "$1")
	return strings.TrimSpace(cleaned)
}

// IsolatePayload locates the first array-of-objects substring, falling back
// to the first bare object, then to the full text.
func IsolatePayload(cleaned string) string {
	if match := arrayOfObjects.FindString(cleaned); match != "" {
		return match
	}
	if match := bareObject.FindString(cleaned); match != "" {
		return match
	}
	return cleaned
}

// RepairAndParse applies the two pinned repairs and parses once more.
func RepairAndParse(payload string) ([]Candidate, error) {
	repaired := unquotedKey.ReplaceAllString(payload, `"$1":`)
	repaired = strings.ReplaceAll(repaired, "'", `"`)
	return parseStrict(repaired)
}

// parseStrict runs standard JSON parsing. A bare object wraps into a
// single-element array. Non-object array elements come back nil and are left
// for the validator to reject.
func parseStrict(payload string) ([]Candidate, error) {
	var parsed any
	if err := json.Unmarshal([]byte(payload), &parsed); err != nil {
		return nil, err
	}

	switch v := parsed.(type) {
	case map[string]any:
		return []Candidate{v}, nil
	case []any:
		candidates := make([]Candidate, 0, len(v))
		for _, item := range v {
			obj, _ := item.(map[string]any)
			candidates = append(candidates, obj)
		}
		return candidates, nil
	default:
		return nil, errors.New("parsed value is not an object or array")
	}
}
