package aisearch

import (
	"encoding/json"
	"strings"

	"github.com/spec-kit/roster-service/internal/domain"
)

// Validation is the outcome of filtering candidates down to those satisfying
// the required-field contract, promoted to typed records.
type Validation struct {
	Records  []domain.Employee
	Rejected int
}

// Keys the strict path requires to be present. Explicit nulls count as
// present; entirely absent keys fail validation.
var strictRequiredKeys = []string{"employmentStatus", "functionGroup", "subFunction"}

// ValidateStrict accepts candidates carrying a non-empty employee code and
// name plus all strict required keys.
func ValidateStrict(candidates []Candidate) Validation {
	return validate(candidates, strictRequiredKeys)
}

// ValidateLenient only demands employee code and name. After the repair pass
// the rest of the schema may be partially malformed, and that is acceptable.
func ValidateLenient(candidates []Candidate) Validation {
	return validate(candidates, nil)
}

func validate(candidates []Candidate, requiredKeys []string) Validation {
	var out Validation
	for _, cand := range candidates {
		if !acceptable(cand, requiredKeys) {
			out.Rejected++
			continue
		}
		rec, err := promote(cand)
		if err != nil {
			out.Rejected++
			continue
		}
		out.Records = append(out.Records, domain.NormalizeSkillset(rec))
	}
	return out
}

func acceptable(cand Candidate, requiredKeys []string) bool {
	if cand == nil {
		return false
	}
	if !hasText(cand, "employeeCode") || !hasText(cand, "name") {
		return false
	}
	for _, key := range requiredKeys {
		if _, present := cand[key]; !present {
			return false
		}
	}
	return true
}

func hasText(cand Candidate, key string) bool {
	value, ok := cand[key]
	if !ok || value == nil {
		return false
	}
	s, isString := value.(string)
	if isString {
		return strings.TrimSpace(s) != ""
	}
	// Numbers or other scalars coerce later; presence is enough here.
	return true
}

// promote converts a loosely-typed candidate into the strict record type via
// a JSON round trip. Out-of-enum strings pass through untouched; a candidate
// whose field types cannot coerce at all is rejected rather than dropped
// silently upstream.
func promote(cand Candidate) (domain.Employee, error) {
	raw, err := json.Marshal(cand)
	if err != nil {
		return domain.Employee{}, err
	}
	var rec domain.Employee
	if err := json.Unmarshal(raw, &rec); err != nil {
		return domain.Employee{}, err
	}
	return rec, nil
}
