package query

import (
	"strconv"
	"strings"

	"github.com/spec-kit/roster-service/internal/domain"
)

// Criteria maps a field name to the set of accepted values for that field.
// An absent or empty entry means no constraint. Entries compose with AND.
//
// Date-valued fields additionally accept a single "<from> to <to>" range
// token (ISO dates, inclusive on both ends).
type Criteria map[string][]string

const rangeSeparator = " to "

// Filter returns the subset of records where every non-empty criterion
// matches. Order is preserved, so the result is stable prior to sorting.
func Filter(records []domain.Employee, criteria Criteria) []domain.Employee {
	filtered := append([]domain.Employee{}, records...)
	for field, values := range criteria {
		if len(values) == 0 {
			continue
		}
		kept := filtered[:0:0]
		for _, rec := range filtered {
			if matchesField(rec, field, values) {
				kept = append(kept, rec)
			}
		}
		filtered = kept
	}
	return filtered
}

// GlobalSearch keeps records whose name or employee code contains the term,
// case-insensitively. An empty term keeps everything.
func GlobalSearch(records []domain.Employee, term string) []domain.Employee {
	if term == "" {
		return records
	}
	needle := strings.ToLower(term)
	kept := make([]domain.Employee, 0, len(records))
	for _, rec := range records {
		if strings.Contains(strings.ToLower(rec.Name), needle) ||
			strings.Contains(strings.ToLower(rec.EmployeeCode), needle) {
			kept = append(kept, rec)
		}
	}
	return kept
}

// matchesField applies the comparison semantics appropriate to the field:
// inclusive range for date fields carrying a range token, set intersection
// for the skill set, case-insensitive substring for scalar strings, and
// exact string-coerced membership for everything else.
func matchesField(rec domain.Employee, field string, values []string) bool {
	if isDateField(field) && strings.Contains(values[0], rangeSeparator) {
		from, to, _ := strings.Cut(values[0], rangeSeparator)
		date := stringValue(rec, field)
		if date == "" {
			return false
		}
		// ISO date strings order correctly lexicographically.
		return date >= from && date <= to
	}

	value, ok := FieldValue(rec, field)
	if !ok {
		return false
	}

	switch v := value.(type) {
	case []string:
		for _, accepted := range values {
			for _, item := range v {
				if item == accepted {
					return true
				}
			}
		}
		return false
	case string:
		if !isDateField(field) {
			haystack := strings.ToLower(v)
			for _, accepted := range values {
				if strings.Contains(haystack, strings.ToLower(accepted)) {
					return true
				}
			}
			return false
		}
	}

	coerced := coerceString(value)
	for _, accepted := range values {
		if accepted == coerced {
			return true
		}
	}
	return false
}

// isDateField mirrors the presentation layer's convention: range filters
// apply to fields whose name carries the "Date" suffix fragment. dateOfJoining
// intentionally falls outside it and filters by exact value.
func isDateField(field string) bool {
	return strings.Contains(field, "Date")
}

func stringValue(rec domain.Employee, field string) string {
	value, ok := FieldValue(rec, field)
	if !ok {
		return ""
	}
	s, _ := value.(string)
	return s
}

func coerceString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case []string:
		return strings.Join(v, ", ")
	default:
		return ""
	}
}

// FieldValue resolves a record attribute by its wire name. Strings come back
// as string (enum types included), availability numbers as int, and the skill
// set as []string.
func FieldValue(rec domain.Employee, field string) (any, bool) {
	switch field {
	case "id":
		return rec.ID, true
	case "employeeCode":
		return rec.EmployeeCode, true
	case "name":
		return rec.Name, true
	case "employmentStatus":
		return rec.EmploymentStatus, true
	case "functionGroup":
		return rec.FunctionGroup, true
	case "subFunction":
		return rec.SubFunction, true
	case "region":
		return rec.Region, true
	case "jobTitle":
		return rec.JobTitle, true
	case "currentAvailability":
		return rec.CurrentAvailability, true
	case "availability30Days":
		return rec.Availability30Days, true
	case "availability60Days":
		return rec.Availability60Days, true
	case "availability90Days":
		return rec.Availability90Days, true
	case "availability120Days":
		return rec.Availability120Days, true
	case "primaryAccount":
		return rec.PrimaryAccount, true
	case "sowName":
		return rec.SOWName, true
	case "billabilityStatus":
		return string(rec.BillabilityStatus), true
	case "earliestAllocationStartDate":
		return rec.EarliestAllocationStartDate, true
	case "earliestStartDate":
		return rec.EarliestStartDate, true
	case "latestEndDate":
		return rec.LatestEndDate, true
	case "expectedStartDate":
		return rec.ExpectedStartDate, true
	case "dateOfJoining":
		return rec.DateOfJoining, true
	case "tagStatus":
		return string(rec.TagStatus), true
	case "taggedForProject":
		return rec.TaggedForProject, true
	case "smeCategory":
		return rec.SMECategory, true
	case "comments":
		return rec.Comments, true
	case "location":
		return rec.Location, true
	case "skillset":
		return rec.Skillset, true
	case "function":
		return rec.Function, true
	case "status":
		return string(rec.Status), true
	}
	return nil, false
}

// FilterableFields lists the wire names usable as filter or sort keys.
func FilterableFields() []string {
	return []string{
		"id", "employeeCode", "name", "employmentStatus", "functionGroup",
		"subFunction", "region", "jobTitle", "currentAvailability",
		"availability30Days", "availability60Days", "availability90Days",
		"availability120Days", "primaryAccount", "sowName", "billabilityStatus",
		"earliestAllocationStartDate", "earliestStartDate", "latestEndDate",
		"expectedStartDate", "dateOfJoining", "tagStatus", "taggedForProject",
		"smeCategory", "comments", "location", "skillset", "function", "status",
	}
}
