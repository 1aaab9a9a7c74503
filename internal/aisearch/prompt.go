package aisearch

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spec-kit/roster-service/internal/domain"
)

// promptTemplateV1 is the versioned instruction template sent to the
// generative-text service. Matching correctness is delegated entirely to the
// service; the template's job is to pin the output contract so the recovery
// pipeline can get structured data back out. Interpolation order: user query,
// serialized dataset, location whitelist.
const promptTemplateV1 = `You are an AI assistant that helps filter employee data based on user queries.

YOUR TASK: Search within the dataset provided below and return employees that match this query: "%s"

Here is the complete employee dataset to search within:
%s

IMPORTANT INSTRUCTIONS:
1. ONLY return employees from the provided dataset that match the query criteria
2. Return results as a valid JSON array
3. Each result MUST include ALL fields for each matching employee record, exactly as they appear in the dataset
4. Pay SPECIAL ATTENTION to the 'skillset' field which contains skills like 'Power BI', 'SAP', 'Strategic Sourcing', etc.
5. For skillset queries (e.g., "find employees with SAP skills"), check the 'skillset' array for matches
6. Do not add any explanation, markdown, or text outside of the JSON array
7. If no employees match the criteria, return an empty array []
8. Make your response ONLY the JSON array, nothing else
9. Only include employees from %s locations

Your response must be structured exactly like this:
[
  {
    "id": "...",
    "employeeCode": "...",
    "name": "...",
    "skillset": ["..."],
    ... include all fields ...
  },
  ... more matching employees ...
]`

// BuildPrompt embeds the entire record collection verbatim as context for the
// natural-language query.
func BuildPrompt(records []domain.Employee, query string) (string, error) {
	dataset, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return "", fmt.Errorf("serialize dataset: %w", err)
	}
	return fmt.Sprintf(promptTemplateV1, query, dataset, locationClause()), nil
}

// locationClause renders the whitelist as "Mumbai, Hyderabad, or Coimbatore".
func locationClause() string {
	short := make([]string, 0, len(domain.AllowedLocations))
	for _, loc := range domain.AllowedLocations {
		if _, city, found := strings.Cut(loc, "– "); found {
			short = append(short, city)
		} else {
			short = append(short, loc)
		}
	}
	if len(short) <= 1 {
		return strings.Join(short, "")
	}
	return strings.Join(short[:len(short)-1], ", ") + ", or " + short[len(short)-1]
}
