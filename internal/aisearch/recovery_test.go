package aisearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecoverFencedJSONArray(t *testing.T) {
	raw := "```json\n[{\"employeeCode\":\"GEP001\",\"name\":\"A\",\"employmentStatus\":\"Active\",\"functionGroup\":\"X\",\"subFunction\":\"Y\"}]\n```"

	outcome, err := Recover(raw)
	require.NoError(t, err)
	assert.Equal(t, TagStrict, outcome.Tag)
	require.Len(t, outcome.Candidates, 1)
	assert.Equal(t, "GEP001", outcome.Candidates[0]["employeeCode"])
}

func TestRecoverFenceWithoutLanguageTag(t *testing.T) {
	raw := "```\n[{\"employeeCode\":\"GEP002\",\"name\":\"B\"}]\n```"

	outcome, err := Recover(raw)
	require.NoError(t, err)
	assert.Equal(t, TagStrict, outcome.Tag)
	assert.Len(t, outcome.Candidates, 1)
}

func TestRecoverArraySurroundedByProse(t *testing.T) {
	raw := "Sure! Here are the matching employees:\n[{\"employeeCode\":\"GEP003\",\"name\":\"C\"}]\nLet me know if you need more."

	outcome, err := Recover(raw)
	require.NoError(t, err)
	assert.Equal(t, TagStrict, outcome.Tag)
	require.Len(t, outcome.Candidates, 1)
	assert.Equal(t, "C", outcome.Candidates[0]["name"])
}

func TestRecoverBareObjectWrapsIntoArray(t *testing.T) {
	raw := "{\"employeeCode\":\"GEP004\",\"name\":\"D\"}"

	outcome, err := Recover(raw)
	require.NoError(t, err)
	assert.Equal(t, TagStrict, outcome.Tag)
	require.Len(t, outcome.Candidates, 1)
	assert.Equal(t, "GEP004", outcome.Candidates[0]["employeeCode"])
}

func TestRecoverEmptyArrayIsStrictWithZeroCandidates(t *testing.T) {
	outcome, err := Recover("[]")
	require.NoError(t, err)
	assert.Equal(t, TagStrict, outcome.Tag)
	assert.Empty(t, outcome.Candidates)
}

func TestRecoverSingleQuotedMalformedJSON(t *testing.T) {
	raw := "[{name:'A',employeeCode:'GEP001'}]"

	outcome, err := Recover(raw)
	require.NoError(t, err)
	assert.Equal(t, TagRecovered, outcome.Tag)
	require.Len(t, outcome.Candidates, 1)
	assert.Equal(t, "A", outcome.Candidates[0]["name"])
	assert.Equal(t, "GEP001", outcome.Candidates[0]["employeeCode"])
}

func TestRecoverNoJSONAtAllFails(t *testing.T) {
	_, err := Recover("I could not find anything matching your query.")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not parse results")
}

func TestRecoverGarbageAfterRepairFails(t *testing.T) {
	_, err := Recover("[{name: broken")
	assert.Error(t, err)
}

func TestStripWrappers(t *testing.T) {
	assert.Equal(t, "[1]", StripWrappers("```json\n[1]\n```"))
	assert.Equal(t, "[1]", StripWrappers("```\n[1]\n```"))
	assert.Equal(t, "[1]", StripWrappers("  [1]  "))
}

func TestIsolatePayloadPrefersArrayOverObject(t *testing.T) {
	text := "prefix {\"a\":1} middle [ {\"b\":2} ] suffix"
	assert.Equal(t, "[ {\"b\":2} ]", IsolatePayload(text))

	// Object fallback when no array of objects exists.
	assert.Equal(t, "{\"a\":1}", IsolatePayload("see {\"a\":1} here"))

	// Full text fallback.
	assert.Equal(t, "plain", IsolatePayload("plain"))
}

func TestRepairAndParsePinnedPatterns(t *testing.T) {
	candidates, err := RepairAndParse("[{skill: 'SAP', level: 3}]")
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "SAP", candidates[0]["skill"])
	assert.Equal(t, float64(3), candidates[0]["level"])
}
