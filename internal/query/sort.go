package query

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/spec-kit/roster-service/internal/domain"
)

// Direction of a sort.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// SortSpec names the sort field and direction. A zero Key means unsorted.
type SortSpec struct {
	Key       string
	Direction Direction
}

// Toggle returns the spec after a click on key: the same field flips
// ascending to descending, a new field resets to ascending.
func (s SortSpec) Toggle(key string) SortSpec {
	if s.Key == key && s.Direction == Ascending {
		return SortSpec{Key: key, Direction: Descending}
	}
	return SortSpec{Key: key, Direction: Ascending}
}

// Sort returns a new sequence ordered by the spec. Two strings compare with
// locale collation, two numbers numerically, and anything else ranks equal so
// that mixed or undefined types never break the pipeline. The sort is stable,
// so equal keys keep store order.
func Sort(records []domain.Employee, spec SortSpec) []domain.Employee {
	out := append([]domain.Employee{}, records...)
	if spec.Key == "" {
		return out
	}

	// A collator buffers internally and is not safe for shared use, so each
	// call gets its own.
	coll := collate.New(language.English)

	sort.SliceStable(out, func(i, j int) bool {
		cmp := compareField(coll, out[i], out[j], spec.Key)
		if spec.Direction == Descending {
			return cmp > 0
		}
		return cmp < 0
	})
	return out
}

func compareField(coll *collate.Collator, a, b domain.Employee, key string) int {
	av, aok := FieldValue(a, key)
	bv, bok := FieldValue(b, key)
	if !aok || !bok {
		return 0
	}

	if as, ok := av.(string); ok {
		if bs, ok := bv.(string); ok {
			return coll.CompareString(as, bs)
		}
	}
	if an, ok := av.(int); ok {
		if bn, ok := bv.(int); ok {
			switch {
			case an < bn:
				return -1
			case an > bn:
				return 1
			}
			return 0
		}
	}
	return 0
}
