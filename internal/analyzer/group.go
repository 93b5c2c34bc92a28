package analyzer

import (
	"sort"
	"time"
)

// recordSet is one collection of records together with the externally
// supplied scalar value the collection carries.
type recordSet struct {
	records []Record
	value   *int64
}

// labeledSet is one bucket produced by groupBy.
type labeledSet struct {
	label string
	set   recordSet
}

// groupBy partitions the set into buckets by the given key function.
// Records keep their incoming order inside each bucket, every bucket
// carries the parent set's scalar value unchanged, and buckets come back
// sorted by label so identical input always yields identical output.
func (s recordSet) groupBy(key func(Record) string) []labeledSet {
	byLabel := make(map[string][]Record)
	for _, r := range s.records {
		k := key(r)
		byLabel[k] = append(byLabel[k], r)
	}

	labels := make([]string, 0, len(byLabel))
	for label := range byLabel {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	buckets := make([]labeledSet, 0, len(labels))
	for _, label := range labels {
		buckets = append(buckets, labeledSet{
			label: label,
			set:   recordSet{records: byLabel[label], value: s.value},
		})
	}
	return buckets
}

// Day-type labels used by the day breakdown.
const (
	labelWorkday = "workday"
	labelHoliday = "holiday"
)

// groupSentinel labels records that have no derived group.
const groupSentinel = "-"

// dayTypeKey classifies a record as holiday work when its begin time
// falls on a weekend or its holiday flag is set, and workday otherwise.
func dayTypeKey(r Record) string {
	switch r.BeginTime.Weekday() {
	case time.Saturday, time.Sunday:
		return labelHoliday
	}
	if r.Holiday {
		return labelHoliday
	}
	return labelWorkday
}

// groupKey returns the record's derived group label, or the sentinel
// when it has none.
func groupKey(r Record) string {
	if r.Group == "" {
		return groupSentinel
	}
	return r.Group
}
