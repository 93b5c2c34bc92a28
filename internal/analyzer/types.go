// Package analyzer implements the task analysis engine: it normalizes
// raw tasks into analysis records, partitions them into labeled buckets,
// and reduces each bucket into aggregate work-time statistics.
package analyzer

import "encoding/json"

// AnalysisResult is the full report for one project.
type AnalysisResult struct {
	ProjectName string `json:"project_name"`

	// Value is the externally supplied scalar (e.g. a page count) carried
	// through unchanged for the per-value ratios.
	Value *int64 `json:"value,omitempty"`

	// All aggregates the whole normalized task set.
	All AggregateReport `json:"all"`

	// Day breaks the set down by day type (workday vs holiday).
	Day []Bucket `json:"day"`

	// Group breaks the set down by the name-derived group label.
	Group []Bucket `json:"group"`
}

// AggregateReport holds the computed statistics for one bucket of records
// (or for the whole set).
type AggregateReport struct {
	// TotalEstimatedTime sums the estimates in minutes; records without
	// an estimate contribute nothing.
	TotalEstimatedTime int64 `json:"total_estimated_time"`

	// TotalWorkTime sums every record's timespan in minutes.
	TotalWorkTime int64 `json:"total_work_time"`

	// TotalTimeGapRatio is total work over total estimated. Absent when
	// the total estimate is zero.
	TotalTimeGapRatio *float64 `json:"total_time_gap_ratio,omitempty"`

	// WorkDays counts the distinct calendar dates the records' begin
	// times fall on.
	WorkDays int64 `json:"work_days"`

	// WorkTimePerDay is the mean work time per work day.
	WorkTimePerDay float64 `json:"work_time_per_day"`

	WorkTimePerDayMax int64 `json:"work_time_per_day_max"`
	WorkTimePerDayMin int64 `json:"work_time_per_day_min"`

	// WorkTimePerDayMedian is the sorted per-day series value at index
	// floor(n/2). For an even-length series this is the upper of the two
	// middle values, not their average; a deliberate simplification.
	WorkTimePerDayMedian int64 `json:"work_time_per_day_median"`

	// WorkTimePerDayDeviation is the standard deviation of the per-day
	// work time series. The divisor is the number of records in the
	// bucket, not the number of distinct days; kept that way on purpose.
	WorkTimePerDayDeviation float64 `json:"work_time_per_day_deviation"`

	// WorkTimePerValue is total work time divided by the carried scalar
	// value. Absent when no value was supplied.
	WorkTimePerValue *float64 `json:"work_time_per_value,omitempty"`

	// Tasks lists the bucket's member records in begin-time order.
	Tasks []Record `json:"tasks"`
}

// Bucket pairs a label with the aggregate report for the records that
// carry that label.
type Bucket struct {
	Label  string
	Report AggregateReport
}

// MarshalJSON serializes a bucket as a two-element [label, report] array.
func (b Bucket) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{b.Label, b.Report})
}

// UnmarshalJSON decodes the [label, report] array form.
func (b *Bucket) UnmarshalJSON(data []byte) error {
	var raw [2]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if err := json.Unmarshal(raw[0], &b.Label); err != nil {
		return err
	}
	return json.Unmarshal(raw[1], &b.Report)
}
