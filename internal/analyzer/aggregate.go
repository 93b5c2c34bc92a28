package analyzer

import (
	"math"
	"sort"
)

// aggregate reduces the set into an AggregateReport. The set is never
// empty when this runs: it is either the full normalized collection
// (checked by Analyze) or a groupBy bucket, which only exists because at
// least one record landed in it.
func (s recordSet) aggregate() AggregateReport {
	estimated := s.totalEstimatedTime()
	work := s.totalWorkTime()
	perDay := s.workTimePerDays()
	workDays := int64(len(perDay))

	report := AggregateReport{
		TotalEstimatedTime:      estimated,
		TotalWorkTime:           work,
		WorkDays:                workDays,
		WorkTimePerDay:          float64(work) / float64(workDays),
		WorkTimePerDayMax:       maxOf(perDay),
		WorkTimePerDayMin:       minOf(perDay),
		WorkTimePerDayMedian:    medianOf(perDay),
		WorkTimePerDayDeviation: s.deviation(perDay),
		Tasks:                   s.records,
	}

	if estimated != 0 {
		ratio := float64(work) / float64(estimated)
		report.TotalTimeGapRatio = &ratio
	}
	if s.value != nil {
		ratio := float64(work) / float64(*s.value)
		report.WorkTimePerValue = &ratio
	}
	return report
}

// totalEstimatedTime sums the estimates of the records that have one.
func (s recordSet) totalEstimatedTime() int64 {
	var total int64
	for _, r := range s.records {
		if r.EstimatedTime != nil {
			total += *r.EstimatedTime
		}
	}
	return total
}

// totalWorkTime sums every record's timespan.
func (s recordSet) totalWorkTime() int64 {
	var total int64
	for _, r := range s.records {
		total += r.Timespan
	}
	return total
}

// workTimePerDays totals the timespans of records sharing a begin-time
// calendar date, one entry per distinct date.
func (s recordSet) workTimePerDays() []int64 {
	byDate := make(map[string]int64)
	var order []string
	for _, r := range s.records {
		date := r.BeginTime.Format("2006-01-02")
		if _, ok := byDate[date]; !ok {
			order = append(order, date)
		}
		byDate[date] += r.Timespan
	}

	totals := make([]int64, 0, len(order))
	for _, date := range order {
		totals = append(totals, byDate[date])
	}
	return totals
}

// deviation computes the standard deviation of the per-day totals around
// the per-day mean. The divisor is the record count rather than the day
// count, so whenever multiple records share a day this is not a textbook
// population deviation of the daily series. Existing reports depend on
// the value, so the divisor stays as is.
func (s recordSet) deviation(perDay []int64) float64 {
	mean := float64(s.totalWorkTime()) / float64(len(perDay))
	var sum float64
	for _, v := range perDay {
		d := float64(v) - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(s.records)))
}

// maxOf returns the largest value, or 0 for an empty series.
func maxOf(values []int64) int64 {
	var max int64
	for i, v := range values {
		if i == 0 || v > max {
			max = v
		}
	}
	return max
}

// minOf returns the smallest value, or 0 for an empty series.
func minOf(values []int64) int64 {
	var min int64
	for i, v := range values {
		if i == 0 || v < min {
			min = v
		}
	}
	return min
}

// medianOf returns the sorted series value at index floor(n/2), which
// for an even-length series is the upper of the two middle values. The
// two middle values are deliberately not averaged.
func medianOf(values []int64) int64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]int64, len(values))
	copy(sorted, values)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return sorted[len(sorted)/2]
}
