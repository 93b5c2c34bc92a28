package analyzer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rot1024/taskchutecloud-cli/internal/taskchute"
)

func recordsOf(tasks ...taskchute.Task) []Record {
	records := make([]Record, 0, len(tasks))
	for _, t := range tasks {
		records = append(records, newRecord(t))
	}
	return records
}

func TestAggregate_Totals(t *testing.T) {
	set := recordSet{records: recordsOf(
		task("1", "Write Chapter1", at(5, 9, 0), at(5, 11, 0), minutes(90)),
		task("2", "Write Chapter2", at(6, 9, 0), at(6, 9, 30), nil),
	)}

	report := set.aggregate()
	assert.Equal(t, int64(90), report.TotalEstimatedTime)
	assert.Equal(t, int64(150), report.TotalWorkTime)
	require.NotNil(t, report.TotalTimeGapRatio)
	assert.InDelta(t, 150.0/90.0, *report.TotalTimeGapRatio, 1e-9)
	assert.Equal(t, int64(2), report.WorkDays)
	assert.InDelta(t, 75.0, report.WorkTimePerDay, 1e-9)
	require.Len(t, report.Tasks, 2)
}

func TestAggregate_RatioAbsentWithoutEstimates(t *testing.T) {
	set := recordSet{records: recordsOf(
		task("1", "Write Chapter1", at(5, 9, 0), at(5, 11, 0), nil),
	)}

	report := set.aggregate()
	assert.Equal(t, int64(0), report.TotalEstimatedTime)
	assert.Nil(t, report.TotalTimeGapRatio)
}

func TestAggregate_WorkDaysCountDistinctDates(t *testing.T) {
	set := recordSet{records: recordsOf(
		task("1", "Write Chapter1", at(5, 9, 0), at(5, 10, 0), nil),
		task("2", "Write Chapter2", at(5, 13, 0), at(5, 14, 0), nil),
		task("3", "Write Chapter3", at(6, 9, 0), at(6, 10, 0), nil),
	)}

	report := set.aggregate()
	assert.Equal(t, int64(2), report.WorkDays)
}

func TestAggregate_PerDayExtrema(t *testing.T) {
	set := recordSet{records: recordsOf(
		task("1", "Write Chapter1", at(5, 9, 0), at(5, 9, 10), nil),  // day 1: 10
		task("2", "Write Chapter2", at(6, 9, 0), at(6, 9, 30), nil),  // day 2: 30
		task("3", "Write Chapter3", at(7, 9, 0), at(7, 10, 20), nil), // day 3: 80
	)}

	report := set.aggregate()
	assert.Equal(t, int64(80), report.WorkTimePerDayMax)
	assert.Equal(t, int64(10), report.WorkTimePerDayMin)
}

func TestAggregate_MedianTakesUpperMiddle(t *testing.T) {
	// Per-day series [10, 30]: the median is the element at index 1 of
	// the sorted series, 30, not the 20 a true median would give.
	set := recordSet{records: recordsOf(
		task("1", "Write Chapter1", at(5, 9, 0), at(5, 9, 10), nil),
		task("2", "Write Chapter2", at(6, 9, 0), at(6, 9, 30), nil),
	)}

	report := set.aggregate()
	assert.Equal(t, int64(30), report.WorkTimePerDayMedian)
}

func TestAggregate_MedianOddSeries(t *testing.T) {
	set := recordSet{records: recordsOf(
		task("1", "Write Chapter1", at(5, 9, 0), at(5, 9, 30), nil),  // 30
		task("2", "Write Chapter2", at(6, 9, 0), at(6, 9, 10), nil),  // 10
		task("3", "Write Chapter3", at(7, 9, 0), at(7, 10, 20), nil), // 80
	)}

	report := set.aggregate()
	assert.Equal(t, int64(30), report.WorkTimePerDayMedian)
}

func TestAggregate_DeviationDividesByRecordCount(t *testing.T) {
	// Three records over two days. Day totals are 60 and 120, and the
	// divisor is the record count (3), not the day count (2):
	// sqrt(((60-90)^2 + (120-90)^2) / 3) = sqrt(600).
	set := recordSet{records: recordsOf(
		task("1", "Write Chapter1", at(5, 9, 0), at(5, 9, 30), nil),
		task("2", "Write Chapter2", at(5, 13, 0), at(5, 13, 30), nil),
		task("3", "Write Chapter3", at(6, 9, 0), at(6, 11, 0), nil),
	)}

	report := set.aggregate()
	assert.InDelta(t, math.Sqrt(600), report.WorkTimePerDayDeviation, 1e-9)
}

func TestAggregate_WorkTimePerValue(t *testing.T) {
	records := recordsOf(
		task("1", "Write Chapter1", at(5, 9, 0), at(5, 11, 0), nil),
	)

	value := int64(40)
	report := recordSet{records: records, value: &value}.aggregate()
	require.NotNil(t, report.WorkTimePerValue)
	assert.InDelta(t, 3.0, *report.WorkTimePerValue, 1e-9)

	report = recordSet{records: records}.aggregate()
	assert.Nil(t, report.WorkTimePerValue)
}

func TestAggregate_KeepsMemberOrder(t *testing.T) {
	records := recordsOf(
		task("1", "Write Chapter1", at(5, 9, 0), at(5, 10, 0), nil),
		task("2", "Write Chapter2", at(6, 9, 0), at(6, 10, 0), nil),
	)

	report := recordSet{records: records}.aggregate()
	require.Len(t, report.Tasks, 2)
	assert.Equal(t, "1", report.Tasks[0].ID)
	assert.Equal(t, "2", report.Tasks[1].ID)
}
