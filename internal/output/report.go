package output

import (
	"fmt"
	"strings"

	"github.com/rot1024/taskchutecloud-cli/internal/analyzer"
)

// RenderAnalysis renders a full analysis result as styled text: a header,
// a summary table covering the whole set and every bucket, and the task
// list.
func RenderAnalysis(result *analyzer.AnalysisResult) string {
	var sb strings.Builder

	sb.WriteString(StyleHeader.Render(result.ProjectName))
	sb.WriteString("\n")
	if result.Value != nil {
		sb.WriteString(StyleMuted.Render(fmt.Sprintf("value: %d", *result.Value)))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	summary := NewTable("", "work", "est", "ratio", "days", "mean/day", "median", "max", "min", "stddev", "per value")
	summary.AlignRight(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)

	addReportRow(summary, "all", result.All)
	for _, b := range result.Day {
		addReportRow(summary, "day:"+b.Label, b.Report)
	}
	for _, b := range result.Group {
		addReportRow(summary, "group:"+b.Label, b.Report)
	}
	sb.WriteString(summary.Render())
	sb.WriteString("\n")

	tasks := NewTable("date", "task", "group", "work", "est", "ratio")
	tasks.AlignRight(3, 4, 5)
	for _, r := range result.All.Tasks {
		group := r.Group
		if group == "" {
			group = "-"
		}
		tasks.AddRow(
			r.BeginTime.Format("2006-01-02"),
			r.Name,
			group,
			FormatMinutes(r.Timespan),
			formatOptMinutes(r.EstimatedTime),
			formatOptRatio(r.TimeGapRatio),
		)
	}
	sb.WriteString(tasks.Render())

	return sb.String()
}

func addReportRow(t *Table, label string, r analyzer.AggregateReport) {
	t.AddRow(
		label,
		FormatMinutes(r.TotalWorkTime),
		FormatMinutes(r.TotalEstimatedTime),
		formatOptRatio(r.TotalTimeGapRatio),
		fmt.Sprintf("%d", r.WorkDays),
		fmt.Sprintf("%.1fm", r.WorkTimePerDay),
		FormatMinutes(r.WorkTimePerDayMedian),
		FormatMinutes(r.WorkTimePerDayMax),
		FormatMinutes(r.WorkTimePerDayMin),
		fmt.Sprintf("%.1f", r.WorkTimePerDayDeviation),
		formatOptRatio(r.WorkTimePerValue),
	)
}

// FormatMinutes renders a minute count as "3h05m" (or "45m" under an
// hour), preserving a leading minus sign for negative spans.
func FormatMinutes(m int64) string {
	sign := ""
	if m < 0 {
		sign = "-"
		m = -m
	}
	if m < 60 {
		return fmt.Sprintf("%s%dm", sign, m)
	}
	return fmt.Sprintf("%s%dh%02dm", sign, m/60, m%60)
}

func formatOptMinutes(m *int64) string {
	if m == nil {
		return "-"
	}
	return FormatMinutes(*m)
}

func formatOptRatio(r *float64) string {
	if r == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f", *r)
}
