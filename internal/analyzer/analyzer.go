package analyzer

import "github.com/rot1024/taskchutecloud-cli/internal/taskchute"

// Analyze produces the statistical report for one project: the aggregate
// over all of the project's complete tasks plus breakdowns by day type
// and by group label. The optional value is an external scalar (such as
// a page count) used for the per-value ratios and carried through
// unchanged.
//
// It returns nil when no task references the project, or when every
// matching task lacks a begin or end timestamp. An unknown or mistyped
// project id is expected input, not an error.
func Analyze(tasks []taskchute.Task, projectID string, value *int64) *AnalysisResult {
	set := recordSet{
		records: normalize(tasks, projectID),
		value:   value,
	}

	projectName, ok := set.projectName(projectID)
	if !ok {
		return nil
	}

	return &AnalysisResult{
		ProjectName: projectName,
		Value:       value,
		All:         set.aggregate(),
		Day:         aggregateBuckets(set.groupBy(dayTypeKey)),
		Group:       aggregateBuckets(set.groupBy(groupKey)),
	}
}

// aggregateBuckets reduces each grouped sub-set to its report.
func aggregateBuckets(buckets []labeledSet) []Bucket {
	out := make([]Bucket, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, Bucket{Label: b.label, Report: b.set.aggregate()})
	}
	return out
}

// projectName resolves the display name of the target project from the
// normalized records. It reports false when the set holds no record for
// the project, in which case the name cannot be determined.
func (s recordSet) projectName(projectID string) (string, bool) {
	for _, r := range s.records {
		if r.Project != nil && r.Project.ID == projectID {
			return r.Project.Name, true
		}
	}
	return "", false
}
