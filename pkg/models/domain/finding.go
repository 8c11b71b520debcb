package domain

type Severity int

const (
	SeverityInformational Severity = iota
	SeverityWarning
	SeverityBlocker
)

func (s Severity) String() string {
	switch s {
	case SeverityBlocker:
		return "blocker"
	case SeverityWarning:
		return "warning"
	default:
		return "informational"
	}
}

// Finding is a single migration-readiness observation derived from a
// discovery snapshot.
type Finding struct {
	Rule           string
	Severity       Severity
	Description    string
	Recommendation string
	Count          int
	AffectedIDs    []string
}

// SummaryCounts aggregates a discovery run for the report header.
type SummaryCounts struct {
	Capacities        int // excludes the shared sentinel
	Workspaces        int
	Items             int
	ResolvedModels    int
	SkippedDatasets   int
	SkippedWorkspaces int
	Blockers          int
	Warnings          int
	Informational     int
}

// Assessment is the classifier output: findings grouped by severity, in rule
// order, plus the run summary.
type Assessment struct {
	Blockers      []Finding
	Warnings      []Finding
	Informational []Finding
	Summary       SummaryCounts
}
