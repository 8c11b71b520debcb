package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/de-tools/fabric-migration-atlas/pkg/models/domain"
)

type TableConfig struct {
	RuleWidth           int
	DescriptionWidth    int
	RecommendationWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		RuleWidth:           22,
		DescriptionWidth:    58,
		RecommendationWidth: 70,
	}
}

type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

// Report carries everything the terminal report shows: the assessment plus
// the skip listings, which are always printed even when empty of findings.
type Report struct {
	Assessment        domain.Assessment
	SkippedDatasets   []domain.SkippedRecord
	SkippedWorkspaces []domain.SkippedWorkspace
}

func (r *Reporter) Handle(report Report) error {
	funcMap := template.FuncMap{
		"formatRow": func(rule, desc, rec string) string {
			return fmt.Sprintf("| %-*s | %-*s | %-*s |",
				r.config.RuleWidth, rule,
				r.config.DescriptionWidth, desc,
				r.config.RecommendationWidth, rec)
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+%s+",
				strings.Repeat("-", r.config.RuleWidth+2),
				strings.Repeat("-", r.config.DescriptionWidth+2),
				strings.Repeat("-", r.config.RecommendationWidth+2))
		},
	}

	tmpl := `
Migration readiness assessment

Capacities: {{.Assessment.Summary.Capacities}} (dedicated), Workspaces: {{.Assessment.Summary.Workspaces}}, Items: {{.Assessment.Summary.Items}}
Semantic models: {{.Assessment.Summary.ResolvedModels}} resolved, {{.Assessment.Summary.SkippedDatasets}} skipped
Findings: {{.Assessment.Summary.Blockers}} blocker(s), {{.Assessment.Summary.Warnings}} warning(s), {{.Assessment.Summary.Informational}} informational

=== Blockers ===
{{template "findings" .Assessment.Blockers}}
=== Warnings ===
{{template "findings" .Assessment.Warnings}}
=== Informational ===
{{template "findings" .Assessment.Informational}}
{{if .SkippedWorkspaces}}=== Skipped workspaces ===
{{range .SkippedWorkspaces}}  {{.WorkspaceID}} ({{.Name}}): {{.Reason}}
{{end}}{{end}}{{if .SkippedDatasets}}=== Skipped datasets ===
{{range .SkippedDatasets}}  {{.DatasetID}} ({{.Name}}): {{.Reason}}
{{end}}{{end}}
{{- define "findings"}}{{if not .}}  none
{{else}}{{separator}}
{{formatRow "Rule" "Description" "Recommendation"}}
{{separator}}
{{range .}}{{formatRow .Rule .Description .Recommendation}}
{{end}}{{separator}}
{{end}}{{end}}`

	t, err := template.New("report").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse report template: %w", err)
	}
	if err := t.Execute(r.writer, report); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return nil
}
