// Package readiness derives migration-readiness findings from a discovery
// snapshot. Classification is a pure pass over the snapshot: the same input
// always yields the same assessment, and no rule short-circuits another.
package readiness

import (
	"fmt"
	"sort"
	"strings"

	"github.com/de-tools/fabric-migration-atlas/pkg/models/domain"
)

const (
	skuPrefixEmbedded = "EM"
	skuPrefixAzure    = "A"
	skuPrefixPremium  = "P"
)

// Classify evaluates every rule in order and groups the findings by severity.
// Within a severity, findings keep rule order; within a rule, input order.
func Classify(snapshot *domain.Snapshot) domain.Assessment {
	assessment := domain.Assessment{}

	rules := []func(*domain.Snapshot) []domain.Finding{
		embeddedCapacities,
		azureCapacities,
		premiumCapacities,
		crossRegionCapacities,
		legacyDataflows,
		paginatedReports,
		largeModels,
		inactiveWorkspaces,
		rlsModels,
		dashboardsPresent,
	}
	for _, rule := range rules {
		for _, finding := range rule(snapshot) {
			switch finding.Severity {
			case domain.SeverityBlocker:
				assessment.Blockers = append(assessment.Blockers, finding)
			case domain.SeverityWarning:
				assessment.Warnings = append(assessment.Warnings, finding)
			default:
				assessment.Informational = append(assessment.Informational, finding)
			}
		}
	}

	assessment.Summary = summarize(snapshot, assessment)
	return assessment
}

// Rule 1: Embedded (EM) SKUs cannot be migrated in place, one blocker each.
func embeddedCapacities(s *domain.Snapshot) []domain.Finding {
	var findings []domain.Finding
	for _, c := range s.Capacities {
		if c.IsShared() || !strings.HasPrefix(c.SKU, skuPrefixEmbedded) {
			continue
		}
		findings = append(findings, domain.Finding{
			Rule:           "embedded_sku",
			Severity:       domain.SeverityBlocker,
			Description:    fmt.Sprintf("Capacity %q runs on Embedded SKU %s.", c.Name, c.SKU),
			Recommendation: "Embedded capacities cannot be migrated directly; move their workspaces to a Fabric SKU before migration.",
			Count:          1,
			AffectedIDs:    []string{c.ID},
		})
	}
	return findings
}

// Rule 2: Azure (A) SKUs, one informational per capacity.
func azureCapacities(s *domain.Snapshot) []domain.Finding {
	var findings []domain.Finding
	for _, c := range s.Capacities {
		if c.IsShared() || !strings.HasPrefix(c.SKU, skuPrefixAzure) {
			continue
		}
		findings = append(findings, domain.Finding{
			Rule:           "azure_sku",
			Severity:       domain.SeverityInformational,
			Description:    fmt.Sprintf("Capacity %q runs on Azure SKU %s.", c.Name, c.SKU),
			Recommendation: "Azure capacities are billed pay-as-you-go; review the target SKU mapping before migration.",
			Count:          1,
			AffectedIDs:    []string{c.ID},
		})
	}
	return findings
}

// Rule 3: Premium P-SKUs present, one informational with the count.
func premiumCapacities(s *domain.Snapshot) []domain.Finding {
	var ids []string
	for _, c := range s.Capacities {
		if c.IsShared() || !strings.HasPrefix(c.SKU, skuPrefixPremium) {
			continue
		}
		ids = append(ids, c.ID)
	}
	if len(ids) == 0 {
		return nil
	}
	return []domain.Finding{{
		Rule:           "premium_sku_present",
		Severity:       domain.SeverityInformational,
		Description:    fmt.Sprintf("%d Premium P-SKU capacity(ies) found.", len(ids)),
		Recommendation: "Premium P-SKUs map directly to Fabric F-SKUs; plan the size conversion (P1 = F64).",
		Count:          len(ids),
		AffectedIDs:    ids,
	}}
}

// Rule 4: more than one distinct capacity region. The shared sentinel and
// capacities without a region value contribute no region.
func crossRegionCapacities(s *domain.Snapshot) []domain.Finding {
	seen := map[string]bool{}
	var regions []string
	for _, c := range s.Capacities {
		if c.IsShared() || c.Region == "" || seen[c.Region] {
			continue
		}
		seen[c.Region] = true
		regions = append(regions, c.Region)
	}
	if len(regions) <= 1 {
		return nil
	}
	sort.Strings(regions)
	return []domain.Finding{{
		Rule:           "cross_region",
		Severity:       domain.SeverityWarning,
		Description:    fmt.Sprintf("Capacities span %d regions (%s).", len(regions), strings.Join(regions, ", ")),
		Recommendation: "Cross-region moves need per-region target capacities; group workspaces by region in the migration plan.",
		Count:          len(regions),
	}}
}

// Rule 5: legacy dataflows present.
func legacyDataflows(s *domain.Snapshot) []domain.Finding {
	ids := itemIDs(s.Items, func(i domain.Item) bool { return i.Kind == domain.ItemKindDataflow })
	if len(ids) == 0 {
		return nil
	}
	return []domain.Finding{{
		Rule:           "legacy_dataflows",
		Severity:       domain.SeverityWarning,
		Description:    fmt.Sprintf("%d legacy dataflow(s) found.", len(ids)),
		Recommendation: "Gen1 dataflows are not migrated automatically; convert them to Dataflow Gen2 or rebuild as pipelines.",
		Count:          len(ids),
		AffectedIDs:    ids,
	}}
}

// Rule 6: paginated reports present.
func paginatedReports(s *domain.Snapshot) []domain.Finding {
	ids := itemIDs(s.Items, func(i domain.Item) bool { return i.Kind == domain.ItemKindReport && i.IsPaginated })
	if len(ids) == 0 {
		return nil
	}
	return []domain.Finding{{
		Rule:           "paginated_reports",
		Severity:       domain.SeverityWarning,
		Description:    fmt.Sprintf("%d paginated report(s) found.", len(ids)),
		Recommendation: "Paginated reports require a capacity with paginated report workloads enabled on the target.",
		Count:          len(ids),
		AffectedIDs:    ids,
	}}
}

// Rule 7: large-storage semantic models present.
func largeModels(s *domain.Snapshot) []domain.Finding {
	var ids []string
	for _, m := range s.ResolvedModels {
		if m.StorageMode == domain.StorageModePremiumFiles {
			ids = append(ids, m.DatasetID)
		}
	}
	if len(ids) == 0 {
		return nil
	}
	return []domain.Finding{{
		Rule:           "large_models",
		Severity:       domain.SeverityWarning,
		Description:    fmt.Sprintf("%d semantic model(s) use large storage format.", len(ids)),
		Recommendation: "Large-format models need a target capacity sized for them; verify memory limits of the target SKU.",
		Count:          len(ids),
		AffectedIDs:    ids,
	}}
}

// Rule 8: workspaces not in the Active lifecycle state.
func inactiveWorkspaces(s *domain.Snapshot) []domain.Finding {
	var ids []string
	for _, ws := range s.Workspaces {
		if ws.State != domain.WorkspaceStateActive {
			ids = append(ids, ws.ID)
		}
	}
	if len(ids) == 0 {
		return nil
	}
	return []domain.Finding{{
		Rule:           "inactive_workspaces",
		Severity:       domain.SeverityWarning,
		Description:    fmt.Sprintf("%d workspace(s) are not in the Active state.", len(ids)),
		Recommendation: "Restore or permanently delete inactive workspaces before migration to avoid carrying dead content.",
		Count:          len(ids),
		AffectedIDs:    ids,
	}}
}

// Rule 9: models requiring effective identity (row-level security).
func rlsModels(s *domain.Snapshot) []domain.Finding {
	var ids []string
	for _, m := range s.ResolvedModels {
		if m.EffectiveIdentityRequired {
			ids = append(ids, m.DatasetID)
		}
	}
	if len(ids) == 0 {
		return nil
	}
	return []domain.Finding{{
		Rule:           "rls_models",
		Severity:       domain.SeverityInformational,
		Description:    fmt.Sprintf("%d semantic model(s) require an effective identity (RLS).", len(ids)),
		Recommendation: "Re-validate row-level security role mappings after the move.",
		Count:          len(ids),
		AffectedIDs:    ids,
	}}
}

// Rule 10: dashboards present.
func dashboardsPresent(s *domain.Snapshot) []domain.Finding {
	ids := itemIDs(s.Items, func(i domain.Item) bool { return i.Kind == domain.ItemKindDashboard })
	if len(ids) == 0 {
		return nil
	}
	return []domain.Finding{{
		Rule:           "dashboards_present",
		Severity:       domain.SeverityInformational,
		Description:    fmt.Sprintf("%d dashboard(s) found.", len(ids)),
		Recommendation: "Dashboards move with their workspace; verify tile data sources after migration.",
		Count:          len(ids),
		AffectedIDs:    ids,
	}}
}

func itemIDs(items []domain.Item, match func(domain.Item) bool) []string {
	var ids []string
	for _, item := range items {
		if match(item) {
			ids = append(ids, item.ID)
		}
	}
	return ids
}

func summarize(s *domain.Snapshot, a domain.Assessment) domain.SummaryCounts {
	capacities := 0
	for _, c := range s.Capacities {
		if !c.IsShared() {
			capacities++
		}
	}
	return domain.SummaryCounts{
		Capacities:        capacities,
		Workspaces:        len(s.Workspaces),
		Items:             len(s.Items),
		ResolvedModels:    len(s.ResolvedModels),
		SkippedDatasets:   len(s.SkippedDatasets),
		SkippedWorkspaces: len(s.SkippedWorkspaces),
		Blockers:          len(a.Blockers),
		Warnings:          len(a.Warnings),
		Informational:     len(a.Informational),
	}
}
