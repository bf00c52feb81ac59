// ABOUTME: Terminal rendering for plan results
// ABOUTME: Summary table, sensitivity table, and pipeline bar chart

package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/markalston/gtm-planner/internal/tui/styles"
	"github.com/markalston/gtm-planner/models"
)

// barWidth is the maximum width of a pipeline chart bar in cells.
const barWidth = 40

// Plan renders a full plan result for the terminal.
func Plan(result models.PlanResult) string {
	var sb strings.Builder

	title := "GTM Plan"
	if result.Scenario != "" {
		title = fmt.Sprintf("GTM Plan — %s", result.Scenario)
	}
	sb.WriteString(styles.Title.Render(title))
	sb.WriteString("\n\n")

	if result.Infeasible {
		sb.WriteString(styles.StatusCritical.Render("No feasible headcount plan"))
		sb.WriteString("\n")
		sb.WriteString(styles.Subtitle.Render(result.Message))
		sb.WriteString("\n\n")
		sb.WriteString(revenueSection(result.Derived))
		sb.WriteString("\n")
		sb.WriteString(sensitivitySection(result.Sensitivity))
		return sb.String()
	}

	sb.WriteString(summarySection(result))
	sb.WriteString("\n")
	sb.WriteString(sensitivitySection(result.Sensitivity))
	sb.WriteString("\n")
	sb.WriteString(breakdownSection(result.Breakdown))
	return sb.String()
}

func summarySection(result models.PlanResult) string {
	sol := result.Solution
	d := result.Derived

	var sb strings.Builder
	sb.WriteString(styles.Subtitle.Render("Summary"))
	sb.WriteString("\n")

	rows := []struct {
		name  string
		value string
	}{
		{"Comm AEs", fmt.Sprintf("%d", sol.Rounded.AEComm)},
		{"Ent AEs", fmt.Sprintf("%d", sol.Rounded.AEEnt)},
		{"AMs", fmt.Sprintf("%d", sol.Rounded.AMs)},
		{"Comm BDRs", fmt.Sprintf("%d", sol.Rounded.BDRComm)},
		{"Ent BDRs", fmt.Sprintf("%d", sol.Rounded.BDREnt)},
		{"Expansion ARR", dollars(d.ExpansionARR)},
		{"Comm New ARR", dollars(d.CommNewARR)},
		{"Ent New ARR", dollars(d.EntNewARR)},
		{"Comm Pipeline", dollars(d.CommPipeline)},
		{"Ent Pipeline", dollars(d.EntPipeline)},
		{"Total Meetings Required", fmt.Sprintf("%.0f", d.TotalMeetingsNeeded)},
		{"BDR-Sourced Meetings", fmt.Sprintf("%.0f", sol.TotalBDRMeetings)},
		{"Self-Gen Meetings", fmt.Sprintf("%.0f", sol.SelfGenMeetings)},
	}
	for _, row := range rows {
		sb.WriteString(fmt.Sprintf("  %s %s\n",
			styles.MetricName.Render(fmt.Sprintf("%-26s", row.name)),
			styles.MetricValue.Render(row.value)))
	}

	if sol.SelfGenMeetings < 0 {
		sb.WriteString("  ")
		sb.WriteString(styles.StatusWarning.Render("BDR capacity exceeds total meeting need"))
		sb.WriteString("\n")
	}
	return sb.String()
}

func revenueSection(d models.DerivedRevenue) string {
	var sb strings.Builder
	sb.WriteString(styles.Subtitle.Render("Revenue Requirements"))
	sb.WriteString("\n")
	rows := []struct {
		name  string
		value string
	}{
		{"Expansion ARR", dollars(d.ExpansionARR)},
		{"New Logo ARR Needed", dollars(d.NewLogoARRNeeded)},
		{"Comm Pipeline", dollars(d.CommPipeline)},
		{"Ent Pipeline", dollars(d.EntPipeline)},
		{"Total Meetings Required", fmt.Sprintf("%.0f", d.TotalMeetingsNeeded)},
	}
	for _, row := range rows {
		sb.WriteString(fmt.Sprintf("  %s %s\n",
			styles.MetricName.Render(fmt.Sprintf("%-26s", row.name)),
			styles.MetricValue.Render(row.value)))
	}
	return sb.String()
}

func sensitivitySection(rows []models.SensitivityRow) string {
	var sb strings.Builder
	sb.WriteString(styles.Subtitle.Render("Scenario Risk Sensitivity"))
	sb.WriteString("\n")
	for _, row := range rows {
		sb.WriteString(fmt.Sprintf("  %s %s\n",
			styles.MetricName.Render(fmt.Sprintf("%-26s", row.Variable)),
			styles.MetricValue.Render(dollars(row.Pipeline))))
	}
	return sb.String()
}

func breakdownSection(segments []models.PipelineSegment) string {
	var sb strings.Builder
	sb.WriteString(styles.Subtitle.Render("Pipeline Breakdown"))
	sb.WriteString("\n")

	max := 0.0
	for _, s := range segments {
		if v := math.Abs(s.Pipeline); v > max {
			max = v
		}
	}

	for _, s := range segments {
		width := 0
		if max > 0 {
			width = int(math.Abs(s.Pipeline) / max * barWidth)
		}
		bar := strings.Repeat("█", width)
		sb.WriteString(fmt.Sprintf("  %s %s %s\n",
			styles.BarLabel.Render(fmt.Sprintf("%-12s", s.Segment)),
			styles.Bar.Render(bar),
			styles.MetricValue.Render(dollars(s.Pipeline))))
	}
	return sb.String()
}

// dollars formats a value as whole dollars with thousands separators.
func dollars(v float64) string {
	rounded := int64(math.Round(v))
	negative := rounded < 0
	if negative {
		rounded = -rounded
	}

	digits := fmt.Sprintf("%d", rounded)
	var parts []string
	for len(digits) > 3 {
		parts = append([]string{digits[len(digits)-3:]}, parts...)
		digits = digits[:len(digits)-3]
	}
	parts = append([]string{digits}, parts...)

	out := "$" + strings.Join(parts, ",")
	if negative {
		out = "-" + out
	}
	return out
}
