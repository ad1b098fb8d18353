package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/model"
	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/types"
)

var (
	headerColor = color.New(color.Bold, color.Underline)
	dimColor    = color.New(color.Faint)
)

func levelColor(level string) *color.Color {
	switch level {
	case string(types.LevelCritical), string(types.SLAStateBreached), string(types.ComplianceStatusNonCompliant), string(types.LifecycleStatusExpired):
		return color.New(color.FgRed, color.Bold)
	case string(types.LevelHigh):
		return color.New(color.FgRed)
	case string(types.LevelMedium), string(types.SLAStateAtRisk), string(types.LifecycleStatusExpiringSoon):
		return color.New(color.FgYellow)
	case string(types.LevelLow), string(types.LevelMinimal), string(types.SLAStateOnTrack), string(types.SLAStateMet), string(types.ComplianceStatusCompliant):
		return color.New(color.FgGreen)
	default:
		return color.New(color.FgWhite)
	}
}

func label[S ~string](s S) string {
	return levelColor(string(s)).Sprint(string(s))
}

func printDashboard(w io.Writer, d *model.Dashboard) {
	fmt.Fprintf(w, "%s %s\n\n", headerColor.Sprint("Compliance dashboard"), dimColor.Sprintf("as of %s", d.Now.Format("2006-01-02 15:04 MST")))

	if r := d.Risk; r != nil {
		headerColor.Fprintln(w, "Risk")
		fmt.Fprintf(w, "  overall %.1f %s (trend %s, previous %.1f)\n", r.OverallScore, label(r.Level), r.Trend, r.PreviousScore)
		fmt.Fprintf(w, "  items %d, critical %d, high %d\n", r.TotalCount, r.CriticalCount, r.HighCount)
		for _, c := range r.Categories {
			fmt.Fprintf(w, "  - %-24s %5.1f %s\n", c.Name, c.Score, label(c.Level))
		}
		fmt.Fprintln(w)
	}

	if s := d.Incidents; s != nil {
		headerColor.Fprintln(w, "Incidents")
		fmt.Fprintf(w, "  open %d, at risk %d, breached %d\n", s.Open, s.AtRisk, s.Breached)
		for _, v := range s.Incidents {
			fmt.Fprintf(w, "  - %-10s %-8s %-12s %s", v.Incident.ID, v.Incident.Severity, v.Incident.Status, label(v.SLA.State))
			if v.SLA.HoursLeft != nil {
				fmt.Fprintf(w, " (%.1fh left)", *v.SLA.HoursLeft)
			}
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w)
	}

	if o := d.Compliance; o != nil {
		headerColor.Fprintln(w, "Compliance")
		if o.Score != nil {
			fmt.Fprintf(w, "  overall %.1f %s (trend %s)\n", *o.Score, label(o.Status), o.Trend)
		} else {
			fmt.Fprintf(w, "  overall %s\n", label(o.Status))
		}
		for _, f := range o.Frameworks {
			fmt.Fprintf(w, "  - %-24s %s coverage %.0f%%", f.Framework.Name, label(f.Status), f.ControlCoverage)
			if f.HasCriticalFindings {
				fmt.Fprintf(w, " %s", levelColor(string(types.LevelCritical)).Sprintf("%d critical findings", f.Framework.CriticalFindings))
			}
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w)
	}

	for _, l := range d.Lifecycle {
		headerColor.Fprintf(w, "Lifecycle: %s\n", l.Kind)
		fmt.Fprintf(w, "  expired %d, expiring soon %d\n", l.Expired, l.ExpiringSoon)
		for _, v := range l.Records {
			fmt.Fprintf(w, "  - %-24s %s\n", v.Record.Name, label(v.EffectiveStatus))
		}
		fmt.Fprintln(w)
	}

	if dl := d.Deadlines; dl != nil {
		headerColor.Fprintln(w, "Deadlines")
		fmt.Fprintf(w, "  overdue %d, due soon %d, completed %d\n", dl.OverdueCount, dl.DueSoonCount, len(dl.Completed))
		for _, e := range dl.Pending {
			due := e.Deadline.DueDate.Format("2006-01-02")
			if e.Overdue {
				due = levelColor(string(types.LevelCritical)).Sprint(due)
			}
			fmt.Fprintf(w, "  - %s %-32s %s\n", due, e.Deadline.Title, e.Deadline.Priority)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Unread notifications: %d\n", d.UnreadNotices)
}
