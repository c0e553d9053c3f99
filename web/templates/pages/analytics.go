package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"talentdesk_echo/web/templates/shared"
)

// StageCount is one row of the hiring funnel
type StageCount struct {
	Stage string
	Count int64
}

// AnalyticsProps provides data for the analytics page
type AnalyticsProps struct {
	shared.PageProps
	Funnel        []StageCount
	AvgDaysToHire float64
}

// Analytics renders the analytics section
func Analytics(props AnalyticsProps) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<div class="stat-card"><span class="stat-value">%.1f</span><span class="stat-label">Avg days to hire</span></div>`,
			props.AvgDaysToHire); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<table class="data-table"><thead><tr><th>Stage</th><th>Candidates</th></tr></thead><tbody>`); err != nil {
			return err
		}
		for _, row := range props.Funnel {
			if _, err := fmt.Fprintf(w, `<tr><td>%s</td><td>%d</td></tr>`,
				templ.EscapeString(row.Stage), row.Count); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</tbody></table>`)
		return err
	})

	return shared.Layout(props.PageProps, body)
}
