package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"talentdesk_echo/web/templates/shared"
)

// DashboardStats summarizes the hiring funnel for the landing section
type DashboardStats struct {
	TotalCandidates  int64
	ActiveCandidates int64
	OpenPostings     int64
	HiredThisMonth   int64
}

// DashboardProps provides data for the dashboard page
type DashboardProps struct {
	shared.PageProps
	Stats DashboardStats
}

// Dashboard renders the dashboard section
func Dashboard(props DashboardProps) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		cards := []struct {
			label string
			value int64
		}{
			{"Total Candidates", props.Stats.TotalCandidates},
			{"Active Candidates", props.Stats.ActiveCandidates},
			{"Open Postings", props.Stats.OpenPostings},
			{"Hired This Month", props.Stats.HiredThisMonth},
		}

		if _, err := io.WriteString(w, `<div class="stat-cards">`); err != nil {
			return err
		}
		for _, card := range cards {
			if _, err := fmt.Fprintf(w, `<div class="stat-card"><span class="stat-value">%d</span><span class="stat-label">%s</span></div>`,
				card.value, templ.EscapeString(card.label)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})

	return shared.Layout(props.PageProps, body)
}
