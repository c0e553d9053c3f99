package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"talentdesk_echo/internal/models"
	"talentdesk_echo/web/templates/shared"
)

// CandidatesListProps provides data for the candidates page
type CandidatesListProps struct {
	shared.PageProps
	Candidates []models.Candidate
	Stages     []models.CandidateStage
}

// CandidatesList renders the candidates section
func CandidatesList(props CandidatesListProps) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<table class="data-table"><thead><tr><th>Name</th><th>Email</th><th>Applied For</th><th>Stage</th><th></th></tr></thead><tbody>`); err != nil {
			return err
		}
		for _, cand := range props.Candidates {
			posting := ""
			if cand.JobPosting != nil {
				posting = cand.JobPosting.Title
			}
			if _, err := fmt.Fprintf(w, `<tr><td>%s</td><td>%s</td><td>%s</td><td>`,
				templ.EscapeString(cand.Name),
				templ.EscapeString(cand.Email),
				templ.EscapeString(posting)); err != nil {
				return err
			}
			if err := stageSelect(w, cand, props.Stages); err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, `</td><td><form method="post" action="/candidates/%d/delete"><button type="submit">Remove</button></form></td></tr>`, cand.ID); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</tbody></table>`)
		return err
	})

	return shared.Layout(props.PageProps, body)
}

func stageSelect(w io.Writer, cand models.Candidate, stages []models.CandidateStage) error {
	if _, err := fmt.Fprintf(w, `<form method="post" action="/candidates/%d/stage"><select name="stage" onchange="this.form.submit()">`, cand.ID); err != nil {
		return err
	}
	for _, stage := range stages {
		selected := ""
		if stage == cand.Stage {
			selected = " selected"
		}
		if _, err := fmt.Fprintf(w, `<option value="%s"%s>%s</option>`,
			templ.EscapeString(string(stage)), selected, templ.EscapeString(string(stage))); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `</select></form>`)
	return err
}
