package pages

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/a-h/templ"

	"talentdesk_echo/internal/models"
	"talentdesk_echo/web/templates/shared"
)

// JobPostingsListProps provides data for the job postings page. Heading
// follows the deployment vocabulary ("Job Postings" or "Positions").
type JobPostingsListProps struct {
	shared.PageProps
	Postings []models.JobPosting
	Heading  string
	BasePath string
}

// JobPostingsList renders the job postings section
func JobPostingsList(props JobPostingsListProps) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<div class="actions"><a class="button" href="%s/create">New %s</a></div>`,
			templ.EscapeString(props.BasePath), templ.EscapeString(props.Heading)); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<table class="data-table"><thead><tr><th>Title</th><th>Department</th><th>Location</th><th>Status</th><th>Expires</th><th></th></tr></thead><tbody>`); err != nil {
			return err
		}
		for _, posting := range props.Postings {
			expires := "—"
			if posting.ExpiresAt != nil {
				expires = posting.ExpiresAt.Format("2006-01-02")
			}
			if _, err := fmt.Fprintf(w, `<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td><a href="%s/%d/edit">Edit</a></td></tr>`,
				templ.EscapeString(posting.Title),
				templ.EscapeString(posting.Department),
				templ.EscapeString(posting.Location),
				templ.EscapeString(string(posting.Status)),
				templ.EscapeString(expires),
				templ.EscapeString(props.BasePath),
				posting.ID); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</tbody></table>`)
		return err
	})

	return shared.Layout(props.PageProps, body)
}

// JobPostingFormProps provides data for the create/edit posting form
type JobPostingFormProps struct {
	shared.PageProps
	IsEdit   bool
	Posting  models.JobPosting
	BasePath string
}

// JobPostingForm renders the create/edit posting form
func JobPostingForm(props JobPostingFormProps) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		action := props.BasePath
		if props.IsEdit {
			action = fmt.Sprintf("%s/%d/update", props.BasePath, props.Posting.ID)
		}

		expires := ""
		if props.Posting.ExpiresAt != nil {
			expires = props.Posting.ExpiresAt.Format("2006-01-02")
		}
		repost := ""
		if props.Posting.RepostRule != nil {
			repost = *props.Posting.RepostRule
		}
		posted := props.Posting.PostedAt
		if posted.IsZero() {
			posted = time.Now()
		}

		_, err := fmt.Fprintf(w, `<form method="post" action="%s" class="form">
<label>Title<input name="title" value="%s" required></label>
<label>Department<input name="department" value="%s"></label>
<label>Location<input name="location" value="%s"></label>
<label>Employment Type<input name="employment_type" value="%s"></label>
<label>Salary Min<input type="number" step="0.01" name="salary_min" value="%.2f"></label>
<label>Salary Max<input type="number" step="0.01" name="salary_max" value="%.2f"></label>
<label>Posted<input type="date" name="posted_at" value="%s"></label>
<label>Expires<input type="date" name="expires_at" value="%s"></label>
<label>Repost Rule<input name="repost_rule" value="%s" placeholder="FREQ=MONTHLY;INTERVAL=6"></label>
<label>Description<textarea name="description">%s</textarea></label>
<button type="submit">Save</button>
</form>`,
			templ.EscapeString(action),
			templ.EscapeString(props.Posting.Title),
			templ.EscapeString(props.Posting.Department),
			templ.EscapeString(props.Posting.Location),
			templ.EscapeString(props.Posting.EmploymentType),
			props.Posting.SalaryMin,
			props.Posting.SalaryMax,
			templ.EscapeString(posted.Format("2006-01-02")),
			templ.EscapeString(expires),
			templ.EscapeString(repost),
			templ.EscapeString(props.Posting.Description))
		return err
	})

	return shared.Layout(props.PageProps, body)
}
