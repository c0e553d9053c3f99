package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"talentdesk_echo/internal/models"
	"talentdesk_echo/web/templates/shared"
)

// UploadProps provides data for the candidate CSV upload page
type UploadProps struct {
	shared.PageProps
	Uploads []models.CandidateUpload
}

// Upload renders the upload section: the import form plus recent batches
func Upload(props UploadProps) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<form method="post" action="/upload" enctype="multipart/form-data" class="form">
<label>Candidate CSV<input type="file" name="file" accept=".csv" required></label>
<p class="hint">Columns: name, email, phone, stage, resume_url</p>
<button type="submit">Import</button>
</form>
<table class="data-table"><thead><tr><th>File</th><th>Status</th><th>Imported</th><th>Skipped</th><th>Uploaded</th></tr></thead><tbody>`); err != nil {
			return err
		}
		for _, upload := range props.Uploads {
			if _, err := fmt.Fprintf(w, `<tr><td>%s</td><td>%s</td><td>%d</td><td>%d</td><td>%s</td></tr>`,
				templ.EscapeString(upload.Filename),
				templ.EscapeString(string(upload.Status)),
				upload.ImportedRows,
				upload.SkippedRows,
				templ.EscapeString(upload.CreatedAt.Format("2006-01-02 15:04"))); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</tbody></table>`)
		return err
	})

	return shared.Layout(props.PageProps, body)
}
