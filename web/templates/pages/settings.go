package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"talentdesk_echo/web/templates/shared"
)

// SettingsField describes one form field backed by the settings store
type SettingsField struct {
	Name  string
	Label string
}

// SettingsProps provides data for the settings page
type SettingsProps struct {
	shared.PageProps
	Fields []SettingsField
	Values map[string]string
}

// Settings renders the settings section: the preferences form, data export
// and the account-deletion flow with its confirmation step.
func Settings(props SettingsProps) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<form method="post" action="/settings" class="form">`); err != nil {
			return err
		}
		for _, field := range props.Fields {
			if _, err := fmt.Fprintf(w, `<label>%s<input name="%s" value="%s"></label>`,
				templ.EscapeString(field.Label),
				templ.EscapeString(field.Name),
				templ.EscapeString(props.Values[field.Name])); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `<button type="submit">Save</button></form>
<div class="settings-extras">
<a class="button" href="/settings/export">Export my data</a>
<form method="post" action="/settings/delete-account" onsubmit="return confirm('Delete your account? This cannot be undone.')">
<input type="hidden" name="confirm" value="yes">
<button type="submit" class="danger">Delete account</button>
</form>
</div>`)
		return err
	})

	return shared.Layout(props.PageProps, body)
}
