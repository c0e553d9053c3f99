package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"talentdesk_echo/web/templates/shared"
)

// ErrorPageProps provides data for the in-chrome error page
type ErrorPageProps struct {
	shared.PageProps
	ErrorTitle   string
	ErrorMessage string
}

// ErrorPage renders an error inside the dashboard chrome
func ErrorPage(props ErrorPageProps) templ.Component {
	body := errorBody(props)
	return shared.Layout(props.PageProps, body)
}

// PublicErrorPage renders an error without the dashboard chrome, for routes
// reachable before authentication.
func PublicErrorPage(props ErrorPageProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>%s</title></head><body class="error">`,
			templ.EscapeString(props.ErrorTitle)); err != nil {
			return err
		}
		if err := errorBody(props).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}

func errorBody(props ErrorPageProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<div class="error-box"><h2>%s</h2><p>%s</p><a href="/dashboard">Back to dashboard</a></div>`,
			templ.EscapeString(props.ErrorTitle),
			templ.EscapeString(props.ErrorMessage))
		return err
	})
}
