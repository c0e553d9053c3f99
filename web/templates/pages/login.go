package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// LoginProps provides the Firebase client config for the standalone login page
type LoginProps struct {
	FirebaseAPIKey     string
	FirebaseAuthDomain string
	FirebaseProjectID  string
}

// Login renders the standalone login page, outside the dashboard chrome
func Login(props LoginProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>Sign In</title><link rel="stylesheet" href="/static/app.css"></head><body class="login">
<div class="login-card">
<h1>TalentDesk</h1>
<div id="signin"
  data-api-key="%s"
  data-auth-domain="%s"
  data-project-id="%s"></div>
<script src="/static/login.js"></script>
</div>
</body></html>`,
			templ.EscapeString(props.FirebaseAPIKey),
			templ.EscapeString(props.FirebaseAuthDomain),
			templ.EscapeString(props.FirebaseProjectID))
		return err
	})
}
