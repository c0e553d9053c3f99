package shared

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// Breadcrumb represents one entry in the navigation trail
type Breadcrumb struct {
	Title string
	URL   string
}

// NavItem is one sidebar trigger. Exactly one item is active per page.
type NavItem struct {
	ID     string
	Label  string
	URL    string
	Active bool
}

// FlashView is a transient message rendered once
type FlashView struct {
	Level   string
	Message string
}

// PageProps carries the chrome data every page needs
type PageProps struct {
	Title       string
	ActiveNav   string
	Breadcrumbs []Breadcrumb
	UserEmail   string
	UserUID     string
	Nav         []NavItem
	Flashes     []FlashView
}

// Layout wraps a page body in the dashboard chrome: sidebar navigation,
// title bar, breadcrumbs and flash messages. The body is rendered inside the
// single section container for the active section.
func Layout(props PageProps, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>%s</title><link rel="stylesheet" href="/static/app.css"></head><body>`,
			templ.EscapeString(props.Title)); err != nil {
			return err
		}

		if err := sidebar(props.Nav).Render(ctx, w); err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w, `<main><header><h1 id="pageTitle">%s</h1><span class="user">%s</span></header>`,
			templ.EscapeString(props.Title), templ.EscapeString(props.UserEmail)); err != nil {
			return err
		}

		if err := breadcrumbs(props.Breadcrumbs).Render(ctx, w); err != nil {
			return err
		}
		if err := flashes(props.Flashes).Render(ctx, w); err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w, `<section id="%sSection" class="section active">`,
			templ.EscapeString(props.ActiveNav)); err != nil {
			return err
		}
		if body != nil {
			if err := body.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</section></main></body></html>`)
		return err
	})
}

func sidebar(items []NavItem) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<nav class="sidebar">`); err != nil {
			return err
		}
		for _, item := range items {
			class := "nav-link"
			if item.Active {
				class = "nav-link active"
			}
			if _, err := fmt.Fprintf(w, `<a class="%s" href="%s" data-section="%s">%s</a>`,
				class,
				templ.EscapeString(item.URL),
				templ.EscapeString(item.ID),
				templ.EscapeString(item.Label)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</nav>`)
		return err
	})
}

func breadcrumbs(trail []Breadcrumb) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(trail) == 0 {
			return nil
		}
		if _, err := io.WriteString(w, `<ol class="breadcrumbs">`); err != nil {
			return err
		}
		for _, crumb := range trail {
			var err error
			if crumb.URL != "" {
				_, err = fmt.Fprintf(w, `<li><a href="%s">%s</a></li>`,
					templ.EscapeString(crumb.URL), templ.EscapeString(crumb.Title))
			} else {
				_, err = fmt.Fprintf(w, `<li>%s</li>`, templ.EscapeString(crumb.Title))
			}
			if err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</ol>`)
		return err
	})
}

func flashes(messages []FlashView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, flash := range messages {
			if _, err := fmt.Fprintf(w, `<div class="flash flash-%s">%s</div>`,
				templ.EscapeString(flash.Level), templ.EscapeString(flash.Message)); err != nil {
				return err
			}
		}
		return nil
	})
}
