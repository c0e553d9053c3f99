package shared

import (
	"context"
	"strings"
	"testing"
)

func TestLayoutRendersSingleActiveSection(t *testing.T) {
	props := PageProps{
		Title:     "Candidates",
		ActiveNav: "candidates",
		Nav: []NavItem{
			{ID: "dashboard", Label: "Dashboard", URL: "/dashboard"},
			{ID: "candidates", Label: "Candidates", URL: "/candidates", Active: true},
		},
		Breadcrumbs: []Breadcrumb{{Title: "Home", URL: "/"}, {Title: "Candidates"}},
	}

	var b strings.Builder
	if err := Layout(props, nil).Render(context.Background(), &b); err != nil {
		t.Fatalf("Layout render: %v", err)
	}
	html := b.String()

	if !strings.Contains(html, `id="candidatesSection" class="section active"`) {
		t.Error("active section container missing")
	}
	if got := strings.Count(html, `class="section active"`); got != 1 {
		t.Errorf("active containers = %d; want 1", got)
	}
	if !strings.Contains(html, `<a class="nav-link active" href="/candidates" data-section="candidates">Candidates</a>`) {
		t.Error("active trigger missing or mis-marked")
	}
	if got := strings.Count(html, `nav-link active`); got != 1 {
		t.Errorf("active triggers = %d; want 1", got)
	}
	if !strings.Contains(html, `<h1 id="pageTitle">Candidates</h1>`) {
		t.Error("page title not rendered from section label")
	}
}

func TestLayoutEscapesUserContent(t *testing.T) {
	props := PageProps{
		Title:     "<script>alert(1)</script>",
		ActiveNav: "dashboard",
	}

	var b strings.Builder
	if err := Layout(props, nil).Render(context.Background(), &b); err != nil {
		t.Fatalf("Layout render: %v", err)
	}
	if strings.Contains(b.String(), "<script>alert(1)</script>") {
		t.Error("title rendered unescaped")
	}
}

func TestFlashesRenderPerLevel(t *testing.T) {
	props := PageProps{
		Title:     "Dashboard",
		ActiveNav: "dashboard",
		Flashes: []FlashView{
			{Level: "success", Message: "saved"},
			{Level: "error", Message: "boom"},
		},
	}

	var b strings.Builder
	if err := Layout(props, nil).Render(context.Background(), &b); err != nil {
		t.Fatalf("Layout render: %v", err)
	}
	html := b.String()
	if !strings.Contains(html, `<div class="flash flash-success">saved</div>`) {
		t.Error("success flash missing")
	}
	if !strings.Contains(html, `<div class="flash flash-error">boom</div>`) {
		t.Error("error flash missing")
	}
}
