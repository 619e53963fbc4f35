package markdown

import (
	"strings"
	"testing"
)

func TestRender_EmptyInput(t *testing.T) {
	if got := Render(""); got != "" {
		t.Errorf("Render(\"\") = %q, want empty", got)
	}
}

func TestRender_EscapesBeforeSubstitution(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"ampersand", "fish & chips", "fish &amp; chips"},
		{"angle brackets", "a<b>c", "a&lt;b&gt;c"},
		{"injected tag", "<script>alert('&')</script>", "&lt;script&gt;alert('&amp;')&lt;/script&gt;"},
		{"escaped inside code", "`a<b`", "<code>a&lt;b</code>"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Render(tc.input); got != tc.want {
				t.Errorf("Render(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestRender_NoRawMetacharactersSurvive(t *testing.T) {
	inputs := []string{
		"<div onclick=x>",
		"1 < 2 && 3 > 2",
		"`<code>` & **<b>**",
	}

	for _, input := range inputs {
		got := Render(input)
		stripped := got
		for _, tag := range []string{
			"<code>", "</code>", "<b>", "</b>", "<i>", "</i>",
			"<ul>", "</ul>", "<ol>", "</ol>", "<li>", "</li>", "<br>",
		} {
			stripped = strings.ReplaceAll(stripped, tag, "")
		}
		stripped = strings.ReplaceAll(stripped, "&amp;", "")
		stripped = strings.ReplaceAll(stripped, "&lt;", "")
		stripped = strings.ReplaceAll(stripped, "&gt;", "")
		if strings.ContainsAny(stripped, "&<>") {
			t.Errorf("Render(%q) = %q leaves raw metacharacters", input, got)
		}
	}
}

func TestRender_InlineMarkup(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bold", "**x**", "<b>x</b>"},
		{"italic", "*x*", "<i>x</i>"},
		{"code", "`x`", "<code>x</code>"},
		{"bold then italic", "**strong** and *soft*", "<b>strong</b> and <i>soft</i>"},
		{"bold applies inside code span", "`keep **raw**` outside", "<code>keep <b>raw</b></code> outside"},
		{"escaped content wrapped", "**a&b**", "<b>a&amp;b</b>"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Render(tc.input); got != tc.want {
				t.Errorf("Render(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestRender_BulletRunMergesIntoOneList(t *testing.T) {
	got := Render("- one\n- two\n* three")

	if n := strings.Count(got, "<ul>"); n != 1 {
		t.Errorf("want exactly one <ul>, got %d in %q", n, got)
	}
	if n := strings.Count(got, "<li>"); n != 3 {
		t.Errorf("want 3 <li>, got %d in %q", n, got)
	}
	if !strings.Contains(got, "<li>one</li>") || !strings.Contains(got, "<li>three</li>") {
		t.Errorf("missing list items in %q", got)
	}
}

func TestRender_NumberedRun(t *testing.T) {
	got := Render("1. first\n2. second")

	if n := strings.Count(got, "<ol>"); n != 1 {
		t.Errorf("want exactly one <ol>, got %d in %q", n, got)
	}
	if n := strings.Count(got, "<li>"); n != 2 {
		t.Errorf("want 2 <li>, got %d in %q", n, got)
	}
}

func TestRender_SwitchingKindsClosesOpenList(t *testing.T) {
	got := Render("- bullet\n1. numbered")

	closeUL := strings.Index(got, "</ul>")
	openOL := strings.Index(got, "<ol>")
	if closeUL == -1 || openOL == -1 || closeUL > openOL {
		t.Errorf("switching kinds must close <ul> before opening <ol>, got %q", got)
	}
}

func TestRender_NonListLineClosesList(t *testing.T) {
	got := Render("- item\nplain text\n- again")

	if n := strings.Count(got, "<ul>"); n != 2 {
		t.Errorf("non-list line must split the runs, want 2 <ul>, got %d in %q", n, got)
	}
	if !strings.Contains(got, "plain text") {
		t.Errorf("plain line lost in %q", got)
	}
}

func TestRender_PlainLinesJoinedWithBreaks(t *testing.T) {
	if got, want := Render("alpha\nbeta"), "alpha<br>beta"; got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestRender_ListItemsCarryInlineMarkup(t *testing.T) {
	got := Render("- **bold** item")

	if !strings.Contains(got, "<li><b>bold</b> item</li>") {
		t.Errorf("inline markup must run before list grouping, got %q", got)
	}
}
