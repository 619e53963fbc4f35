package components

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/nording/deskbot/ui/styles"
)

// The renderer emits a constrained fragment: <b>, <i>, <code>, <ul>, <ol>,
// <li>, <br> and the three escaped entities. RenderHTML interprets exactly
// that subset into styled terminal text for the viewport.

var (
	codeTagRegex   = regexp.MustCompile(`<code>(.+?)</code>`)
	boldTagRegex   = regexp.MustCompile(`<b>(.+?)</b>`)
	italicTagRegex = regexp.MustCompile(`<i>(.+?)</i>`)
)

func RenderHTML(fragment string) string {
	if fragment == "" {
		return ""
	}

	var (
		out     []string
		ordered bool
		index   int
	)

	for _, token := range strings.Split(fragment, "<br>") {
		switch token {
		case "<ul>":
			ordered = false
			index = 0
		case "<ol>":
			ordered = true
			index = 0
		case "</ul>", "</ol>":
			// List boundaries carry no visible output.
		default:
			if item, ok := strings.CutPrefix(token, "<li>"); ok {
				item = strings.TrimSuffix(item, "</li>")
				if ordered {
					index++
					out = append(out, styles.ListItemStyle().Render(fmt.Sprintf("%d. %s", index, renderInline(item))))
				} else {
					out = append(out, styles.ListItemStyle().Render("• "+renderInline(item)))
				}
			} else {
				out = append(out, renderInline(token))
			}
		}
	}

	return strings.Join(out, "\n")
}

func renderInline(s string) string {
	// Entities are decoded once, at the end; the tag handlers only style.
	s = codeTagRegex.ReplaceAllStringFunc(s, func(match string) string {
		inner := codeTagRegex.FindStringSubmatch(match)[1]
		return styles.CodeStyle().Render(inner)
	})
	s = boldTagRegex.ReplaceAllStringFunc(s, func(match string) string {
		inner := boldTagRegex.FindStringSubmatch(match)[1]
		return styles.BoldStyle().Render(inner)
	})
	s = italicTagRegex.ReplaceAllStringFunc(s, func(match string) string {
		inner := italicTagRegex.FindStringSubmatch(match)[1]
		return styles.ItalicStyle().Render(inner)
	})
	return unescapeEntities(s)
}

// unescapeEntities undoes the renderer's escaping for display. &amp; comes
// last so "&amp;lt;" round-trips as "&lt;", not "<".
func unescapeEntities(s string) string {
	s = strings.ReplaceAll(s, "&lt;", "<")
	s = strings.ReplaceAll(s, "&gt;", ">")
	s = strings.ReplaceAll(s, "&amp;", "&")
	return s
}
