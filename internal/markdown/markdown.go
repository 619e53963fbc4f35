// Package markdown converts a constrained markdown subset into a safe HTML
// fragment: inline code, bold, italic, bullet and numbered lists. HTML
// metacharacters are escaped before any substitution so neither user nor
// model text can inject structural markup.
package markdown

import (
	"regexp"
	"strings"
)

var (
	codeRegex = regexp.MustCompile("`(.+?)`")
	boldRegex = regexp.MustCompile(`\*\*(.+?)\*\*`)
	// Applied after boldRegex, so remaining single asterisks are italic.
	italicRegex = regexp.MustCompile(`\*(.+?)\*`)

	bulletItemRegex   = regexp.MustCompile(`^\s*[-*]\s+(.*)`)
	numberedItemRegex = regexp.MustCompile(`^\s*\d+\.\s+(.*)`)
)

// Render converts text to an HTML fragment. The substitution order is fixed:
// escaping, then inline code, bold, italic, then line-by-line list grouping.
// Empty input yields empty output.
func Render(text string) string {
	if text == "" {
		return ""
	}

	text = escape(text)

	text = codeRegex.ReplaceAllString(text, "<code>$1</code>")
	text = boldRegex.ReplaceAllString(text, "<b>$1</b>")
	text = italicRegex.ReplaceAllString(text, "<i>$1</i>")

	return groupLists(text)
}

func escape(text string) string {
	text = strings.ReplaceAll(text, "&", "&amp;")
	text = strings.ReplaceAll(text, "<", "&lt;")
	text = strings.ReplaceAll(text, ">", "&gt;")
	return text
}

// groupLists walks the text line by line, merging consecutive bullet lines
// into one <ul> run and consecutive numbered lines into one <ol> run. A line
// of the other kind, or any non-list line, closes the open run first.
// Non-list lines are joined with <br>.
func groupLists(text string) string {
	var (
		out  []string
		inUL bool
		inOL bool
	)

	closeLists := func() {
		if inUL {
			out = append(out, "</ul>")
			inUL = false
		}
		if inOL {
			out = append(out, "</ol>")
			inOL = false
		}
	}

	for _, line := range strings.Split(text, "\n") {
		if m := bulletItemRegex.FindStringSubmatch(line); m != nil {
			if inOL {
				closeLists()
			}
			if !inUL {
				out = append(out, "<ul>")
				inUL = true
			}
			out = append(out, "<li>"+m[1]+"</li>")
			continue
		}
		if m := numberedItemRegex.FindStringSubmatch(line); m != nil {
			if inUL {
				closeLists()
			}
			if !inOL {
				out = append(out, "<ol>")
				inOL = true
			}
			out = append(out, "<li>"+m[1]+"</li>")
			continue
		}
		closeLists()
		out = append(out, line)
	}
	closeLists()

	return strings.Join(out, "<br>")
}
