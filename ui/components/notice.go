package components

import "github.com/nording/deskbot/ui/styles"

// RenderNotice draws the blocking failure notice in place of the input
// surface; key handling routes to its dismissal while it is up.
func RenderNotice(message string, width int) string {
	return styles.NoticeStyle(width).Render("Error: " + message + "\n(press Enter to dismiss)")
}
