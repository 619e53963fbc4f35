package components

import (
	"github.com/charmbracelet/bubbles/textarea"

	"github.com/nording/deskbot/ui/styles"
)

// RenderInput draws the input surface; the border dims while an invocation
// is in flight and the surface is disabled.
func RenderInput(input textarea.Model, busy bool, width int) string {
	if busy {
		return styles.InputDisabledStyle(width).Render(input.View())
	}
	return styles.InputStyle(width).Render(input.View())
}
