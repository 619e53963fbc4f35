package components

import (
	"strings"

	"github.com/nording/deskbot/ui/styles"
)

func RenderStatus(status string, busy bool, dots int, width int) string {
	statusContent := status
	if busy {
		statusContent += strings.Repeat(".", dots)
	}

	return styles.StatusStyle(width).Render(statusContent)
}
