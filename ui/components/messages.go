package components

import (
	"strings"

	"github.com/nording/deskbot/internal/models"
	"github.com/nording/deskbot/internal/present"
	"github.com/nording/deskbot/ui/styles"
)

// RenderMessages draws the full entry list: a colored speaker label per
// entry followed by its current content. The typing indicator entry is just
// the bot label with its dots.
func RenderMessages(entries []present.Entry, width int) string {
	var b strings.Builder

	userStyle := styles.UserSpeakerStyle()
	botStyle := styles.BotSpeakerStyle()
	bodyStyle := styles.MessageBodyStyle()
	if width > 4 {
		bodyStyle = bodyStyle.Width(width - 2)
	}

	for _, entry := range entries {
		if entry.Role == models.User {
			b.WriteString(userStyle.Render(entry.Speaker + ":"))
		} else {
			b.WriteString(botStyle.Render(entry.Speaker + ":"))
		}
		b.WriteString("\n")
		b.WriteString(bodyStyle.Render(RenderHTML(entry.HTML)))
		b.WriteString("\n\n")
	}

	return b.String()
}
