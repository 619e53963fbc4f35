package core

import "github.com/nording/deskbot/internal/convo"

// DefaultSystemPrompt is the instruction text prepended to every transcript.
const DefaultSystemPrompt = `You are a tech support agent.
Your job:
- Help users with technical issues they have.
- If they have any questions about how to do something, tell them step by step how to do it.
- Don't give any harmful or illegal advice.

Format your response in plain text. Keep it short and conversational.`

// BuildPrompt serializes the model payload: system instruction, the full
// conversation transcript in append order, and a trailing "{bot}:" cue for
// the model's next turn.
func BuildPrompt(systemPrompt string, store *convo.Store) string {
	return systemPrompt + "\n\n" + store.Transcript() + "\n" + store.BotLabel() + ":"
}
