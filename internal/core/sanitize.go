package core

import "strings"

// StripSpeakerPrefix removes a leading "{label}:" echo from model output.
// The transcript ends with that cue, and some models repeat it at the start
// of their reply. Case-insensitive, stripped at most once.
func StripSpeakerPrefix(text, label string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(strings.ToLower(trimmed), strings.ToLower(label)+":") {
		return text
	}
	_, rest, _ := strings.Cut(trimmed, ":")
	return strings.TrimSpace(rest)
}
