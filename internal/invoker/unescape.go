package invoker

import "encoding/json"

// DecodeEscapes interprets model output as a JSON string literal to undo
// unicode/backslash escape sequences some runtimes double-encode into their
// output. If the text is not a valid literal (raw quotes, control bytes)
// the original string is returned unchanged; this never fails.
func DecodeEscapes(s string) string {
	var decoded string
	if err := json.Unmarshal([]byte(`"`+s+`"`), &decoded); err != nil {
		return s
	}
	return decoded
}
