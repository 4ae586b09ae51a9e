package extract

import "strings"

// StripCodeFence removes the markdown fence models like to wrap csv output
// in. Only a leading "```csv" and a trailing "```" are removed, anything else
// is returned trimmed but otherwise untouched.
func StripCodeFence(content string) string {
	trimmed := strings.TrimSpace(content)
	trimmed = strings.TrimPrefix(trimmed, "```csv")
	trimmed = strings.TrimSuffix(trimmed, "```")
	return strings.TrimSpace(trimmed)
}
