package promptstyle

import "strings"

const marker = "DRILLS_PROMPT_STYLE_V1"

// ApplySystem prepends a short guidance block to a system prompt. It is
// idempotent: a prompt that already carries the marker is returned as is.
func ApplySystem(system string, mode string) string {
	base := strings.TrimSpace(system)
	if base == "" || strings.Contains(base, marker) {
		return base
	}
	mode = strings.ToLower(strings.TrimSpace(mode))

	var b strings.Builder
	b.WriteString(marker)
	b.WriteString("\nFollow the system and user instructions precisely.")
	b.WriteString("\nCopy Chinese text from the inputs character for character; never paraphrase it.")
	b.WriteString("\nDo not add analysis or extra commentary.")
	if mode == "json" {
		b.WriteString("\nReturn a single JSON object that conforms to the schema and contains no extra keys.")
	} else {
		b.WriteString("\nBe brief.")
	}
	b.WriteString("\n---\n")
	b.WriteString(base)
	return b.String()
}
