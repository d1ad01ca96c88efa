package connective

import "strings"

const wildcard = ".+"

// Match reports whether text satisfies pattern, a restricted expression of
// literal chunks separated by ".+" with optional ^ and $ anchors.
//
// Chunks are located left to right, each at its first occurrence at or
// after the end of the previous one. There is no backtracking, so this is
// not equivalent to a regular expression on overlapping inputs.
func Match(pattern, text string) bool {
	p := strings.TrimSpace(pattern)
	anchoredStart := strings.HasPrefix(p, "^")
	anchoredEnd := strings.HasSuffix(p, "$")
	if anchoredStart {
		p = p[1:]
	}
	if anchoredEnd && p != "" {
		p = p[:len(p)-1]
	}

	startsWild := strings.HasPrefix(p, wildcard)
	endsWild := strings.HasSuffix(p, wildcard)
	chunks := strings.Split(p, wildcard)

	allEmpty := true
	for _, c := range chunks {
		if c != "" {
			allEmpty = false
			break
		}
	}
	if allEmpty {
		return text != ""
	}

	cursor := 0
	first := true
	for _, chunk := range chunks {
		if chunk == "" {
			continue
		}
		if first && anchoredStart && !startsWild {
			if !strings.HasPrefix(text[cursor:], chunk) {
				return false
			}
			cursor += len(chunk)
		} else {
			idx := strings.Index(text[cursor:], chunk)
			if idx < 0 {
				return false
			}
			cursor += idx + len(chunk)
		}
		first = false
	}

	if anchoredEnd && !endsWild {
		return cursor == len(text)
	}
	return true
}
