package llm

import (
	"regexp"
	"strings"
)

var fencedJSON = regexp.MustCompile("(?s)```json\\s*(.*?)\\s*```")

// ExtractPayload isolates the usable payload from a raw model response.
// Models are not contractually guaranteed to honor "return ONLY JSON"
// instructions, so this is a forgiving heuristic rather than a parser:
// prefer the body of a ```json fence when one exists, then take the
// substring from the earliest '{' or '[' to the latest '}' or ']'.
// When no JSON-like span can be found the trimmed text is returned
// unchanged, so plain-prose replies pass through untouched.
func ExtractPayload(raw string) string {
	text := strings.TrimSpace(raw)

	if m := fencedJSON.FindStringSubmatch(text); len(m) > 1 && m[1] != "" {
		text = m[1]
	}

	objStart := strings.Index(text, "{")
	arrStart := strings.Index(text, "[")

	var start int
	switch {
	case objStart == -1 && arrStart == -1:
		return text
	case objStart == -1:
		start = arrStart
	case arrStart == -1:
		start = objStart
	default:
		start = min(objStart, arrStart)
	}

	end := max(strings.LastIndex(text, "}"), strings.LastIndex(text, "]"))
	if end < start {
		return text
	}

	return text[start : end+1]
}
