package gemini

import (
	"encoding/json"
	"regexp"
	"strings"
)

var jsonFence = regexp.MustCompile("(?i)```json\\s*")

// SafeParse best-effort decodes a model response as JSON after
// stripping markdown code fences. When the text is not valid JSON it
// returns the original wrapped as {"rawText": text}. It never fails:
// a malformed upstream response degrades to the wrapper instead of
// erroring the whole request.
func SafeParse(text string) interface{} {
	cleaned := jsonFence.ReplaceAllString(text, "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	var v interface{}
	if err := json.Unmarshal([]byte(cleaned), &v); err != nil {
		return map[string]interface{}{"rawText": text}
	}
	return v
}
