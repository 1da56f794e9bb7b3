package qualify

import (
	"regexp"
	"strings"
)

var (
	trailingCommaObject = regexp.MustCompile(`,\s*}`)
	trailingCommaArray  = regexp.MustCompile(`,\s*]`)
)

// SanitizeResponse repairs the textual malformations language models
// commonly produce around a JSON object: leading/trailing prose, missing
// closing braces and trailing commas. It is a best-effort repair, not a
// parser, and never alters the content of balanced key/value pairs.
// Sanitizing already-sanitized text is a no-op.
func SanitizeResponse(response string) string {
	response = strings.TrimSpace(response)

	if start := strings.Index(response, "{"); start != -1 {
		response = response[start:]
	}
	if end := strings.LastIndex(response, "}"); end != -1 {
		response = response[:end+1]
	}

	openBraces := strings.Count(response, "{")
	closeBraces := strings.Count(response, "}")
	if openBraces > closeBraces {
		response += strings.Repeat("}", openBraces-closeBraces)
	}

	response = trailingCommaObject.ReplaceAllString(response, "}")
	response = trailingCommaArray.ReplaceAllString(response, "]")

	return response
}
