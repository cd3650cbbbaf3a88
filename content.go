package websearch

import "strings"

// TruncationMarker is appended to page content cut off at the size limit so
// downstream consumers know it is incomplete.
const TruncationMarker = "\n... (content truncated)"

// NormalizeURL prefixes https:// when the URL carries no scheme.
func NormalizeURL(url string) string {
	if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		return url
	}
	return "https://" + url
}

// Truncate caps content at limit characters, appending TruncationMarker when
// anything was cut. A non-positive limit disables truncation.
func Truncate(content string, limit int) string {
	if limit <= 0 {
		return content
	}
	cut := CutRunes(content, limit)
	if cut == content {
		return content
	}
	return cut + TruncationMarker
}

// CutRunes returns at most limit characters of s, never splitting a rune.
func CutRunes(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == limit {
			return s[:i]
		}
		count++
	}
	return s
}
