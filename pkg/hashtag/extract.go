// Package hashtag extracts hashtag candidates from free text.
package hashtag

import "regexp"

var tagPattern = regexp.MustCompile(`@([A-Za-z0-9_-]+)`)

// Extract returns the deduplicated set of tag names referenced in
// text. A candidate is a maximal `@name` run of ASCII letters, digits,
// underscore or hyphen; the `@` is stripped and case is preserved.
// Blank input yields an empty set.
func Extract(text string) map[string]struct{} {
	names := make(map[string]struct{})
	for _, match := range tagPattern.FindAllStringSubmatch(text, -1) {
		names[match[1]] = struct{}{}
	}
	return names
}
