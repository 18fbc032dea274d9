package utils

import "strings"

// WrapWords splits text on whitespace and groups the words into lines of at most
// maxWords words. Line width in pixels is not considered.
func WrapWords(text string, maxWords int) []string {
	if maxWords <= 0 {
		maxWords = 1
	}

	words := strings.Fields(text)
	lines := make([]string, 0, (len(words)+maxWords-1)/maxWords)
	for i := 0; i < len(words); i += maxWords {
		end := i + maxWords
		if end > len(words) {
			end = len(words)
		}
		lines = append(lines, strings.Join(words[i:end], " "))
	}
	return lines
}
