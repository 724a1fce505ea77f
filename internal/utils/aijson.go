// Package utils holds small helpers shared across the service layer.
package utils

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var fencedJSON = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// ParseModelJSON parses JSON out of generative model output, which may be
// pure JSON, JSON inside a markdown code fence, or JSON with surrounding
// prose. It tries the strict parse first and falls back to extraction.
func ParseModelJSON(input string, target interface{}) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return fmt.Errorf("empty model output")
	}

	if err := json.Unmarshal([]byte(input), target); err == nil {
		return nil
	}

	if m := fencedJSON.FindStringSubmatch(input); len(m) > 1 {
		if err := json.Unmarshal([]byte(strings.TrimSpace(m[1])), target); err == nil {
			return nil
		}
	}

	if obj := extractBalanced(input, '{', '}'); obj != "" {
		if err := json.Unmarshal([]byte(obj), target); err == nil {
			return nil
		}
	}

	return fmt.Errorf("no parseable JSON in model output: %s", truncate(input, 100))
}

// extractBalanced returns the first balanced open..close region of input,
// ignoring braces inside string literals.
func extractBalanced(input string, open, close rune) string {
	depth := 0
	inString := false
	escape := false
	start := -1

	for i, ch := range input {
		if escape {
			escape = false
			continue
		}
		switch {
		case ch == '\\':
			escape = true
		case ch == '"':
			inString = !inString
		case inString:
		case ch == open:
			if depth == 0 {
				start = i
			}
			depth++
		case ch == close && depth > 0:
			depth--
			if depth == 0 {
				return input[start : i+1]
			}
		}
	}
	return ""
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
