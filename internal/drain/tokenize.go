package drain

import "strings"

// Tokenize splits a raw log line into its whitespace-delimited tokens.
// Leading and trailing whitespace is dropped and runs of whitespace collapse,
// so a blank line tokenizes to an empty sequence.
func Tokenize(line string) []string {
	return strings.Fields(line)
}
