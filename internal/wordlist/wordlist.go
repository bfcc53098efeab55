// Package wordlist provides the dictionary words are drawn from.
package wordlist

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"strings"
)

//go:embed words.txt
var defaultWords string

// Default returns the embedded English dictionary, filtered and de-duplicated.
func Default() ([]string, error) {
	words, err := Parse(strings.NewReader(defaultWords))
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded word list: %w", err)
	}
	return Filter(Unique(words), FilterForLang("en")), nil
}

// Parse reads one word per line. Blank lines and lines starting with '#' are
// skipped.
func Parse(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("word list is empty")
	}
	return words, nil
}

// Unique drops repeated words, keeping the first occurrence.
func Unique(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}
