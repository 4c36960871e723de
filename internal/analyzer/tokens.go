package analyzer

import (
	"strings"
)

var stopWords = map[string]bool{
	"a": true, "an": true, "the": true, "is": true, "are": true,
	"was": true, "were": true, "be": true, "been": true, "being": true,
	"have": true, "has": true, "had": true, "do": true, "does": true,
	"did": true, "will": true, "would": true, "could": true, "should": true,
	"of": true, "at": true, "by": true, "for": true, "with": true,
	"about": true, "against": true, "between": true, "into": true,
	"through": true, "during": true, "before": true, "after": true,
	"to": true, "from": true, "in": true, "on": true,
}

func normalizePrompt(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

func tokenize(s string) []string {
	s = removePunctuation(strings.ToLower(s))

	tokens := []string{}
	for word := range strings.FieldsSeq(s) {
		if !stopWords[word] && len(word) > 1 {
			tokens = append(tokens, word)
		}
	}
	return tokens
}

func removePunctuation(s string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(".,!?;:()[]{}\"'", r) {
			return -1 // Remove this rune
		}
		return r
	}, s)
}

func tokenSet(tokens []string) map[string]bool {
	set := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		set[t] = true
	}
	return set
}

// matchKeyword matches multi-word keywords as substrings and single words
// on token boundaries, so "app" does not fire inside "happy". Simple
// plurals count as hits for single-word keywords.
func matchKeyword(prompt string, tokens map[string]bool, keyword string) bool {
	if strings.Contains(keyword, " ") {
		return strings.Contains(prompt, keyword)
	}
	return tokens[keyword] || tokens[keyword+"s"] || tokens[keyword+"es"]
}

func countKeywords(prompt string, tokens map[string]bool, keywords []string) int {
	count := 0
	for _, kw := range keywords {
		if matchKeyword(prompt, tokens, kw) {
			count++
		}
	}
	return count
}

func anyKeyword(prompt string, tokens map[string]bool, keywords []string) bool {
	for _, kw := range keywords {
		if matchKeyword(prompt, tokens, kw) {
			return true
		}
	}
	return false
}
