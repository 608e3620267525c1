package console

import "regexp"

// HighlightWordInPhrase emphasizes every occurrence of the word inside its
// example phrase, matching case-insensitively so "Apfel" lights up in
// "ein apfel am Tag".
func HighlightWordInPhrase(phrase, word string) string {
	if phrase == "" || word == "" {
		return phrase
	}
	pattern, err := regexp.Compile("(?i)" + regexp.QuoteMeta(word))
	if err != nil {
		return phrase
	}
	return pattern.ReplaceAllStringFunc(phrase, func(m string) string {
		return highlightColor.Sprint(m)
	})
}
