package pangasinan

import "regexp"

// reToken matches either a run of letters/digits or a single non-space
// punctuation character, so "Abung ko!" yields ["Abung", "ko", "!"].
var reToken = regexp.MustCompile(`[\p{L}\p{N}]+|[^\p{L}\p{N}\s]`)

// reWord distinguishes word tokens from punctuation tokens.
var reWord = regexp.MustCompile(`^[\p{L}\p{N}]`)

// Token is one unit produced by Tokenize. Punctuation tokens are carried
// through translation verbatim and never analyzed.
type Token struct {
	// Text is the surface form, original casing and diacritics intact.
	Text string
	// Word is true for letter/digit tokens, false for punctuation.
	Word bool
}

// Tokenize splits text into an ordered sequence of tokens. It is total:
// empty or whitespace-only input yields an empty slice.
func Tokenize(text string) []Token {
	matches := reToken.FindAllString(text, -1)
	if len(matches) == 0 {
		return nil
	}
	tokens := make([]Token, 0, len(matches))
	for _, m := range matches {
		tokens = append(tokens, Token{Text: m, Word: reWord.MatchString(m)})
	}
	return tokens
}
