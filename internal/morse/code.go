package morse

import "strings"

// WordSeparator is the token that separates words in encoded output.
const WordSeparator = "/"

// CodeTable maps characters to their ITU morse codes. The mapping is a
// bijection: no two characters share a code.
var CodeTable = map[rune]string{
	'A': ".-", 'B': "-...", 'C': "-.-.", 'D': "-..", 'E': ".",
	'F': "..-.", 'G': "--.", 'H': "....", 'I': "..", 'J': ".---",
	'K': "-.-", 'L': ".-..", 'M': "--", 'N': "-.", 'O': "---",
	'P': ".--.", 'Q': "--.-", 'R': ".-.", 'S': "...", 'T': "-",
	'U': "..-", 'V': "...-", 'W': ".--", 'X': "-..-", 'Y': "-.--",
	'Z': "--..",
	'0': "-----", '1': ".----", '2': "..---", '3': "...--", '4': "....-",
	'5': ".....", '6': "-....", '7': "--...", '8': "---..", '9': "----.",
	'.': ".-.-.-", ',': "--..--", '?': "..--..", '\'': ".----.",
	'!': "-.-.--", '/': "-..-.", '(': "-.--.", ')': "-.--.-",
	'&': ".-...", ':': "---...", ';': "-.-.-.", '=': "-...-",
	'+': ".-.-.", '-': "-....-", '_': "..--.-", '"': ".-..-.",
	'$': "...-..-", '@': ".--.-.",
}

var fromCode map[string]rune

func init() {
	fromCode = make(map[string]rune, len(CodeTable))
	for r, code := range CodeTable {
		fromCode[code] = r
	}
}

// Encode translates text to morse code. Input is uppercased, spaces become
// the word separator, and characters without a mapping are silently dropped.
// Character codes are joined with single spaces, words with " / ", and
// redundant separators are collapsed.
func Encode(text string) string {
	var tokens []string
	for _, r := range strings.ToUpper(text) {
		if r == ' ' {
			// Collapse runs of separators and never lead with one.
			if len(tokens) == 0 || tokens[len(tokens)-1] == WordSeparator {
				continue
			}
			tokens = append(tokens, WordSeparator)
			continue
		}
		if code, ok := CodeTable[r]; ok {
			tokens = append(tokens, code)
		}
	}
	// Trim a trailing separator left behind by dropped characters.
	for len(tokens) > 0 && tokens[len(tokens)-1] == WordSeparator {
		tokens = tokens[:len(tokens)-1]
	}
	return strings.Join(tokens, " ")
}

// Decode translates morse code back to text. Codes without a mapping resolve
// to nothing (lossy, no error); words are rejoined with a single space.
func Decode(code string) string {
	var words []string
	for _, word := range strings.Split(code, WordSeparator) {
		var sb strings.Builder
		for _, c := range strings.Fields(word) {
			if r, ok := fromCode[c]; ok {
				sb.WriteRune(r)
			}
		}
		if sb.Len() > 0 {
			words = append(words, sb.String())
		}
	}
	return strings.Join(words, " ")
}
