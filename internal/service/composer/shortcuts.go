package composer

import (
	"strings"
)

// Shortcut maps typed phrases to the symbol that replaces them.
type Shortcut struct {
	Symbol  string
	Phrases []string
}

// Table is applied in order. An earlier phrase can consume part of a later
// one, so reordering entries changes results.
type Table []Shortcut

var DefaultTable = Table{
	{Symbol: "😭", Phrases: []string{"ToT", "T-T", "T_T", "T.T", ":((", ":-(("}},
	{Symbol: "😓", Phrases: []string{"'-_-"}},
	{Symbol: "😜", Phrases: []string{";p", ";-p", ";P", ";-P"}},
	{Symbol: "😑", Phrases: []string{"-_-"}},
	{Symbol: "😢", Phrases: []string{":'(", ":'-("}},
	{Symbol: "😞", Phrases: []string{":(", ":-(", "=(", ")=", ":["}},
	{Symbol: "😐", Phrases: []string{":|", ":-|"}},
	{Symbol: "😛", Phrases: []string{":P", ":-P", ":p", ":-p", "=P", "=p"}},
	{Symbol: "😁", Phrases: []string{":D", ":-D", "=D", ":d", ":-d", "=d"}},
	{Symbol: "😗", Phrases: []string{":*", ":-*"}},
	{Symbol: "😇", Phrases: []string{"O:)", "O:-)"}},
	{Symbol: "😳", Phrases: []string{"O_O", "o_o", "0_0"}},
	{Symbol: "😊", Phrases: []string{"^_^", "^~^", "=)"}},
	{Symbol: "😠", Phrases: []string{">:(", ">:-(", ">:o", ">:-o", ">:O", ">:-O"}},
	{Symbol: "😎", Phrases: []string{"8)", "B)", "8-)", "B-)"}},
	{Symbol: "😚", Phrases: []string{"-3-"}},
	{Symbol: "😉", Phrases: []string{";)", ";-)"}},
	{Symbol: "😲", Phrases: []string{":O", ":o", ":-O", ":-o"}},
	{Symbol: "😣", Phrases: []string{">_<", ">.<"}},
	{Symbol: "😘", Phrases: []string{";*", ";-*"}},
	{Symbol: "😕", Phrases: []string{":/", ":-/", ":\\", ":-\\", "=/", "=\\"}},
	{Symbol: "🙂", Phrases: []string{":)", ":]", ":-)", "(:", "(="}},
	{Symbol: "♥", Phrases: []string{"<3"}},
	{Symbol: "😂", Phrases: []string{":')"}},
}

// Normalize replaces every whole-word phrase with its symbol. The input is
// padded with one space on each side so a phrase matches as " phrase ", then
// trimmed. Adjacent phrases share a space, so in "xd xd" only the first is
// replaced.
func (t Table) Normalize(input string) string {
	padded := " " + input + " "
	for _, shortcut := range t {
		for _, phrase := range shortcut.Phrases {
			padded = strings.ReplaceAll(padded, " "+phrase+" ", " "+shortcut.Symbol+" ")
		}
	}
	return strings.TrimSpace(padded)
}

// Lookup returns the symbol of the first entry listing word.
func (t Table) Lookup(word string) (string, bool) {
	for _, shortcut := range t {
		for _, phrase := range shortcut.Phrases {
			if phrase == word {
				return shortcut.Symbol, true
			}
		}
	}
	return "", false
}

// LiveReplace substitutes the word right before the caret, as done when the
// user types a space. Positions are rune offsets. Nothing changes while a
// selection is active or when the word has no shortcut.
func (t Table) LiveReplace(input string, caret, selectionEnd int) (string, int) {
	runes := []rune(input)
	if caret != selectionEnd || caret < 0 || caret > len(runes) {
		return input, caret
	}

	start := caret
	for start > 0 && runes[start-1] != ' ' {
		start--
	}
	if start == caret {
		return input, caret
	}

	symbol, ok := t.Lookup(string(runes[start:caret]))
	if !ok {
		return input, caret
	}

	out := make([]rune, 0, len(runes))
	out = append(out, runes[:start]...)
	out = append(out, []rune(symbol)...)
	out = append(out, runes[caret:]...)

	return string(out), start + len([]rune(symbol))
}

// InsertAtCaret replaces the selection [start, end) with value, as the emoji
// picker does, and returns the caret placed after the insertion.
func InsertAtCaret(input, value string, start, end int) (string, int) {
	runes := []rune(input)
	start = clamp(start, 0, len(runes))
	end = clamp(end, start, len(runes))

	out := make([]rune, 0, len(runes)+len(value))
	out = append(out, runes[:start]...)
	out = append(out, []rune(value)...)
	out = append(out, runes[end:]...)

	return string(out), start + len([]rune(value))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
