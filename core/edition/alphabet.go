package edition

// alphabet is the old Georgian alphabet in conventional order, including
// the archaic letters (ჱ, ჲ, ჳ, ჴ, ჵ) that occur in the manuscript
// headwords.
var alphabet = []string{
	"ა", "ბ", "გ", "დ", "ე", "ვ", "ზ", "ჱ", "თ", "ი",
	"კ", "ლ", "მ", "ნ", "ჲ", "ო", "პ", "ჟ", "რ", "ს",
	"ტ", "ჳ", "უ", "ფ", "ქ", "ღ", "ყ", "შ", "ჩ", "ც",
	"ძ", "წ", "ჭ", "ხ", "ჴ", "ჯ", "ჰ", "ჵ",
}

// Alphabet returns the Georgian alphabet used for lexicon letter
// filtering, in conventional order. The returned slice is a copy.
func Alphabet() []string {
	out := make([]string, len(alphabet))
	copy(out, alphabet)
	return out
}

// LetterGroup is the set of lexicon entries whose headword starts with one
// alphabet letter.
type LetterGroup struct {
	// Letter is the alphabet letter.
	Letter string `json:"letter"`

	// Entries are the entries under this letter, in the order given.
	Entries []LexiconEntry `json:"entries"`
}

// GroupByLetter buckets entries by headword initial, one group per
// alphabet letter in alphabet order. Groups may be empty; entries whose
// headword does not start with an alphabet letter are left out.
func GroupByLetter(entries []LexiconEntry) []LetterGroup {
	index := make(map[string]int, len(alphabet))
	groups := make([]LetterGroup, len(alphabet))
	for i, letter := range alphabet {
		groups[i] = LetterGroup{Letter: letter}
		index[letter] = i
	}
	for _, e := range entries {
		if e.Lemma == "" {
			continue
		}
		initial := string([]rune(e.Lemma)[0])
		if i, ok := index[initial]; ok {
			groups[i].Entries = append(groups[i].Entries, e)
		}
	}
	return groups
}
