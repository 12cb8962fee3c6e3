package edition

import (
	"sort"
	"strings"
)

// PlainText returns the concatenation of the literal text runs in nodes,
// in order. Markup-derived nodes (app, term, folio, greek, mentioned)
// contribute nothing.
func PlainText(nodes []ContentNode) string {
	var b strings.Builder
	for _, n := range nodes {
		if n.Type == NodeText {
			b.WriteString(n.Value)
		}
	}
	return b.String()
}

// SortEntries sorts lexicon entries by headword, ascending by codepoint.
// The archaic letters (ჱ ჲ ჳ ჴ ჵ) sit above ჰ in the Mkhedruli block, so
// they sort after the core alphabet, not at their conventional positions.
func SortEntries(entries []LexiconEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Lemma < entries[j].Lemma
	})
}

// WitnessMap projects a witness list into an id-keyed map for renderers
// that resolve sigla while formatting apparatus readings.
func WitnessMap(witnesses []Witness) map[string]Witness {
	m := make(map[string]Witness, len(witnesses))
	for _, w := range witnesses {
		m[w.ID] = w
	}
	return m
}

// Summary is a compact per-entry projection of a lexicon entry, suitable
// for embedding next to the text (inline term popovers).
type Summary struct {
	Lemma string `json:"lemma"`
	Greek string `json:"greek,omitempty"`
	POS   string `json:"pos,omitempty"`
	DefKa string `json:"def"`
	DefEn string `json:"def_en"`
}

// Summaries projects lexicon entries into an id-keyed map of summaries.
// The definition fields come from the entry's first sense, empty when the
// entry has none.
func Summaries(entries []LexiconEntry) map[string]Summary {
	m := make(map[string]Summary, len(entries))
	for _, e := range entries {
		s := Summary{
			Lemma: e.Lemma,
			Greek: e.Greek,
			POS:   e.POS,
		}
		if len(e.Senses) > 0 {
			s.DefKa = e.Senses[0].DefKa
			s.DefEn = e.Senses[0].DefEn
		}
		m[e.ID] = s
	}
	return m
}
