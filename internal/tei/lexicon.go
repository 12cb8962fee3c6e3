package tei

import (
	"strings"

	"github.com/Tamarae/Arthron/core/edition"
	"github.com/Tamarae/Arthron/core/xml"
)

// sectionRefMarker is the fixed substring convention by which citation
// references encode a section number ("#sec.5" -> "5"). Preserved as a
// string split for compatibility with the existing markup; a structured
// reference scheme would be a breaking change for the sources.
const sectionRefMarker = "sec."

// LexiconEntries extracts the dictionary entries from the lexicon
// document, in document order, then returns them sorted by headword.
func (p *Parser) LexiconEntries() ([]edition.LexiconEntry, error) {
	doc, err := p.loadLexicon()
	if err != nil {
		return nil, err
	}

	nodes, err := doc.Query("//entry")
	if err != nil {
		return nil, err
	}

	entries := make([]edition.LexiconEntry, 0, len(nodes))
	for _, entry := range nodes {
		e := edition.LexiconEntry{
			ID:    strings.ReplaceAll(entry.Attr("xml:id"), "lex.", ""),
			Lemma: queryTextAt(entry, ".//form[@type='lemma']/orth"),
			POS:   queryTextAt(entry, ".//pos"),
			Greek: greekEquivalent(entry),
		}

		// Senses: bilingual definition pairs, each side defaulting to
		// empty when its language is missing.
		senses, _ := entry.Query(".//sense")
		for _, sense := range senses {
			var s edition.Sense
			for _, def := range sense.Elements("def") {
				switch def.Attr("xml:lang") {
				case "ka":
					if s.DefKa == "" {
						s.DefKa = def.InnerText()
					}
				case "en":
					if s.DefEn == "" {
						s.DefEn = def.InnerText()
					}
				}
			}
			e.Senses = append(e.Senses, s)
		}

		// Examples: cited usages. A citation without a quote is skipped
		// entirely, never emitted as a blank record.
		cits, _ := entry.Query(".//cit[@type='example']")
		for _, cit := range cits {
			quote := ""
			if q := cit.Element("quote"); q != nil {
				quote = q.InnerText()
			}
			if quote == "" {
				continue
			}
			e.Examples = append(e.Examples, edition.Example{
				Quote: quote,
				Ref:   queryTextAt(cit, "bibl/ref"),
			})
		}

		// Occurrences: section numbers encoded in citation reference
		// targets, in order, duplicates included.
		refs, _ := entry.Query(".//cit/bibl/ref")
		for _, ref := range refs {
			target := ref.Attr("target")
			if i := strings.LastIndex(target, sectionRefMarker); i >= 0 {
				e.Occurrences = append(e.Occurrences, target[i+len(sectionRefMarker):])
			}
		}

		// Cross-references: first linked target per xr element; elements
		// without a target are skipped.
		xrs, _ := entry.Query(".//xr")
		for _, xr := range xrs {
			for _, ref := range xr.Elements("ref") {
				if !ref.HasAttr("target") {
					continue
				}
				e.SeeAlso = append(e.SeeAlso, stripHash(ref.Attr("target")))
				break
			}
		}

		for _, note := range entry.Elements("note") {
			if t := note.FirstText(); t != "" {
				e.Note = t
				break
			}
		}

		e.OccurrenceCount = len(e.Occurrences)
		entries = append(entries, e)
	}

	edition.SortEntries(entries)
	return entries, nil
}

// greekEquivalent resolves an entry's Greek equivalent through the
// fallback chain: the etymology's mentioned term, else the first
// translation quote, else empty.
func greekEquivalent(entry *xml.Node) string {
	if g := queryTextAt(entry, ".//etym/mentioned"); g != "" {
		return g
	}
	return queryTextAt(entry, ".//cit[@type='translation']/quote")
}
