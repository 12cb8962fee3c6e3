package tei

import (
	"fmt"
	"strings"

	"github.com/Tamarae/Arthron/core/edition"
)

// DefaultCTSURN is the canonical identifier prefix used when the header
// declares none.
const DefaultCTSURN = "urn:cts:georgian:shanidze.arthron.ed2025"

// incipitLen is the display length of a section incipit, in runes.
const incipitLen = 50

// CTSURN extracts the canonical CTS URN from the publication statement,
// falling back to DefaultCTSURN.
func (p *Parser) CTSURN() (string, error) {
	doc, err := p.loadTreatise()
	if err != nil {
		return "", err
	}
	if urn := queryText(doc, "//idno[@type='cts-urn']"); urn != "" {
		return urn, nil
	}
	return DefaultCTSURN, nil
}

// Sections extracts the treatise sections in document order. The
// apparatus counter is threaded through every section's walk, so apparatus
// indices are strictly increasing across the whole document.
func (p *Parser) Sections() ([]edition.Section, error) {
	doc, err := p.loadTreatise()
	if err != nil {
		return nil, err
	}
	baseURN, err := p.CTSURN()
	if err != nil {
		return nil, err
	}

	divs, err := doc.Query("//body/div[@type='section']")
	if err != nil {
		return nil, err
	}

	sections := make([]edition.Section, 0, len(divs))
	counter := 0
	for _, div := range divs {
		n := div.Attr("n")
		xmlID := div.Attr("xml:id")
		if xmlID == "" {
			xmlID = fmt.Sprintf("sec.%s", n)
		}

		// Layout markers declared directly on the section, ahead of the
		// running text: page breaks first, then folio milestones.
		var folios []edition.Folio
		for _, pb := range div.Elements("pb") {
			folios = append(folios, edition.Folio{
				Ed: stripHash(pb.Attr("ed")),
				N:  pb.Attr("n"),
			})
		}
		for _, ms := range div.Elements("milestone") {
			if ms.Attr("unit") != "folio" {
				continue
			}
			folios = append(folios, edition.Folio{
				Ed: stripHash(ms.Attr("ed")),
				N:  ms.Attr("n"),
			})
		}

		w := newWalker(counter)
		blocks, err := div.Query(".//p")
		if err != nil {
			return nil, err
		}
		for _, block := range blocks {
			w.block(block)
		}
		counter = w.counter

		sections = append(sections, edition.Section{
			N:         n,
			XMLID:     xmlID,
			URN:       fmt.Sprintf("%s:%s", baseURN, n),
			Incipit:   incipit(w.nodes),
			Content:   w.nodes,
			Folios:    folios,
			Apparatus: w.apparatus,
		})
	}
	return sections, nil
}

// incipit derives the section's display excerpt: the first incipitLen
// runes of the concatenated text runs, trimmed. The cut ignores source
// markup boundaries.
func incipit(nodes []edition.ContentNode) string {
	text := edition.PlainText(nodes)
	runes := []rune(text)
	if len(runes) > incipitLen {
		runes = runes[:incipitLen]
	}
	return strings.TrimSpace(string(runes))
}
