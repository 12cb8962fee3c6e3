package tei

import (
	"github.com/Tamarae/Arthron/core/edition"
)

// Witnesses extracts the manuscript witness declarations from the
// treatise header, in document order. Missing sub-fields degrade to empty
// strings; only a document load failure is an error.
func (p *Parser) Witnesses() ([]edition.Witness, error) {
	doc, err := p.loadTreatise()
	if err != nil {
		return nil, err
	}

	nodes, err := doc.Query("//witness")
	if err != nil {
		return nil, err
	}

	witnesses := make([]edition.Witness, 0, len(nodes))
	for _, wit := range nodes {
		witnesses = append(witnesses, edition.Witness{
			ID:         wit.Attr("xml:id"),
			Settlement: queryTextAt(wit, ".//settlement"),
			Repository: queryTextAt(wit, ".//repository"),
			Locus:      queryTextAt(wit, ".//locus"),
		})
	}
	return witnesses, nil
}
