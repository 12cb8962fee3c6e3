package tei

import (
	"time"

	"github.com/Tamarae/Arthron/core/edition"
	"github.com/Tamarae/Arthron/internal/logging"
)

// Extract runs the full extraction once and returns the complete document
// model. The apparatus counter lives inside the Sections pass; the other
// extractors are independent of it and of each other.
func (p *Parser) Extract() (*edition.Edition, error) {
	start := time.Now()

	witnesses, err := p.Witnesses()
	if err != nil {
		return nil, err
	}
	sections, err := p.Sections()
	if err != nil {
		return nil, err
	}
	entries, err := p.LexiconEntries()
	if err != nil {
		return nil, err
	}
	meta, err := p.Metadata()
	if err != nil {
		return nil, err
	}

	logging.ExtractionComplete(len(sections), len(entries), len(witnesses), time.Since(start))

	return &edition.Edition{
		Witnesses:    witnesses,
		Sections:     sections,
		Entries:      entries,
		Metadata:     meta,
		TreatiseHash: p.treatiseHash,
		LexiconHash:  p.lexiconHash,
	}, nil
}
