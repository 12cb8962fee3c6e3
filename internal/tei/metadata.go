package tei

import (
	"github.com/Tamarae/Arthron/core/edition"
)

// Static fallbacks for header fields the sources frequently omit. These
// mirror the printed edition the digital text was transcribed from.
const (
	DefaultEditor           = "აკაკი შანიძე"
	DefaultPublicationPlace = "თბილისი"
	DefaultPublicationYear  = "1990"
	DefaultSourceTitle      = "ძველი ქართული ენის კათედრის შრომები, 32"
	DefaultGitHubURL        = "https://github.com"
)

// Metadata extracts the header display fields. Every field degrades to
// its fixed fallback; the only failure path is a document load failure.
func (p *Parser) Metadata() (edition.Metadata, error) {
	doc, err := p.loadTreatise()
	if err != nil {
		return edition.Metadata{}, err
	}
	urn, err := p.CTSURN()
	if err != nil {
		return edition.Metadata{}, err
	}

	meta := edition.Metadata{
		Editor:           queryText(doc, "//editor[@role='scholarly']/persName"),
		PublicationPlace: queryText(doc, "//pubPlace"),
		PublicationYear:  queryText(doc, "//publicationStmt/date"),
		SourceTitle:      queryText(doc, "//sourceDesc//title"),
		CTSURN:           urn,
		GitHubURL:        DefaultGitHubURL,
	}

	if meta.Editor == "" {
		meta.Editor = DefaultEditor
	}
	if meta.PublicationPlace == "" {
		meta.PublicationPlace = DefaultPublicationPlace
	}
	if meta.PublicationYear == "" {
		meta.PublicationYear = DefaultPublicationYear
	}
	if meta.SourceTitle == "" {
		meta.SourceTitle = DefaultSourceTitle
	}
	return meta, nil
}
