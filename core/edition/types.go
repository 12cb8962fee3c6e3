package edition

// types.go - Consolidated document-model type definitions.
// This file contains all core model types produced by the TEI extraction.
// Extractors should import these types from core/edition rather than
// defining their own.

// NodeType identifies the kind of a ContentNode.
type NodeType string

// Content node kinds. The set is closed: the walker only ever emits these.
const (
	NodeText      NodeType = "text"
	NodeApp       NodeType = "app"
	NodeTerm      NodeType = "term"
	NodeFolio     NodeType = "folio"
	NodeGreek     NodeType = "greek"
	NodeMentioned NodeType = "mentioned"
)

// validNodeTypes is the set of valid content node kinds.
var validNodeTypes = map[NodeType]bool{
	NodeText:      true,
	NodeApp:       true,
	NodeTerm:      true,
	NodeFolio:     true,
	NodeGreek:     true,
	NodeMentioned: true,
}

// IsValid returns true if the node type is valid.
func (t NodeType) IsValid() bool {
	return validNodeTypes[t]
}

// Witness describes one manuscript witness declared in the header.
type Witness struct {
	// ID is the witness sigil (e.g., "A", "S").
	ID string `json:"id"`

	// Settlement is the holding city, empty when undeclared.
	Settlement string `json:"settlement"`

	// Repository is the holding institution, empty when undeclared.
	Repository string `json:"repository"`

	// Locus is the shelf locus within the manuscript, empty when undeclared.
	Locus string `json:"locus"`
}

// ContentNode is one document-order unit of a section's running text.
// Type selects which of the remaining fields are meaningful; the rest stay
// at their zero value.
type ContentNode struct {
	// Type is the node kind (text, app, term, folio, greek, mentioned).
	Type NodeType `json:"type"`

	// Value is the literal text run (text nodes).
	Value string `json:"value,omitempty"`

	// ID is the apparatus entry identifier (app nodes).
	ID string `json:"id,omitempty"`

	// Index is the document-wide apparatus number shared with the paired
	// AppEntry (app nodes).
	Index int `json:"index,omitempty"`

	// Lem is the lemma text (app nodes).
	Lem string `json:"lem,omitempty"`

	// RdgS is the sigil-S reading captured for quick inline display
	// (app nodes).
	RdgS string `json:"rdg_s,omitempty"`

	// Note is the first reading's note (app nodes).
	Note string `json:"note,omitempty"`

	// Target is the lexicon entry reference, fragment marker stripped
	// (term nodes).
	Target string `json:"target,omitempty"`

	// Text is the inline text content (term and greek nodes).
	Text string `json:"text,omitempty"`

	// Ed is the edition code of a physical-layout marker (folio nodes).
	Ed string `json:"ed,omitempty"`

	// N is the page/folio/column label (folio nodes).
	N string `json:"n,omitempty"`

	// Ka is the Georgian term (mentioned nodes).
	Ka string `json:"ka,omitempty"`

	// Grc is the Greek gloss paired by sibling lookahead, empty when the
	// term has no adjacent gloss (mentioned nodes).
	Grc string `json:"grc,omitempty"`
}

// Reading is one witness's attested text or note for an apparatus entry.
type Reading struct {
	// Wit is the witness sigil, fragment marker stripped.
	Wit string `json:"wit"`

	// Text is the displayed reading; suppressed (empty) when the reading
	// carries a note.
	Text string `json:"text"`

	// Note is the editorial note attached to the reading, if any.
	Note string `json:"note,omitempty"`
}

// AppEntry is one critical-apparatus entry. Every AppEntry is created
// together with an app ContentNode and shares its Index; Index values are
// strictly increasing across the whole document, never reset per section.
type AppEntry struct {
	// ID is the entry identifier (xml:id, or "app.<index>" when absent).
	ID string `json:"id"`

	// Index is the document-wide apparatus number.
	Index int `json:"index"`

	// Lem is the base-text lemma.
	Lem string `json:"lem"`

	// LemWit is the lemma's witness attribution, empty when unattributed.
	LemWit string `json:"lem_wit,omitempty"`

	// Readings are the variant readings in source order.
	Readings []Reading `json:"readings"`
}

// Folio is a physical-layout marker: page breaks, folio milestones and
// column breaks all normalize to this shape.
type Folio struct {
	// Ed is the edition code, fragment marker stripped.
	Ed string `json:"ed"`

	// N is the page/folio/column label.
	N string `json:"n"`
}

// Section is one top-level section of the treatise, immutable once built.
type Section struct {
	// N is the section number/label.
	N string `json:"n"`

	// XMLID is the section's identifier ("sec.<n>" when undeclared).
	XMLID string `json:"xml_id"`

	// URN is the canonical reference: base CTS URN plus the section number.
	URN string `json:"urn"`

	// Incipit is the first ~50 characters of the section's text, trimmed.
	Incipit string `json:"incipit"`

	// Content is the ordered mixed-content node sequence. Read in order it
	// reconstructs the section text exactly as in the source.
	Content []ContentNode `json:"content"`

	// Folios are the leading layout markers declared directly on the
	// section, before the running text.
	Folios []Folio `json:"folios"`

	// Apparatus are the critical-apparatus entries produced while walking
	// this section.
	Apparatus []AppEntry `json:"apparatus"`
}

// Sense is one bilingual definition pair of a lexicon entry.
type Sense struct {
	// DefKa is the Georgian definition, empty when missing.
	DefKa string `json:"def_ka"`

	// DefEn is the English definition, empty when missing.
	DefEn string `json:"def_en"`
}

// Example is one usage citation of a lexicon entry.
type Example struct {
	// Quote is the cited text. Examples without a quote are never emitted.
	Quote string `json:"quote"`

	// Ref is the bibliographic reference, empty when absent.
	Ref string `json:"ref"`
}

// LexiconEntry is one dictionary entry.
type LexiconEntry struct {
	// ID is the entry identifier with the "lex." prefix stripped.
	ID string `json:"id"`

	// Lemma is the headword.
	Lemma string `json:"lemma"`

	// POS is the part of speech, empty when undeclared.
	POS string `json:"pos,omitempty"`

	// Greek is the Greek equivalent: the etymology's mentioned term, else
	// the first translation quote, else empty.
	Greek string `json:"greek,omitempty"`

	// Senses are the bilingual definitions in document order.
	Senses []Sense `json:"senses"`

	// Examples are the usage citations in document order.
	Examples []Example `json:"examples"`

	// Occurrences are the section numbers referenced by the entry's
	// citations, in order, duplicates included.
	Occurrences []string `json:"occurrences"`

	// SeeAlso are cross-referenced entry identifiers, fragment markers
	// stripped.
	SeeAlso []string `json:"see_also"`

	// Note is the entry's editorial note, empty when absent.
	Note string `json:"note,omitempty"`

	// OccurrenceCount always equals len(Occurrences).
	OccurrenceCount int `json:"occurrence_count"`
}

// Metadata holds header-derived display fields with static fallbacks.
type Metadata struct {
	// Editor is the scholarly editor's name.
	Editor string `json:"editor"`

	// PublicationPlace is the publication place of the source edition.
	PublicationPlace string `json:"publication_place"`

	// PublicationYear is the publication year of the source edition.
	PublicationYear string `json:"publication_year"`

	// SourceTitle is the title of the source publication.
	SourceTitle string `json:"source_title"`

	// CTSURN is the canonical identifier prefix for section references.
	CTSURN string `json:"cts_urn"`

	// GitHubURL points at the edition's source repository.
	GitHubURL string `json:"github_url"`
}

// Edition is the complete extracted model of one build: everything a
// downstream renderer needs, produced in a single synchronous pass.
type Edition struct {
	// Witnesses are the manuscript witnesses in declaration order.
	Witnesses []Witness `json:"witnesses"`

	// Sections are the treatise sections in document order.
	Sections []Section `json:"sections"`

	// Entries are the lexicon entries, sorted by headword.
	Entries []LexiconEntry `json:"entries"`

	// Metadata are the header-derived display fields.
	Metadata Metadata `json:"metadata"`

	// TreatiseHash is the BLAKE3 hash of the treatise source artifact.
	TreatiseHash string `json:"treatise_hash,omitempty"`

	// LexiconHash is the BLAKE3 hash of the lexicon source artifact.
	LexiconHash string `json:"lexicon_hash,omitempty"`
}
