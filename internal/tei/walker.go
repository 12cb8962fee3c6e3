package tei

import (
	"fmt"
	"strings"

	"github.com/Tamarae/Arthron/core/edition"
	"github.com/Tamarae/Arthron/core/xml"
)

// elemKind classifies an element into exactly one walker handler. The
// enumeration is closed; anything outside the edition's vocabulary is
// kindGeneric and degrades to the text-preserving fallback.
type elemKind int

const (
	kindGeneric elemKind = iota
	kindApp
	kindTerm
	kindFolio
	kindGreek
	kindMentioned
	kindGloss
	kindInline
)

// classify maps an element to its handler. Two cases depend on an
// attribute: milestone counts as a layout marker only for unit="folio",
// and foreign is a Greek run only for xml:lang="grc".
func classify(el *xml.Node) elemKind {
	switch el.LocalName() {
	case "app":
		return kindApp
	case "term":
		return kindTerm
	case "pb", "cb":
		return kindFolio
	case "milestone":
		if el.Attr("unit") == "folio" {
			return kindFolio
		}
	case "foreign":
		if el.Attr("xml:lang") == "grc" {
			return kindGreek
		}
	case "mentioned":
		return kindMentioned
	case "gloss":
		return kindGloss
	case "persName", "q":
		return kindInline
	}
	return kindGeneric
}

// walker converts element subtrees into ordered content nodes plus
// apparatus entries. It owns the apparatus counter for the duration of a
// walk; the section assembler threads the counter value from one walker
// to the next so numbering is document-wide and never resets.
type walker struct {
	counter   int
	nodes     []edition.ContentNode
	apparatus []edition.AppEntry
}

func newWalker(counter int) *walker {
	return &walker{counter: counter}
}

// block walks one paragraph-level block: its leading text, every child in
// order, and the text runs between and after children.
func (w *walker) block(p *xml.Node) {
	w.children(p)
}

// children walks el's direct children in document order. Text runs are
// emitted as text nodes; elements are dispatched to their handler.
func (w *walker) children(el *xml.Node) {
	for _, child := range el.ChildNodes() {
		if child.IsText() {
			if t := child.Text(); t != "" {
				w.text(t)
			}
			continue
		}
		w.element(child)
	}
}

// element dispatches one element to its handler.
func (w *walker) element(el *xml.Node) {
	switch classify(el) {
	case kindApp:
		w.app(el)
	case kindTerm:
		w.term(el)
	case kindFolio:
		w.folio(el)
	case kindGreek:
		w.greek(el)
	case kindMentioned:
		w.mentioned(el)
	case kindGloss:
		// Glosses are only meaningful as the sibling of a mentioned term,
		// where the lookahead consumes them. Reached directly they emit
		// nothing.
	case kindInline:
		w.inline(el)
	default:
		// Unrecognized vocabulary: keep the text, discard the markup.
		w.children(el)
	}
}

func (w *walker) text(value string) {
	w.nodes = append(w.nodes, edition.ContentNode{
		Type:  edition.NodeText,
		Value: value,
	})
}

// app handles one apparatus-variant group: it advances the document-wide
// counter and emits the paired app node and AppEntry sharing the new
// index.
func (w *walker) app(el *xml.Node) {
	w.counter++

	id := el.Attr("xml:id")
	if id == "" {
		id = fmt.Sprintf("app.%d", w.counter)
	}

	var lem, lemWit string
	if lemEl := el.Element("lem"); lemEl != nil {
		lem = lemEl.InnerText()
		lemWit = stripHash(lemEl.Attr("wit"))
	}

	var readings []edition.Reading
	var rdgS string
	for _, rdg := range el.Elements("rdg") {
		wit := stripHash(rdg.Attr("wit"))
		text := strings.TrimSpace(rdg.InnerText())

		var note string
		if noteEl := rdg.Element("note"); noteEl != nil {
			note = noteEl.FirstText()
		}

		// The sigil-S reading is captured before note suppression so the
		// inline display always has the witness text.
		if wit == "S" && text != "" {
			rdgS = text
		}

		shown := text
		if note != "" {
			shown = ""
		}
		readings = append(readings, edition.Reading{
			Wit:  wit,
			Text: shown,
			Note: note,
		})
	}

	var firstNote string
	if len(readings) > 0 {
		firstNote = readings[0].Note
	}

	w.nodes = append(w.nodes, edition.ContentNode{
		Type:  edition.NodeApp,
		ID:    id,
		Index: w.counter,
		Lem:   lem,
		RdgS:  rdgS,
		Note:  firstNote,
	})
	w.apparatus = append(w.apparatus, edition.AppEntry{
		ID:       id,
		Index:    w.counter,
		Lem:      lem,
		LemWit:   lemWit,
		Readings: readings,
	})
}

func (w *walker) term(el *xml.Node) {
	w.nodes = append(w.nodes, edition.ContentNode{
		Type:   edition.NodeTerm,
		Target: stripHash(el.Attr("target")),
		Text:   el.InnerText(),
	})
}

func (w *walker) folio(el *xml.Node) {
	w.nodes = append(w.nodes, edition.ContentNode{
		Type: edition.NodeFolio,
		Ed:   stripHash(el.Attr("ed")),
		N:    el.Attr("n"),
	})
}

func (w *walker) greek(el *xml.Node) {
	w.nodes = append(w.nodes, edition.ContentNode{
		Type: edition.NodeGreek,
		Text: el.InnerText(),
	})
}

// mentioned handles a Georgian term with the one-level gloss lookahead:
// when the next *element* sibling is a gloss holding a foreign span, that
// span's text becomes the Greek pairing. The lookahead skips intervening
// text runs (they are still emitted in order) but never skips an element
// and never recurses further.
func (w *walker) mentioned(el *xml.Node) {
	var grc string
	if next := el.NextElement(); next != nil && next.LocalName() == "gloss" {
		if foreign := next.Element("foreign"); foreign != nil {
			grc = foreign.InnerText()
		}
	}
	w.nodes = append(w.nodes, edition.ContentNode{
		Type: edition.NodeMentioned,
		Ka:   el.InnerText(),
		Grc:  grc,
	})
}

// inline flattens a plain inline element (person name, quotation) to its
// text content.
func (w *walker) inline(el *xml.Node) {
	w.nodes = append(w.nodes, edition.ContentNode{
		Type:  edition.NodeText,
		Value: el.InnerText(),
	})
}
