package tei

import (
	"strings"
	"testing"

	"github.com/Tamarae/Arthron/core/edition"
)

func TestSections_Basic(t *testing.T) {
	p := newTestParser(t, treatiseWithBody(
		`<div type="section" xml:id="sec.one" n="1"><p>პირველი</p></div>`+
			`<div type="section" n="2"><p>მეორე</p></div>`,
	), minimalLexicon)

	sections, err := p.Sections()
	if err != nil {
		t.Fatal(err)
	}
	if len(sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(sections))
	}

	if sections[0].N != "1" || sections[0].XMLID != "sec.one" {
		t.Errorf("unexpected first section identity: %+v", sections[0])
	}
	if sections[1].XMLID != "sec.2" {
		t.Errorf("expected synthesized xml id sec.2, got %q", sections[1].XMLID)
	}
	if sections[0].URN != "urn:cts:georgian:test:1" {
		t.Errorf("unexpected URN %q", sections[0].URN)
	}
	if sections[1].Incipit != "მეორე" {
		t.Errorf("unexpected incipit %q", sections[1].Incipit)
	}
}

func TestSections_CounterSpansSections(t *testing.T) {
	p := newTestParser(t, treatiseWithBody(
		`<div type="section" n="1"><p><app><lem>ა</lem></app><app><lem>ბ</lem></app></p></div>`+
			`<div type="section" n="2"><p><app><lem>გ</lem></app></p></div>`,
	), minimalLexicon)

	sections, err := p.Sections()
	if err != nil {
		t.Fatal(err)
	}

	first := sections[0].Apparatus
	second := sections[1].Apparatus
	if len(first) != 2 || len(second) != 1 {
		t.Fatalf("unexpected apparatus split: %d/%d", len(first), len(second))
	}
	if first[0].Index != 1 || first[1].Index != 2 {
		t.Errorf("section 1 indices: %d, %d", first[0].Index, first[1].Index)
	}
	if second[0].Index != 3 {
		t.Errorf("expected numbering to continue at 3, got %d", second[0].Index)
	}
	if second[0].ID != "app.3" {
		t.Errorf("expected fallback id app.3, got %q", second[0].ID)
	}
}

func TestSections_IncipitRuneCut(t *testing.T) {
	long := strings.Repeat("ა", 60)
	p := newTestParser(t, treatiseWithBody(
		`<div type="section" n="1"><p>`+long+`</p></div>`,
	), minimalLexicon)

	sections, err := p.Sections()
	if err != nil {
		t.Fatal(err)
	}
	incipit := sections[0].Incipit
	if got := len([]rune(incipit)); got != 50 {
		t.Errorf("expected 50-rune incipit, got %d runes", got)
	}
	if strings.Contains(incipit, "�") {
		t.Errorf("incipit cut broke a rune boundary: %q", incipit)
	}
}

func TestSections_IncipitTrimmed(t *testing.T) {
	p := newTestParser(t, treatiseWithBody(
		`<div type="section" n="1"><p>მოკლე </p></div>`,
	), minimalLexicon)

	sections, err := p.Sections()
	if err != nil {
		t.Fatal(err)
	}
	if sections[0].Incipit != "მოკლე" {
		t.Errorf("expected trimmed incipit, got %q", sections[0].Incipit)
	}
}

func TestSections_DirectFolios(t *testing.T) {
	p := newTestParser(t, treatiseWithBody(
		`<div type="section" n="1">`+
			`<milestone unit="folio" ed="#S" n="7v"/>`+
			`<milestone unit="chapter" n="x"/>`+
			`<pb ed="#A" n="14"/>`+
			`<p>ტექსტი</p>`+
			`</div>`,
	), minimalLexicon)

	sections, err := p.Sections()
	if err != nil {
		t.Fatal(err)
	}
	folios := sections[0].Folios
	if len(folios) != 2 {
		t.Fatalf("expected 2 folios, got %d: %+v", len(folios), folios)
	}
	// Page breaks collect ahead of folio milestones regardless of
	// document order.
	if folios[0].Ed != "A" || folios[0].N != "14" {
		t.Errorf("unexpected first folio: %+v", folios[0])
	}
	if folios[1].Ed != "S" || folios[1].N != "7v" {
		t.Errorf("unexpected second folio: %+v", folios[1])
	}
}

func TestSections_NonSectionDivIgnored(t *testing.T) {
	p := newTestParser(t, treatiseWithBody(
		`<div type="preface"><p>წინასიტყუაჲ</p></div>`+
			`<div type="section" n="1"><p>ტექსტი</p></div>`,
	), minimalLexicon)

	sections, err := p.Sections()
	if err != nil {
		t.Fatal(err)
	}
	if len(sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(sections))
	}
}

func TestSections_EmptyBody(t *testing.T) {
	p := newTestParser(t, minimalTreatise, minimalLexicon)

	sections, err := p.Sections()
	if err != nil {
		t.Fatal(err)
	}
	if len(sections) != 0 {
		t.Errorf("expected no sections, got %d", len(sections))
	}
}

func TestCTSURN_Fallback(t *testing.T) {
	p := newTestParser(t, minimalTreatise, minimalLexicon)

	urn, err := p.CTSURN()
	if err != nil {
		t.Fatal(err)
	}
	if urn != DefaultCTSURN {
		t.Errorf("expected default URN, got %q", urn)
	}
}

func TestSections_ContentCarriesApparatusPair(t *testing.T) {
	p := newTestParser(t, treatiseWithBody(
		`<div type="section" n="1"><p>და <app xml:id="app.k"><lem wit="#S">კ</lem><rdg wit="#A">ქ</rdg></app></p></div>`,
	), minimalLexicon)

	sections, err := p.Sections()
	if err != nil {
		t.Fatal(err)
	}
	sec := sections[0]
	var appNode *edition.ContentNode
	for i := range sec.Content {
		if sec.Content[i].Type == edition.NodeApp {
			appNode = &sec.Content[i]
		}
	}
	if appNode == nil {
		t.Fatal("no app node in section content")
	}
	if len(sec.Apparatus) != 1 {
		t.Fatalf("expected 1 apparatus entry, got %d", len(sec.Apparatus))
	}
	if appNode.ID != "app.k" || sec.Apparatus[0].ID != "app.k" {
		t.Errorf("id mismatch: node %q, entry %q", appNode.ID, sec.Apparatus[0].ID)
	}
	if appNode.Index != sec.Apparatus[0].Index {
		t.Errorf("index mismatch: node %d, entry %d", appNode.Index, sec.Apparatus[0].Index)
	}
}
