package tei

import (
	"testing"
)

const sampleEntry = `<entry xml:id="lex.artroni">
<form type="lemma"><orth>ართრონი</orth></form>
<gramGrp><pos>არსებითი</pos></gramGrp>
<etym><mentioned xml:lang="grc">ἄρθρον</mentioned></etym>
<sense>
<def xml:lang="ka">წევრი, ნაწევარი</def>
<def xml:lang="en">article</def>
</sense>
<cit type="example"><quote>ართრონი არს</quote><bibl><ref target="#sec.3">3</ref></bibl></cit>
<cit type="example"><quote>კუალად ართრონი</quote><bibl><ref target="#sec.7">7</ref></bibl></cit>
<xr><ref target="#lex.nacevari">ნაწევარი</ref></xr>
<note>იშვიათი ფორმა</note>
</entry>`

func TestLexiconEntries_FullEntry(t *testing.T) {
	p := newTestParser(t, minimalTreatise, lexiconWithEntries(sampleEntry))

	entries, err := p.LexiconEntries()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	e := entries[0]

	if e.ID != "artroni" {
		t.Errorf("expected lex. prefix stripped, got %q", e.ID)
	}
	if e.Lemma != "ართრონი" {
		t.Errorf("unexpected lemma %q", e.Lemma)
	}
	if e.POS != "არსებითი" {
		t.Errorf("unexpected pos %q", e.POS)
	}
	if e.Greek != "ἄρθρον" {
		t.Errorf("unexpected greek %q", e.Greek)
	}
	if len(e.Senses) != 1 || e.Senses[0].DefKa != "წევრი, ნაწევარი" || e.Senses[0].DefEn != "article" {
		t.Errorf("unexpected senses: %+v", e.Senses)
	}
	if len(e.Examples) != 2 {
		t.Fatalf("expected 2 examples, got %d", len(e.Examples))
	}
	if e.Examples[0].Quote != "ართრონი არს" || e.Examples[0].Ref != "3" {
		t.Errorf("unexpected first example: %+v", e.Examples[0])
	}
	if len(e.Occurrences) != 2 || e.Occurrences[0] != "3" || e.Occurrences[1] != "7" {
		t.Errorf("unexpected occurrences: %v", e.Occurrences)
	}
	if e.OccurrenceCount != len(e.Occurrences) {
		t.Errorf("occurrence count %d != len(occurrences) %d", e.OccurrenceCount, len(e.Occurrences))
	}
	if len(e.SeeAlso) != 1 || e.SeeAlso[0] != "lex.nacevari" {
		t.Errorf("unexpected see-also: %v", e.SeeAlso)
	}
	if e.Note != "იშვიათი ფორმა" {
		t.Errorf("unexpected note %q", e.Note)
	}
}

func TestLexiconEntries_GreekFallbackToTranslation(t *testing.T) {
	p := newTestParser(t, minimalTreatise, lexiconWithEntries(
		`<entry xml:id="lex.a"><form type="lemma"><orth>ა</orth></form>`+
			`<cit type="translation"><quote>ἄλφα</quote></cit></entry>`,
	))

	entries, err := p.LexiconEntries()
	if err != nil {
		t.Fatal(err)
	}
	if entries[0].Greek != "ἄλφα" {
		t.Errorf("expected translation quote fallback, got %q", entries[0].Greek)
	}
}

func TestLexiconEntries_NoGreek(t *testing.T) {
	p := newTestParser(t, minimalTreatise, lexiconWithEntries(
		`<entry xml:id="lex.b"><form type="lemma"><orth>ბ</orth></form></entry>`,
	))

	entries, err := p.LexiconEntries()
	if err != nil {
		t.Fatal(err)
	}
	if entries[0].Greek != "" {
		t.Errorf("expected empty greek, got %q", entries[0].Greek)
	}
}

func TestLexiconEntries_QuotelessExampleSkipped(t *testing.T) {
	p := newTestParser(t, minimalTreatise, lexiconWithEntries(
		`<entry xml:id="lex.c"><form type="lemma"><orth>გ</orth></form>`+
			`<cit type="example"><bibl><ref target="#sec.9">9</ref></bibl></cit>`+
			`<cit type="example"><quote>გამოთქუმაჲ</quote></cit></entry>`,
	))

	entries, err := p.LexiconEntries()
	if err != nil {
		t.Fatal(err)
	}
	e := entries[0]
	if len(e.Examples) != 1 || e.Examples[0].Quote != "გამოთქუმაჲ" {
		t.Errorf("expected quoteless citation skipped, got %+v", e.Examples)
	}
	// The skipped example's reference still counts as an occurrence.
	if len(e.Occurrences) != 1 || e.Occurrences[0] != "9" {
		t.Errorf("unexpected occurrences: %v", e.Occurrences)
	}
}

func TestLexiconEntries_OccurrenceUsesLastMarker(t *testing.T) {
	p := newTestParser(t, minimalTreatise, lexiconWithEntries(
		`<entry xml:id="lex.d"><form type="lemma"><orth>დ</orth></form>`+
			`<cit type="example"><quote>დ</quote><bibl><ref target="urn:sec.x:sec.12">12</ref></bibl></cit>`+
			`<cit type="example"><quote>დდ</quote><bibl><ref target="no-marker-here">x</ref></bibl></cit></entry>`,
	))

	entries, err := p.LexiconEntries()
	if err != nil {
		t.Fatal(err)
	}
	occ := entries[0].Occurrences
	if len(occ) != 1 || occ[0] != "12" {
		t.Errorf("expected last-marker split yielding [12], got %v", occ)
	}
}

func TestLexiconEntries_SortedByHeadword(t *testing.T) {
	p := newTestParser(t, minimalTreatise, lexiconWithEntries(
		`<entry xml:id="lex.2"><form type="lemma"><orth>ბანი</orth></form></entry>`+
			`<entry xml:id="lex.1"><form type="lemma"><orth>ანი</orth></form></entry>`,
	))

	entries, err := p.LexiconEntries()
	if err != nil {
		t.Fatal(err)
	}
	if entries[0].Lemma != "ანი" || entries[1].Lemma != "ბანი" {
		t.Errorf("expected headword order, got %q then %q", entries[0].Lemma, entries[1].Lemma)
	}
}

func TestLexiconEntries_NoteTextAfterElementChild(t *testing.T) {
	p := newTestParser(t, minimalTreatise, lexiconWithEntries(
		`<entry xml:id="lex.f"><form type="lemma"><orth>ვ</orth></form>`+
			`<note><ref target="#lex.a">ა</ref>შდრ. წინა</note></entry>`,
	))

	entries, err := p.LexiconEntries()
	if err != nil {
		t.Fatal(err)
	}
	if entries[0].Note != "შდრ. წინა" {
		t.Errorf("expected note text after the element child, got %q", entries[0].Note)
	}
}

func TestLexiconEntries_MultipleSenses(t *testing.T) {
	p := newTestParser(t, minimalTreatise, lexiconWithEntries(
		`<entry xml:id="lex.e"><form type="lemma"><orth>ე</orth></form>`+
			`<sense><def xml:lang="ka">პირველი</def></sense>`+
			`<sense><def xml:lang="en">second</def></sense></entry>`,
	))

	entries, err := p.LexiconEntries()
	if err != nil {
		t.Fatal(err)
	}
	senses := entries[0].Senses
	if len(senses) != 2 {
		t.Fatalf("expected 2 senses, got %d", len(senses))
	}
	if senses[0].DefKa != "პირველი" || senses[0].DefEn != "" {
		t.Errorf("unexpected first sense: %+v", senses[0])
	}
	if senses[1].DefKa != "" || senses[1].DefEn != "second" {
		t.Errorf("unexpected second sense: %+v", senses[1])
	}
}

func TestLexiconEntries_Empty(t *testing.T) {
	p := newTestParser(t, minimalTreatise, minimalLexicon)

	entries, err := p.LexiconEntries()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no entries, got %d", len(entries))
	}
}
