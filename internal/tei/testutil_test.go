package tei

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Tamarae/Arthron/core/xml"
)

const teiOpen = `<?xml version="1.0" encoding="UTF-8"?><TEI xmlns="http://www.tei-c.org/ns/1.0">`

// minimalLexicon is a lexicon document with no entries, for tests that
// only exercise the treatise side.
const minimalLexicon = teiOpen + `<text><body><div type="glossary"></div></body></text></TEI>`

// minimalTreatise is a treatise document with no sections, for tests that
// only exercise the lexicon side.
const minimalTreatise = teiOpen + `<teiHeader><fileDesc/></teiHeader><text><body/></text></TEI>`

// newTestParser writes the given documents into a temp dir and returns a
// Parser over it.
func newTestParser(t *testing.T, treatise, lexicon string) *Parser {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "treatise.xml"), []byte(treatise), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "lexicon.xml"), []byte(lexicon), 0644); err != nil {
		t.Fatal(err)
	}
	return New(dir)
}

// treatiseWithBody wraps section markup in a treatise skeleton.
func treatiseWithBody(body string) string {
	return teiOpen + `<teiHeader><fileDesc><publicationStmt><idno type="cts-urn">urn:cts:georgian:test</idno></publicationStmt></fileDesc></teiHeader><text><body>` + body + `</body></text></TEI>`
}

// lexiconWithEntries wraps entry markup in a lexicon skeleton.
func lexiconWithEntries(entries string) string {
	return teiOpen + `<text><body><div type="glossary">` + entries + `</div></body></text></TEI>`
}

// walkBody parses a single-section treatise body and walks every p block
// with a fresh walker, the way the section assembler does.
func walkBody(t *testing.T, inner string) *walker {
	t.Helper()
	doc, err := xml.Parse([]byte(treatiseWithBody(`<div type="section" n="1">` + inner + `</div>`)))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	blocks, err := doc.Query("//body/div//p")
	if err != nil {
		t.Fatalf("query blocks: %v", err)
	}
	if len(blocks) == 0 {
		t.Fatal("fixture has no p blocks")
	}
	w := newWalker(0)
	for _, block := range blocks {
		w.block(block)
	}
	return w
}
