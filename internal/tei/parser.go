// Package tei extracts the Arthron document model from the edition's TEI
// source pair: the treatise with its critical apparatus, and the companion
// lexicon.
//
// Extraction is a single synchronous pass. A Parser loads each document
// lazily on first use and caches it for its own lifetime; repeated
// extraction over the same sources is idempotent and order-stable. Parsers
// share no state, so independent documents can be processed by independent
// Parser instances.
//
// Error policy: a source that cannot be read or is not well-formed fails
// the whole extraction with a typed error. Everything below that —
// missing sub-elements, absent attributes, unrecognized tags — degrades to
// empty fields or the generic text handler and never fails a build.
package tei

import (
	"bytes"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"
	"github.com/zeebo/blake3"

	arerrors "github.com/Tamarae/Arthron/core/errors"
	"github.com/Tamarae/Arthron/core/xml"
	"github.com/Tamarae/Arthron/internal/logging"
)

// Parser extracts the document model from one treatise/lexicon source pair.
// Zero-value Parser is not usable; construct with New or NewWithPaths.
type Parser struct {
	treatisePath string
	lexiconPath  string

	treatise     *xml.Document
	lexicon      *xml.Document
	treatiseHash string
	lexiconHash  string
}

// New creates a Parser over a directory holding the conventional source
// names treatise.xml and lexicon.xml (optionally xz-compressed).
func New(teiDir string) *Parser {
	return NewWithPaths(
		filepath.Join(teiDir, "treatise.xml"),
		filepath.Join(teiDir, "lexicon.xml"),
	)
}

// NewWithPaths creates a Parser over explicit source paths.
func NewWithPaths(treatisePath, lexiconPath string) *Parser {
	return &Parser{
		treatisePath: treatisePath,
		lexiconPath:  lexiconPath,
	}
}

// TreatiseHash returns the BLAKE3 hash of the treatise source artifact,
// empty before the treatise has been loaded.
func (p *Parser) TreatiseHash() string {
	return p.treatiseHash
}

// LexiconHash returns the BLAKE3 hash of the lexicon source artifact,
// empty before the lexicon has been loaded.
func (p *Parser) LexiconHash() string {
	return p.lexiconHash
}

func (p *Parser) loadTreatise() (*xml.Document, error) {
	if p.treatise != nil {
		return p.treatise, nil
	}
	doc, hash, err := loadDocument(p.treatisePath)
	if err != nil {
		return nil, err
	}
	p.treatise = doc
	p.treatiseHash = hash
	return doc, nil
}

func (p *Parser) loadLexicon() (*xml.Document, error) {
	if p.lexicon != nil {
		return p.lexicon, nil
	}
	doc, hash, err := loadDocument(p.lexiconPath)
	if err != nil {
		return nil, err
	}
	p.lexicon = doc
	p.lexiconHash = hash
	return doc, nil
}

// loadDocument reads, optionally decompresses, hashes and parses one
// source document. The hash covers the on-disk artifact bytes.
func loadDocument(path string) (*xml.Document, string, error) {
	resolved := path
	if _, err := os.Stat(resolved); err != nil {
		if alt := path + ".xz"; fileExists(alt) {
			resolved = alt
		}
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		return nil, "", arerrors.NewIO("read", path, err)
	}

	sum := blake3.Sum256(data)
	hash := hex.EncodeToString(sum[:])

	if strings.HasSuffix(resolved, ".xz") {
		r, err := xz.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, "", arerrors.NewIO("decompress", resolved, err)
		}
		data, err = io.ReadAll(r)
		if err != nil {
			return nil, "", arerrors.NewIO("decompress", resolved, err)
		}
	}

	doc, err := xml.Parse(data)
	if err != nil {
		return nil, "", &arerrors.ParseError{
			Format:  "TEI XML",
			Path:    resolved,
			Message: err.Error(),
			Err:     err,
		}
	}

	logging.DocumentLoaded(resolved, int64(len(data)), hash)
	return doc, hash, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// stripHash removes every fragment marker from a reference value
// ("#A" -> "A").
func stripHash(s string) string {
	return strings.ReplaceAll(s, "#", "")
}

// queryText returns the first non-empty text content among the nodes
// matched by expr, mirroring the lxml ".../text()[0]" extraction idiom.
func queryText(doc *xml.Document, expr string) string {
	nodes, err := doc.Query(expr)
	if err != nil {
		return ""
	}
	for _, n := range nodes {
		if t := n.InnerText(); t != "" {
			return t
		}
	}
	return ""
}

// queryTextAt is queryText relative to a node.
func queryTextAt(n *xml.Node, expr string) string {
	nodes, err := n.Query(expr)
	if err != nil {
		return ""
	}
	for _, m := range nodes {
		if t := m.InnerText(); t != "" {
			return t
		}
	}
	return ""
}
