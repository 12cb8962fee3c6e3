// Package xml provides a pure Go element-tree view over the edition's TEI
// source documents, backed by xmlquery/xpath.
//
// The TEI sources bind the TEI namespace as the default namespace, so nodes
// carry no prefix and XPath expressions here use plain local names
// ("//witness", "//body/div[@type='section']"). Attribute access is
// prefix-aware so that "xml:id" and "xml:lang" resolve regardless of whether
// the decoder stored the reserved prefix or the full XML namespace URL.
//
// Security note: parsing goes through Go's xml.Decoder (via xmlquery), which
// does not fetch external entities, so XXE is not a concern for local
// edition builds.
package xml

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
)

// xmlNamespace is the URL Go's decoder may substitute for the reserved
// "xml" attribute prefix.
const xmlNamespace = "http://www.w3.org/XML/1998/namespace"

// Document represents a parsed XML document.
type Document struct {
	root *xmlquery.Node
}

// Node represents a single node of the parsed tree: an element, or a text
// run between elements. Text runs are first-class nodes here because the
// mixed-content walk must see them in document order, interleaved with
// their sibling elements.
type Node struct {
	node *xmlquery.Node
}

// Parse parses XML data and returns a Document.
func Parse(data []byte) (*Document, error) {
	reader := bytes.NewReader(data)
	root, err := xmlquery.Parse(reader)
	if err != nil {
		return nil, fmt.Errorf("parsing XML: %w", err)
	}
	return &Document{root: root}, nil
}

// Root returns the root element of the document.
func (d *Document) Root() *Node {
	if d.root == nil {
		return nil
	}
	for child := d.root.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == xmlquery.ElementNode {
			return &Node{node: child}
		}
	}
	return nil
}

// Query executes an XPath expression against the whole document and returns
// the matching nodes in document order.
func (d *Document) Query(expr string) ([]*Node, error) {
	return query(d.root, expr)
}

// QueryFirst executes an XPath expression and returns the first matching
// node, or nil when nothing matches.
func (d *Document) QueryFirst(expr string) (*Node, error) {
	return queryFirst(d.root, expr)
}

// Query executes an XPath expression relative to this node. Expressions
// should be context-relative (".//sense", "bibl/ref").
func (n *Node) Query(expr string) ([]*Node, error) {
	if n == nil || n.node == nil {
		return nil, nil
	}
	return query(n.node, expr)
}

// QueryFirst executes a context-relative XPath expression and returns the
// first match, or nil.
func (n *Node) QueryFirst(expr string) (*Node, error) {
	if n == nil || n.node == nil {
		return nil, nil
	}
	return queryFirst(n.node, expr)
}

func query(root *xmlquery.Node, expr string) ([]*Node, error) {
	if _, err := xpath.Compile(expr); err != nil {
		return nil, fmt.Errorf("invalid xpath %q: %w", expr, err)
	}
	nodes, err := xmlquery.QueryAll(root, expr)
	if err != nil {
		return nil, fmt.Errorf("xpath query failed: %w", err)
	}
	result := make([]*Node, len(nodes))
	for i, n := range nodes {
		result[i] = &Node{node: n}
	}
	return result, nil
}

func queryFirst(root *xmlquery.Node, expr string) (*Node, error) {
	if _, err := xpath.Compile(expr); err != nil {
		return nil, fmt.Errorf("invalid xpath %q: %w", expr, err)
	}
	node, err := xmlquery.Query(root, expr)
	if err != nil {
		return nil, fmt.Errorf("xpath query failed: %w", err)
	}
	if node == nil {
		return nil, nil
	}
	return &Node{node: node}, nil
}

// IsElement reports whether the node is an element.
func (n *Node) IsElement() bool {
	return n != nil && n.node != nil && n.node.Type == xmlquery.ElementNode
}

// IsText reports whether the node is a text or CDATA run.
func (n *Node) IsText() bool {
	if n == nil || n.node == nil {
		return false
	}
	return n.node.Type == xmlquery.TextNode || n.node.Type == xmlquery.CharDataNode
}

// LocalName returns the element's local name, without namespace prefix.
func (n *Node) LocalName() string {
	if n == nil || n.node == nil {
		return ""
	}
	return n.node.Data
}

// Text returns the raw character data of a text node, empty otherwise.
func (n *Node) Text() string {
	if !n.IsText() {
		return ""
	}
	return n.node.Data
}

// InnerText returns the concatenated text content of the node and all of
// its descendants, in document order.
func (n *Node) InnerText() string {
	if n == nil || n.node == nil {
		return ""
	}
	return n.node.InnerText()
}

// FirstText returns the node's first direct text child in document order,
// skipping over element children ("<note><hi>x</hi>tail</note>" yields
// "tail"), or empty when the node holds no direct text at all.
func (n *Node) FirstText() string {
	if n == nil || n.node == nil {
		return ""
	}
	for child := n.node.FirstChild; child != nil; child = child.NextSibling {
		switch child.Type {
		case xmlquery.TextNode, xmlquery.CharDataNode:
			if child.Data != "" {
				return child.Data
			}
		}
	}
	return ""
}

// ChildNodes returns the node's direct children in document order,
// elements and text runs interleaved. Comments and processing
// instructions are skipped.
func (n *Node) ChildNodes() []*Node {
	if n == nil || n.node == nil {
		return nil
	}
	var children []*Node
	for child := n.node.FirstChild; child != nil; child = child.NextSibling {
		switch child.Type {
		case xmlquery.ElementNode, xmlquery.TextNode, xmlquery.CharDataNode:
			children = append(children, &Node{node: child})
		}
	}
	return children
}

// Elements returns the direct child elements with the given local name,
// in document order.
func (n *Node) Elements(name string) []*Node {
	if n == nil || n.node == nil {
		return nil
	}
	var elems []*Node
	for child := n.node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == xmlquery.ElementNode && child.Data == name {
			elems = append(elems, &Node{node: child})
		}
	}
	return elems
}

// Element returns the first direct child element with the given local
// name, or nil.
func (n *Node) Element(name string) *Node {
	if n == nil || n.node == nil {
		return nil
	}
	for child := n.node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == xmlquery.ElementNode && child.Data == name {
			return &Node{node: child}
		}
	}
	return nil
}

// NextElement returns the next sibling that is an element, skipping any
// intervening text runs, or nil when the node is the last element among
// its siblings.
func (n *Node) NextElement() *Node {
	if n == nil || n.node == nil {
		return nil
	}
	for sib := n.node.NextSibling; sib != nil; sib = sib.NextSibling {
		if sib.Type == xmlquery.ElementNode {
			return &Node{node: sib}
		}
	}
	return nil
}

// Attr returns the value of the named attribute, or empty when absent.
// The name may carry the reserved "xml" prefix ("xml:id", "xml:lang").
func (n *Node) Attr(name string) string {
	value, _ := n.lookupAttr(name)
	return value
}

// HasAttr reports whether the named attribute is present, regardless of
// its value.
func (n *Node) HasAttr(name string) bool {
	_, ok := n.lookupAttr(name)
	return ok
}

func (n *Node) lookupAttr(name string) (string, bool) {
	if n == nil || n.node == nil {
		return "", false
	}
	space, local := "", name
	if i := strings.Index(name, ":"); i > 0 {
		space, local = name[:i], name[i+1:]
	}
	for _, attr := range n.node.Attr {
		if attr.Name.Local != local {
			continue
		}
		switch space {
		case "":
			if attr.Name.Space == "" {
				return attr.Value, true
			}
		case "xml":
			if attr.Name.Space == "xml" || attr.Name.Space == xmlNamespace {
				return attr.Value, true
			}
		default:
			if attr.Name.Space == space {
				return attr.Value, true
			}
		}
	}
	return "", false
}
