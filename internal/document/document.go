package document

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/beevik/etree"
	"github.com/ms-henglu/xmlmap/internal/tree"
	"golang.org/x/net/html"
)

// ErrNoRoot is returned for documents without a root element. It wraps tree.ErrNoRoot.
var ErrNoRoot = fmt.Errorf("document has no root element: %w", tree.ErrNoRoot)

// Document is a parsed XML or HTML document together with its tree form.
type Document struct {
	xml  *etree.Document
	html *goquery.Document
	root *tree.Node
}

// Match is an element returned by Find.
type Match struct {
	Tag  string
	Text string
}

// Parse reads an XML document from r.
func Parse(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrNoRoot
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("failed to parse XML: %w", err)
	}
	if doc.Root() == nil {
		return nil, ErrNoRoot
	}

	return &Document{
		xml:  doc,
		root: fromElement(doc.Root()),
	}, nil
}

func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

func ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open document: %w", err)
	}
	defer func() { _ = f.Close() }()
	return Parse(f)
}

// ParseHTML reads an HTML document from r. The root is the html element.
func ParseHTML(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	root := doc.Find("html").First()
	if root.Length() == 0 {
		return nil, ErrNoRoot
	}

	return &Document{
		html: doc,
		root: fromSelection(root),
	}, nil
}

// Root returns the document as a tree.
func (d *Document) Root() *tree.Node {
	return d.root
}

// String serializes the document. For XML a positive indent pretty prints
// with that many spaces per level; zero or less keeps it compact.
func (d *Document) String(indent int) (string, error) {
	if d.html != nil {
		return goquery.OuterHtml(d.html.Find("html").First())
	}

	doc := d.xml.Copy()
	if indent > 0 {
		doc.Indent(indent)
	} else {
		doc.Indent(etree.NoIndent)
	}
	return doc.WriteToString()
}

// Find returns every element with the given tag in document order. When
// contains is not empty only elements whose text contains it are returned.
// For HTML documents tag may be any CSS selector.
func (d *Document) Find(tag, contains string) ([]Match, error) {
	var matches []Match
	add := func(m Match) {
		if contains == "" || strings.Contains(m.Text, contains) {
			matches = append(matches, m)
		}
	}

	if d.html != nil {
		d.html.Find(tag).Each(func(_ int, s *goquery.Selection) {
			add(Match{Tag: goquery.NodeName(s), Text: strings.TrimSpace(s.Text())})
		})
		return matches, nil
	}

	path, err := etree.CompilePath("//" + tag)
	if err != nil {
		return nil, fmt.Errorf("invalid tag %q: %w", tag, err)
	}
	root := d.xml.Root()
	found := d.xml.FindElementsPath(path)
	if root.Tag == tag && (len(found) == 0 || found[0] != root) {
		found = append([]*etree.Element{root}, found...)
	}
	for _, e := range found {
		add(Match{Tag: e.Tag, Text: strings.TrimSpace(e.Text())})
	}
	return matches, nil
}

// Children returns the tags one level below the root.
func (d *Document) Children() []string {
	var tags []string
	for _, c := range d.root.Children {
		tags = append(tags, c.Tag)
	}
	return tags
}

// Iter returns every tag in document order, root first.
func (d *Document) Iter() []string {
	var tags []string
	var visit func(n *tree.Node)
	visit = func(n *tree.Node) {
		tags = append(tags, n.Tag)
		for _, c := range n.Children {
			visit(c)
		}
	}
	visit(d.root)
	return tags
}

func fromElement(e *etree.Element) *tree.Node {
	n := &tree.Node{
		Tag:  e.Tag,
		Text: strings.TrimSpace(e.Text()),
	}
	for _, c := range e.ChildElements() {
		n.Children = append(n.Children, fromElement(c))
	}
	return n
}

func fromSelection(s *goquery.Selection) *tree.Node {
	n := &tree.Node{
		Tag:  goquery.NodeName(s),
		Text: directText(s),
	}
	s.Children().Each(func(_ int, c *goquery.Selection) {
		n.Children = append(n.Children, fromSelection(c))
	})
	return n
}

// directText returns the text nodes directly under s, ignoring descendants.
func directText(s *goquery.Selection) string {
	if len(s.Nodes) == 0 {
		return ""
	}
	var sb strings.Builder
	for c := s.Nodes[0].FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
	}
	return strings.TrimSpace(sb.String())
}
