package tree

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	ErrNoRoot           = errors.New("no root node")
	ErrUnsupportedDepth = errors.New("depth out of range")
	ErrCycle            = errors.New("cycle detected")
)

// Node is one element of a parsed document.
type Node struct {
	Tag      string
	Text     string
	Children []*Node
}

// Style controls the prefix printed in front of every non-root line.
type Style struct {
	Base   int
	Step   int
	Marker string
}

// DefaultStyle yields "   |__" at depth 0, "       |__" at depth 1 and so on.
var DefaultStyle = Style{Base: 3, Step: 4, Marker: "|__"}

// Prefix returns Base + Step*depth spaces followed by the marker.
func (s Style) Prefix(depth int) (string, error) {
	n := s.Base + s.Step*depth
	if depth < 0 || n < 0 {
		return "", fmt.Errorf("%w: %d", ErrUnsupportedDepth, depth)
	}
	return strings.Repeat(" ", n) + s.Marker, nil
}

// Indent returns the DefaultStyle prefix for depth.
func Indent(depth int) (string, error) {
	return DefaultStyle.Prefix(depth)
}

// Printer renders a node as an outline, one line per tag.
//
// Unless Lossless is set, children sharing a tag are collapsed into a single
// line: tags keep the order in which they were first seen and the last child
// with a given tag is the one whose subtree is printed. Earlier siblings with
// the same tag are dropped from the output.
type Printer struct {
	Style    Style
	Lossless bool
}

// Print writes the outline of node to stdout in DefaultStyle.
func Print(node *Node) error {
	return Fprint(os.Stdout, node)
}

// Fprint writes the outline of node to w in DefaultStyle.
func Fprint(w io.Writer, node *Node) error {
	return (&Printer{Style: DefaultStyle}).Fprint(w, node)
}

// Lines returns the outline of node in DefaultStyle.
func Lines(node *Node) ([]string, error) {
	return (&Printer{Style: DefaultStyle}).Lines(node)
}

// Fprint writes the outline of node to w. Nothing is written if the walk fails.
func (p *Printer) Fprint(w io.Writer, node *Node) error {
	lines, err := p.Lines(node)
	if err != nil {
		return err
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// Lines returns the outline of node. On failure the lines produced so far are
// returned along with the error.
func (p *Printer) Lines(node *Node) ([]string, error) {
	if node == nil {
		return nil, ErrNoRoot
	}
	lines := []string{node.Tag}
	path := map[*Node]bool{node: true}
	err := p.walk(node, 0, path, &lines)
	return lines, err
}

func (p *Printer) walk(node *Node, depth int, path map[*Node]bool, lines *[]string) error {
	prefix, err := p.Style.Prefix(depth)
	if err != nil {
		return err
	}

	for _, child := range p.entries(node) {
		*lines = append(*lines, prefix+child.Tag)
		if len(child.Children) == 0 {
			continue
		}
		if path[child] {
			return fmt.Errorf("%w at %q", ErrCycle, child.Tag)
		}
		path[child] = true
		err := p.walk(child, depth+1, path, lines)
		delete(path, child)
		if err != nil {
			return err
		}
	}
	return nil
}

// entries returns the children to print for node.
func (p *Printer) entries(node *Node) []*Node {
	if p.Lossless {
		return nonNil(node.Children)
	}
	return Dedup(node.Children)
}

func nonNil(nodes []*Node) []*Node {
	result := make([]*Node, 0, len(nodes))
	for _, n := range nodes {
		if n != nil {
			result = append(result, n)
		}
	}
	return result
}

// Dedup collapses nodes sharing a tag. The result is ordered by first
// occurrence of each tag and holds the last node seen for that tag.
func Dedup(nodes []*Node) []*Node {
	index := make(map[string]int, len(nodes))
	var result []*Node
	for _, n := range nodes {
		if n == nil {
			continue
		}
		if i, ok := index[n.Tag]; ok {
			result[i] = n
			continue
		}
		index[n.Tag] = len(result)
		result = append(result, n)
	}
	return result
}
