package tree

import (
	"bytes"
	"fmt"
	"io"
)

// FprintTree writes every node under root using box drawing connectors.
// Unlike the outline printer no sibling is dropped.
func FprintTree(w io.Writer, root *Node) error {
	if root == nil {
		return ErrNoRoot
	}

	var buf bytes.Buffer
	_, _ = fmt.Fprintln(&buf, root.Tag)
	path := map[*Node]bool{root: true}
	if err := printChildren(&buf, root, "", path); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}

func printChildren(w io.Writer, node *Node, prefix string, path map[*Node]bool) error {
	children := nonNil(node.Children)
	for i, child := range children {
		isLast := i == len(children)-1
		if err := printNode(w, child, prefix, isLast, path); err != nil {
			return err
		}
	}
	return nil
}

func printNode(w io.Writer, node *Node, prefix string, isLast bool, path map[*Node]bool) error {
	connector := "├── "
	if isLast {
		connector = "└── "
	}

	_, _ = fmt.Fprintf(w, "%s%s%s\n", prefix, connector, node.Tag)

	if path[node] {
		return fmt.Errorf("%w at %q", ErrCycle, node.Tag)
	}

	childPrefix := prefix + "│   "
	if isLast {
		childPrefix = prefix + "    "
	}

	path[node] = true
	defer delete(path, node)
	return printChildren(w, node, childPrefix, path)
}
