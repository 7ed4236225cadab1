package data

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"notescape/local-app/internal/models"
)

// BranchMarker prefixes every rendered non-root line.
const BranchMarker = "|_"

// Walk yields every note of the subtree rooted at root in pre-order: a note
// first, then each child subtree in insertion order. The sequence can be
// ranged over any number of times.
func Walk(root *models.Note) iter.Seq[*models.Note] {
	return func(yield func(*models.Note) bool) {
		walk(root, yield)
	}
}

func walk(n *models.Note, yield func(*models.Note) bool) bool {
	if !yield(n) {
		return false
	}
	for _, child := range n.Children() {
		if !walk(child, yield) {
			return false
		}
	}
	return true
}

// Flatten collects the pre-order sequence of root's subtree, root included.
func Flatten(root *models.Note) []*models.Note {
	return slices.Collect(Walk(root))
}

// Find returns the first note in pre-order whose title equals title exactly.
// The root is checked first.
func Find(root *models.Note, title string) (*models.Note, error) {
	for n := range Walk(root) {
		if n.Title() == title {
			return n, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrNoteNotFound, title)
}

// RenderLine formats a single tree line for a title at the given depth.
func RenderLine(title string, depth int) string {
	if depth == 0 {
		return title
	}
	return strings.Repeat(" ", depth*2) + BranchMarker + title
}

// Render yields one display line per note of root's subtree in pre-order.
// Depth is measured from root, so rendering a subtree starts unindented.
func Render(root *models.Note) iter.Seq[string] {
	return func(yield func(string) bool) {
		render(root, 0, yield)
	}
}

func render(n *models.Note, depth int, yield func(string) bool) bool {
	if !yield(RenderLine(n.Title(), depth)) {
		return false
	}
	for _, child := range n.Children() {
		if !render(child, depth+1, yield) {
			return false
		}
	}
	return true
}
