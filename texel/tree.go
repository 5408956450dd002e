// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/tree.go
// Summary: Pane layout tree shared by the center area and every dock.
// Usage: Each Container owns one Tree; panes are the leaves.

package texel

import (
	"log"
	"math"
	"strings"

	"github.com/framegrace/texeloutlet/outlet"
)

// SplitType is the arrangement of an internal node's children.
type SplitType int

const (
	// Horizontal stacks children top to bottom.
	Horizontal SplitType = iota
	// Vertical places children side by side.
	Vertical
)

func splitTypeFor(dir outlet.SplitDirection) SplitType {
	if dir.Axis() == outlet.AxisColumn {
		return Horizontal
	}
	return Vertical
}

func (s SplitType) axis() outlet.Axis {
	if s == Horizontal {
		return outlet.AxisColumn
	}
	return outlet.AxisRow
}

func (s SplitType) String() string {
	if s == Horizontal {
		return "Horizontal"
	}
	return "Vertical"
}

// Node represents a node in the pane layout tree. It can be an internal
// node (with children) or a leaf node (with a pane).
type Node struct {
	Parent      *Node
	Split       SplitType
	Pane        *Pane // A pane is only present in leaf nodes
	SplitRatios []float64
	Children    []*Node
}

// Tree manages the node hierarchy of panes.
type Tree struct {
	Root       *Node
	ActiveLeaf *Node
}

// NewTree creates a tree holding a single pane.
func NewTree(root *Pane) *Tree {
	t := &Tree{}
	t.SetRoot(root)
	return t
}

// SetRoot sets the root of the tree to a single node containing the given pane.
func (t *Tree) SetRoot(p *Pane) {
	leaf := &Node{Pane: p}
	t.Root = leaf
	t.ActiveLeaf = leaf
}

// ratiosAreEqual checks if all float values in a slice are effectively equal.
func ratiosAreEqual(ratios []float64) bool {
	if len(ratios) <= 1 {
		return true
	}
	first := ratios[0]
	for _, r := range ratios[1:] {
		if math.Abs(r-first) > 0.001 {
			return false
		}
	}
	return true
}

// SplitLeaf places newPane next to leaf on the side given by dir. When the
// leaf's parent is already split the same way and evenly sized, the new
// pane joins that group; otherwise the leaf becomes a two-child split.
func (t *Tree) SplitLeaf(leaf *Node, dir outlet.SplitDirection, newPane *Pane) *Node {
	if leaf == nil || leaf.Pane == nil {
		log.Printf("Tree.SplitLeaf: no leaf to split")
		return nil
	}
	splitType := splitTypeFor(dir)
	parent := leaf.Parent

	if parent != nil && parent.Split == splitType && ratiosAreEqual(parent.SplitRatios) {
		index := childIndex(parent, leaf)
		if !dir.Before() {
			index++
		}
		newNode := &Node{Parent: parent, Pane: newPane}
		parent.Children = append(parent.Children, nil)
		copy(parent.Children[index+1:], parent.Children[index:])
		parent.Children[index] = newNode

		equalRatio := 1.0 / float64(len(parent.Children))
		parent.SplitRatios = make([]float64, len(parent.Children))
		for i := range parent.SplitRatios {
			parent.SplitRatios[i] = equalRatio
		}
		return newNode
	}

	originalPane := leaf.Pane
	leaf.Pane = nil // The leaf becomes an internal node.
	leaf.Split = splitType
	leaf.SplitRatios = []float64{0.5, 0.5}

	kept := &Node{Parent: leaf, Pane: originalPane}
	added := &Node{Parent: leaf, Pane: newPane}
	if dir.Before() {
		leaf.Children = []*Node{added, kept}
	} else {
		leaf.Children = []*Node{kept, added}
	}
	if t.ActiveLeaf == leaf {
		t.ActiveLeaf = kept
	}
	return added
}

// RemoveLeaf detaches target from the tree, collapsing splits left with a
// single child. It returns the leaf that should become active if target was.
// The root leaf is never removed.
func (t *Tree) RemoveLeaf(target *Node) *Node {
	if target == nil || target.Parent == nil {
		return t.ActiveLeaf
	}

	parent := target.Parent
	closingIndex := childIndex(parent, target)
	if closingIndex == -1 {
		return t.ActiveLeaf
	}
	parent.Children = append(parent.Children[:closingIndex], parent.Children[closingIndex+1:]...)
	if closingIndex < len(parent.SplitRatios) {
		parent.SplitRatios = append(parent.SplitRatios[:closingIndex], parent.SplitRatios[closingIndex+1:]...)
	}

	var nextActive *Node
	if len(parent.Children) == 1 {
		// Promote the remaining child to replace its parent.
		remainingChild := parent.Children[0]
		grandparent := parent.Parent
		remainingChild.Parent = grandparent
		if grandparent == nil {
			t.Root = remainingChild
		} else {
			for i, child := range grandparent.Children {
				if child == parent {
					grandparent.Children[i] = remainingChild
					break
				}
			}
		}
		nextActive = t.findFirstLeaf(remainingChild)
	} else {
		totalRatio := 0.0
		for _, ratio := range parent.SplitRatios {
			totalRatio += ratio
		}
		if totalRatio > 0 {
			for i := range parent.SplitRatios {
				parent.SplitRatios[i] /= totalRatio
			}
		}
		newIndex := closingIndex
		if newIndex >= len(parent.Children) {
			newIndex = len(parent.Children) - 1
		}
		nextActive = t.findFirstLeaf(parent.Children[newIndex])
	}

	target.Parent = nil
	if t.ActiveLeaf == target {
		t.ActiveLeaf = nextActive
	}
	return nextActive
}

// Traverse traverses the tree and calls the given function for each node.
func (t *Tree) Traverse(f func(*Node)) {
	t.traverse(t.Root, f)
}

// Leaves returns the panes of the tree in layout order.
func (t *Tree) Leaves() []*Pane {
	var panes []*Pane
	t.Traverse(func(n *Node) {
		if n.Pane != nil {
			panes = append(panes, n.Pane)
		}
	})
	return panes
}

// findFirstLeaf finds the first leaf node in the given subtree.
func (t *Tree) findFirstLeaf(node *Node) *Node {
	if node == nil {
		return nil
	}
	curr := node
	for len(curr.Children) > 0 {
		curr = curr.Children[0]
	}
	return curr
}

// FindNodeWithPane returns the first node whose pane matches the provided pane pointer.
func (t *Tree) FindNodeWithPane(target *Pane) *Node {
	if t == nil || target == nil {
		return nil
	}
	var result *Node
	t.Traverse(func(n *Node) {
		if result != nil || n == nil {
			return
		}
		if n.Pane == target {
			result = n
		}
	})
	return result
}

func (t *Tree) traverse(n *Node, f func(*Node)) {
	if n == nil {
		return
	}
	f(n)
	for _, child := range n.Children {
		t.traverse(child, f)
	}
}

func childIndex(parent, child *Node) int {
	for i, c := range parent.Children {
		if c == child {
			return i
		}
	}
	return -1
}

// Resize recalculates the screen bounds of all panes in the tree.
func (t *Tree) Resize(x, y, w, h int) {
	if t.Root != nil {
		t.resizeNode(t.Root, x, y, w, h)
	}
}

func (t *Tree) resizeNode(n *Node, x, y, w, h int) {
	if n == nil {
		return
	}
	if len(n.Children) == 0 {
		if n.Pane != nil {
			n.Pane.setDimensions(x, y, x+w, y+h)
		}
		return
	}

	numChildren := len(n.Children)
	if len(n.SplitRatios) != numChildren {
		log.Printf("Tree.resizeNode: invalid internal node, children=%d ratios=%d", numChildren, len(n.SplitRatios))
		return
	}

	if n.Split == Vertical {
		currentX := x
		for i, child := range n.Children {
			childW := int(float64(w) * n.SplitRatios[i])
			if i == numChildren-1 {
				childW = w - (currentX - x)
			}
			t.resizeNode(child, currentX, y, childW, h)
			currentX += childW
		}
		return
	}
	currentY := y
	for i, child := range n.Children {
		childH := int(float64(h) * n.SplitRatios[i])
		if i == numChildren-1 {
			childH = h - (currentY - y)
		}
		t.resizeNode(child, x, currentY, w, childH)
		currentY += childH
	}
}

// Dump renders the tree structure as indented text.
func (t *Tree) Dump() string {
	var sb strings.Builder
	t.dumpNode(&sb, t.Root, 0)
	return sb.String()
}

func (t *Tree) dumpNode(sb *strings.Builder, node *Node, depth int) {
	if node == nil {
		return
	}
	indent := strings.Repeat("  ", depth)
	if node.Pane != nil {
		sb.WriteString(indent)
		sb.WriteString(node.Pane.describe(node == t.ActiveLeaf))
		sb.WriteByte('\n')
		return
	}
	sb.WriteString(indent)
	sb.WriteString(node.Split.String())
	sb.WriteString(" split\n")
	for _, child := range node.Children {
		t.dumpNode(sb, child, depth+1)
	}
}
