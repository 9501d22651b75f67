// Package scene provides the game scene: a flat list of drawable nodes
// rendered into the host framebuffer once per tick.
package scene

import (
	"image/color"

	"tinygo.org/x/tinyfont"

	"ember/hal"
)

// Node is anything the scene can draw.
type Node interface {
	Draw(t *Target)
}

// Rect is a filled rectangle node.
type Rect struct {
	X, Y, W, H int
	Color      color.RGBA
}

func (r *Rect) Draw(t *Target) {
	t.FillRect(r.X, r.Y, r.W, r.H, r.Color)
}

// Text is a text line node drawn with tinyfont.
type Text struct {
	X, Y  int
	Value string
	Color color.RGBA
	Font  tinyfont.Fonter
}

func (n *Text) Draw(t *Target) {
	f := n.Font
	if f == nil {
		f = &tinyfont.Picopixel
	}
	tinyfont.WriteLine(t, f, int16(n.X), int16(n.Y), n.Value, n.Color)
}

// Scene owns the node list and background for one presentation surface.
//
// Frame-thread only, like all play-state resources.
type Scene struct {
	background color.RGBA
	nodes      []Node
	ui         []Node
}

// New returns an empty scene with a black background.
func New() *Scene {
	return &Scene{background: color.RGBA{A: 0xFF}}
}

// SetBackground sets the clear color.
func (s *Scene) SetBackground(c color.RGBA) { s.background = c }

// Add appends a node to the game layer.
func (s *Scene) Add(n Node) {
	if n != nil {
		s.nodes = append(s.nodes, n)
	}
}

// AddUI appends a node to the UI layer, drawn above the game layer.
func (s *Scene) AddUI(n Node) {
	if n != nil {
		s.ui = append(s.ui, n)
	}
}

// Remove drops a node from both layers.
func (s *Scene) Remove(n Node) {
	s.nodes = removeNode(s.nodes, n)
	s.ui = removeNode(s.ui, n)
}

func removeNode(nodes []Node, n Node) []Node {
	for i, it := range nodes {
		if it == n {
			return append(nodes[:i], nodes[i+1:]...)
		}
	}
	return nodes
}

// Clear drops every node; the background is kept.
func (s *Scene) Clear() {
	s.nodes = nil
	s.ui = nil
}

// Size returns the number of nodes across both layers.
func (s *Scene) Size() int { return len(s.nodes) + len(s.ui) }

// Render clears the framebuffer and draws the game layer, then the UI layer.
func (s *Scene) Render(fb hal.Framebuffer) error {
	t := NewTarget(fb)
	t.Clear(s.background)
	for _, n := range s.nodes {
		n.Draw(t)
	}
	for _, n := range s.ui {
		n.Draw(t)
	}
	return t.Display()
}
