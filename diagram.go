package bintree

/*
BSD 3-Clause License

Copyright (c) 2024, Edwin TJ

Please refer to the License file in the repository root.

*/

import (
	"io"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Diagram writes an ASCII drawing of the tree to w, preceded by the tree's
// label:
//
//	  _5
//	 /  \
//	 3  8
//	/ \
//	1 4
//
// Labels are measured in fixed-width positions, using the display-width
// context of the tree's configuration, so wide (e.g. East Asian) labels line
// up correctly. Leaves and inner nodes are colored differently if colors
// are enabled by the configuration's ColorMode.
func (t *Tree[V]) Diagram(w io.Writer) error {
	if t.IsEmpty() {
		_, err := io.WriteString(w, t.emptyString()+"\n")
		return err
	}
	cfg := t.Config()
	d := diagrammer{
		ctx:   cfg.Context,
		inner: color.New(color.FgBlue),
		leaf:  color.New(color.FgGreen, color.Bold),
	}
	if cfg.Color == ColorAlways || (cfg.Color == ColorAuto && isTerminal(w)) {
		d.inner.EnableColor()
		d.leaf.EnableColor()
	} else {
		d.inner.DisableColor()
		d.leaf.DisableColor()
	}
	lines, _, _ := layout(t.root, &d)
	var sb strings.Builder
	sb.WriteString(t.name)
	sb.WriteByte('\n')
	for _, line := range lines {
		sb.WriteString(strings.TrimRight(line, " "))
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func isTerminal(w io.Writer) bool {
	if f, ok := w.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

var setupGraphemes sync.Once

type diagrammer struct {
	ctx         *uax11.Context
	inner, leaf *color.Color
}

// width returns the number of fixed-width positions s occupies. ASCII is
// narrow throughout; uax11 would measure digits as emoji (keycap bases),
// so only non-ASCII graphemes are handed to it.
func (d *diagrammer) width(s string) int {
	if isASCII(s) {
		return len(s)
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	gstr := grapheme.StringFromString(s)
	w := 0
	for i := 0; i < gstr.Len(); i++ {
		g := gstr.Nth(i)
		if len(g) == 1 && g[0] < utf8.RuneSelf {
			w++
			continue
		}
		w += uax11.Width([]byte(g), d.ctx)
	}
	return w
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

func (d *diagrammer) paint(s string, isLeaf bool) string {
	if isLeaf {
		return d.leaf.Sprint(s)
	}
	return d.inner.Sprint(s)
}

// layout renders the subtree at n into lines of equal display width.
// It returns the lines, their width and the horizontal position of the
// subtree root's label center.
//
// Widths are computed from plain labels only; colored labels carry escape
// sequences which occupy no display positions.
func layout[V any](n *Node[V], d *diagrammer) (lines []string, width, middle int) {
	s := label(n.value)
	w := d.width(s)
	if w == 0 {
		s, w = " ", 1
	}
	s = d.paint(s, n.IsLeaf())
	switch {
	case n.left == nil && n.right == nil:
		return []string{s}, w, w / 2
	case n.right == nil:
		l, lw, lm := layout(n.left, d)
		first := spaces(lm+1) + rule(lw-lm-1) + s
		second := spaces(lm) + "/" + spaces(lw-lm-1+w)
		lines = append(lines, first, second)
		for _, line := range l {
			lines = append(lines, line+spaces(w))
		}
		return lines, lw + w, lw + w/2
	case n.left == nil:
		r, rw, rm := layout(n.right, d)
		first := s + rule(rm) + spaces(rw-rm)
		second := spaces(w+rm) + "\\" + spaces(rw-rm-1)
		lines = append(lines, first, second)
		for _, line := range r {
			lines = append(lines, spaces(w)+line)
		}
		return lines, rw + w, w / 2
	}
	l, lw, lm := layout(n.left, d)
	r, rw, rm := layout(n.right, d)
	first := spaces(lm+1) + rule(lw-lm-1) + s + rule(rm) + spaces(rw-rm)
	second := spaces(lm) + "/" + spaces(lw-lm-1+w+rm) + "\\" + spaces(rw-rm-1)
	lines = append(lines, first, second)
	for len(l) < len(r) {
		l = append(l, spaces(lw))
	}
	for len(r) < len(l) {
		r = append(r, spaces(rw))
	}
	for i := range l {
		lines = append(lines, l[i]+spaces(w)+r[i])
	}
	return lines, lw + rw + w, lw + w/2
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

func rule(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat("_", n)
}
