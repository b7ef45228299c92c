package formatter

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/rbmap/rbtree"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

var setupGraphemes sync.Once

// Print outputs the structure of tree to w, one node per line, with the root
// at the left margin and larger keys above smaller ones:
//
//	    ┌── 9: 15
//	── 4: 8
//	    └── 1: 2
//
// If config is nil, output is plain and lines are not truncated.
func Print[K, V any](tree *rbtree.Tree[K, V], w io.Writer, config *Config) error {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	p := &printer[K, V]{
		out: w,
		cfg: config,
		red: color.New(color.FgRed),
		blk: color.New(color.Bold),
	}
	if config != nil && config.Color {
		p.red.EnableColor()
		p.blk.EnableColor()
	}
	if tree.IsEmpty() {
		_, err := io.WriteString(w, "── ∅\n")
		return err
	}
	p.walk(tree.Root(), "", 0)
	return p.err
}

type printer[K, V any] struct {
	out      io.Writer
	cfg      *Config
	red, blk *color.Color
	err      error
}

// walk prints the subtree at n. side is 0 for the root, 1 for a right child
// (drawn above its parent) and -1 for a left child.
func (p *printer[K, V]) walk(n *rbtree.Node[K, V], prefix string, side int) {
	if n == nil || p.err != nil {
		return
	}
	upper, lower := prefix+"    ", prefix+"    "
	marker := "── "
	switch side {
	case 1:
		lower = prefix + "│   "
		marker = "┌── "
	case -1:
		upper = prefix + "│   "
		marker = "└── "
	}
	p.walk(n.Right(), upper, 1)
	p.line(prefix+marker, n)
	p.walk(n.Left(), lower, -1)
}

func (p *printer[K, V]) line(lead string, n *rbtree.Node[K, V]) {
	if p.err != nil {
		return
	}
	label := fmt.Sprintf("%v: %v", n.Key(), n.Value())
	colored := p.cfg != nil && p.cfg.Color
	if !colored {
		if n.Color() == rbtree.Red {
			label += " [R]"
		} else {
			label += " [B]"
		}
	}
	if p.cfg != nil && p.cfg.Width > 0 {
		room := p.cfg.Width - displayWidth(lead, p.cfg.context())
		label = truncate(label, room, p.cfg.context())
	}
	if _, p.err = io.WriteString(p.out, lead); p.err != nil {
		return
	}
	c := p.blk
	if n.Color() == rbtree.Red {
		c = p.red
	}
	if colored {
		_, p.err = c.Fprint(p.out, label)
	} else {
		_, p.err = io.WriteString(p.out, label)
	}
	if p.err == nil {
		_, p.err = io.WriteString(p.out, "\n")
	}
	if p.err != nil {
		tracer().Errorf("formatter: cannot write tree: %v", p.err)
	}
}

func displayWidth(s string, context *uax11.Context) int {
	return uax11.StringWidth(grapheme.StringFromString(s), context)
}

// truncate shortens s to at most room display positions, grapheme by
// grapheme, marking the cut with an ellipsis.
func truncate(s string, room int, context *uax11.Context) string {
	if displayWidth(s, context) <= room {
		return s
	}
	if room <= 1 {
		return "…"
	}
	gstr := grapheme.StringFromString(s)
	var b strings.Builder
	width := 0
	for i := 0; i < gstr.Len(); i++ {
		g := gstr.Nth(i)
		gw := displayWidth(g, context)
		if width+gw > room-1 {
			break
		}
		b.WriteString(g)
		width += gw
	}
	b.WriteString("…")
	return b.String()
}
