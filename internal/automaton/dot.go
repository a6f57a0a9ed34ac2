package automaton

import (
	"fmt"
	"io"
)

// WriteDOT writes a Graphviz "dot" representation of g to w. If frontier is
// non-nil, states it contains are highlighted red — useful for rendering a
// live Machine's current frontier; pass nil to render a plain graph.
//
// This is a string-sink-only visualization aid, not part of the matching
// core.
func WriteDOT(w io.Writer, g *Graph, frontier map[*State]bool) error {
	if _, err := fmt.Fprintln(w, "digraph automaton {"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "\trankdir=LR;"); err != nil {
		return err
	}

	// invisible point marking the start arrow's origin
	if _, err := fmt.Fprintln(w, "\tStartArrow [shape=point,style=invis];"); err != nil {
		return err
	}
	if g.Start != nil {
		if _, err := fmt.Fprintf(w, "\tStartArrow -> %s;\n", g.Start.String()); err != nil {
			return err
		}
	}

	for _, s := range g.states {
		shape := "circle"
		if s == g.Accept {
			shape = "doublecircle"
		}
		color := ""
		if frontier != nil && frontier[s] {
			color = ",color=red,fontcolor=red"
		}
		if _, err := fmt.Fprintf(w, "\t%s [shape=%s%s];\n", s.String(), shape, color); err != nil {
			return err
		}
	}

	for _, p := range g.paths {
		label := p.Label
		if label == Epsilon {
			label = "ε"
		}
		if _, err := fmt.Fprintf(w, "\t%s -> %s [label=%q];\n", p.Begin.String(), p.End.String(), label); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w, "}")
	return err
}
