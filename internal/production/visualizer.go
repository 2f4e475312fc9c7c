package production

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/comalice/actionkit"
	"github.com/comalice/actionkit/internal/primitives"
)

// DefaultVisualizer renders live action trees as Graphviz DOT and scripts
// as JSON.
type DefaultVisualizer struct{}

// ExportDOT generates Graphviz DOT source for the tree rooted at root.
// Composites become clusters; sequence children are chained in order.
// Finished actions are filled green, running ones orange and paused ones
// grey. label names each node; nil uses the action kind.
func (v *DefaultVisualizer) ExportDOT(root actionkit.Action, label func(actionkit.Action) string) string {
	var buf bytes.Buffer
	buf.WriteString(`digraph Actions {
  rankdir=LR;
  node [shape=box, fontsize=10, style=rounded];
  edge [fontsize=9];
`)
	if root != nil {
		r := renderer{buf: &buf, label: label}
		r.render(root, 1)
	}
	buf.WriteString("}\n")
	return buf.String()
}

// ExportJSON serializes the script to indented JSON.
func (v *DefaultVisualizer) ExportJSON(script primitives.Script) ([]byte, error) {
	return json.MarshalIndent(script, "", "  ")
}

type renderer struct {
	buf   *bytes.Buffer
	label func(actionkit.Action) string
	next  int
}

// render writes a and its subtree and returns the DOT IDs of the first and
// last nodes, used to chain sequence siblings.
func (r *renderer) render(a actionkit.Action, depth int) (first, last string) {
	indent := strings.Repeat("  ", depth)
	id := fmt.Sprintf("n%d", r.next)
	r.next++

	comp, ok := a.(actionkit.Composite)
	if !ok || len(comp.Children()) == 0 {
		fmt.Fprintf(r.buf, "%s%q [label=%q%s];\n", indent, id, r.name(a), fill(a))
		return id, id
	}

	fmt.Fprintf(r.buf, "%ssubgraph cluster_%s {\n", indent, id)
	fmt.Fprintf(r.buf, "%s  label=%q;\n", indent, r.name(a))
	if c := color(a); c != "" {
		fmt.Fprintf(r.buf, "%s  style=filled fillcolor=%s;\n", indent, c)
	}

	var prev string
	for i, child := range comp.Children() {
		f, l := r.render(child, depth+1)
		if i == 0 {
			first = f
		}
		if a.Kind() == actionkit.KindSequence && prev != "" {
			fmt.Fprintf(r.buf, "%s  %q -> %q;\n", indent, prev, f)
		}
		if a.Kind() == actionkit.KindSequence {
			prev = l
		}
		last = l
	}
	if a.Kind() == actionkit.KindRepeat && first != "" {
		fmt.Fprintf(r.buf, "%s  %q -> %q [label=%q style=dashed];\n", indent, last, first, repeatLabel(a))
	}
	fmt.Fprintf(r.buf, "%s}\n", indent)
	return first, last
}

func (r *renderer) name(a actionkit.Action) string {
	if r.label != nil {
		if s := r.label(a); s != "" {
			return s
		}
	}
	return a.Kind().String()
}

func repeatLabel(a actionkit.Action) string {
	rep, ok := a.(*actionkit.Repeat)
	if !ok || rep.Count() <= 0 {
		return "forever"
	}
	return fmt.Sprintf("%d/%d", rep.Completed(), rep.Count())
}

func color(a actionkit.Action) string {
	switch {
	case a.Finished():
		return "lightgreen"
	case a.Paused():
		return "lightgrey"
	case a.Started():
		return "orange"
	}
	return ""
}

func fill(a actionkit.Action) string {
	if c := color(a); c != "" {
		return " style=filled fillcolor=" + c
	}
	return ""
}
