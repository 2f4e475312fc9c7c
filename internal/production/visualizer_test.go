// Tests for DefaultVisualizer DOT export of live action trees.
package production

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/comalice/actionkit"
	"github.com/comalice/actionkit/internal/primitives"
)

func TestDefaultVisualizer_ExportDOT_Leaf(t *testing.T) {
	v := &DefaultVisualizer{}
	kit := actionkit.New()
	dot := v.ExportDOT(kit.Delay(time.Second, nil), nil)

	if !strings.HasPrefix(dot, "digraph Actions {") {
		t.Errorf("missing digraph header:\n%s", dot)
	}
	if !strings.Contains(dot, `"n0" [label="delay"];`) {
		t.Errorf("missing leaf node:\n%s", dot)
	}
	if strings.Contains(dot, "subgraph") {
		t.Errorf("leaf should not render a cluster:\n%s", dot)
	}
}

func TestDefaultVisualizer_ExportDOT_LiveTree(t *testing.T) {
	v := &DefaultVisualizer{}
	kit := actionkit.New()
	seq := kit.Sequence().
		Callback(func() {}).
		Delay(time.Second).
		Parallel(func(p *actionkit.Parallel) {
			p.Callback(func() {}).Condition(func() bool { return false })
		})

	seq.Tick(10 * time.Millisecond)

	dot := v.ExportDOT(seq, nil)
	checks := []string{
		"subgraph cluster_n0 {",
		`label="sequence";`,
		"style=filled fillcolor=orange;",
		`"n1" [label="callback" style=filled fillcolor=lightgreen];`,
		`"n2" [label="delay" style=filled fillcolor=orange];`,
		"subgraph cluster_n3 {",
		`"n4" [label="callback"];`,
		`"n1" -> "n2";`,
		`"n2" -> "n4";`,
	}
	for _, want := range checks {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
	if strings.Count(dot, "{") != strings.Count(dot, "}") {
		t.Errorf("unbalanced braces:\n%s", dot)
	}
}

func TestDefaultVisualizer_ExportDOT_RepeatAndLabels(t *testing.T) {
	v := &DefaultVisualizer{}
	kit := actionkit.New()
	rep := kit.Repeat(3).Callback(func() {}).NextFrame()
	names := map[actionkit.Action]string{rep: "blink"}

	dot := v.ExportDOT(rep, func(a actionkit.Action) string { return names[a] })
	if !strings.Contains(dot, `label="blink";`) {
		t.Errorf("custom label not used:\n%s", dot)
	}
	if !strings.Contains(dot, `[label="0/3" style=dashed];`) {
		t.Errorf("missing repeat back edge:\n%s", dot)
	}
}

func TestDefaultVisualizer_ExportDOT_Nil(t *testing.T) {
	v := &DefaultVisualizer{}
	if dot := v.ExportDOT(nil, nil); strings.Contains(dot, "n0") {
		t.Errorf("nil root should render an empty graph:\n%s", dot)
	}
}

func TestDefaultVisualizer_ExportJSON(t *testing.T) {
	v := &DefaultVisualizer{}
	script, err := primitives.NewScriptBuilder("json").Delay(2*time.Second, "done").Build()
	if err != nil {
		t.Fatal(err)
	}
	data, err := v.ExportJSON(script)
	if err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}
	if !strings.Contains(string(data), `"duration": "2s"`) {
		t.Errorf("duration should marshal as text:\n%s", data)
	}
	var back primitives.Script
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back.ID != "json" || len(back.Root.Children) != 1 {
		t.Errorf("unexpected decode: %+v", back)
	}
}
