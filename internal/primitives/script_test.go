package primitives

import (
	"strings"
	"testing"
	"time"
)

func introScript(t *testing.T) Script {
	t.Helper()
	s, err := NewScriptBuilder("intro").
		Callback("start").
		Delay(time.Second).
		Parallel().ID("wait").
		Delay(time.Second, "one").
		Delay(2*time.Second, "two").
		Up().
		Condition("clicked == true").
		Repeat(3).
		DelayFrame(1, "blink").
		Up().
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return s
}

func TestScriptBuilder(t *testing.T) {
	s := introScript(t)

	if s.Root.Kind != Sequence {
		t.Fatalf("root kind = %s", s.Root.Kind)
	}
	if got := len(s.Root.Children); got != 5 {
		t.Fatalf("root children = %d, want 5", got)
	}
	wait := s.Root.Children[2]
	if wait.ID != "wait" || len(wait.Children) != 2 {
		t.Errorf("wait = %+v", wait)
	}
	if wait.Children[1].Callback != "two" {
		t.Errorf("second delay callback = %q", wait.Children[1].Callback)
	}
	rep := s.Root.Children[4]
	if rep.Kind != Repeat || rep.Count != 3 || len(rep.Children) != 1 {
		t.Errorf("repeat = %+v", rep)
	}
}

func TestScriptBuilderUpStopsAtRoot(t *testing.T) {
	s, err := NewScriptBuilder("s").Up().Up().Callback("x").Build()
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Root.Children) != 1 {
		t.Errorf("root children = %d", len(s.Root.Children))
	}
}

func TestScriptBuilderReportsInvalidNodes(t *testing.T) {
	_, err := NewScriptBuilder("s").Repeat(-1).Build()
	if err == nil || !strings.Contains(err.Error(), "negative count") {
		t.Errorf("err = %v", err)
	}
}

func TestScriptValidate(t *testing.T) {
	tests := []struct {
		name    string
		script  Script
		wantErr string
	}{
		{
			name:    "missing ID",
			script:  Script{Root: NewActionConfig(Sequence)},
			wantErr: "ID is required",
		},
		{
			name:    "missing root",
			script:  Script{ID: "s"},
			wantErr: "no root action",
		},
		{
			name: "duplicate IDs",
			script: Script{ID: "s", Root: NewActionConfig(Sequence).
				AddChild(NewActionConfig(Parallel).WithID("dup")).
				AddChild(NewActionConfig(Sequence).WithID("dup"))},
			wantErr: `duplicate action ID "dup"`,
		},
		{
			name:   "valid",
			script: Script{ID: "s", Root: NewActionConfig(Sequence)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.script.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("err = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestScriptFind(t *testing.T) {
	s := introScript(t)

	n, err := s.Find("sequence/wait/1")
	if err != nil {
		t.Fatal(err)
	}
	if n.Callback != "two" {
		t.Errorf("found %+v", n)
	}

	if _, err := s.Find("sequence/missing"); err == nil {
		t.Error("expected error for missing child")
	}
	if _, err := s.Find("other"); err == nil {
		t.Error("expected error for wrong root")
	}
	if _, err := s.Find(""); err == nil {
		t.Error("expected error for empty path")
	}
}

func TestScriptReferences(t *testing.T) {
	s := introScript(t)
	callbacks, conditions := s.References()

	if strings.Join(callbacks, ",") != "start,one,two,blink" {
		t.Errorf("callbacks = %v", callbacks)
	}
	if len(conditions) != 1 || conditions[0] != "clicked == true" {
		t.Errorf("conditions = %v", conditions)
	}
}

func TestComputeVersion(t *testing.T) {
	a := introScript(t)
	b := introScript(t)

	va, vb := ComputeVersion(&a), ComputeVersion(&b)
	if va != vb {
		t.Errorf("equal scripts got versions %s and %s", va, vb)
	}
	if len(va) != 16 {
		t.Errorf("version %q is not 8 hex bytes", va)
	}

	b.Root.Children[0].Callback = "begin"
	if ComputeVersion(&b) == va {
		t.Error("changed script kept its version")
	}

	b.Version = "v2"
	if ComputeVersion(&b) != "v2" {
		t.Error("explicit version not honoured")
	}
}
