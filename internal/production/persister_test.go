// Tests for script persisters and file decoding.
package production

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/comalice/actionkit/internal/primitives"
)

func testScript(t *testing.T) primitives.Script {
	t.Helper()
	script, err := primitives.NewScriptBuilder("intro").
		Version("v1").
		Callback("start").
		Delay(1500*time.Millisecond, "tick").
		Parallel().ID("fanout").
		Condition("score > 10").
		DelayFrame(3).
		Up().
		Repeat(2).
		Callback("blink").
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return script
}

type persister interface {
	Save(ctx context.Context, script primitives.Script) error
	Load(ctx context.Context, scriptID string) (primitives.Script, error)
}

func TestPersisters_SaveLoad(t *testing.T) {
	tests := []struct {
		name string
		ext  string
		new  func(dir string) (persister, error)
	}{
		{"json", ".json", func(dir string) (persister, error) { return NewJSONPersister(dir) }},
		{"yaml", ".yaml", func(dir string) (persister, error) { return NewYAMLPersister(dir) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), "scripts")
			p, err := tt.new(dir)
			if err != nil {
				t.Fatalf("new persister: %v", err)
			}

			script := testScript(t)
			ctx := context.Background()
			if err := p.Save(ctx, script); err != nil {
				t.Fatalf("Save failed: %v", err)
			}
			if _, err := os.Stat(filepath.Join(dir, "intro"+tt.ext)); err != nil {
				t.Fatalf("expected file on disk: %v", err)
			}

			loaded, err := p.Load(ctx, "intro")
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if !reflect.DeepEqual(script, loaded) {
				t.Errorf("round trip mismatch:\n got %+v\nwant %+v", loaded, script)
			}
			delay, err := loaded.Find("sequence/1")
			if err != nil {
				t.Fatal(err)
			}
			if delay.Duration.Std() != 1500*time.Millisecond {
				t.Errorf("delay duration = %v, want 1.5s", delay.Duration.Std())
			}
		})
	}
}

func TestJSONPersister_LoadNonExistent(t *testing.T) {
	p, err := NewJSONPersister(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	_, err = p.Load(context.Background(), "nonexistent")
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected os.ErrNotExist wrapped error, got %v", err)
	}
}

func TestYAMLPersister_SaveWithoutID(t *testing.T) {
	p, err := NewYAMLPersister(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	script := testScript(t)
	script.ID = ""
	if err := p.Save(context.Background(), script); !errors.Is(err, ErrNoScriptID) {
		t.Errorf("Save error = %v, want ErrNoScriptID", err)
	}
}

func TestYAMLPersister_LoadRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	p, err := NewYAMLPersister(dir)
	if err != nil {
		t.Fatal(err)
	}
	bad := "id: broken\nroot:\n  kind: callback\n"
	if err := os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte(bad), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = p.Load(context.Background(), "broken")
	if err == nil || !strings.Contains(err.Error(), "validation after load") {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestPersister_CanceledContext(t *testing.T) {
	p, err := NewJSONPersister(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := p.Save(ctx, testScript(t)); !errors.Is(err, context.Canceled) {
		t.Errorf("Save error = %v, want context.Canceled", err)
	}
}

func TestReadScriptFile(t *testing.T) {
	dir := t.TempDir()
	yamlSrc := `id: greet
root:
  kind: sequence
  children:
    - kind: callback
      callback: hello
    - kind: delay
      duration: 250ms
      callback: bye
`
	path := filepath.Join(dir, "greet.yml")
	if err := os.WriteFile(path, []byte(yamlSrc), 0o644); err != nil {
		t.Fatal(err)
	}
	script, err := ReadScriptFile(path)
	if err != nil {
		t.Fatalf("ReadScriptFile failed: %v", err)
	}
	callbacks, _ := script.References()
	if !reflect.DeepEqual(callbacks, []string{"hello", "bye"}) {
		t.Errorf("callbacks = %v", callbacks)
	}

	txt := filepath.Join(dir, "greet.txt")
	if err := os.WriteFile(txt, []byte(yamlSrc), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadScriptFile(txt); err == nil {
		t.Error("expected unsupported extension error")
	}
}
