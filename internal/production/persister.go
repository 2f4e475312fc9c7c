// Package production provides production integrations: script persistence,
// lifecycle publishing and visualization.
package production

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/comalice/actionkit/internal/primitives"
)

// ErrNoScriptID is returned when saving a script without an ID.
var ErrNoScriptID = errors.New("script ID is required")

// JSONPersister is a file-based persister storing one JSON file per script.
type JSONPersister struct {
	dir string
}

// NewJSONPersister creates a JSONPersister, ensuring the directory exists.
func NewJSONPersister(dir string) (*JSONPersister, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return &JSONPersister{dir: dir}, nil
}

func (p *JSONPersister) Save(ctx context.Context, script primitives.Script) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if script.ID == "" {
		return ErrNoScriptID
	}
	data, err := json.MarshalIndent(script, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	return writeScript(filepath.Join(p.dir, script.ID+".json"), data)
}

func (p *JSONPersister) Load(ctx context.Context, scriptID string) (primitives.Script, error) {
	if err := ctx.Err(); err != nil {
		return primitives.Script{}, err
	}
	data, err := readScript(filepath.Join(p.dir, scriptID+".json"), scriptID)
	if err != nil {
		return primitives.Script{}, err
	}
	var script primitives.Script
	if err := json.Unmarshal(data, &script); err != nil {
		return primitives.Script{}, fmt.Errorf("json unmarshal: %w", err)
	}
	return checkLoaded(script, scriptID)
}

// YAMLPersister is a file-based persister storing one YAML file per script.
type YAMLPersister struct {
	dir string
}

// NewYAMLPersister creates a YAMLPersister, ensuring the directory exists.
func NewYAMLPersister(dir string) (*YAMLPersister, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return &YAMLPersister{dir: dir}, nil
}

func (p *YAMLPersister) Save(ctx context.Context, script primitives.Script) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if script.ID == "" {
		return ErrNoScriptID
	}
	data, err := yaml.Marshal(script)
	if err != nil {
		return fmt.Errorf("yaml marshal: %w", err)
	}
	return writeScript(filepath.Join(p.dir, script.ID+".yaml"), data)
}

func (p *YAMLPersister) Load(ctx context.Context, scriptID string) (primitives.Script, error) {
	if err := ctx.Err(); err != nil {
		return primitives.Script{}, err
	}
	data, err := readScript(filepath.Join(p.dir, scriptID+".yaml"), scriptID)
	if err != nil {
		return primitives.Script{}, err
	}
	var script primitives.Script
	if err := yaml.Unmarshal(data, &script); err != nil {
		return primitives.Script{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return checkLoaded(script, scriptID)
}

// ReadScriptFile decodes a script from path, choosing YAML or JSON by
// extension. The script is validated.
func ReadScriptFile(path string) (primitives.Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return primitives.Script{}, fmt.Errorf("read %s: %w", path, err)
	}
	var script primitives.Script
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &script)
	case ".json":
		err = json.Unmarshal(data, &script)
	default:
		return primitives.Script{}, fmt.Errorf("read %s: unsupported extension %q", path, ext)
	}
	if err != nil {
		return primitives.Script{}, fmt.Errorf("decode %s: %w", path, err)
	}
	if err := script.Validate(); err != nil {
		return primitives.Script{}, fmt.Errorf("validate %s: %w", path, err)
	}
	return script, nil
}

func writeScript(fn string, data []byte) error {
	if err := os.WriteFile(fn, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", fn, err)
	}
	return nil
}

func readScript(fn, scriptID string) ([]byte, error) {
	data, err := os.ReadFile(fn)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("script %q: %w", scriptID, os.ErrNotExist)
		}
		return nil, fmt.Errorf("read %s: %w", fn, err)
	}
	return data, nil
}

func checkLoaded(script primitives.Script, scriptID string) (primitives.Script, error) {
	script.ID = scriptID // file name wins
	if err := script.Validate(); err != nil {
		return primitives.Script{}, fmt.Errorf("script validation after load: %w", err)
	}
	return script, nil
}
