package internal_test

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// The root package stays free of the scripting stack: only the standard
// library and go-behaviortree.
var allowedRootImports = []string{
	"github.com/joeycumines/go-behaviortree",
}

func TestRootPackageImports(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("..", "*.go"))
	if err != nil {
		t.Fatal(err)
	}
	fset := token.NewFileSet()
	for _, fn := range files {
		if strings.HasSuffix(fn, "_test.go") {
			continue
		}
		f, err := parser.ParseFile(fset, fn, nil, parser.ImportsOnly)
		if err != nil {
			t.Fatalf("parse %s: %v", fn, err)
		}
		for _, imp := range f.Imports {
			path, _ := strconv.Unquote(imp.Path.Value)
			if !allowed(path) {
				t.Errorf("%s imports %s", filepath.Base(fn), path)
			}
		}
	}
}

func TestGoModRequiresDirectDeps(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("..", "go.mod"))
	if err != nil {
		t.Fatalf("Failed to read go.mod: %v", err)
	}
	mod := string(data)
	for _, dep := range append([]string{"gopkg.in/yaml.v3", "github.com/expr-lang/expr"}, allowedRootImports...) {
		if !strings.Contains(mod, dep+" ") {
			t.Errorf("go.mod does not require %s", dep)
		}
	}
}

func allowed(path string) bool {
	first, _, _ := strings.Cut(path, "/")
	if !strings.Contains(first, ".") {
		return true // standard library
	}
	for _, a := range allowedRootImports {
		if path == a || strings.HasPrefix(path, a+"/") {
			return true
		}
	}
	return false
}
