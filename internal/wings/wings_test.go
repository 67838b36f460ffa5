package wings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spin-lang/spin/internal/lexer"
)

func TestResolveLibraryImport(t *testing.T) {
	dir := t.TempDir()
	main := filepath.Join(dir, "main.spin")
	if err := os.WriteFile(main, []byte("import Console;\nvar x = 1;\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	program, err := Resolve(main)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !program.Libraries[Console] {
		t.Fatalf("expected Console to be marked used, got %v", program.Libraries)
	}
	if len(program.Wings) != 0 {
		t.Fatalf("expected no file wings, got %d", len(program.Wings))
	}
	for _, tok := range program.Main.Tokens {
		if tok.Kind == lexer.KwImport {
			t.Fatalf("import keyword should be blanked, found %v", tok)
		}
	}
}

func TestResolveFileWing(t *testing.T) {
	dir := t.TempDir()
	helperPath := filepath.Join(dir, "Helper.spin")
	if err := os.WriteFile(helperPath, []byte("var h = 1;\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	mainPath := filepath.Join(dir, "main.spin")
	if err := os.WriteFile(mainPath, []byte("import Helper;\nvar x = h;\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	program, err := Resolve(mainPath)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(program.Wings) != 1 {
		t.Fatalf("expected exactly one file wing, got %d", len(program.Wings))
	}
	if program.Wings[0].Name != helperPath {
		t.Fatalf("expected wing %s, got %s", helperPath, program.Wings[0].Name)
	}
}

func TestResolveRepeatedImportFails(t *testing.T) {
	dir := t.TempDir()
	main := filepath.Join(dir, "main.spin")
	if err := os.WriteFile(main, []byte("import Console;\nimport Console;\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Resolve(main); err == nil {
		t.Fatal("expected an error for a repeated import, got nil")
	}
}

func TestResolveDiamondDependencyDeduped(t *testing.T) {
	dir := t.TempDir()
	leaf := filepath.Join(dir, "Leaf.spin")
	os.WriteFile(leaf, []byte("var v = 1;\n"), 0o644)
	a := filepath.Join(dir, "A.spin")
	os.WriteFile(a, []byte("import Leaf;\n"), 0o644)
	b := filepath.Join(dir, "B.spin")
	os.WriteFile(b, []byte("import Leaf;\n"), 0o644)
	main := filepath.Join(dir, "main.spin")
	if err := os.WriteFile(main, []byte("import A;\nimport B;\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	program, err := Resolve(main)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	count := 0
	for _, w := range program.Wings {
		if w.Name == leaf {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected Leaf to appear exactly once in dependency order, got %d", count)
	}
}
