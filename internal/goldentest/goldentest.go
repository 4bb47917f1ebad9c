// Package goldentest provides a minimal golden-file test harness: given a
// name and freshly computed output, it compares that output against a
// fixture file under testdata/, failing with a unified diff on mismatch.
//
// It is a trimmed rewrite of protocompile's internal/golden.Corpus, scoped
// to flat per-package fixture directories of lexer/parser dumps instead of
// a recursive corpus of .proto descriptors.
package goldentest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
)

// Update controls whether mismatches rewrite the fixture instead of
// failing the test, mirroring the conventional "-update" golden-test flag.
// Tests should read this from an environment variable rather than a flag,
// since package tests run in parallel across this module.
var Update = os.Getenv("GOLDENTEST_UPDATE") != ""

// Dir is the directory golden fixtures live under, relative to the
// package being tested.
const Dir = "testdata"

// Check compares got against the fixture named name (relative to Dir) and
// fails t with a unified diff if they differ. If Update is set, or the
// fixture doesn't exist yet, the fixture is (re)written instead.
func Check(t *testing.T, name, got string) {
	t.Helper()

	path := filepath.Join(Dir, name)
	want, err := os.ReadFile(path)
	if Update || os.IsNotExist(err) {
		if mkErr := os.MkdirAll(Dir, 0o755); mkErr != nil {
			t.Fatalf("goldentest: creating %s: %v", Dir, mkErr)
		}
		if writeErr := os.WriteFile(path, []byte(got), 0o644); writeErr != nil {
			t.Fatalf("goldentest: writing %s: %v", path, writeErr)
		}
		return
	}
	if err != nil {
		t.Fatalf("goldentest: reading %s: %v", path, err)
	}

	if string(want) == got {
		return
	}

	diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(want)),
		B:        difflib.SplitLines(got),
		FromFile: path,
		ToFile:   "got",
		Context:  3,
	})
	t.Errorf("golden mismatch for %s:\n%s\n(run with GOLDENTEST_UPDATE=1 to accept)", name, diff)
}
