package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRunBuildsSite(t *testing.T) {
	contentDir := t.TempDir()
	outputDir := t.TempDir()

	source := "---\ntitle: Hello\n---\n\n# Hello\n"
	if err := os.WriteFile(filepath.Join(contentDir, "index.md"), []byte(source), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	err := run([]string{
		"-content-dir", contentDir,
		"-output-dir", outputDir,
		"-log-level", "error",
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if _, err := os.Stat(filepath.Join(outputDir, "index.html")); err != nil {
		t.Fatalf("expected generated index.html: %v", err)
	}
}

func TestRunDryRunWritesNothing(t *testing.T) {
	contentDir := t.TempDir()
	outputDir := filepath.Join(t.TempDir(), "out")

	source := "---\ntitle: Hello\n---\n\nHello.\n"
	if err := os.WriteFile(filepath.Join(contentDir, "hello.md"), []byte(source), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	err := run([]string{
		"-content-dir", contentDir,
		"-output-dir", outputDir,
		"-dry-run",
		"-log-level", "error",
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if _, err := os.Stat(outputDir); !os.IsNotExist(err) {
		t.Fatalf("expected no output directory, stat err = %v", err)
	}
}

func TestSplitLocales(t *testing.T) {
	got := splitLocales("en, es ,", "en")
	if len(got) != 2 || got[0] != "en" || got[1] != "es" {
		t.Fatalf("splitLocales = %v", got)
	}

	got = splitLocales("", "fr")
	if len(got) != 1 || got[0] != "fr" {
		t.Fatalf("splitLocales fallback = %v", got)
	}
}
