package docs

import (
	"strings"
	"testing"
	"time"
)

const sampleDoc = `---
title: Getting Started
slug: getting-started
summary: First steps with the toolkit
tags:
  - guide
  - intro
edit_url: https://example.com/edit/getting-started.md
custom_flag: true
---

# Getting Started

Hello **world**.
`

func TestParseFrontMatter(t *testing.T) {
	fm, body, err := ParseFrontMatter([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}

	if fm.Title != "Getting Started" {
		t.Fatalf("Title mismatch, got %q", fm.Title)
	}
	if fm.Slug != "getting-started" {
		t.Fatalf("Slug mismatch, got %q", fm.Slug)
	}
	if len(fm.Tags) != 2 || fm.Tags[0] != "guide" {
		t.Fatalf("Tags mismatch: %#v", fm.Tags)
	}
	if fm.EditURL != "https://example.com/edit/getting-started.md" {
		t.Fatalf("EditURL mismatch, got %q", fm.EditURL)
	}
	if fm.Custom["custom_flag"] != true {
		t.Fatalf("Custom flag missing: %#v", fm.Custom)
	}
	if fm.Raw["summary"] != "First steps with the toolkit" {
		t.Fatalf("Raw summary missing: %#v", fm.Raw)
	}
	if !strings.Contains(string(body), "# Getting Started") {
		t.Fatalf("body not returned correctly: %q", string(body))
	}
}

func TestBuildDocument(t *testing.T) {
	modified := time.Now().UTC()

	doc, err := BuildDocument("guides/getting-started.md", "en", []byte(sampleDoc), modified)
	if err != nil {
		t.Fatalf("BuildDocument: %v", err)
	}

	if doc.FilePath != "guides/getting-started.md" {
		t.Fatalf("expected FilePath to be set, got %q", doc.FilePath)
	}
	if doc.Locale != "en" {
		t.Fatalf("expected Locale to be en, got %q", doc.Locale)
	}
	if doc.LastModified != modified {
		t.Fatalf("expected LastModified to equal the provided timestamp")
	}
	if len(doc.Body) == 0 {
		t.Fatalf("expected Body to contain markdown content")
	}
}
