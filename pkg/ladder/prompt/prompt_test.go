package prompt

import (
	"strings"
	"testing"
)

func TestDefaultExamplesCoverScale(t *testing.T) {
	examples := DefaultExamples()
	if len(examples) != 5 {
		t.Fatalf("expected 5 examples, got %d", len(examples))
	}
	seen := make(map[int]bool)
	for _, ex := range examples {
		if ex.Sentence == "" {
			t.Error("example with empty sentence")
		}
		seen[ex.Level] = true
	}
	for lvl := MinLevel; lvl <= MaxLevel; lvl++ {
		if !seen[lvl] {
			t.Errorf("no example for level %d", lvl)
		}
	}
}

func TestBuild(t *testing.T) {
	b := NewBuilder([]Example{
		{Sentence: "空は青い。", Level: 1},
		{Sentence: "美とは何か。", Level: 5},
	})
	system, user := b.Build("犬が走る。")

	if system != SystemDirective {
		t.Errorf("unexpected system text: %q", system)
	}
	want := "文: 空は青い。\nレベル: 1\n文: 美とは何か。\nレベル: 5\n文: 犬が走る。\nレベル:"
	if user != want {
		t.Errorf("user text = %q, want %q", user, want)
	}
}

func TestBuildNoExamples(t *testing.T) {
	b := NewBuilder(nil)
	_, user := b.Build("犬が走る。")
	if user != "文: 犬が走る。\nレベル:" {
		t.Errorf("user text = %q", user)
	}
}

func TestNewBuilderSkipsInvalid(t *testing.T) {
	b := NewBuilder([]Example{
		{Sentence: "", Level: 2},
		{Sentence: "レベルなし", Level: 0},
		{Sentence: "範囲外", Level: 6},
		{Sentence: "有効", Level: 3},
	})
	kept := b.Examples()
	if len(kept) != 1 || kept[0].Sentence != "有効" {
		t.Errorf("kept = %v, want only the valid example", kept)
	}
}

func TestBuildOrderStable(t *testing.T) {
	examples := DefaultExamples()
	b := NewBuilder(examples)
	_, user := b.Build("対象文。")
	// Examples must appear in the given order.
	last := -1
	for _, ex := range examples {
		idx := strings.Index(user, ex.Sentence)
		if idx < 0 {
			t.Fatalf("example %q missing from prompt", ex.Sentence)
		}
		if idx < last {
			t.Fatalf("example %q out of order", ex.Sentence)
		}
		last = idx
	}
}
