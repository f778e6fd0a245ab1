package ladder

import (
	"context"
	"errors"
	"testing"

	"github.com/cognicore/ladder/pkg/ladder/internalerr"
	"github.com/cognicore/ladder/pkg/ladder/store/memstore"
)

type chatFunc func(ctx context.Context, system, user string) (string, error)

func (f chatFunc) Chat(ctx context.Context, system, user string) (string, error) {
	return f(ctx, system, user)
}

func constantJudge(reply string) chatFunc {
	return func(context.Context, string, string) (string, error) {
		return reply, nil
	}
}

func TestAnalyzePreservesOrder(t *testing.T) {
	analyzer := New(Options{Chatter: constantJudge("3")})

	results, err := analyzer.Analyze(context.Background(), "A。B。C。")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	wantSentences := []string{"A。", "B。", "C。"}
	for i, r := range results {
		if r.Sentence != wantSentences[i] {
			t.Errorf("result %d sentence = %q, want %q", i, r.Sentence, wantSentences[i])
		}
		if r.Level != 3 {
			t.Errorf("result %d level = %d, want 3", i, r.Level)
		}
		if r.Paragraph != 1 {
			t.Errorf("result %d paragraph = %d, want 1", i, r.Paragraph)
		}
	}
}

func TestAnalyzeParagraphIndices(t *testing.T) {
	analyzer := New(Options{Chatter: constantJudge("2")})

	results, err := analyzer.Analyze(context.Background(), "段落一。\n\n段落二。")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Paragraph != 1 || results[1].Paragraph != 2 {
		t.Errorf("paragraphs = %d, %d, want 1, 2", results[0].Paragraph, results[1].Paragraph)
	}
}

func TestAnalyzeFailFast(t *testing.T) {
	calls := 0
	judge := chatFunc(func(context.Context, string, string) (string, error) {
		calls++
		if calls == 2 {
			return "", errors.New("rate limited")
		}
		return "4", nil
	})
	analyzer := New(Options{Chatter: judge})

	results, err := analyzer.Analyze(context.Background(), "一つ目。二つ目。三つ目。")
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, internalerr.ErrClassifier) {
		t.Errorf("expected ErrClassifier, got %v", err)
	}
	if results != nil {
		t.Errorf("expected no partial results, got %v", results)
	}
	if calls != 2 {
		t.Errorf("expected dispatch to stop at the failure, got %d calls", calls)
	}
}

func TestAnalyzeEmptyDocument(t *testing.T) {
	analyzer := New(Options{Chatter: constantJudge("1")})
	results, err := analyzer.Analyze(context.Background(), "   \n\n  ")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected no results, got %v", results)
	}
}

func TestAnalyzeAndStore(t *testing.T) {
	ctx := context.Background()

	db := memstore.New()
	defer db.Close()

	analyzer := New(Options{
		Chatter: constantJudge("5"),
		Store:   db,
		Model:   "judge-test",
	})

	run, err := analyzer.AnalyzeAndStore(ctx, "抽象。具体。", "doc.txt")
	if err != nil {
		t.Fatalf("AnalyzeAndStore: %v", err)
	}
	if run.ID == "" {
		t.Error("run ID not assigned")
	}
	if run.Source != "doc.txt" || run.Model != "judge-test" {
		t.Errorf("unexpected run header: %+v", run)
	}

	stored, err := db.GetRun(ctx, run.ID)
	if err != nil {
		t.Fatalf("GetRun: %v", err)
	}
	if len(stored.Sentences) != 2 {
		t.Fatalf("expected 2 stored sentences, got %d", len(stored.Sentences))
	}
	for i, s := range stored.Sentences {
		if s.Position != i+1 {
			t.Errorf("sentence %d position = %d", i, s.Position)
		}
		if s.Level != 5 {
			t.Errorf("sentence %d level = %d, want 5", i, s.Level)
		}
	}

	back := FromStored(stored.Sentences)
	if len(back) != 2 || back[0].Sentence != "抽象。" {
		t.Errorf("FromStored = %v", back)
	}
}

func TestAnalyzeAndStoreRequiresStore(t *testing.T) {
	analyzer := New(Options{Chatter: constantJudge("3")})
	if _, err := analyzer.AnalyzeAndStore(context.Background(), "文。", "x"); err == nil {
		t.Fatal("expected error without a store")
	}
}
