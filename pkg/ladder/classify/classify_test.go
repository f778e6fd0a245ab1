package classify

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/cognicore/ladder/pkg/ladder/internalerr"
	"github.com/cognicore/ladder/pkg/ladder/prompt"
)

type chatFunc func(ctx context.Context, system, user string) (string, error)

func (f chatFunc) Chat(ctx context.Context, system, user string) (string, error) {
	return f(ctx, system, user)
}

func fixedReply(reply string) Chatter {
	return chatFunc(func(context.Context, string, string) (string, error) {
		return reply, nil
	})
}

func builder() *prompt.Builder {
	return prompt.NewBuilder(prompt.DefaultExamples())
}

func TestClassifyParsesDigit(t *testing.T) {
	cases := []struct {
		reply string
		want  int
	}{
		{"3", 3},
		{" 5 ", 5},
		{"レベル: 4", 4},
		{"答えは2です。", 2},
		{"1\n", 1},
	}
	for _, tc := range cases {
		c := New(fixedReply(tc.reply), builder())
		got, err := c.Classify(context.Background(), "対象文。")
		if err != nil {
			t.Errorf("Classify(%q): %v", tc.reply, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Classify(%q) = %d, want %d", tc.reply, got, tc.want)
		}
	}
}

func TestClassifyNoDigit(t *testing.T) {
	c := New(fixedReply("わかりません"), builder())
	_, err := c.Classify(context.Background(), "対象文。")
	if !errors.Is(err, internalerr.ErrClassifier) {
		t.Errorf("expected ErrClassifier, got %v", err)
	}
}

func TestClassifyOutOfRange(t *testing.T) {
	for _, reply := range []string{"0", "7", "9"} {
		c := New(fixedReply(reply), builder())
		_, err := c.Classify(context.Background(), "対象文。")
		if !errors.Is(err, internalerr.ErrClassifier) {
			t.Errorf("Classify(%q): expected ErrClassifier, got %v", reply, err)
		}
	}
}

func TestClassifyTransportError(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	c := New(chatFunc(func(context.Context, string, string) (string, error) {
		return "", cause
	}), builder())

	_, err := c.Classify(context.Background(), "対象文。")
	if !errors.Is(err, internalerr.ErrClassifier) {
		t.Errorf("expected ErrClassifier, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected wrapped cause, got %v", err)
	}
}

func TestClassifySendsPrompt(t *testing.T) {
	var gotSystem, gotUser string
	c := New(chatFunc(func(_ context.Context, system, user string) (string, error) {
		gotSystem, gotUser = system, user
		return "3", nil
	}), builder())

	if _, err := c.Classify(context.Background(), "対象文。"); err != nil {
		t.Fatal(err)
	}
	if gotSystem != prompt.SystemDirective {
		t.Errorf("unexpected system text: %q", gotSystem)
	}
	wantSuffix := "文: 対象文。\nレベル:"
	if len(gotUser) < len(wantSuffix) || gotUser[len(gotUser)-len(wantSuffix):] != wantSuffix {
		t.Errorf("user text does not end with target block: %q", gotUser)
	}
}
