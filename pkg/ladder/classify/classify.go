// Package classify turns free-form judge output into a validated
// abstraction level.
package classify

import (
	"context"
	"fmt"

	"github.com/cognicore/ladder/pkg/ladder/internalerr"
	"github.com/cognicore/ladder/pkg/ladder/prompt"
)

// Chatter is the single capability the classifier needs from the LLM
// boundary. internal/llm.Client satisfies it; tests use deterministic
// stubs.
type Chatter interface {
	Chat(ctx context.Context, system, user string) (string, error)
}

// Classifier scores one sentence per call against a fixed calibration set.
type Classifier struct {
	chatter Chatter
	builder *prompt.Builder
}

// New creates a classifier over the given chat client and prompt builder.
func New(chatter Chatter, builder *prompt.Builder) *Classifier {
	return &Classifier{chatter: chatter, builder: builder}
}

// Classify dispatches a single classification request for sentence and
// returns its abstraction level. The reply is scanned for its first digit;
// no digit, a digit outside 1..5, or any transport failure wraps
// internalerr.ErrClassifier. There is no retry and no default level.
func (c *Classifier) Classify(ctx context.Context, sentence string) (int, error) {
	system, user := c.builder.Build(sentence)
	reply, err := c.chatter.Chat(ctx, system, user)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", internalerr.ErrClassifier, err)
	}
	level, ok := firstDigit(reply)
	if !ok {
		return 0, fmt.Errorf("%w: no digit in reply %q", internalerr.ErrClassifier, reply)
	}
	if level < prompt.MinLevel || level > prompt.MaxLevel {
		return 0, fmt.Errorf("%w: level %d out of range in reply %q", internalerr.ErrClassifier, level, reply)
	}
	return level, nil
}

func firstDigit(s string) (int, bool) {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return int(r - '0'), true
		}
	}
	return 0, false
}
