// Package ladder profiles the abstraction level of a document sentence by
// sentence: segmentation, per-sentence classification through an external
// judge, and ordered result assembly.
package ladder

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/ladder/pkg/ladder/classify"
	"github.com/cognicore/ladder/pkg/ladder/prompt"
	"github.com/cognicore/ladder/pkg/ladder/segment"
	"github.com/cognicore/ladder/pkg/ladder/store"
)

// Result is one classified sentence. Level is 1 (most concrete) to 5
// (most abstract); Paragraph is the 1-based index of the sentence's
// paragraph.
type Result struct {
	Sentence  string `json:"sentence"`
	Level     int    `json:"level"`
	Paragraph int    `json:"paragraph"`
}

// Options configures an Analyzer.
type Options struct {
	// Chatter is the LLM boundary used for classification. Required.
	Chatter classify.Chatter

	// Examples is the calibration set. Nil means the built-in defaults.
	Examples []prompt.Example

	// Store, when set, lets AnalyzeAndStore persist runs.
	Store store.Store

	// Model labels persisted runs with the classifier model used.
	Model string
}

// Analyzer drives the segmentation and classification pipeline.
type Analyzer struct {
	classifier *classify.Classifier
	store      store.Store
	model      string
	entropy    *ulid.MonotonicEntropy
}

// New creates an Analyzer with the given dependencies.
func New(opts Options) *Analyzer {
	examples := opts.Examples
	if examples == nil {
		examples = prompt.DefaultExamples()
	}
	return &Analyzer{
		classifier: classify.New(opts.Chatter, prompt.NewBuilder(examples)),
		store:      opts.Store,
		model:      opts.Model,
		entropy:    ulid.Monotonic(rand.Reader, 0),
	}
}

// Analyze segments text and classifies every sentence strictly in document
// order: paragraph-major, sentence-minor, one blocking call per sentence.
// The first classification failure aborts the whole run; no partial
// results are returned. A repeated sentence is re-classified each time it
// appears.
func (a *Analyzer) Analyze(ctx context.Context, text string) ([]Result, error) {
	var results []Result
	for pi, para := range segment.Paragraphs(text) {
		for _, sentence := range segment.Sentences(para) {
			level, err := a.classifier.Classify(ctx, sentence)
			if err != nil {
				return nil, fmt.Errorf("sentence %d (%q): %w", len(results)+1, sentence, err)
			}
			results = append(results, Result{
				Sentence:  sentence,
				Level:     level,
				Paragraph: pi + 1,
			})
		}
	}
	return results, nil
}

// AnalyzeAndStore analyzes text and persists the outcome as a run. The
// run ID is a ULID, so IDs sort by creation time. Requires a Store.
func (a *Analyzer) AnalyzeAndStore(ctx context.Context, text, source string) (store.Run, error) {
	if a.store == nil {
		return store.Run{}, fmt.Errorf("no store configured")
	}
	results, err := a.Analyze(ctx, text)
	if err != nil {
		return store.Run{}, err
	}
	run := store.Run{
		ID:        ulid.MustNew(ulid.Now(), a.entropy).String(),
		Source:    source,
		Model:     a.model,
		CreatedAt: time.Now().UTC(),
		Sentences: toStored(results),
	}
	if err := a.store.SaveRun(ctx, run); err != nil {
		return store.Run{}, fmt.Errorf("save run: %w", err)
	}
	return run, nil
}

func toStored(results []Result) []store.Sentence {
	sentences := make([]store.Sentence, len(results))
	for i, r := range results {
		sentences[i] = store.Sentence{
			Position:  i + 1,
			Text:      r.Sentence,
			Level:     r.Level,
			Paragraph: r.Paragraph,
		}
	}
	return sentences
}

// FromStored converts persisted sentences back into results, for
// re-rendering stored runs.
func FromStored(sentences []store.Sentence) []Result {
	results := make([]Result, len(sentences))
	for i, s := range sentences {
		results[i] = Result{
			Sentence:  s.Text,
			Level:     s.Level,
			Paragraph: s.Paragraph,
		}
	}
	return results
}
