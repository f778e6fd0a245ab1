// Package prompt assembles classification requests for the abstraction
// judge: a fixed system directive plus few-shot calibration examples and
// the target sentence.
package prompt

import (
	"fmt"
	"strings"
)

// MinLevel and MaxLevel bound the abstraction scale. 1 is the most
// concrete, 5 the most abstract.
const (
	MinLevel = 1
	MaxLevel = 5
)

// SystemDirective instructs the judge to answer with a single digit.
const SystemDirective = "あなたは与えられた文の抽象度を1から5のレベルで判定するアシスタントです。" +
	"数値のみで回答してください。1は最も具体的、5は最も抽象的です。"

// Example is one calibration pair shown to the judge to anchor the scale.
type Example struct {
	Sentence string
	Level    int
}

// DefaultExamples returns the built-in calibration set, one example per
// level.
func DefaultExamples() []Example {
	return []Example{
		{Sentence: "このプレゼンテーションでは、プロジェクトの目標について説明します。", Level: 1},
		{Sentence: "雲は気象学において大気中の水滴や氷晶が集まったものです。", Level: 2},
		{Sentence: "日本経済の構造改革は複数の要因が複雑に絡み合っています。", Level: 3},
		{Sentence: "存在論的な議論では、存在そのものの定義が問われます。", Level: 4},
		{Sentence: "意識の本質は何かという問いは哲学の中でも最も抽象的な議論の一つです。", Level: 5},
	}
}

// Builder renders classification requests from a fixed example set.
type Builder struct {
	examples []Example
}

// NewBuilder creates a builder over the given calibration examples,
// keeping their order. Examples with an empty sentence or a level outside
// the scale are skipped. Pass nil to build prompts with no calibration
// block.
func NewBuilder(examples []Example) *Builder {
	kept := make([]Example, 0, len(examples))
	for _, ex := range examples {
		if ex.Sentence == "" || ex.Level < MinLevel || ex.Level > MaxLevel {
			continue
		}
		kept = append(kept, ex)
	}
	return &Builder{examples: kept}
}

// Examples returns the calibration set the builder renders.
func (b *Builder) Examples() []Example {
	return b.examples
}

// Build renders the two-role request for one target sentence. The system
// text is the fixed directive; the user text lists the calibration pairs
// followed by the target with its level left open.
func (b *Builder) Build(sentence string) (system, user string) {
	var buf strings.Builder
	for _, ex := range b.examples {
		fmt.Fprintf(&buf, "文: %s\nレベル: %d\n", ex.Sentence, ex.Level)
	}
	fmt.Fprintf(&buf, "文: %s\nレベル:", sentence)
	return SystemDirective, buf.String()
}
