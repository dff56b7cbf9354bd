// Package groupkey derives stable group keys from Chinese question and
// option text. Keys are built from the pinyin romanization of both texts
// so that the same question/option pair always maps to the same key,
// independent of database ids.
package groupkey

import (
	"strings"
	"unicode"

	"github.com/mozillazg/go-pinyin"
)

// Deriver turns question/option text pairs into group keys.
type Deriver interface {
	// Derive returns "<pinyin(question)>_<pinyin(option)>".
	Derive(questionText, optionText string) string

	// QuestionPrefix returns the "<pinyin(question)>_" prefix shared by all
	// keys derived from the same question, for prefix matching.
	QuestionPrefix(questionText string) string
}

type deriver struct {
	args pinyin.Args
}

// New returns a Deriver using tone-less pinyin, matching the historical
// key format already stored in assessment level configs.
func New() Deriver {
	args := pinyin.NewArgs()
	args.Style = pinyin.Normal
	// Pass non-Chinese runes through unchanged instead of dropping them,
	// so ASCII question text still produces a usable key.
	args.Fallback = func(r rune, a pinyin.Args) []string {
		return []string{string(r)}
	}
	return &deriver{args: args}
}

func (d *deriver) Derive(questionText, optionText string) string {
	return d.romanize(questionText) + "_" + d.romanize(optionText)
}

func (d *deriver) QuestionPrefix(questionText string) string {
	return d.romanize(questionText) + "_"
}

func (d *deriver) romanize(text string) string {
	var sb strings.Builder
	for _, syllables := range pinyin.Pinyin(text, d.args) {
		for _, s := range syllables {
			sb.WriteString(s)
		}
	}
	return strings.TrimFunc(sb.String(), unicode.IsSpace)
}
