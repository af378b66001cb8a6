// Package deinflect implements the forward-closure search over deinflection
// rules that, given a Japanese surface form, yields every dictionary-form
// candidate that could plausibly have produced it, each annotated with the
// chain of grammatical transformations involved.
package deinflect

import "github.com/japaniel/wakachi/pkg/model"

// Rule is an alias for the shared DeinflectRule type, kept local for
// readability within this package.
type Rule = model.DeinflectRule
