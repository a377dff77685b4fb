// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data model for the post-engine pipeline.
package types

import "fmt"

// PostFormat identifies the structural template applied to a generated post.
type PostFormat string

const (
	FormatFacts   PostFormat = "facts_with_emoji"
	FormatStory   PostFormat = "story_based"
	FormatGuide   PostFormat = "guide_based"
	FormatInsight PostFormat = "industry_insight"
)

// PostLength identifies the target word-count tier for a generated post.
type PostLength string

const (
	LengthShort  PostLength = "short"
	LengthMedium PostLength = "medium"
	LengthLong   PostLength = "long"
)

// formatChoices maps interactive menu digits to formats.
var formatChoices = map[string]PostFormat{
	"1": FormatFacts,
	"2": FormatStory,
	"3": FormatGuide,
	"4": FormatInsight,
}

// lengthChoices maps interactive menu digits to length tiers.
var lengthChoices = map[string]PostLength{
	"1": LengthShort,
	"2": LengthMedium,
	"3": LengthLong,
}

// ParseFormatChoice converts a menu digit ("1"-"4") to a PostFormat.
func ParseFormatChoice(choice string) (PostFormat, error) {
	f, ok := formatChoices[choice]
	if !ok {
		return "", &InputError{Field: "format", Value: choice, Reason: "choose 1-4"}
	}
	return f, nil
}

// ParseLengthChoice converts a menu digit ("1"-"3") to a PostLength.
func ParseLengthChoice(choice string) (PostLength, error) {
	l, ok := lengthChoices[choice]
	if !ok {
		return "", &InputError{Field: "length", Value: choice, Reason: "choose 1-3"}
	}
	return l, nil
}

// WordRange returns the word-count instruction for a length tier.
func (l PostLength) WordRange() string {
	switch l {
	case LengthShort:
		return "Keep the post concise, around 150-200 words."
	case LengthLong:
		return "Create a more detailed post of around 350-450 words."
	default:
		return "Aim for around 250-300 words total."
	}
}

// Valid reports whether f is one of the four known formats.
func (f PostFormat) Valid() bool {
	switch f {
	case FormatFacts, FormatStory, FormatGuide, FormatInsight:
		return true
	}
	return false
}

// Valid reports whether l is one of the three known tiers.
func (l PostLength) Valid() bool {
	switch l {
	case LengthShort, LengthMedium, LengthLong:
		return true
	}
	return false
}

// PostRequest carries the user's choices for a single pipeline run.
// It is constructed once from interactive input and discarded when the
// run completes; nothing is persisted between runs.
type PostRequest struct {
	// Topic is the subject of the post. Must be non-empty.
	Topic string

	// Format selects one of the four structural templates.
	Format PostFormat

	// Length selects the target word-count tier.
	Length PostLength

	// CustomerStory frames a story-based post around a customer's
	// experience rather than a first-person account. Only meaningful
	// when Format is FormatStory.
	CustomerStory bool
}

// Validate checks the request against the enumerated value sets.
func (r PostRequest) Validate() error {
	if r.Topic == "" {
		return &InputError{Field: "topic", Reason: "must not be empty"}
	}
	if !r.Format.Valid() {
		return &InputError{Field: "format", Value: string(r.Format), Reason: "unknown format"}
	}
	if !r.Length.Valid() {
		return &InputError{Field: "length", Value: string(r.Length), Reason: "unknown length"}
	}
	return nil
}

// String returns a short human-readable summary, used in progress output.
func (r PostRequest) String() string {
	return fmt.Sprintf("%s (%s, %s)", r.Topic, r.Format, r.Length)
}
