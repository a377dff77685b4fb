// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline owns the end-to-end post generation sequence: gather
// the user's choices, issue one research request, issue one formatting
// request, and present the result. Execution is strictly sequential;
// a failure in either outbound call ends the run with no retry.
package pipeline

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/post-engine/internal/compose"
	"github.com/pdiddy/post-engine/internal/research"
	"github.com/pdiddy/post-engine/pkg/types"
)

// Orchestrator drives one post generation run over an interactive
// prompt sequence.
type Orchestrator struct {
	researcher research.Researcher
	composer   compose.Composer
	in         *bufio.Scanner
	out        io.Writer
}

// New builds an orchestrator reading prompts from in and writing all
// user-facing output to out.
func New(researcher research.Researcher, composer compose.Composer, in io.Reader, out io.Writer) *Orchestrator {
	return &Orchestrator{
		researcher: researcher,
		composer:   composer,
		in:         bufio.NewScanner(in),
		out:        out,
	}
}

// readLine prints prompt and returns the next trimmed input line.
func (o *Orchestrator) readLine(prompt string) (string, error) {
	fmt.Fprint(o.out, prompt)
	if !o.in.Scan() {
		if err := o.in.Err(); err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return "", fmt.Errorf("input closed")
	}
	return strings.TrimSpace(o.in.Text()), nil
}

// CollectRequest walks the interactive prompt sequence and returns a
// validated PostRequest. Empty or invalid answers are re-prompted;
// only a closed input stream ends the sequence with an error.
func (o *Orchestrator) CollectRequest() (types.PostRequest, error) {
	fmt.Fprintln(o.out, "\n=== LinkedIn Post Generator ===")
	fmt.Fprintln(o.out)

	var topic string
	for topic == "" {
		line, err := o.readLine("What topic would you like to create a LinkedIn post about? ")
		if err != nil {
			return types.PostRequest{}, err
		}
		if line == "" {
			fmt.Fprintln(o.out, "Topic must not be empty.")
			continue
		}
		topic = line
	}

	fmt.Fprintln(o.out, "\nWhat format would you like for your post?")
	fmt.Fprintln(o.out, "1. Facts with emojis (bullet points with emoji numbers)")
	fmt.Fprintln(o.out, "2. Story-based post (customer or personal story)")
	fmt.Fprintln(o.out, "3. Guide-based post (educational content)")
	fmt.Fprintln(o.out, "4. Industry insight (trends with statistics)")

	var format types.PostFormat
	for {
		choice, err := o.readLine("Enter your choice (1-4): ")
		if err != nil {
			return types.PostRequest{}, err
		}
		format, err = types.ParseFormatChoice(choice)
		if err == nil {
			break
		}
	}

	customerStory := false
	if format == types.FormatStory {
		answer, err := o.readLine("Is this based on a real customer story? (y/n): ")
		if err != nil {
			return types.PostRequest{}, err
		}
		customerStory = strings.EqualFold(answer, "y")
	}

	fmt.Fprintln(o.out, "\nHow long would you like your post to be?")
	fmt.Fprintln(o.out, "1. Short (150-200 words)")
	fmt.Fprintln(o.out, "2. Medium (250-300 words)")
	fmt.Fprintln(o.out, "3. Long (350-450 words)")

	var length types.PostLength
	for {
		choice, err := o.readLine("Enter your choice (1-3): ")
		if err != nil {
			return types.PostRequest{}, err
		}
		length, err = types.ParseLengthChoice(choice)
		if err == nil {
			break
		}
	}

	return types.PostRequest{
		Topic:         topic,
		Format:        format,
		Length:        length,
		CustomerStory: customerStory,
	}, nil
}

// Generate runs the two-stage pipeline for req: one research call, then
// one formatting call. Either failure propagates immediately; the
// composer is never invoked when research fails.
func (o *Orchestrator) Generate(ctx context.Context, req types.PostRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	fmt.Fprintf(o.out, "\nResearching about %s...\n", req.Topic)
	researchText, err := o.researcher.Research(ctx, req.Topic)
	if err != nil {
		return "", err
	}

	fmt.Fprintln(o.out, "\nFormatting your LinkedIn post...")
	post, err := o.composer.Compose(ctx, researchText, req)
	if err != nil {
		return "", err
	}

	return post, nil
}

// Run executes one full interactive run and prints the generated post.
func (o *Orchestrator) Run(ctx context.Context) (string, error) {
	req, err := o.CollectRequest()
	if err != nil {
		return "", err
	}

	post, err := o.Generate(ctx, req)
	if err != nil {
		return "", err
	}

	fmt.Fprintln(o.out, "\nYour LinkedIn Post:")
	fmt.Fprintln(o.out)
	fmt.Fprintln(o.out, post)
	return post, nil
}
