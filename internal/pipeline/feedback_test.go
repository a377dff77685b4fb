// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"context"
	"strings"
	"testing"

	"github.com/pdiddy/post-engine/pkg/types"
)

func TestRunWithFeedbackAccept(t *testing.T) {
	researcher := &mockResearcher{text: "findings"}
	composer := &mockComposer{post: "draft post"}

	// Generate, then accept as-is.
	orch, out := newTestOrchestrator("ai\n1\n1\n2\n", researcher, composer)
	post, err := orch.RunWithFeedback(context.Background())
	if err != nil {
		t.Fatalf("RunWithFeedback: %v", err)
	}
	if post != "draft post" {
		t.Errorf("accepted post = %q", post)
	}
	if len(composer.gotFeedback) != 0 {
		t.Error("Revise called without a revision request")
	}
	if !strings.Contains(out.String(), "Post accepted") {
		t.Error("missing acceptance message")
	}
}

func TestRunWithFeedbackRevise(t *testing.T) {
	researcher := &mockResearcher{text: "findings"}
	composer := &mockComposer{post: "draft post", revised: "revised post"}

	// Generate, revise once, then accept.
	input := "ai\n1\n1\n1\nmake it punchier\n2\n"
	orch, out := newTestOrchestrator(input, researcher, composer)
	post, err := orch.RunWithFeedback(context.Background())
	if err != nil {
		t.Fatalf("RunWithFeedback: %v", err)
	}

	if post != "revised post" {
		t.Errorf("accepted post = %q, want the revision", post)
	}
	if len(composer.gotFeedback) != 1 || composer.gotFeedback[0] != "make it punchier" {
		t.Errorf("feedback passed to Revise = %v", composer.gotFeedback)
	}
	if !strings.Contains(out.String(), "Revised LinkedIn Post:") {
		t.Error("missing revised post header")
	}
}

func TestRunWithFeedbackStartOver(t *testing.T) {
	researcher := &mockResearcher{text: "findings"}
	composer := &mockComposer{post: "a post"}

	// First run, start over, second run, accept.
	input := "first topic\n1\n1\n3\nsecond topic\n3\n2\n2\n"
	orch, out := newTestOrchestrator(input, researcher, composer)
	post, err := orch.RunWithFeedback(context.Background())
	if err != nil {
		t.Fatalf("RunWithFeedback: %v", err)
	}

	if post != "a post" {
		t.Errorf("accepted post = %q", post)
	}
	if len(researcher.topics) != 2 || researcher.topics[1] != "second topic" {
		t.Errorf("research topics = %v, want both runs", researcher.topics)
	}
	if !strings.Contains(out.String(), "Starting over with a new post...") {
		t.Error("missing start-over message")
	}
}

func TestRunWithFeedbackInvalidMenuChoice(t *testing.T) {
	researcher := &mockResearcher{text: "findings"}
	composer := &mockComposer{post: "a post"}

	input := "ai\n1\n1\n9\n2\n"
	orch, out := newTestOrchestrator(input, researcher, composer)
	if _, err := orch.RunWithFeedback(context.Background()); err != nil {
		t.Fatalf("RunWithFeedback: %v", err)
	}
	if !strings.Contains(out.String(), "Invalid choice. Please try again.") {
		t.Error("missing invalid-choice message")
	}
}

func TestRunWithFeedbackReviseFailure(t *testing.T) {
	researcher := &mockResearcher{text: "findings"}
	composer := &mockComposer{
		post:      "a post",
		reviseErr: &types.ServiceError{Service: "compose", Status: 500},
	}

	input := "ai\n1\n1\n1\nshorter please\n"
	orch, _ := newTestOrchestrator(input, researcher, composer)
	_, err := orch.RunWithFeedback(context.Background())
	if err == nil {
		t.Fatal("revision failure should end the run")
	}
}
