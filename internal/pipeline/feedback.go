// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"context"
	"fmt"
)

// RunWithFeedback runs the pipeline and then offers an interactive
// feedback menu: revise the post with feedback, accept it, or start
// over with a new post. Revisions go back to the generation service;
// nothing is persisted between iterations.
func (o *Orchestrator) RunWithFeedback(ctx context.Context) (string, error) {
	for {
		post, err := o.Run(ctx)
		if err != nil {
			return "", err
		}

		accepted, restart, err := o.feedbackLoop(ctx, post)
		if err != nil {
			return "", err
		}
		if restart {
			fmt.Fprintln(o.out, "\nStarting over with a new post...")
			continue
		}
		return accepted, nil
	}
}

// feedbackLoop offers the feedback menu until the user accepts the post
// or asks to start over. It returns the accepted post, or restart=true.
func (o *Orchestrator) feedbackLoop(ctx context.Context, post string) (accepted string, restart bool, err error) {
	for {
		fmt.Fprintln(o.out, "\n=== Post Feedback Options ===")
		fmt.Fprintln(o.out, "1. Revise the post with feedback")
		fmt.Fprintln(o.out, "2. Accept the post as is")
		fmt.Fprintln(o.out, "3. Start over with a new post")

		choice, err := o.readLine("\nEnter your choice (1-3): ")
		if err != nil {
			return "", false, err
		}

		switch choice {
		case "1":
			fmt.Fprintln(o.out, "\nPlease provide your feedback and requested changes:")
			var feedback string
			for feedback == "" {
				feedback, err = o.readLine("Feedback: ")
				if err != nil {
					return "", false, err
				}
			}

			fmt.Fprintln(o.out, "\nRevising your post...")
			revised, err := o.composer.Revise(ctx, post, feedback)
			if err != nil {
				return "", false, err
			}

			fmt.Fprintln(o.out, "\nRevised LinkedIn Post:")
			fmt.Fprintln(o.out)
			fmt.Fprintln(o.out, revised)
			post = revised

		case "2":
			fmt.Fprintln(o.out, "\nPost accepted. Thank you for using the LinkedIn Post Generator!")
			return post, false, nil

		case "3":
			return "", true, nil

		default:
			fmt.Fprintln(o.out, "\nInvalid choice. Please try again.")
		}
	}
}
