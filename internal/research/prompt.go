// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package research

import "fmt"

// systemInstruction asks the research service for factual,
// citation-aware output.
const systemInstruction = "You are an artificial intelligence assistant that provides " +
	"detailed, factual research with statistics and sources."

// userPrompt builds the single research request for a topic.
func userPrompt(topic string) string {
	return fmt.Sprintf("Give me 5 interesting facts with stats about %s. "+
		"Include sources for any statistical claims. Focus on recent "+
		"and impactful data that would be engaging for a professional audience.", topic)
}
