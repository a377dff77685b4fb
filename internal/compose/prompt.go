// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package compose

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/pdiddy/post-engine/pkg/types"
)

// promptData is the variable set available to format templates.
type promptData struct {
	Topic       string
	LengthGuide string
}

// factsTemplate structures the post as an emoji-numbered fact list.
const factsTemplate = `Structure the post exactly like this:

[Title] Create an attention-grabbing headline that's insightful without being hyperbolic.

[Two opening lines about the topic that provide non-obvious, slightly contrarian takes]

1️⃣ [Point 1]
2️⃣ [Point 2]
3️⃣ [Point 3]
4️⃣ [Point 4]
5️⃣ [Point 5]

[Two closing lines that are insightful and thought-provoking, drawing on the points above]

Use exactly 4-5 emojis total throughout the post (including title). Place the emojis naturally within the text.
{{.LengthGuide}}`

// storyTemplate structures the post as a personal story or case study.
const storyTemplate = `Structure the post as a personal story or customer case study:

[Opening paragraph describing a real situation or conversation that hooks the reader]

💡 [Key insight 1 from the situation]

🔍 [Key insight 2 with deeper analysis]

⚡ [Practical takeaway or lesson learned]

[Final thought and question to engage readers]

Use 3-4 emojis strategically placed throughout the post.
{{.LengthGuide}}`

// guideTemplate structures the post as an educational guide.
const guideTemplate = `Structure the post as an educational guide:

**[Title framed as a guide]** 👇

[Brief introduction explaining why this topic matters]

🧠 [Section 1 - Definition or conceptual explanation]

🤖 [Section 2 - Further explanation or comparison]

⚡ [Section 3 - Practical application]

💡 [Key takeaway and why it matters]

[Engaging question to prompt discussion]

Use 4-5 emojis thoughtfully placed throughout the post.
{{.LengthGuide}}`

// insightTemplate structures the post as a trend- and statistics-led insight.
const insightTemplate = `Structure the post as an industry insight:

[Title highlighting an interesting trend or observation about {{.Topic}}] 🍽️

[Opening paragraph setting context for why this matters and mentioning data/trends]

1️⃣ **[Point 1]**: [Factual insight with specific statistics]
2️⃣ **[Point 2]**: [Factual insight with specific statistics]
3️⃣ **[Point 3]**: [Factual insight with specific statistics]
4️⃣ **[Point 4]**: [Factual insight with specific statistics]

[Closing thought that makes readers think differently about the topic]

[Question to engage audience]

Use 4-5 emojis thoughtfully placed throughout the post.
{{.LengthGuide}}`

// customerStoryNote frames a story post around a customer's experience
// instead of a first-person account.
const customerStoryNote = `Since this is based on a customer story, make sure to frame it as a real experience
or conversation you had with a client or prospect. Focus on the problem they faced,
the insights you provided, and the valuable lesson that others can learn from.`

// closingInstructions trail every format prompt.
const closingInstructions = `Return the post as plain text with proper line breaks.
Do not include any text formatting symbols, just the plain text and emojis.
The reader should leave feeling like they've taken in valuable insights and information.`

// builtinTemplateText maps each format to its default template source.
var builtinTemplateText = map[types.PostFormat]string{
	types.FormatFacts:   factsTemplate,
	types.FormatStory:   storyTemplate,
	types.FormatGuide:   guideTemplate,
	types.FormatInsight: insightTemplate,
}

// buildFormatPrompt assembles the full formatting prompt: the base
// instruction, the selected format block, the customer-story note when
// applicable, the closing instructions, and the research text.
func buildFormatPrompt(research string, req types.PostRequest, presets *Presets) (string, error) {
	tmpl, err := presets.Template(req.Format)
	if err != nil {
		return "", err
	}

	var block bytes.Buffer
	data := promptData{
		Topic:       req.Topic,
		LengthGuide: req.Length.WordRange(),
	}
	if err := tmpl.Execute(&block, data); err != nil {
		return "", fmt.Errorf("rendering %s template: %w", req.Format, err)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Format this research about %s into a LinkedIn post.\n\n", req.Topic)
	buf.WriteString(block.String())
	buf.WriteString("\n\n")
	if req.Format == types.FormatStory && req.CustomerStory {
		buf.WriteString(customerStoryNote)
		buf.WriteString("\n\n")
	}
	buf.WriteString(closingInstructions)
	buf.WriteString("\n\nHere's the research:\n")
	buf.WriteString(research)

	return buf.String(), nil
}

// revisionPromptTmpl asks the generation service to rework a post based
// on user feedback while keeping its structure and tone.
var revisionPromptTmpl = template.Must(template.New("revision").Parse(`I need you to revise a LinkedIn post based on specific feedback.

Original LinkedIn Post:
---
{{.Post}}
---

Feedback to incorporate:
---
{{.Feedback}}
---

Please provide a revised version of the post that addresses all the feedback while maintaining the overall structure and tone.
Keep the same post format (emoji usage, sections, etc.) unless specifically requested to change in the feedback.
Return just the revised post as plain text with proper line breaks, without any additional explanation.
`))

// buildRevisionPrompt renders the revision prompt for post and feedback.
func buildRevisionPrompt(post, feedback string) (string, error) {
	var buf bytes.Buffer
	err := revisionPromptTmpl.Execute(&buf, struct{ Post, Feedback string }{Post: post, Feedback: feedback})
	if err != nil {
		return "", fmt.Errorf("rendering revision prompt: %w", err)
	}
	return buf.String(), nil
}
