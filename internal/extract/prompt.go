// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"bytes"
	"text/template"
)

// maxTextLength bounds how much paper text is embedded in the prompt.
const maxTextLength = 8000

// truncationMarker tells the model that the paper text was cut.
const truncationMarker = "\n\n[... text truncated ...]"

// insightPromptTmpl is the prompt sent to the model for one paper. It
// enumerates the seven requested fields and instructs the model to respond
// with a single JSON object in that shape.
var insightPromptTmpl = template.Must(template.New("insights").Parse(`Extract key insights from this research paper.

Paper Title: {{.Title}}

Paper Text:
{{.Text}}

Please analyze this paper and extract the following information:

1. PROBLEM: What problem or research question does this paper address? (2-3 sentences)
2. METHOD: What approach or method does the paper use? (2-3 sentences)
3. KEY RESULTS: What are the main results or findings? (2-3 sentences)
4. CONTRIBUTIONS: What are the key contributions? (bullet points)
5. RELATED WORK: What related work is referenced? (list 3-5 key papers/areas)
6. FUTURE DIRECTIONS: What future research directions are mentioned? (bullet points)
7. CLASSIFICATION: Is this foundational (introduces new concepts/methods) or incremental (improves existing work)?

Format your response as JSON:
{
  "problem": "...",
  "method": "...",
  "key_results": "...",
  "contributions": ["...", "..."],
  "related_work": ["...", "..."],
  "future_directions": ["...", "..."],
  "classification": "foundational" or "incremental"
}`))

// BuildPrompt renders the insight extraction prompt for one paper. It is a
// pure function of its inputs: the full text is truncated to maxTextLength
// characters, with truncationMarker appended when content was cut.
func BuildPrompt(title, fullText string) string {
	text := fullText
	if len(text) > maxTextLength {
		text = text[:maxTextLength] + truncationMarker
	}

	var buf bytes.Buffer
	// Execute cannot fail writing to a bytes.Buffer with this template.
	insightPromptTmpl.Execute(&buf, struct{ Title, Text string }{Title: title, Text: text})
	return buf.String()
}
