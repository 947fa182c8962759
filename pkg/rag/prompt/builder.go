package prompt

import (
	"fmt"
	"strings"

	"jarvis-assistant-be/internal/entity"
)

// Builder assembles the single prompt handed to the generator: persona and
// grounding rules, the retrieved documents in retrieval order, the literal
// user question, and the answer cue.
type Builder struct {
	query string
	docs  []*entity.RetrievedDocument
}

func NewBuilder(query string, docs []*entity.RetrievedDocument) *Builder {
	return &Builder{
		query: query,
		docs:  docs,
	}
}

func (b *Builder) Build() string {
	var prompt strings.Builder

	b.writeInstructions(&prompt)
	b.writeContext(&prompt)
	b.writeUserQuestion(&prompt)

	return prompt.String()
}

func (b *Builder) writeInstructions(prompt *strings.Builder) {
	prompt.WriteString("You are a helpful personal assistant named Jarvis.\n")
	prompt.WriteString("Use the provided context to answer the user's question accurately.\n")
	prompt.WriteString("If the context doesn't contain relevant information, say \"I don't have enough information to answer that.\"\n")
	prompt.WriteString("Do not make up information.\n\n")
}

func (b *Builder) writeContext(prompt *strings.Builder) {
	prompt.WriteString("---\nCONTEXT:\n")
	for i, doc := range b.docs {
		if i > 0 {
			prompt.WriteString("\n\n")
		}
		prompt.WriteString(fmt.Sprintf("[Document %d] (%s)\n%s", i+1, doc.Source, doc.Text))
	}
	prompt.WriteString("\n\n")
}

func (b *Builder) writeUserQuestion(prompt *strings.Builder) {
	prompt.WriteString("---\nUSER QUESTION:\n")
	prompt.WriteString(b.query)
	prompt.WriteString("\n\n---\nANSWER:\n")
}
