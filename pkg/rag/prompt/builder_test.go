package prompt

import (
	"strings"
	"testing"

	"jarvis-assistant-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestBuildContainsInstructionsAndCue(t *testing.T) {
	out := NewBuilder("What color is the sky?", nil).Build()

	assert.Contains(t, out, "You are a helpful personal assistant named Jarvis.")
	assert.Contains(t, out, `say "I don't have enough information to answer that."`)
	assert.Contains(t, out, "Do not make up information.")
	assert.Contains(t, out, "USER QUESTION:\nWhat color is the sky?")
	assert.True(t, strings.HasSuffix(out, "ANSWER:\n"))
}

func TestBuildNumbersDocumentsInRetrievalOrder(t *testing.T) {
	docs := []*entity.RetrievedDocument{
		{Id: "d1", Text: "The sky is blue.", Source: "fact", Score: 0.9},
		{Id: "d2", Text: "Grass is green.", Source: "nature", Score: 0.5},
	}
	out := NewBuilder("q", docs).Build()

	first := strings.Index(out, "[Document 1] (fact)\nThe sky is blue.")
	second := strings.Index(out, "[Document 2] (nature)\nGrass is green.")
	assert.GreaterOrEqual(t, first, 0)
	assert.Greater(t, second, first)
}

func TestBuildEmptyContextSection(t *testing.T) {
	out := NewBuilder("q", nil).Build()

	assert.Contains(t, out, "CONTEXT:")
	assert.NotContains(t, out, "[Document")
}
