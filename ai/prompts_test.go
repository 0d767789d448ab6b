package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModeFromQuery(t *testing.T) {
	assert.Equal(t, ModeSimplify, ModeFromQuery("simplify"))
	assert.Equal(t, ModeAnalyze, ModeFromQuery("analyze"))
	assert.Equal(t, ModeDeepResearch, ModeFromQuery("deep_research"))
	assert.Equal(t, ModeTranslate, ModeFromQuery("translate"))
	assert.Equal(t, ModeChat, ModeFromQuery(""))
	assert.Equal(t, ModeChat, ModeFromQuery("something_else"))
}

func TestDirectionFromQuery(t *testing.T) {
	assert.Equal(t, BengaliToEnglish, DirectionFromQuery("bengali_to_english"))
	assert.Equal(t, EnglishToBengali, DirectionFromQuery("english_to_bengali"))
	assert.Equal(t, EnglishToBengali, DirectionFromQuery(""))
}

func TestBuildPromptInterpolatesUserText(t *testing.T) {
	prompt := BuildPrompt(ModeChat, "Why is the sky blue?", EnglishToBengali)
	assert.Contains(t, prompt, `"Why is the sky blue?"`)
	assert.Contains(t, prompt, "You are Curio")

	prompt = BuildPrompt(ModeSimplify, "Mitochondria are the powerhouse of the cell.", EnglishToBengali)
	assert.Contains(t, prompt, `"Mitochondria are the powerhouse of the cell."`)
	assert.Contains(t, prompt, "simplify")

	prompt = BuildPrompt(ModeAnalyze, "Abstract: we studied rivers.", EnglishToBengali)
	assert.Contains(t, prompt, `"Abstract: we studied rivers."`)
	assert.Contains(t, prompt, "research paper")

	prompt = BuildPrompt(ModeDeepResearch, "quantum entanglement", EnglishToBengali)
	assert.Contains(t, prompt, `"quantum entanglement"`)
	assert.Contains(t, prompt, "comprehensive analysis")
}

func TestBuildPromptTranslateDirectionWording(t *testing.T) {
	prompt := BuildPrompt(ModeTranslate, "The cell divides.", EnglishToBengali)
	assert.Contains(t, prompt, "from English to Bengali")
	assert.Contains(t, prompt, `"The cell divides."`)

	prompt = BuildPrompt(ModeTranslate, "কোষ বিভাজিত হয়।", BengaliToEnglish)
	assert.Contains(t, prompt, "from Bengali to English")
}

func TestBuildDocumentPrompt(t *testing.T) {
	prompt := BuildDocumentPrompt("Chapter 1: Cells")
	assert.Contains(t, prompt, `"Chapter 1: Cells"`)
	assert.Contains(t, prompt, "analyze this document")
}
