package ai

import (
	"context"
	"log"

	"sciventure/models"
	"sciventure/storage"
)

// TranslationUnavailable is the sentinel attached in place of a Bengali
// mirror when the secondary translation call fails. The primary response is
// never affected.
const TranslationUnavailable = "Error generating Bengali translation"

// maxAnalysisRunes caps how much extracted document text is handed to the
// summarization prompt.
const maxAnalysisRunes = 10000

const truncationMarker = "... (text truncated for analysis)"

// Orchestrator sequences calls to the generative-language service and the
// persistence layer for one conversational interaction. It is stateless per
// request: continuity comes from the caller-supplied history.
type Orchestrator struct {
	store storage.Storage
	gen   Generator
}

func NewOrchestrator(store storage.Storage, gen Generator) *Orchestrator {
	return &Orchestrator{store: store, gen: gen}
}

// UserFirst drops any assistant-authored turns that precede the first user
// turn. Generation APIs require a user-first alternating history.
func UserFirst(history []Message) []Message {
	for i, turn := range history {
		if turn.Role == RoleUser {
			return history[i:]
		}
	}
	return nil
}

// GenerateReply builds the mode-specific prompt, submits it with the
// normalized history, and always returns text: upstream failures collapse
// into a friendly fallback so the chat surface never shows a technical
// error.
func (o *Orchestrator) GenerateReply(ctx context.Context, history []Message, message string, mode Mode, direction Direction) string {
	prompt := BuildPrompt(mode, message, direction)
	result := o.gen.Generate(ctx, UserFirst(history), prompt)
	if result.OK() {
		return result.Text
	}
	log.Printf("[CURIO] %s generation failed: %v", mode, result.Err)
	return fallbackText(mode, result.Outcome)
}

// MaybeTranslate issues the secondary English-to-Bengali call when the
// caller asked for a mirror of the reply. It never fails the primary
// request: on error the sentinel string is returned instead.
func (o *Orchestrator) MaybeTranslate(ctx context.Context, responseText string, wantBengali bool) *string {
	if !wantBengali {
		return nil
	}
	result := o.gen.Generate(ctx, nil, BuildPrompt(ModeTranslate, responseText, EnglishToBengali))
	if !result.OK() {
		log.Printf("[CURIO] bengali translation failed: %v", result.Err)
		sentinel := TranslationUnavailable
		return &sentinel
	}
	return &result.Text
}

// PersistExchange records one turn-pair. It runs after every reply, success
// or fallback, so history is never silently dropped on upstream failure.
func (o *Orchestrator) PersistExchange(userID uint, message, response string) (*models.ChatMessage, error) {
	chatMessage := &models.ChatMessage{
		UserID:   userID,
		Message:  message,
		Response: response,
	}
	if err := o.store.CreateChatMessage(chatMessage); err != nil {
		return nil, err
	}
	return chatMessage, nil
}

// AnalyzeDocument summarizes extracted document text, truncating very long
// documents and marking the summary as partial.
func (o *Orchestrator) AnalyzeDocument(ctx context.Context, text string) string {
	if runes := []rune(text); len(runes) > maxAnalysisRunes {
		text = string(runes[:maxAnalysisRunes]) + truncationMarker
	}
	result := o.gen.Generate(ctx, nil, BuildDocumentPrompt(text))
	if result.OK() {
		return result.Text
	}
	log.Printf("[CURIO] document analysis failed: %v", result.Err)
	return fallbackText(ModeChat, result.Outcome)
}

// fallbackText picks the user-facing substitute for a failed generation.
// Transient failures ask the student to retry shortly; everything else gets
// the generic on-brand apology for the mode.
func fallbackText(mode Mode, outcome Outcome) string {
	transient := outcome == OutcomeTransient

	switch mode {
	case ModeAnalyze:
		if transient {
			return "Hello! I'd love to analyze this research paper for you, but I'm experiencing high traffic at the moment. Please try again in a few minutes when our systems are less busy."
		}
		return "I received your research paper but I'm having a brief connection issue with my analysis tools. Please try again shortly and I'll be ready to provide insights!"
	case ModeDeepResearch:
		if transient {
			return "I'm eager to research this scientific topic for you, but my research systems are currently experiencing high demand. Please try again in a few minutes when traffic has decreased."
		}
		return "I received your research request, but I'm having a temporary connection issue with my knowledge database. Please try again shortly for a comprehensive analysis."
	case ModeTranslate:
		if transient {
			return "I've received your translation request, but my translation system is busy at the moment. Please try again shortly."
		}
		return "I'm having a brief issue with my translation service. Please try your request again in a moment."
	default:
		if transient {
			return "Hello! I'm Curio, and I'm currently experiencing high traffic. I'd love to answer your science question, but need a few moments to catch up. Please try again shortly!"
		}
		return "Hello from Curio! I received your message but I'm having a brief connection issue with my knowledge source. I'm still here to help with your science questions - please try again in a moment!"
	}
}
