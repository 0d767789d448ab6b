package ai

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"sciventure/storage"
)

// fakeGenerator records the last call and returns a canned result.
type fakeGenerator struct {
	lastHistory []Message
	lastPrompt  string
	result      Result
}

func (f *fakeGenerator) Generate(ctx context.Context, history []Message, prompt string) Result {
	f.lastHistory = history
	f.lastPrompt = prompt
	return f.result
}

func TestUserFirstDropsLeadingAssistantTurns(t *testing.T) {
	history := []Message{
		{Role: RoleAssistant, Content: "Welcome back!"},
		{Role: RoleUser, Content: "Hi"},
		{Role: RoleAssistant, Content: "Hello!"},
		{Role: RoleUser, Content: "Tell me about atoms"},
	}

	normalized := UserFirst(history)
	assert.Len(t, normalized, 3)
	assert.Equal(t, RoleUser, normalized[0].Role)
	assert.Equal(t, "Hi", normalized[0].Content)
}

func TestUserFirstAllAssistantHistoryBecomesEmpty(t *testing.T) {
	history := []Message{
		{Role: RoleAssistant, Content: "Welcome!"},
		{Role: RoleAssistant, Content: "Still here."},
	}
	assert.Nil(t, UserFirst(history))
	assert.Nil(t, UserFirst(nil))
}

func TestGenerateReplyReturnsModelText(t *testing.T) {
	gen := &fakeGenerator{result: Result{Text: "Atoms are tiny!", Outcome: OutcomeOK}}
	orch := NewOrchestrator(storage.NewEmptyMemoryStorage(), gen)

	reply := orch.GenerateReply(context.Background(), nil, "What are atoms?", ModeChat, EnglishToBengali)
	assert.Equal(t, "Atoms are tiny!", reply)
	assert.Contains(t, gen.lastPrompt, `"What are atoms?"`)
}

func TestGenerateReplyNormalizesHistoryBeforeSending(t *testing.T) {
	gen := &fakeGenerator{result: Result{Text: "ok", Outcome: OutcomeOK}}
	orch := NewOrchestrator(storage.NewEmptyMemoryStorage(), gen)

	history := []Message{
		{Role: RoleAssistant, Content: "greeting"},
		{Role: RoleUser, Content: "first question"},
	}
	orch.GenerateReply(context.Background(), history, "next question", ModeChat, EnglishToBengali)

	assert.Len(t, gen.lastHistory, 1)
	assert.Equal(t, RoleUser, gen.lastHistory[0].Role)
}

func TestGenerateReplyFallbackNeverExposesRawError(t *testing.T) {
	gen := &fakeGenerator{result: Result{Outcome: OutcomeTransient, Err: errors.New("429 rate limited")}}
	orch := NewOrchestrator(storage.NewEmptyMemoryStorage(), gen)

	reply := orch.GenerateReply(context.Background(), nil, "hello", ModeChat, EnglishToBengali)
	assert.NotContains(t, reply, "429")
	assert.Contains(t, reply, "Curio")
	assert.Contains(t, reply, "high traffic")

	gen.result = Result{Outcome: OutcomeConfig, Err: errors.New("missing api key")}
	reply = orch.GenerateReply(context.Background(), nil, "hello", ModeChat, EnglishToBengali)
	assert.NotContains(t, reply, "api key")
	assert.Contains(t, reply, "Curio")
}

func TestGenerateReplyFallbackVariesByMode(t *testing.T) {
	gen := &fakeGenerator{result: Result{Outcome: OutcomeTransient, Err: errors.New("503")}}
	orch := NewOrchestrator(storage.NewEmptyMemoryStorage(), gen)

	analyze := orch.GenerateReply(context.Background(), nil, "paper", ModeAnalyze, EnglishToBengali)
	research := orch.GenerateReply(context.Background(), nil, "topic", ModeDeepResearch, EnglishToBengali)
	assert.NotEqual(t, analyze, research)
	assert.Contains(t, analyze, "research paper")
	assert.Contains(t, research, "research")
}

func TestMaybeTranslateNilWhenNotRequested(t *testing.T) {
	gen := &fakeGenerator{result: Result{Text: "does not matter", Outcome: OutcomeOK}}
	orch := NewOrchestrator(storage.NewEmptyMemoryStorage(), gen)

	assert.Nil(t, orch.MaybeTranslate(context.Background(), "Hello", false))
}

func TestMaybeTranslateReturnsTranslationOrSentinel(t *testing.T) {
	gen := &fakeGenerator{result: Result{Text: "হ্যালো", Outcome: OutcomeOK}}
	orch := NewOrchestrator(storage.NewEmptyMemoryStorage(), gen)

	got := orch.MaybeTranslate(context.Background(), "Hello", true)
	assert.NotNil(t, got)
	assert.Equal(t, "হ্যালো", *got)

	gen.result = Result{Outcome: OutcomeTransient, Err: errors.New("503")}
	got = orch.MaybeTranslate(context.Background(), "Hello", true)
	assert.NotNil(t, got)
	assert.Equal(t, TranslationUnavailable, *got)
}

func TestPersistExchangeAlwaysWritesHistory(t *testing.T) {
	store := storage.NewEmptyMemoryStorage()
	gen := &fakeGenerator{result: Result{Outcome: OutcomeTransient, Err: errors.New("503")}}
	orch := NewOrchestrator(store, gen)

	reply := orch.GenerateReply(context.Background(), nil, "What is gravity?", ModeChat, EnglishToBengali)
	saved, err := orch.PersistExchange(7, "What is gravity?", reply)
	assert.NoError(t, err)
	assert.NotZero(t, saved.ID)

	history, err := store.GetUserChatHistory(7)
	assert.NoError(t, err)
	assert.Len(t, history, 1)
	assert.Equal(t, "What is gravity?", history[0].Message)
	assert.Equal(t, reply, history[0].Response)
}

func TestAnalyzeDocumentTruncatesLongText(t *testing.T) {
	gen := &fakeGenerator{result: Result{Text: "summary", Outcome: OutcomeOK}}
	orch := NewOrchestrator(storage.NewEmptyMemoryStorage(), gen)

	long := strings.Repeat("a", maxAnalysisRunes+500)
	got := orch.AnalyzeDocument(context.Background(), long)
	assert.Equal(t, "summary", got)
	assert.Contains(t, gen.lastPrompt, truncationMarker)
	assert.NotContains(t, gen.lastPrompt, strings.Repeat("a", maxAnalysisRunes+1))
}

func TestAnalyzeDocumentShortTextUntouched(t *testing.T) {
	gen := &fakeGenerator{result: Result{Text: "summary", Outcome: OutcomeOK}}
	orch := NewOrchestrator(storage.NewEmptyMemoryStorage(), gen)

	orch.AnalyzeDocument(context.Background(), "short document")
	assert.NotContains(t, gen.lastPrompt, truncationMarker)
	assert.Contains(t, gen.lastPrompt, "short document")
}
