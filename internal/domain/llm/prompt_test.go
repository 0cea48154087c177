package llm_test

import (
	"fmt"
	"strings"
	"testing"

	"supportchat/internal/domain/llm"
)

func makeHistory(n int) []llm.Message {
	history := make([]llm.Message, 0, n)
	for i := 0; i < n; i++ {
		role := llm.RoleUser
		if i%2 == 1 {
			role = llm.RoleAssistant
		}
		history = append(history, llm.Message{Role: role, Content: fmt.Sprintf("turn-%d", i)})
	}
	return history
}

func TestWindow_ShortHistoryUnchanged(t *testing.T) {
	history := makeHistory(4)
	got := llm.Window(history)

	if len(got) != 4 {
		t.Fatalf("Expected 4 messages, got %d", len(got))
	}
	if got[0].Content != "turn-0" {
		t.Errorf("Expected first message 'turn-0', got %q", got[0].Content)
	}
}

func TestWindow_LongHistoryKeepsMostRecent(t *testing.T) {
	history := makeHistory(25)
	got := llm.Window(history)

	if len(got) != llm.HistoryWindow {
		t.Fatalf("Expected %d messages, got %d", llm.HistoryWindow, len(got))
	}
	if got[0].Content != "turn-15" {
		t.Errorf("Expected window to start at 'turn-15', got %q", got[0].Content)
	}
	if got[len(got)-1].Content != "turn-24" {
		t.Errorf("Expected window to end at 'turn-24', got %q", got[len(got)-1].Content)
	}
}

func TestWindow_Empty(t *testing.T) {
	if got := llm.Window(nil); len(got) != 0 {
		t.Errorf("Expected empty window, got %d messages", len(got))
	}
}

func TestFlattenPrompt_Structure(t *testing.T) {
	history := []llm.Message{
		{Role: llm.RoleUser, Content: "do you ship abroad?"},
		{Role: llm.RoleAssistant, Content: "we do"},
	}

	prompt := llm.FlattenPrompt(history, "how long does it take?")

	if !strings.HasPrefix(prompt, llm.SystemPrompt) {
		t.Error("Expected prompt to start with the system prompt")
	}
	if !strings.Contains(prompt, "User: do you ship abroad?\n") {
		t.Error("Expected history user turn in prompt")
	}
	if !strings.Contains(prompt, "Assistant: we do\n") {
		t.Error("Expected history assistant turn in prompt")
	}
	if !strings.HasSuffix(prompt, "User: how long does it take?\nAssistant:") {
		t.Errorf("Expected prompt to end with the new user turn, got tail %q", prompt[len(prompt)-60:])
	}
}

func TestFlattenPrompt_AppliesWindow(t *testing.T) {
	prompt := llm.FlattenPrompt(makeHistory(30), "latest")

	if strings.Contains(prompt, "turn-19\n") {
		t.Error("Expected messages before the window to be dropped")
	}
	if !strings.Contains(prompt, "turn-20\n") {
		t.Error("Expected the oldest in-window message to be present")
	}
}
