package llm

import "strings"

const storeFAQ = `
Store Information:
- Shipping Policy: We offer free shipping on orders over $50. Standard shipping takes 5-7 business days. Express shipping (2-3 days) is available for $15.
- Return/Refund Policy: We accept returns within 30 days of purchase. Items must be unused and in original packaging. Refunds are processed within 5-10 business days.
- Support Hours: Our customer support team is available Monday-Friday, 9 AM - 6 PM EST. We aim to respond to all inquiries within 24 hours.
- Contact: You can reach us at support@example.com or call 1-800-123-4567.
`

// SystemPrompt is the instruction preamble sent to every provider.
const SystemPrompt = `You are a helpful support agent for a small e-commerce store. Answer clearly and concisely.
` + storeFAQ + `
Be friendly, professional, and helpful. If you don't know something, admit it and offer to connect the user with a human agent.`

// HistoryWindow bounds how many prior messages are sent to a provider.
// Recency based, not token based.
const HistoryWindow = 10

// Window returns the most recent HistoryWindow messages of history,
// preserving order. Shorter histories are returned as-is.
func Window(history []Message) []Message {
	if len(history) <= HistoryWindow {
		return history
	}
	return history[len(history)-HistoryWindow:]
}

// FlattenPrompt renders the system prompt, windowed history, and the new
// user message into a single text prompt for completion-style backends.
// The trailing "Assistant:" marker cues the model to continue as the agent.
func FlattenPrompt(history []Message, userMessage string) string {
	var b strings.Builder
	b.WriteString(SystemPrompt)
	b.WriteString("\n\n")

	for _, msg := range Window(history) {
		label := "User"
		if msg.Role == RoleAssistant {
			label = "Assistant"
		}
		b.WriteString(label)
		b.WriteString(": ")
		b.WriteString(msg.Content)
		b.WriteString("\n")
	}

	b.WriteString("User: ")
	b.WriteString(userMessage)
	b.WriteString("\nAssistant:")
	return b.String()
}
