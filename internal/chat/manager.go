package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrNotActive reports a send attempted before a successful Initialize.
var ErrNotActive = errors.New("chat session not initialized")

const (
	// primingMessage forces credential and context errors to surface during
	// Initialize instead of on the user's first real query.
	primingMessage = "Acknowledge receipt of the document and stand by."

	emptyResponseFallback = "I processed that, but couldn't generate a text response."
)

// Manager owns the single live grounded conversation. A new Initialize
// replaces any prior conversation wholesale; two contexts never coexist.
type Manager struct {
	provider    Provider
	temperature float32
	conv        Conversation
}

func NewManager(p Provider, temperature float32) *Manager {
	return &Manager{provider: p, temperature: temperature}
}

// Active reports whether a grounded conversation is live.
func (m *Manager) Active() bool { return m.conv != nil }

// Initialize seeds a fresh provider chat with the persona-scoped system
// instruction embedding the full document text, then performs one priming
// exchange whose response is discarded. On any failure the manager stays
// (or returns to) uninitialized.
func (m *Manager) Initialize(ctx context.Context, p Persona, documentText string) error {
	conv, err := m.provider.StartChat(ctx, systemPrompt(p, documentText), m.temperature)
	if err != nil {
		m.conv = nil
		return fmt.Errorf("start chat: %w", err)
	}
	if _, err := conv.SendMessage(ctx, primingMessage); err != nil {
		m.conv = nil
		return fmt.Errorf("prime chat: %w", err)
	}
	m.conv = conv
	return nil
}

// Send forwards the query verbatim to the active conversation and returns the
// provider's text, or a safe placeholder when the provider returns nothing.
// The caller serializes Send calls; a provider failure leaves the
// conversation active so the session can continue.
func (m *Manager) Send(ctx context.Context, query string) (string, error) {
	if m.conv == nil {
		return "", ErrNotActive
	}
	text, err := m.conv.SendMessage(ctx, query)
	if err != nil {
		return "", fmt.Errorf("send message: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return emptyResponseFallback, nil
	}
	return text, nil
}

// Reset discards the live conversation, if any.
func (m *Manager) Reset() { m.conv = nil }
