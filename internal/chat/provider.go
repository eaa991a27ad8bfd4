package chat

import (
	"context"
	"strings"
)

// Persona scopes a session to the user and the document they brought. All
// five fields are required before a document upload is accepted.
type Persona struct {
	Domain   string
	Industry string
	Role     string
	DocTitle string
	DocTopic string
}

// Complete reports whether every persona field is non-empty.
func (p Persona) Complete() bool {
	for _, v := range []string{p.Domain, p.Industry, p.Role, p.DocTitle, p.DocTopic} {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}

// Provider starts grounded chat contexts with a generative-AI backend.
type Provider interface {
	StartChat(ctx context.Context, systemInstruction string, temperature float32) (Conversation, error)
}

// Conversation is one live chat context held by the provider.
type Conversation interface {
	SendMessage(ctx context.Context, text string) (string, error)
}
