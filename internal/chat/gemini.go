package chat

import (
	"context"
	"errors"

	genai "google.golang.org/genai"
)

// Gemini implements Provider against the Google GenAI API.
type Gemini struct {
	client *genai.Client
	model  string
}

func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, errors.New("missing GEMINI_API_KEY")
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}
	c, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, err
	}
	return &Gemini{client: c, model: model}, nil
}

func (g *Gemini) StartChat(ctx context.Context, systemInstruction string, temperature float32) (Conversation, error) {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
		Temperature:       genai.Ptr(temperature),
	}
	c, err := g.client.Chats.Create(ctx, g.model, cfg, nil)
	if err != nil {
		return nil, err
	}
	return &geminiConversation{chat: c}, nil
}

type geminiConversation struct {
	chat *genai.Chat
}

func (c *geminiConversation) SendMessage(ctx context.Context, text string) (string, error) {
	res, err := c.chat.SendMessage(ctx, genai.Part{Text: text})
	if err != nil {
		return "", err
	}
	return res.Text(), nil
}
