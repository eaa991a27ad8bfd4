package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/documind-ai/documind/internal/chat"
	"github.com/documind-ai/documind/internal/ingest"
	"github.com/documind-ai/documind/internal/session"
)

type stubExtractor struct{ pages []string }

func (s stubExtractor) ExtractPages(data []byte) ([]string, error) { return s.pages, nil }

type stubConversation struct{ err error }

func (c stubConversation) SendMessage(ctx context.Context, text string) (string, error) {
	if c.err != nil {
		return "", c.err
	}
	return "an answer [Page 1]", nil
}

type stubProvider struct{ err error }

func (p stubProvider) StartChat(ctx context.Context, systemInstruction string, temperature float32) (chat.Conversation, error) {
	return stubConversation{err: p.err}, nil
}

func testOptions() Options {
	return Options{
		Ingestor: ingest.NewIngestor(stubExtractor{pages: []string{"Front matter\n1. Introduction\nbody"}}),
		NewProvider: func(ctx context.Context) (chat.Provider, error) {
			return stubProvider{}, nil
		},
		Temperature: 0.3,
	}
}

func filledModel(t *testing.T, opts Options) model {
	t.Helper()
	m := newModel(session.New(), opts)
	m.ready = true
	m.width, m.height = 80, 24
	values := []string{"Finance", "Banking", "Senior Analyst", "Q3 Report", "Revenue", "report.pdf"}
	for i, v := range values {
		m.inputs[i].SetValue(v)
	}
	return m
}

func enterKey() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyEnter} }

func toAssurance(t *testing.T, m model) model {
	t.Helper()
	next, cmd := m.submitOnboarding()
	m = next.(model)
	require.NotNil(t, cmd)
	require.Equal(t, session.StepParsing, m.sess.Step())

	doc, err := m.ingestor.Ingest(nil)
	require.NoError(t, err)
	next, _ = m.Update(parseResultMsg{doc: doc})
	m = next.(model)
	require.Equal(t, session.StepAssurance, m.sess.Step())
	return m
}

func toChat(t *testing.T, m model) model {
	t.Helper()
	m = toAssurance(t, m)
	next, cmd := m.Update(enterKey())
	m = next.(model)
	require.True(t, m.busy)
	require.NotNil(t, cmd)

	res := m.initCmd()()
	next, _ = m.Update(res)
	m = next.(model)
	require.Equal(t, session.StepChat, m.sess.Step())
	return m
}

func TestSubmitOnboarding_RequiresCompleteForm(t *testing.T) {
	m := filledModel(t, testOptions())
	m.inputs[fieldRole].SetValue("")

	next, cmd := m.submitOnboarding()
	m = next.(model)
	assert.Nil(t, cmd)
	assert.Equal(t, session.StepOnboarding, m.sess.Step())
	assert.NotEmpty(t, m.errText)
}

func TestParseFailureReturnsToOnboarding(t *testing.T) {
	m := filledModel(t, testOptions())
	next, _ := m.submitOnboarding()
	m = next.(model)

	next, _ = m.Update(parseResultMsg{err: errors.New("broken xref")})
	m = next.(model)
	assert.Equal(t, session.StepOnboarding, m.sess.Step())
	assert.False(t, m.busy)
	assert.Contains(t, m.errText, "Could not parse")
	assert.True(t, m.sess.Persona().Complete(), "persona is retained after a parse failure")
}

func TestInitFailureStaysOnAssurance(t *testing.T) {
	m := toAssurance(t, filledModel(t, testOptions()))
	next, _ := m.Update(enterKey())
	m = next.(model)

	next, _ = m.Update(initResultMsg{err: errors.New("invalid credential")})
	m = next.(model)
	assert.Equal(t, session.StepAssurance, m.sess.Step())
	assert.False(t, m.busy)
	assert.Contains(t, m.errText, "Failed to initialize AI")
}

func TestConfirmReachesChatWithGreeting(t *testing.T) {
	m := toChat(t, filledModel(t, testOptions()))

	msgs := m.sess.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, session.RoleModel, msgs[0].Role)
	assert.Contains(t, msgs[0].Text, "Q3 Report")
	assert.Contains(t, m.chatInput.Placeholder, "Senior Analyst")
}

func TestSendAppendsUserThenModel(t *testing.T) {
	m := toChat(t, filledModel(t, testOptions()))

	m.chatInput.SetValue("what about margins?")
	next, cmd := m.Update(enterKey())
	m = next.(model)
	require.True(t, m.busy)
	require.NotNil(t, cmd)

	msgs := m.sess.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, session.RoleUser, msgs[1].Role)
	assert.Equal(t, "what about margins?", msgs[1].Text)

	next, _ = m.Update(sendResultMsg{answer: "an answer [Page 1]"})
	m = next.(model)
	assert.False(t, m.busy)
	msgs = m.sess.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, session.RoleModel, msgs[2].Role)
}

func TestSendFailureAppendsApologyAndStaysActive(t *testing.T) {
	m := toChat(t, filledModel(t, testOptions()))

	m.chatInput.SetValue("q")
	next, _ := m.Update(enterKey())
	m = next.(model)

	next, _ = m.Update(sendResultMsg{err: errors.New("network down")})
	m = next.(model)

	msgs := m.sess.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, session.RoleModel, msgs[2].Role)
	assert.Contains(t, msgs[2].Text, "Please try again")
	assert.Equal(t, session.StepChat, m.sess.Step())
	assert.True(t, m.sess.Conversation().Active())
}

func TestSendGatedWhileBusy(t *testing.T) {
	m := toChat(t, filledModel(t, testOptions()))

	m.chatInput.SetValue("first")
	next, _ := m.Update(enterKey())
	m = next.(model)
	require.True(t, m.busy)
	before := len(m.sess.Messages())

	m.chatInput.SetValue("second")
	next, cmd := m.Update(enterKey())
	m = next.(model)
	assert.Nil(t, cmd)
	assert.Len(t, m.sess.Messages(), before, "a send issued while one is pending must be rejected")
}

func TestNewDocumentFromChat(t *testing.T) {
	m := toChat(t, filledModel(t, testOptions()))

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	m = next.(model)
	assert.Equal(t, session.StepOnboarding, m.sess.Step())
	assert.Nil(t, m.sess.Document())
	assert.Nil(t, m.sess.Conversation())
}

func TestRenderMessages(t *testing.T) {
	msgs := []session.Message{
		{Role: session.RoleUser, Text: "hello"},
		{Role: session.RoleModel, Text: "hi there"},
	}
	out := renderMessages(msgs, 40)
	assert.Contains(t, out, "YOU")
	assert.Contains(t, out, "DOCUMIND AI")
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "hi there")
}
