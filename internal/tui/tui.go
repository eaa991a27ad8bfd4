package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/documind-ai/documind/internal/chat"
	"github.com/documind-ai/documind/internal/ingest"
	"github.com/documind-ai/documind/internal/session"
)

// ProviderFactory defers provider construction (and credential validation) to
// the moment the user confirms the outline.
type ProviderFactory func(ctx context.Context) (chat.Provider, error)

// Options wires the TUI to the pipeline and the AI provider.
type Options struct {
	Ingestor    *ingest.Ingestor
	NewProvider ProviderFactory
	Temperature float32
	InitialPath string
}

// onboarding form field order
const (
	fieldDomain = iota
	fieldIndustry
	fieldRole
	fieldDocTitle
	fieldDocTopic
	fieldPath
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Your Domain",
	"Industry",
	"Your Role",
	"Document Title",
	"Document Topic",
	"PDF Path",
}

var fieldPlaceholders = [fieldCount]string{
	"e.g. Finance",
	"e.g. Banking",
	"e.g. Senior Analyst",
	"e.g. Q3 Earnings Report",
	"e.g. Revenue Growth & Risks",
	"e.g. ./report.pdf",
}

// message types

type parseResultMsg struct {
	doc *ingest.ParsedDocument
	err error
}

type initResultMsg struct {
	conv *chat.Manager
	err  error
}

type sendResultMsg struct {
	answer string
	err    error
}

// model

type model struct {
	sess        *session.Session
	ingestor    *ingest.Ingestor
	newProvider ProviderFactory
	temperature float32

	inputs     [fieldCount]textinput.Model
	focus      int
	spin       spinner.Model
	transcript viewport.Model
	chatInput  textinput.Model

	// busy gates upload, confirm, and send while one async operation is
	// outstanding, so turns are strictly serialized.
	busy bool

	errText  string
	width    int
	height   int
	ready    bool
	quitting bool
}

func newModel(sess *session.Session, opts Options) model {
	var inputs [fieldCount]textinput.Model
	for i := range inputs {
		ti := textinput.New()
		ti.Placeholder = fieldPlaceholders[i]
		ti.Prompt = "> "
		ti.CharLimit = 256
		inputs[i] = ti
	}
	inputs[fieldPath].SetValue(opts.InitialPath)
	inputs[fieldDomain].Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorAccent)

	ci := textinput.New()
	ci.Prompt = "> "
	ci.CharLimit = 2048

	return model{
		sess:        sess,
		ingestor:    opts.Ingestor,
		newProvider: opts.NewProvider,
		temperature: opts.Temperature,
		inputs:      inputs,
		spin:        sp,
		transcript:  viewport.New(0, 0),
		chatInput:   ci,
	}
}

// Run starts the interactive session and blocks until it exits.
func Run(sess *session.Session, opts Options) error {
	if opts.Ingestor == nil {
		opts.Ingestor = ingest.NewIngestor(nil)
	}
	p := tea.NewProgram(newModel(sess, opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

// commands

func (m model) parseCmd(path string) tea.Cmd {
	ingestor := m.ingestor
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		if err != nil {
			return parseResultMsg{err: fmt.Errorf("read document: %w", err)}
		}
		doc, err := ingestor.Ingest(data)
		return parseResultMsg{doc: doc, err: err}
	}
}

func (m model) initCmd() tea.Cmd {
	persona := m.sess.Persona()
	doc := m.sess.Document()
	factory := m.newProvider
	temp := m.temperature
	return func() tea.Msg {
		ctx := context.Background()
		provider, err := factory(ctx)
		if err != nil {
			return initResultMsg{err: err}
		}
		mgr := chat.NewManager(provider, temp)
		if err := mgr.Initialize(ctx, persona, doc.FullText); err != nil {
			return initResultMsg{err: err}
		}
		return initResultMsg{conv: mgr}
	}
}

func (m model) sendCmd(query string) tea.Cmd {
	conv := m.sess.Conversation()
	return func() tea.Msg {
		answer, err := conv.Send(context.Background(), query)
		return sendResultMsg{answer: answer, err: err}
	}
}

// Update handles messages.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.transcript.Width = m.width
		m.transcript.Height = m.transcriptHeight()
		m.refreshTranscript()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		switch m.sess.Step() {
		case session.StepOnboarding:
			return m.updateOnboarding(msg)
		case session.StepAssurance:
			return m.updateAssurance(msg)
		case session.StepChat:
			return m.updateChat(msg)
		}
		return m, nil

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case parseResultMsg:
		m.busy = false
		if msg.err != nil {
			_ = m.sess.FailParse()
			m.errText = "Could not parse the document: " + msg.err.Error()
			return m, nil
		}
		_ = m.sess.CompleteParse(msg.doc)
		m.errText = ""
		return m, nil

	case initResultMsg:
		m.busy = false
		if msg.err != nil {
			// Stay on the assurance panel; the user may fix the key and retry.
			m.errText = "Failed to initialize AI: " + msg.err.Error()
			return m, nil
		}
		_ = m.sess.BeginChat(msg.conv)
		m.errText = ""
		p := m.sess.Persona()
		greeting := fmt.Sprintf(
			"Hello. I have analyzed **%s**. As a specialist in **%s**, I am ready to assist you with your **%s** tasks. What specific information do you need?",
			p.DocTitle, p.DocTopic, p.Role)
		_, _ = m.sess.Append(session.RoleModel, greeting)
		m.chatInput.Placeholder = fmt.Sprintf("Ask as a %s...", p.Role)
		m.chatInput.Focus()
		m.refreshTranscript()
		return m, textinput.Blink

	case sendResultMsg:
		m.busy = false
		if msg.err != nil {
			// The session stays active; surface a synthetic model turn.
			_, _ = m.sess.Append(session.RoleModel,
				"I encountered an error retrieving that information. Please try again.")
		} else {
			_, _ = m.sess.Append(session.RoleModel, msg.answer)
		}
		m.refreshTranscript()
		return m, nil
	}

	return m, nil
}

func (m model) updateOnboarding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Next):
		m.setFocus((m.focus + 1) % fieldCount)
		return m, textinput.Blink

	case key.Matches(msg, keys.Prev):
		m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		return m, textinput.Blink

	case key.Matches(msg, keys.Enter):
		if m.focus < fieldPath {
			m.setFocus(m.focus + 1)
			return m, textinput.Blink
		}
		return m.submitOnboarding()
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// submitOnboarding validates the form and kicks off parsing.
func (m model) submitOnboarding() (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}

	persona := m.persona()
	if err := m.sess.SetPersona(persona); err != nil {
		return m, nil
	}
	path := strings.TrimSpace(m.inputs[fieldPath].Value())
	if !persona.Complete() || path == "" {
		m.errText = "Fill in all fields and a document path to continue."
		return m, nil
	}
	if err := m.sess.BeginParse(); err != nil {
		m.errText = err.Error()
		return m, nil
	}

	// Extension check is advisory only.
	m.errText = ""
	if strings.ToLower(filepath.Ext(path)) != ".pdf" {
		m.errText = "Note: file does not have a .pdf extension; attempting anyway."
	}

	m.busy = true
	return m, tea.Batch(m.spin.Tick, m.parseCmd(path))
}

func (m model) updateAssurance(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Confirm):
		if m.busy {
			return m, nil
		}
		m.busy = true
		m.errText = ""
		return m, tea.Batch(m.spin.Tick, m.initCmd())

	case key.Matches(msg, keys.Retake):
		if m.busy {
			return m, nil
		}
		_ = m.sess.Retake()
		m.errText = ""
		m.setFocus(fieldPath)
		return m, textinput.Blink
	}
	return m, nil
}

func (m model) updateChat(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.NewDoc):
		if m.busy {
			return m, nil
		}
		_ = m.sess.Retake()
		m.errText = ""
		m.chatInput.Reset()
		m.setFocus(fieldPath)
		return m, textinput.Blink

	case key.Matches(msg, keys.Enter):
		if m.busy {
			return m, nil
		}
		query := strings.TrimSpace(m.chatInput.Value())
		if query == "" {
			return m, nil
		}
		if _, err := m.sess.Append(session.RoleUser, query); err != nil {
			return m, nil
		}
		m.chatInput.Reset()
		m.busy = true
		m.refreshTranscript()
		return m, tea.Batch(m.spin.Tick, m.sendCmd(query))
	}

	var cmd tea.Cmd
	m.chatInput, cmd = m.chatInput.Update(msg)
	return m, cmd
}

func (m *model) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

func (m model) persona() chat.Persona {
	return chat.Persona{
		Domain:   strings.TrimSpace(m.inputs[fieldDomain].Value()),
		Industry: strings.TrimSpace(m.inputs[fieldIndustry].Value()),
		Role:     strings.TrimSpace(m.inputs[fieldRole].Value()),
		DocTitle: strings.TrimSpace(m.inputs[fieldDocTitle].Value()),
		DocTopic: strings.TrimSpace(m.inputs[fieldDocTopic].Value()),
	}
}
