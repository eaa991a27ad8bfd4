package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/documind-ai/documind/internal/session"
)

// View renders the active step.
func (m model) View() string {
	if m.quitting || !m.ready {
		return ""
	}

	var body string
	switch m.sess.Step() {
	case session.StepOnboarding:
		body = m.viewOnboarding()
	case session.StepParsing:
		body = m.viewParsing()
	case session.StepAssurance:
		body = m.viewAssurance()
	case session.StepChat:
		body = m.viewChat()
	}

	return lipgloss.JoinVertical(lipgloss.Left, m.viewHeader(), body)
}

func (m model) viewHeader() string {
	title := styleHeader.Render("DOCUMIND")
	meta := ""
	if m.sess.Step() == session.StepChat {
		p := m.sess.Persona()
		meta = styleHeaderMeta.Render(fmt.Sprintf("  Context: %s  |  %s Mode", p.DocTitle, strings.ToUpper(p.Role)))
	}
	return title + meta + "\n"
}

func (m model) viewOnboarding() string {
	var b strings.Builder
	b.WriteString(styleHeader.Render("Initialize Analysis"))
	b.WriteString("\n")
	b.WriteString(styleHint.Render("Configure your session parameters to begin."))
	b.WriteString("\n\n")

	for i := range m.inputs {
		label := styleLabel
		if i == m.focus {
			label = styleLabelFocused
		}
		b.WriteString(label.Render(fieldLabels[i]))
		b.WriteString("\n")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
		if i == fieldDocTopic {
			b.WriteString("\n")
		}
	}

	if m.errText != "" {
		b.WriteString("\n")
		b.WriteString(styleError.Render(m.errText))
	}

	b.WriteString("\n\n")
	b.WriteString(styleStatusBar.Render("tab: next field • enter on path: upload • esc: quit"))
	return b.String()
}

func (m model) viewParsing() string {
	return fmt.Sprintf("\n  %s %s\n", m.spin.View(), styleHint.Render("Extracting semantic structure..."))
}

func (m model) viewAssurance() string {
	doc := m.sess.Document()
	if doc == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(styleHeader.Render("Detected Structure"))
	b.WriteString("\n")
	b.WriteString(styleHint.Render(fmt.Sprintf("Review the outline extracted from %q before starting the session.", m.sess.Persona().DocTitle)))
	b.WriteString("\n\n")

	var entries []string
	for _, e := range doc.TOC {
		entries = append(entries, styleTocMark.Render("• ")+styleTocEntry.Render(e))
	}
	b.WriteString(stylePanel.Render(strings.Join(entries, "\n")))
	b.WriteString("\n")

	if m.busy {
		b.WriteString("\n")
		b.WriteString(m.spin.View())
		b.WriteString(styleHint.Render(" Initializing AI session..."))
	}
	if m.errText != "" {
		b.WriteString("\n")
		b.WriteString(styleError.Render(m.errText))
	}

	b.WriteString("\n\n")
	b.WriteString(styleStatusBar.Render("enter/y: looks right, start chat • r: retake • esc: quit"))
	return b.String()
}

func (m model) viewChat() string {
	var b strings.Builder
	b.WriteString(m.transcript.View())
	b.WriteString("\n")
	if m.busy {
		b.WriteString(m.spin.View())
		b.WriteString(styleHint.Render(" thinking..."))
	} else if m.errText != "" {
		b.WriteString(styleError.Render(m.errText))
	}
	b.WriteString("\n")
	b.WriteString(m.chatInput.View())
	b.WriteString("\n")
	b.WriteString(styleStatusBar.Render("enter: send • C-r: new document • esc: quit"))
	return b.String()
}

func (m model) transcriptHeight() int {
	h := m.height - 6
	if h < 3 {
		h = 3
	}
	return h
}

// refreshTranscript re-renders the message history into the viewport and
// scrolls to the newest turn.
func (m *model) refreshTranscript() {
	width := m.width
	if width <= 0 {
		width = 80
	}
	m.transcript.SetContent(renderMessages(m.sess.Messages(), width))
	m.transcript.GotoBottom()
}

func renderMessages(msgs []session.Message, width int) string {
	wrap := lipgloss.NewStyle().Width(width)
	var blocks []string
	for _, msg := range msgs {
		var tag, body string
		if msg.Role == session.RoleUser {
			tag = styleUserTag.Render("YOU")
			body = styleUserMsg.Render(msg.Text)
		} else {
			tag = styleModelTag.Render("DOCUMIND AI")
			body = styleModelMsg.Render(msg.Text)
		}
		blocks = append(blocks, wrap.Render(tag+"\n"+body))
	}
	return strings.Join(blocks, "\n\n")
}
