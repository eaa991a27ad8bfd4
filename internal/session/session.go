package session

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/documind-ai/documind/internal/chat"
	"github.com/documind-ai/documind/internal/ingest"
)

// Step is the single UI step the session is in. Exactly one step is active;
// transitions below are the only permitted mutation.
type Step int

const (
	StepOnboarding Step = iota
	StepParsing
	StepAssurance
	StepChat
)

func (s Step) String() string {
	switch s {
	case StepOnboarding:
		return "ONBOARDING"
	case StepParsing:
		return "PARSING"
	case StepAssurance:
		return "ASSURANCE"
	case StepChat:
		return "CHAT"
	}
	return "UNKNOWN"
}

// ErrIllegalTransition reports an operation that is not legal in the current
// step. Callers treat it as a no-op.
var ErrIllegalTransition = errors.New("illegal session transition")

type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Message is one visible conversation turn. The transcript is append-only.
type Message struct {
	ID        string `json:"id"`
	Role      Role   `json:"role"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"`
}

func newMessage(role Role, text string) Message {
	return Message{
		ID:        uuid.NewString(),
		Role:      role,
		Text:      text,
		Timestamp: time.Now().UnixMilli(),
	}
}

// Session drives the onboarding → parsing → assurance → chat flow for one
// document. It owns the parsed document, the transcript, and the single live
// conversation handle, which exists if and only if the step is StepChat.
type Session struct {
	step     Step
	persona  chat.Persona
	doc      *ingest.ParsedDocument
	messages []Message
	conv     *chat.Manager
}

func New() *Session {
	return &Session{step: StepOnboarding}
}

func (s *Session) Step() Step                       { return s.step }
func (s *Session) Persona() chat.Persona            { return s.persona }
func (s *Session) Document() *ingest.ParsedDocument { return s.doc }
func (s *Session) Conversation() *chat.Manager      { return s.conv }

// Messages returns the transcript in creation order.
func (s *Session) Messages() []Message {
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// SetPersona updates the persona. Only legal during onboarding; the persona
// is immutable once a document is in flight.
func (s *Session) SetPersona(p chat.Persona) error {
	if s.step != StepOnboarding {
		return ErrIllegalTransition
	}
	s.persona = p
	return nil
}

// BeginParse moves onboarding → parsing. Guarded by persona completeness;
// the caller triggers it on document selection.
func (s *Session) BeginParse() error {
	if s.step != StepOnboarding {
		return ErrIllegalTransition
	}
	if !s.persona.Complete() {
		return errors.New("persona incomplete: all fields are required before upload")
	}
	s.step = StepParsing
	return nil
}

// CompleteParse moves parsing → assurance with the freshly parsed document.
func (s *Session) CompleteParse(doc *ingest.ParsedDocument) error {
	if s.step != StepParsing || doc == nil {
		return ErrIllegalTransition
	}
	s.doc = doc
	s.step = StepAssurance
	return nil
}

// FailParse moves parsing → onboarding, discarding the document attempt.
// The persona is retained.
func (s *Session) FailParse() error {
	if s.step != StepParsing {
		return ErrIllegalTransition
	}
	s.doc = nil
	s.step = StepOnboarding
	return nil
}

// Retake abandons the current document and returns to onboarding. Legal from
// assurance and, for a fresh ingestion cycle, from chat; the parsed document,
// the transcript, and the live conversation are all discarded.
func (s *Session) Retake() error {
	if s.step != StepAssurance && s.step != StepChat {
		return ErrIllegalTransition
	}
	s.doc = nil
	s.messages = nil
	if s.conv != nil {
		s.conv.Reset()
		s.conv = nil
	}
	s.step = StepOnboarding
	return nil
}

// BeginChat moves assurance → chat after a successful conversation
// initialization, taking ownership of the live conversation handle. On
// initialization failure the caller simply never calls this, so the session
// stays in assurance.
func (s *Session) BeginChat(conv *chat.Manager) error {
	if s.step != StepAssurance || conv == nil || !conv.Active() {
		return ErrIllegalTransition
	}
	s.conv = conv
	s.step = StepChat
	return nil
}

// Append adds a message to the transcript. A no-op outside the chat step so
// stray sends can never mutate the visible history.
func (s *Session) Append(role Role, text string) (Message, error) {
	if s.step != StepChat {
		return Message{}, ErrIllegalTransition
	}
	msg := newMessage(role, text)
	s.messages = append(s.messages, msg)
	return msg, nil
}
