package assistantnode

import (
	"errors"
	"strings"
	"time"

	commandx "github.com/natthawee/shopflow/agent/command"
	statex "github.com/natthawee/shopflow/agent/state"
)

var (
	ErrInvalidMessage = errors.New("message is empty")
	ErrInvalidSession = errors.New("session id is empty")
)

type GraphInput struct {
	SessionID string
	Text      string
}

type GraphOutput struct {
	Reply string
}

// GraphState carries one message through the assistant graph. Reply chunks
// accumulate as nodes run and join into a single transport message at the
// end.
type GraphState struct {
	SessionID string
	Text      string
	Now       time.Time

	Session *statex.SessionState

	Cmd    commandx.Command
	CmdErr error

	Reply []string
}

func (in *GraphState) Say(chunk string) {
	if strings.TrimSpace(chunk) == "" {
		return
	}
	in.Reply = append(in.Reply, chunk)
}

func ValidateRequest(in GraphInput, nowFn func() time.Time) (*GraphState, error) {
	sessionID := strings.TrimSpace(in.SessionID)
	if sessionID == "" {
		return nil, ErrInvalidSession
	}

	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, ErrInvalidMessage
	}

	return &GraphState{
		SessionID: sessionID,
		Text:      text,
		Now:       nowFn().UTC(),
	}, nil
}
