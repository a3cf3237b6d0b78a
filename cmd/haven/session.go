package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/havenai/haven-go/chat"
	"github.com/havenai/haven-go/config"
	"github.com/havenai/haven-go/core"
	"github.com/havenai/haven-go/llm"
)

// SessionState holds everything owned by one chat session. Sessions share
// nothing, so concurrent sessions would each get their own state.
type SessionState struct {
	Conversation *chat.Conversation
}

// turn carries one user turn from Prep to Exec.
type turn struct {
	conversation *chat.Conversation
}

// turnResult carries the assistant reply out of Exec.
type turnResult struct {
	reply string
}

// sessionStep implements core.Step for the interactive terminal session.
type sessionStep struct {
	responder *chat.Responder
	cfg       *config.Config
	in        *bufio.Reader
	out       io.Writer
	firstRun  bool
}

func newSessionStep(responder *chat.Responder, cfg *config.Config, in io.Reader, out io.Writer) *sessionStep {
	return &sessionStep{
		responder: responder,
		cfg:       cfg,
		in:        bufio.NewReader(in),
		out:       out,
		firstRun:  true,
	}
}

// Prep renders pending output and collects the next user turn. The clear
// and exit commands are handled here; only real messages reach Exec.
func (s *sessionStep) Prep(state *SessionState) (turn, bool) {
	if s.firstRun {
		fmt.Fprintf(s.out, "%s\n%s\n\n", s.cfg.App.Title, s.cfg.App.WarningMessage)
		for _, msg := range state.Conversation.Displayed() {
			s.render(msg)
		}
		s.firstRun = false
	}

	for {
		fmt.Fprint(s.out, "You: ")
		line, err := s.in.ReadString('\n')
		if err != nil {
			return turn{}, false
		}
		input := strings.TrimSpace(line)

		switch strings.ToLower(input) {
		case "exit":
			return turn{}, false
		case "clear":
			state.Conversation.Clear()
			s.render(state.Conversation.Last())
			continue
		case "":
			fmt.Fprintln(s.out, "Please enter a message, 'clear' to reset, or 'exit' to quit.")
			continue
		}

		state.Conversation.Append(llm.RoleUser, input)
		return turn{conversation: state.Conversation}, true
	}
}

// Exec produces the assistant reply. Respond never fails; the error return
// exists only to satisfy the step contract.
func (s *sessionStep) Exec(t turn) (turnResult, error) {
	return turnResult{reply: s.responder.Respond(context.Background(), t.conversation)}, nil
}

// Post renders the reply, records it, and keeps the session loop going.
func (s *sessionStep) Post(state *SessionState, t turn, result turnResult, executed bool) core.Action {
	if !executed {
		fmt.Fprintln(s.out, "Goodbye!")
		return core.ActionSuccess
	}

	state.Conversation.Append(llm.RoleAssistant, result.reply)
	s.render(state.Conversation.Last())
	return core.ActionContinue
}

// render writes one displayed message with a role label.
func (s *sessionStep) render(msg llm.Message) {
	label := "Assistant"
	if msg.Role == llm.RoleUser {
		label = "You"
	}
	fmt.Fprintf(s.out, "%s: %s\n\n", label, msg.Content)
}

// Fallback supplies a reply if Exec ever returns an error.
func (s *sessionStep) Fallback(err error) turnResult {
	return turnResult{reply: "I'm sorry, I encountered an error and couldn't process your request. Please try again."}
}
