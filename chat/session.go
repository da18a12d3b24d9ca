package chat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/pthm-cable/lumina/config"
)

// SessionConfig tunes a Session.
type SessionConfig struct {
	Timeout         time.Duration
	Greeting        string // first model message, already formatted
	EmptyReply      string
	Unavailable     string
	MissingKeyReply string
}

// SessionConfigFromConfig builds session settings from the chat config section,
// greeting on behalf of owner.
func SessionConfigFromConfig(cfg *config.ChatConfig, owner string) SessionConfig {
	greeting := cfg.Greeting
	if strings.Contains(greeting, "%s") {
		greeting = fmt.Sprintf(greeting, owner)
	}
	return SessionConfig{
		Timeout:         cfg.Timeout,
		Greeting:        greeting,
		EmptyReply:      cfg.EmptyReply,
		Unavailable:     cfg.Unavailable,
		MissingKeyReply: cfg.MissingKeyReply,
	}
}

type result struct {
	reply string
	err   error
}

// Session is a conversation driven from the render loop. Submit hands the
// request to a worker goroutine; Poll, called once per frame, applies the
// reply. All methods must be called from the same goroutine.
type Session struct {
	sender Sender
	cfg    SessionConfig

	messages []Message
	loading  bool
	closed   bool

	results chan result
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup

	now func() time.Time
}

// NewSession starts a conversation with the greeting as its first message.
func NewSession(sender Sender, cfg SessionConfig) *Session {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Session{
		sender:  sender,
		cfg:     cfg,
		results: make(chan result, 1),
		ctx:     ctx,
		cancel:  cancel,
		now:     time.Now,
	}
	if cfg.Greeting != "" {
		s.append(RoleModel, cfg.Greeting)
	}
	return s
}

// Submit appends text as a user message and sends it in the background.
func (s *Session) Submit(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	switch {
	case s.closed:
		return ErrClosed
	case text == "":
		return ErrEmptyMessage
	case s.loading:
		return ErrBusy
	}

	// The model sees the conversation before this message plus the message itself
	history := s.Messages()
	s.append(RoleUser, text)
	s.loading = true

	var (
		reqCtx context.Context
		cancel context.CancelFunc
	)
	if s.cfg.Timeout > 0 {
		reqCtx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
	} else {
		reqCtx, cancel = context.WithCancel(ctx)
	}
	stop := context.AfterFunc(s.ctx, cancel)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer stop()
		defer cancel()

		reply, err := s.sender.Send(reqCtx, history, text)
		s.results <- result{reply: reply, err: err}
	}()
	return nil
}

// Poll applies a finished reply, if any. It reports whether the conversation
// changed.
func (s *Session) Poll() bool {
	if !s.loading {
		return false
	}
	select {
	case r := <-s.results:
		s.loading = false
		s.append(RoleModel, s.replyText(r))
		return true
	default:
		return false
	}
}

func (s *Session) replyText(r result) string {
	if r.err == nil {
		return r.reply
	}
	switch {
	case errors.Is(r.err, ErrEmptyReply):
		return s.cfg.EmptyReply
	case errors.Is(r.err, ErrAPIKeyMissing):
		slog.Warn("chat request failed", "error", r.err)
		return s.cfg.MissingKeyReply
	default:
		slog.Warn("chat request failed", "error", r.err)
		return s.cfg.Unavailable
	}
}

func (s *Session) append(role Role, text string) {
	s.messages = append(s.messages, Message{Role: role, Text: text, Timestamp: s.now()})
}

// Messages returns a copy of the conversation.
func (s *Session) Messages() []Message {
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Loading reports whether a reply is pending.
func (s *Session) Loading() bool {
	return s.loading
}

// Close cancels any pending request and waits for the worker to exit.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.cancel()
	s.wg.Wait()
	s.loading = false
}
