// Package chat runs the portfolio assistant: a conversation log, a pluggable
// model backend and a non-blocking session for the render loop.
package chat

import (
	"context"
	"errors"
	"time"
)

// Role identifies who wrote a message.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Message is one entry of the conversation.
type Message struct {
	Role      Role
	Text      string
	Timestamp time.Time
}

var (
	// ErrAPIKeyMissing is returned when no model API key is configured.
	ErrAPIKeyMissing = errors.New("chat: API key missing")
	// ErrEmptyMessage is returned by Submit for blank input.
	ErrEmptyMessage = errors.New("chat: empty message")
	// ErrBusy is returned by Submit while a reply is still pending.
	ErrBusy = errors.New("chat: request already in flight")
	// ErrEmptyReply is returned by a Sender when the model produced no text.
	ErrEmptyReply = errors.New("chat: empty reply")
	// ErrClosed is returned by Submit after Close.
	ErrClosed = errors.New("chat: session closed")
)

// Sender sends text to a model given the conversation so far and returns
// the model's reply.
type Sender interface {
	Send(ctx context.Context, history []Message, text string) (string, error)
}

// SenderFunc adapts a function to Sender.
type SenderFunc func(ctx context.Context, history []Message, text string) (string, error)

func (f SenderFunc) Send(ctx context.Context, history []Message, text string) (string, error) {
	return f(ctx, history, text)
}

// Unavailable returns a Sender that always fails with err. It stands in for
// a model client that could not be created.
func Unavailable(err error) Sender {
	return SenderFunc(func(context.Context, []Message, string) (string, error) {
		return "", err
	})
}
