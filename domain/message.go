// Package domain contains core concepts of the chat system.
// This file defines the Message entity and its identity rules.
// No runtime, network, or UI logic should be added here.
package domain

import (
	"math/rand"
	"time"
)

// Message is a single chat entry. The identifier is minted once at
// construction as wall-clock milliseconds plus a random fraction in
// [0,1); it is best-effort unique, not collision-proof.
type Message struct {
	actor string
	text  string
	id    float64
}

// NewMessage builds a Message for the given speaker and initial text.
// Both arguments may be empty. Construction always succeeds.
func NewMessage(actor, text string) *Message {
	return &Message{
		actor: actor,
		text:  text,
		id:    float64(time.Now().UnixMilli()) + rand.Float64(),
	}
}

// AppendToText concatenates more content onto the message in place.
// This is the only mutation entry point; callers sharing a Message
// across goroutines must serialize their appends.
func (m *Message) AppendToText(more string) {
	m.text += more
}

func (m *Message) Actor() string { return m.actor }

func (m *Message) Text() string { return m.text }

// ID never changes after construction.
func (m *Message) ID() float64 { return m.id }
