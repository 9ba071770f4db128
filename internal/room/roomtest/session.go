// Package roomtest provides session fakes for exercising rooms without a network.
package roomtest

import (
	"errors"
	"strings"
	"sync"
)

var ErrClosed = errors.New("session closed")

// Session records every message sent to it.
type Session struct {
	id string

	mu     sync.Mutex
	sent   []string
	closed bool
}

func NewSession(id string) *Session {
	return &Session{id: id}
}

func (s *Session) ID() string { return s.id }

func (s *Session) Send(msg string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	s.sent = append(s.sent, msg)
	return nil
}

// Close makes every later Send fail, like a half-closed connection.
func (s *Session) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}

func (s *Session) Sent() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.sent...)
}

// WithPrefix returns the messages starting with "<command>:".
func (s *Session) WithPrefix(command string) []string {
	var out []string
	for _, msg := range s.Sent() {
		if strings.HasPrefix(msg, command+":") {
			out = append(out, msg)
		}
	}
	return out
}

func (s *Session) Last() string {
	sent := s.Sent()
	if len(sent) == 0 {
		return ""
	}
	return sent[len(sent)-1]
}

func (s *Session) Reset() {
	s.mu.Lock()
	s.sent = nil
	s.mu.Unlock()
}

// PairSet parses a "id:field,id:field" list into a map so tables can be
// compared without depending on pair order.
func PairSet(serialized string) map[string]string {
	out := map[string]string{}
	if serialized == "" {
		return out
	}
	for _, pair := range strings.Split(serialized, ",") {
		k, v, _ := strings.Cut(pair, ":")
		out[k] = v
	}
	return out
}
