package room

import (
	"ludo-server/internal/shared"

	"github.com/sirupsen/logrus"
)

// Session is the transport handle of one connected client. Identity is the
// handle itself; ID is only used for logging.
type Session interface {
	ID() string
	Send(msg string) error
}

// send delivers one frame. Failures are expected when the peer is going away
// and are only logged.
func (m *Manager) send(s Session, f shared.Frame) {
	if err := s.Send(f.String()); err != nil {
		m.log.WithFields(logrus.Fields{
			"session": s.ID(),
			"command": f.Command,
		}).WithError(err).Debug("send failed")
	}
}

// broadcast sends f to every member of r except the given session.
func (m *Manager) broadcast(r *Room, except Session, f shared.Frame) {
	for _, member := range r.Members {
		if member == except {
			continue
		}
		m.send(member, f)
	}
}
