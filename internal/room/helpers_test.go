package room_test

import (
	"strings"

	"ludo-server/internal/shared"
)

func sharedFrame(command, data string) shared.Frame {
	return shared.NewFrame(command, data)
}

func prefixes(msgs []string) []string {
	out := make([]string, 0, len(msgs))
	for _, msg := range msgs {
		command, _, _ := strings.Cut(msg, ":")
		out = append(out, command)
	}
	return out
}
