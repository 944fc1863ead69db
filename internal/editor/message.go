package editor

import (
	pkgerrors "github.com/matzehuels/notegraph/pkg/errors"
)

// Level is the severity of a user-visible message.
type Level int

const (
	// LevelNone means there is nothing to show.
	LevelNone Level = iota
	// LevelInfo confirms a completed operation.
	LevelInfo
	// LevelWarning reports a rejected or partially applied operation.
	LevelWarning
	// LevelError reports a failure the user cannot fix by adjusting input.
	LevelError
)

// String returns the dialog title for the level.
func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "Info"
	case LevelWarning:
		return "Warning"
	case LevelError:
		return "Error"
	default:
		return ""
	}
}

// Message is what the host UI shows after an intent, typically as a modal
// dialog or status line. The zero value means no message.
type Message struct {
	Level Level
	Text  string
}

// Empty reports whether there is nothing to show.
func (m Message) Empty() bool { return m.Level == LevelNone }

func info(text string) Message    { return Message{Level: LevelInfo, Text: text} }
func warning(text string) Message { return Message{Level: LevelWarning, Text: text} }

// levelFor picks the severity shown for a failed intent.
func levelFor(err error) Level {
	if pkgerrors.IsUserError(err) {
		return LevelWarning
	}
	return LevelError
}
