// Package message models leveled feedback attached to form fields. Renderers
// and binders use it to surface validation notes next to an input.
package message

import (
	"strconv"
	"strings"
)

// Level ranks a message. Higher levels are more severe.
type Level int

const (
	LevelInfo Level = iota + 1
	LevelWarning
	LevelError
)

// String reports the lowercase level name.
func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "info"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// Message is a single piece of feedback. Text may contain positional
// placeholders ({0}, {1}, ...) replaced by Args when formatted.
type Message struct {
	Level Level
	Text  string
	Args  []string
}

// Info constructs an informational message.
func Info(text string, args ...string) Message {
	return Message{Level: LevelInfo, Text: text, Args: args}
}

// Warning constructs a warning message.
func Warning(text string, args ...string) Message {
	return Message{Level: LevelWarning, Text: text, Args: args}
}

// Error constructs an error message.
func Error(text string, args ...string) Message {
	return Message{Level: LevelError, Text: text, Args: args}
}

// String formats the message text with its arguments. Placeholders without a
// matching argument are left untouched.
func (m Message) String() string {
	if len(m.Args) == 0 {
		return m.Text
	}
	pairs := make([]string, 0, len(m.Args)*2)
	for idx, arg := range m.Args {
		pairs = append(pairs, "{"+strconv.Itoa(idx)+"}", arg)
	}
	return strings.NewReplacer(pairs...).Replace(m.Text)
}

// Highest returns the most severe level present, or zero when messages is
// empty.
func Highest(messages []Message) Level {
	var highest Level
	for _, msg := range messages {
		if msg.Level > highest {
			highest = msg.Level
		}
	}
	return highest
}
