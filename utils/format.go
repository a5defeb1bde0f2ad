package utils

import (
	"fmt"
	"math"
	"os"
	"sync/atomic"
	"time"

	"golang.org/x/term"
)

// MessageType is a custom type used as a placeholder for various message types.
type MessageType int

// The message types used across the CLI application.
const (
	DefaultMessage MessageType = iota
	SuccessMessage
	ErrorMessage
	StatusMessage
)

// Colors used across the CLI application.
const (
	DefaultColor = "\x1b[0m"
	StatusColor  = "\x1b[36m"
	SuccessColor = "\x1b[32m"
	ErrorColor   = "\x1b[31m"
)

// Banner prefixes every status line printed by the sprite generator.
const Banner = "⚡ SPRITE"

// colored is true when the status lines are printed on a terminal.
var colored atomic.Bool

func init() {
	colored.Store(term.IsTerminal(int(os.Stderr.Fd())))
}

// SetColored forces the colored output on or off and returns the previous setting.
func SetColored(enabled bool) bool {
	return colored.Swap(enabled)
}

// DecorateText shows the message types in different colors.
// The text is returned unchanged when stderr is not a terminal.
func DecorateText(s string, msgType MessageType) string {
	if !colored.Load() {
		return s
	}
	var color string
	switch msgType {
	case DefaultMessage:
		color = DefaultColor
	case StatusMessage:
		color = StatusColor
	case SuccessMessage:
		color = SuccessColor
	case ErrorMessage:
		color = ErrorColor
	default:
		return s
	}
	return color + s + DefaultColor
}

// StatusLine formats a single progress line of the sprite generator.
func StatusLine(msg string, msgType MessageType) string {
	return fmt.Sprintf("%s %s %s\n",
		DecorateText(Banner, StatusMessage),
		DecorateText("⇢", DefaultMessage),
		DecorateText(msg, msgType),
	)
}

// FormatTime formats the duration of a generation run to a human readable value.
func FormatTime(d time.Duration) string {
	secs := math.Mod(d.Seconds(), 60)
	mins := int64(d.Minutes()) % 60
	hours := int64(d.Hours()) % 24

	switch {
	case d < time.Minute:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d < time.Hour:
		return fmt.Sprintf("%dm %.2fs", mins, secs)
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh %dm %.2fs", hours, mins, secs)
	}
	return fmt.Sprintf("%dd %dh %dm %.2fs", int64(d.Hours())/24, hours, mins, secs)
}
