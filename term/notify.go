package term

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// One-shot user notifications, the toast analogue. Success goes to stdout,
// errors to stderr; neither is fatal.

func Success(msg string) {
	StopSpinner()
	fmt.Println(color.New(ColorHiGreen, color.Bold).Sprint("✅ " + msg))
}

func Warn(msg string) {
	StopSpinner()
	fmt.Println(color.New(ColorHiYellow, color.Bold).Sprint("⚠️  " + msg))
}

func Error(msg string) {
	StopSpinner()
	fmt.Fprintln(os.Stderr, color.New(ColorHiRed, color.Bold).Sprint("🚨 "+msg))
}

// Notifier adapts the package functions to the types.Notifier interface
// consumed by the feed controller.
type Notifier struct{}

func (Notifier) Success(msg string) { Success(msg) }
func (Notifier) Error(msg string)   { Error(msg) }
