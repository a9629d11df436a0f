// Package ui renders console output for the shell, colored when the output
// is a terminal.
package ui

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

type Color string

const (
	colorReset  Color = "\033[0m"
	colorRed    Color = "\033[31m"
	colorGreen  Color = "\033[32m"
	colorYellow Color = "\033[33m"
)

type UI struct {
	writer   io.Writer
	useColor bool
}

func New(w io.Writer) *UI {
	useColor := false
	if f, ok := w.(*os.File); ok {
		useColor = term.IsTerminal(int(f.Fd()))
	}
	return &UI{writer: w, useColor: useColor}
}

func (u *UI) Success(msg string) {
	u.colored(colorGreen, msg)
}

func (u *UI) Error(msg string) {
	u.colored(colorRed, msg)
}

func (u *UI) Warn(msg string) {
	u.colored(colorYellow, msg)
}

func (u *UI) Info(msg string) {
	fmt.Fprintln(u.writer, msg)
}

func (u *UI) Printf(format string, args ...any) {
	fmt.Fprintf(u.writer, format, args...)
}

func (u *UI) colored(color Color, msg string) {
	if u.useColor {
		fmt.Fprintf(u.writer, "%s%s%s\n", color, msg, colorReset)
		return
	}
	fmt.Fprintln(u.writer, msg)
}
