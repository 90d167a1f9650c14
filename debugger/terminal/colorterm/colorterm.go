// This file is part of singlecycle.
//
// singlecycle is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// singlecycle is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with singlecycle.  If not, see <https://www.gnu.org/licenses/>.

// Package colorterm implements the Terminal interface for the debugger. It
// puts the terminal into raw mode and supports simple line editing and
// coloured output.
package colorterm

import (
	"io"
	"os"

	"github.com/jetsetilly/singlecycle/curated"
	"github.com/jetsetilly/singlecycle/debugger/terminal"
	"github.com/jetsetilly/singlecycle/debugger/terminal/easyterm"
)

// ColorTerminal implements debugger UI interface with a basic ANSI terminal.
type ColorTerminal struct {
	easyterm.Terminal
	editor lineEditor
	key    []byte
}

// Initialise perfoms any setting up required for the terminal.
func (ct *ColorTerminal) Initialise() error {
	if err := ct.Terminal.Initialise(os.Stdin, os.Stdout); err != nil {
		return curated.Errorf("colorterm: %v", err)
	}
	ct.key = make([]byte, 1)
	ct.RawMode()
	return nil
}

// CleanUp perfoms any cleaning up required for the terminal.
func (ct *ColorTerminal) CleanUp() {
	ct.Print("\r\n")
	ct.Terminal.CleanUp()
}

// IsInteractive implements the terminal.Input interface.
func (ct *ColorTerminal) IsInteractive() bool {
	return true
}

// TermPrintLine implements the terminal.Output interface.
func (ct *ColorTerminal) TermPrintLine(style terminal.Style, s string) {
	// we don't need to output normalised input for this type of terminal
	if style == terminal.StyleEcho {
		return
	}

	switch style {
	case terminal.StyleError:
		ct.Print("%s* ", penError)
	case terminal.StyleFeedback:
		ct.Print(penFeedback)
	case terminal.StyleHelp:
		ct.Print(penHelp)
	case terminal.StyleInstrument:
		ct.Print(penInstrument)
	case terminal.StyleMachineInfo:
		ct.Print(penInfo)
	case terminal.StyleLog:
		ct.Print(penLog)
	}

	// raw mode requires carriage returns
	for _, c := range s {
		if c == '\n' {
			ct.Print("\r\n")
		} else {
			ct.Print("%c", c)
		}
	}
	ct.Print("%s\r\n", penOff)
}

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(prompt terminal.Prompt) (string, error) {
	ct.editor.reset()
	ct.Print("%s%s%s", penPrompt, prompt.String(), penOff)

	for {
		if _, err := ct.Input().Read(ct.key); err != nil {
			return "", err
		}

		switch ct.editor.key(ct.key[0]) {
		case keyDone:
			ct.Print("\r\n")
			return ct.editor.String(), nil
		case keyInterrupt:
			ct.Print("^C\r\n")
			return "", curated.Errorf(terminal.UserInterrupt)
		case keyEOF:
			ct.Print("\r\n")
			return "", io.EOF
		case keySuspend:
			ct.SuspendProcess()
			ct.Print("\r%s%s%s%s", penPrompt, prompt.String(), penOff, ct.editor.String())
		case keyBell:
			ct.Print("\a")
		case keyErase:
			ct.Print("\b \b")
		case keyClear:
			ct.Print("\r\033[K%s%s%s", penPrompt, prompt.String(), penOff)
		case keyContinue:
			if c := ct.key[0]; c >= ' ' && c <= '~' {
				ct.Print("%c", c)
			}
		}
	}
}
