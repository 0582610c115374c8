// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

// +build !windows

package colorterm

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/bmdebug/bmdebug/terminal"
	"github.com/bmdebug/bmdebug/terminal/colorterm/easyterm"
	"github.com/bmdebug/bmdebug/terminal/colorterm/easyterm/ansi"
)

// #cursor #keys #tab #completion

// inputBufferSize is the maximum length of a single line of input.
const inputBufferSize = 1024

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(prompt terminal.Prompt, events *terminal.ReadEvents) (string, error) {
	if ct.silenced {
		return "", nil
	}

	if events == nil {
		events = &terminal.ReadEvents{}
	}

	// we need to put terminal into raw mode so that we can monkey with it.
	// not that this means that we need to handle control codes manually,
	// easyterm.KeyInterrupt and easyterm.KeySuspend in particular.
	err := ct.RawMode()
	if err != nil {
		return "", fmt.Errorf("colorterm: %w", err)
	}
	defer ct.CanonicalMode()

	// er is used to store encoded runes (length of 4 should be enough)
	er := make([]byte, 4)

	input := make([]byte, inputBufferSize)
	inputLen := 0
	cursorPos := 0
	ct.history.Reset()

	// the method for cursor placement is as follows:
	//	 for each iteration in the loop
	//		1. store current cursor position
	//		2. clear the current line
	//		3. output the prompt
	//		4. output the input buffer
	//		5. restore the cursor position
	//
	// for this to work we need to place the cursor in it's initial position
	// before we begin the loop
	ct.EasyTerm.TermPrint("\r")
	ct.EasyTerm.TermPrint(ansi.CursorMove(len(prompt.String())))

	for {
		// print prompt and what we have of the user input
		ct.EasyTerm.TermPrint(ansi.CursorStore)
		ct.EasyTerm.TermPrint(ansi.ClearLine)
		ct.EasyTerm.TermPrint("\r")

		// style prompt
		switch prompt.Type {
		case terminal.PromptTypeRunning:
			ct.EasyTerm.TermPrint(ansi.PenStyles["bold"])
		case terminal.PromptTypeStopped:
			// no styling
		case terminal.PromptTypeConfirm:
			ct.EasyTerm.TermPrint(ansi.PenStyles["bold"])
			ct.EasyTerm.TermPrint(ansi.Pens["blue"])
		}

		ct.EasyTerm.TermPrint(prompt.String())
		ct.EasyTerm.TermPrint(ansi.NormalPen)
		ct.EasyTerm.TermPrint(string(input[:inputLen]))
		ct.EasyTerm.TermPrint(ansi.CursorRestore)

		// wait for an event and respond
		select {
		case sig := <-events.Signal:
			// terminal is in raw mode so we won't receive these from the
			// terminal itself but I suppose it's possible to receive them
			// from somewhere else
			ct.EasyTerm.TermPrint(ansi.CursorStore)
			var err error
			if events.SignalHandler != nil {
				err = events.SignalHandler(sig)
			}
			ct.EasyTerm.TermPrint(ansi.CursorRestore)
			if err != nil {
				return string(input[:inputLen]), err
			}

		case fn := <-events.PushedFunction:
			// functions pushed from outside the input loop - eg. a state
			// machine refresh completing while the user is mid-command
			ct.EasyTerm.TermPrint(ansi.CursorStore)
			fn()
			ct.EasyTerm.TermPrint(ansi.CursorRestore)

		case fn := <-events.PushedFunctionImmediate:
			ct.EasyTerm.TermPrint(ansi.CursorStore)
			fn()
			ct.EasyTerm.TermPrint(ansi.CursorRestore)

		case readRune := <-ct.reader:
			if readRune.err != nil {
				return string(input[:inputLen]), readRune.err
			}

			switch readRune.r {
			case easyterm.KeyInterrupt:
				// #ctrlc - note that there is a ctrl-c signal handler, set up
				// in main.go, that controls the main debugging loop.
				// this ctrl-c handler by contrast, controls the user input
				// loop
				if inputLen > 0 {
					// clear current input
					inputLen = 0
					cursorPos = 0
					ct.EasyTerm.TermPrint("\r")
					ct.EasyTerm.TermPrint(ansi.CursorMove(len(prompt.Content)))
				} else {
					// there is no input so return UserInterrupt error
					ct.EasyTerm.TermPrint("\r\n")
					return "", terminal.UserInterrupt
				}

			case easyterm.KeySuspend:
				err := ct.CanonicalMode()
				if err != nil {
					return "", fmt.Errorf("colorterm: %w", err)
				}
				easyterm.SuspendProcess()
				err = ct.RawMode()
				if err != nil {
					return "", fmt.Errorf("colorterm: %w", err)
				}

			case easyterm.KeyTab:
				if ct.tabCompletion != nil {
					s := ct.tabCompletion.Complete(string(input[:cursorPos]))

					// the difference in the length of the new input and the old
					// input
					d := len(s) - cursorPos

					if inputLen+d <= len(input) {
						// append everything after the cursor to the new string and copy
						// into input array
						s += string(input[cursorPos:])
						copy(input, s)

						// advance character to end of completed word
						ct.EasyTerm.TermPrint(ansi.CursorMove(d))
						cursorPos += d

						// note new used-length of input array
						inputLen += d
					}
				}

			case easyterm.KeyCarriageReturn:
				// CARRIAGE RETURN
				ct.history.Add(string(input[:inputLen]))

				ct.EasyTerm.TermPrint("\r\n")
				return string(input[:inputLen]), nil

			case easyterm.KeyEsc:
				// ESCAPE SEQUENCE BEGIN
				readRune = <-ct.reader
				if readRune.err != nil {
					return string(input[:inputLen]), readRune.err
				}
				switch readRune.r {
				case easyterm.EscCursor:
					// CURSOR KEY
					readRune = <-ct.reader
					if readRune.err != nil {
						return string(input[:inputLen]), readRune.err
					}

					switch readRune.r {
					case easyterm.CursorUp:
						// move up through command history
						if s, ok := ct.history.Prev(string(input[:inputLen])); ok && len(s) < len(input) {
							copy(input, s)
							inputLen = len(s)
							ct.EasyTerm.TermPrint(ansi.CursorMove(inputLen - cursorPos))
							cursorPos = inputLen
						}
					case easyterm.CursorDown:
						// move down through command history
						if s, ok := ct.history.Next(); ok && len(s) < len(input) {
							copy(input, s)
							inputLen = len(s)
							ct.EasyTerm.TermPrint(ansi.CursorMove(inputLen - cursorPos))
							cursorPos = inputLen
						}
					case easyterm.CursorForward:
						// move forward through current command input
						if cursorPos < inputLen {
							ct.EasyTerm.TermPrint(ansi.CursorForwardOne)
							cursorPos++
						}
					case easyterm.CursorBackward:
						// move backward through current command input
						if cursorPos > 0 {
							ct.EasyTerm.TermPrint(ansi.CursorBackwardOne)
							cursorPos--
						}

					case easyterm.EscDelete:
						// DELETE
						if cursorPos < inputLen {
							copy(input[cursorPos:], input[cursorPos+1:])
							inputLen--
							ct.history.Reset()
						}

						// eat the third character in the sequence
						readRune = <-ct.reader

					case easyterm.EscHome:
						ct.EasyTerm.TermPrint(ansi.CursorMove(-cursorPos))
						cursorPos = 0

					case easyterm.EscEnd:
						ct.EasyTerm.TermPrint(ansi.CursorMove(inputLen - cursorPos))
						cursorPos = inputLen
					}
				}

			case easyterm.KeyCtrlH:
				fallthrough

			case easyterm.KeyBackspace:
				// BACKSPACE
				if cursorPos > 0 {
					copy(input[cursorPos-1:], input[cursorPos:])
					ct.EasyTerm.TermPrint(ansi.CursorBackwardOne)
					cursorPos--
					inputLen--
					ct.history.Reset()
				}

			default:
				if unicode.IsDigit(readRune.r) || unicode.IsLetter(readRune.r) || unicode.IsSpace(readRune.r) || unicode.IsPunct(readRune.r) || unicode.IsSymbol(readRune.r) {
					l := utf8.EncodeRune(er, readRune.r)

					// make sure we don't overflow the input buffer
					if cursorPos+l <= len(input) {
						ct.EasyTerm.TermPrint(ansi.CursorForwardOne)

						// insert new character into input stream at current cursor
						// position
						copy(input[cursorPos+l:], input[cursorPos:])
						copy(input[cursorPos:], er[:l])
						cursorPos++

						inputLen += l

						// make sure history pointer is at the end of the command
						// history array
						ct.history.Reset()
					}
				}
			}
		}
	}
}

// TermReadCheck implements the terminal.Input interface.
func (ct *ColorTerminal) TermReadCheck() bool {
	return false
}
