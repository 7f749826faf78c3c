// Package input reads single-key commands for the interactive grid session.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"golang.org/x/term"
)

// Command is an action requested by the user
type Command int

const (
	CommandUnknown Command = iota
	CommandSolve
	CommandReset
	CommandQuit
	CommandHelp
)

func (c Command) String() string {
	switch c {
	case CommandSolve:
		return "solve"
	case CommandReset:
		return "reset"
	case CommandQuit:
		return "quit"
	case CommandHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ParseCommand maps typed text to a command. Only the first character counts,
// so "s", "solve" and "S" all mean solve.
func ParseCommand(text string) Command {
	text = strings.TrimSpace(strings.ToLower(text))
	if text == "" {
		return CommandUnknown
	}
	return parseKey(text[0])
}

func parseKey(b byte) Command {
	switch b {
	case 's', 'S':
		return CommandSolve
	case 'r', 'R':
		return CommandReset
	case 'q', 'Q', 3, 4: // Ctrl+C, Ctrl+D
		return CommandQuit
	case 'h', 'H', '?':
		return CommandHelp
	default:
		return CommandUnknown
	}
}

// Reader reads commands either a line at a time or, on a terminal, a key at a time
type Reader struct {
	in  *bufio.Reader
	fd  int
	raw bool
}

// NewReader returns a line-mode reader over r
func NewReader(r io.Reader) *Reader {
	return &Reader{in: bufio.NewReader(r), fd: -1}
}

// NewStdinReader reads from stdin, switching to single-key mode when stdin is a terminal
func NewStdinReader() *Reader {
	fd := int(os.Stdin.Fd())
	return &Reader{in: bufio.NewReader(os.Stdin), fd: fd, raw: term.IsTerminal(fd)}
}

// Next blocks until the user enters a command. io.EOF is reported as CommandQuit.
func (r *Reader) Next() (Command, error) {
	if r.raw {
		return r.nextKey()
	}

	line, err := r.in.ReadString('\n')
	if errors.Is(err, io.EOF) {
		if strings.TrimSpace(line) == "" {
			return CommandQuit, nil
		}
		return ParseCommand(line), nil
	}
	if err != nil {
		return CommandUnknown, fmt.Errorf("cannot read stdin: %w", err)
	}
	return ParseCommand(line), nil
}

// nextKey reads a single byte in raw mode
func (r *Reader) nextKey() (Command, error) {
	oldState, err := term.MakeRaw(r.fd)
	if err != nil {
		return CommandUnknown, fmt.Errorf("cannot set terminal to raw mode: %w", err)
	}
	defer func() {
		if err := term.Restore(r.fd, oldState); err != nil {
			log.Printf("Cannot restore terminal: %v", err)
		}
	}()

	buf := make([]byte, 1)
	if _, err := os.Stdin.Read(buf); err != nil {
		if errors.Is(err, io.EOF) {
			return CommandQuit, nil
		}
		return CommandUnknown, fmt.Errorf("cannot read stdin: %w", err)
	}

	// Escape sequences (arrow keys and friends) are not commands
	if buf[0] == 0x1b {
		return CommandUnknown, nil
	}
	return parseKey(buf[0]), nil
}
