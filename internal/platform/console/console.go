// Package console drives a game from a raw terminal: one key press per move,
// and a plain text dump of the board after every move.
package console

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tilemerge/internal/core"
	"github.com/vovakirdan/tilemerge/internal/engine"
	"github.com/vovakirdan/tilemerge/internal/render"
)

// Options configures a Driver.
type Options struct {
	CellWidth int
	// Newline terminates every printed line. Raw terminals need "\r\n".
	Newline string
	Logger  *log.Logger
}

// Driver reads key presses and applies them to a game.
type Driver struct {
	game      *engine.Game
	in        io.Reader
	out       io.Writer
	cellWidth int
	newline   string
	logger    *log.Logger
}

// New creates a driver over the given input and output.
func New(game *engine.Game, in io.Reader, out io.Writer, opts Options) *Driver {
	if opts.CellWidth < 1 {
		opts.CellWidth = render.DefaultCellWidth
	}
	if opts.Newline == "" {
		opts.Newline = "\n"
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return &Driver{
		game:      game,
		in:        in,
		out:       out,
		cellWidth: opts.CellWidth,
		newline:   opts.Newline,
		logger:    opts.Logger,
	}
}

// Run prints the board and processes keys until a quit key or end of input.
func (d *Driver) Run() error {
	if err := d.show(d.game.Snapshot()); err != nil {
		return err
	}

	var keys KeyParser
	buf := make([]byte, 16)
	for {
		n, err := d.in.Read(buf)
		if n > 0 {
			for _, action := range keys.Feed(buf[:n]) {
				quit, actErr := d.handle(action)
				if actErr != nil {
					return actErr
				}
				if quit {
					return nil
				}
			}
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
	}
}

// handle applies one action. Returns true when the driver should stop.
func (d *Driver) handle(action core.Action) (bool, error) {
	switch action {
	case core.ActionQuit:
		return true, nil
	case core.ActionRestart:
		if d.game.GameOver() {
			d.logger.Info("new game")
			d.game.Reset()
			return false, d.show(d.game.Snapshot())
		}
		return false, nil
	}

	dir, ok := action.Direction()
	if !ok {
		return false, nil
	}

	result, err := d.game.ApplyMove(dir)
	if err != nil {
		return false, err
	}
	d.logger.Debug("move", "dir", dir, "updated", result.Updated, "game_over", result.GameOver)
	return false, d.show(result.Snapshot)
}

// show prints the game over notice (if any) and the board, preceded by a blank line.
func (d *Driver) show(snap engine.Snapshot) error {
	var sb strings.Builder
	if snap.GameOver() {
		sb.WriteString(render.GameOverText)
		sb.WriteString(d.newline)
	}
	sb.WriteString(d.newline)
	for _, line := range render.Lines(snap, d.cellWidth) {
		sb.WriteString(line)
		sb.WriteString(d.newline)
	}
	_, err := io.WriteString(d.out, sb.String())
	return err
}

// ParseKeys translates one complete chunk of raw terminal input into actions.
// An escape sequence cut off at the end of buf is dropped; use a KeyParser
// when input arrives in pieces.
func ParseKeys(buf []byte) []core.Action {
	var p KeyParser
	return p.Feed(buf)
}

// KeyParser turns raw terminal bytes into actions across reads. An escape
// sequence split between two reads is held back until the rest arrives.
type KeyParser struct {
	pending []byte
}

// Feed parses buf after any bytes held back by the previous call.
func (p *KeyParser) Feed(buf []byte) []core.Action {
	if len(p.pending) > 0 {
		buf = append(p.pending, buf...)
		p.pending = nil
	}

	var actions []core.Action
	for i := 0; i < len(buf); {
		if buf[i] != esc {
			if a := keyAction(buf[i]); a != core.ActionNone {
				actions = append(actions, a)
			}
			i++
			continue
		}

		a, n := escapeAction(buf[i:])
		if n == 0 {
			p.pending = append([]byte(nil), buf[i:]...)
			break
		}
		if a != core.ActionNone {
			actions = append(actions, a)
		}
		i += n
	}
	return actions
}

const esc = 0x1b

// escapeAction decodes the escape sequence at the start of b and reports how
// many bytes it spans. n is 0 when b ends before the sequence does.
//
// CSI is ESC [, then parameter bytes 0x30-0x3F, intermediate bytes 0x20-0x2F
// and one final byte 0x40-0x7E. Arrows end in A-D whatever their modifiers, so
// ESC [ 1 ; 5 A is still up. SS3 is ESC O plus one byte, sent for arrows in
// application cursor mode. Any other byte after ESC leaves a lone escape,
// which is skipped.
func escapeAction(b []byte) (action core.Action, n int) {
	if len(b) < 2 {
		return core.ActionNone, 0
	}

	switch b[1] {
	case '[':
		i := 2
		for i < len(b) && b[i] >= 0x30 && b[i] <= 0x3f {
			i++
		}
		for i < len(b) && b[i] >= 0x20 && b[i] <= 0x2f {
			i++
		}
		if i == len(b) {
			return core.ActionNone, 0
		}
		if b[i] < 0x40 || b[i] > 0x7e {
			// Malformed; drop what was read so far and resume at b[i]
			return core.ActionNone, i
		}
		return arrowAction(b[i]), i + 1
	case 'O':
		if len(b) < 3 {
			return core.ActionNone, 0
		}
		return arrowAction(b[2]), 3
	}
	return core.ActionNone, 1
}

func arrowAction(final byte) core.Action {
	switch final {
	case 'A':
		return core.ActionUp
	case 'B':
		return core.ActionDown
	case 'C':
		return core.ActionRight
	case 'D':
		return core.ActionLeft
	}
	return core.ActionNone
}

func keyAction(b byte) core.Action {
	switch b {
	case 'w', 'W':
		return core.ActionUp
	case 'a', 'A':
		return core.ActionLeft
	case 's', 'S':
		return core.ActionDown
	case 'd', 'D':
		return core.ActionRight
	case 'r', 'R':
		return core.ActionRestart
	case 'q', 'Q', 0x03: // 0x03 is Ctrl+C in raw mode
		return core.ActionQuit
	}
	return core.ActionNone
}

// MakeRaw puts f into raw mode if it is a terminal and returns a function that
// restores the previous state. For non-terminals it is a no-op.
func MakeRaw(f *os.File) (restore func(), raw bool, err error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return func() {}, false, nil
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, false, fmt.Errorf("enter raw mode: %w", err)
	}
	return func() {
		//nolint:errcheck // Best-effort restore on exit
		term.Restore(fd, state)
	}, true, nil
}
