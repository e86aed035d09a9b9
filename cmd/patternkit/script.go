package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/patternkit/patternkit"
	"github.com/patternkit/patternkit/session"
	"github.com/patternkit/patternkit/tool"
)

var errSyntax = errors.New("syntax error")

// command is one line of an input script. Coordinates are screen pixels.
//
//	tool <name>               switch tools
//	down|move|up X Y [mods]   pointer events
//	click X Y [mods]          down and up
//	drag X0 Y0 X1 Y1 [mods]   down, move and up
//	dblclick X Y [mods]       a double click
//	key <name>                key press, e.g. Enter, Escape, Space, L
//	keyup <name>              key release
//	wheel X Y DELTA           zoom one step, positive DELTA zooms out
//	pan DX DY                 move the view
//	snap on|off               set grid snapping
//	render [file.png]         draw a frame, optionally saving it
//
// mods is any of shift, alt, ctrl, middle and right. Lines starting with #
// are comments.
type command struct {
	line   int
	op     string
	pts    []patternkit.Point
	mods   session.Modifiers
	button tool.Button
	arg    string
	num    float64
}

// arity is the number of numbers each op takes.
var arity = map[string]int{
	"tool":     0,
	"down":     2,
	"move":     2,
	"up":       2,
	"click":    2,
	"drag":     4,
	"dblclick": 2,
	"key":      0,
	"keyup":    0,
	"wheel":    3,
	"pan":      2,
	"snap":     0,
	"render":   0,
}

func parseScript(r io.Reader) ([]command, error) {
	var cmds []command
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		cmd, err := parseCommand(strings.Fields(text))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		cmd.line = n
		cmds = append(cmds, cmd)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}
	return cmds, nil
}

func parseCommand(fields []string) (command, error) {
	cmd := command{op: strings.ToLower(fields[0])}
	want, ok := arity[cmd.op]
	if !ok {
		return cmd, fmt.Errorf("%w: unknown command %q", errSyntax, fields[0])
	}
	args := fields[1:]

	switch cmd.op {
	case "tool", "key", "keyup":
		if len(args) != 1 {
			return cmd, fmt.Errorf("%w: %s takes one argument", errSyntax, cmd.op)
		}
		cmd.arg = args[0]
		return cmd, nil
	case "snap":
		if len(args) != 1 || (args[0] != "on" && args[0] != "off") {
			return cmd, fmt.Errorf("%w: snap takes on or off", errSyntax)
		}
		cmd.arg = args[0]
		return cmd, nil
	case "render":
		if len(args) > 1 {
			return cmd, fmt.Errorf("%w: render takes at most one file", errSyntax)
		}
		if len(args) == 1 {
			cmd.arg = args[0]
		}
		return cmd, nil
	}

	if len(args) < want {
		return cmd, fmt.Errorf("%w: %s takes %d numbers", errSyntax, cmd.op, want)
	}
	nums := make([]float64, want)
	for i := range nums {
		v, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return cmd, fmt.Errorf("%w: %s: %w", errSyntax, cmd.op, err)
		}
		nums[i] = v
	}
	for i := 0; i+1 < len(nums); i += 2 {
		cmd.pts = append(cmd.pts, patternkit.Pt(nums[i], nums[i+1]))
	}
	if want%2 == 1 {
		cmd.num = nums[want-1]
	}

	for _, m := range args[want:] {
		switch strings.ToLower(m) {
		case "shift":
			cmd.mods.Shift = true
		case "alt":
			cmd.mods.Alt = true
		case "ctrl":
			cmd.mods.Ctrl = true
		case "middle":
			cmd.button = tool.ButtonMiddle
		case "right":
			cmd.button = tool.ButtonRight
		default:
			return cmd, fmt.Errorf("%w: unknown modifier %q", errSyntax, m)
		}
	}
	if cmd.op == "wheel" || cmd.op == "pan" {
		if cmd.mods != (session.Modifiers{}) || cmd.button != tool.ButtonLeft {
			return cmd, fmt.Errorf("%w: %s takes no modifiers", errSyntax, cmd.op)
		}
	}
	return cmd, nil
}

// player replays commands against a session.
type player struct {
	s      *session.Session
	render func(path string) error
}

func (p *player) run(cmds []command) error {
	for _, cmd := range cmds {
		if err := p.exec(cmd); err != nil {
			return fmt.Errorf("line %d: %w", cmd.line, err)
		}
	}
	return nil
}

func (p *player) exec(cmd command) error {
	s := p.s
	switch cmd.op {
	case "tool":
		k, err := tool.ParseKind(cmd.arg)
		if err != nil {
			return err
		}
		return s.SwitchTool(k)
	case "down":
		s.PointerDown(cmd.pts[0], cmd.mods, cmd.button)
	case "move":
		s.PointerMove(cmd.pts[0], cmd.mods, cmd.button)
	case "up":
		s.PointerUp(cmd.pts[0], cmd.mods, cmd.button)
	case "click":
		s.PointerDown(cmd.pts[0], cmd.mods, cmd.button)
		s.PointerUp(cmd.pts[0], cmd.mods, cmd.button)
	case "drag":
		s.PointerDown(cmd.pts[0], cmd.mods, cmd.button)
		s.PointerMove(cmd.pts[1], cmd.mods, cmd.button)
		s.PointerUp(cmd.pts[1], cmd.mods, cmd.button)
	case "dblclick":
		s.DoubleClick(cmd.pts[0], cmd.mods)
	case "key":
		s.KeyDown(cmd.arg)
	case "keyup":
		s.KeyUp(cmd.arg)
	case "wheel":
		s.Wheel(cmd.pts[0], cmd.num)
	case "pan":
		d := cmd.pts[0]
		s.SetCamera(s.Camera().Pan(d.X, d.Y))
	case "snap":
		s.SetSnap(cmd.arg == "on")
	case "render":
		return p.render(cmd.arg)
	}
	return nil
}
