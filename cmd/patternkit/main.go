// Command patternkit replays an input script against an editing session
// and writes the resulting frame and pieces.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/patternkit/patternkit"
	"github.com/patternkit/patternkit/render"
	"github.com/patternkit/patternkit/session"
)

type config struct {
	pieces string
	rects  int
	script string
	out    string
	save   string
	width  int
	height int
	snap   bool
	rulers bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.pieces, "pieces", "", "JSON file with the initial pieces")
	flag.IntVar(&cfg.rects, "rects", 0, "Number of default rectangles to add")
	flag.StringVar(&cfg.script, "script", "-", "Input script, - for stdin")
	flag.StringVar(&cfg.out, "out", "", "Write the final frame to this PNG file")
	flag.StringVar(&cfg.save, "save", "", "Write the final pieces to this JSON file")
	flag.IntVar(&cfg.width, "width", 1024, "Frame width in pixels")
	flag.IntVar(&cfg.height, "height", 768, "Frame height in pixels")
	flag.BoolVar(&cfg.snap, "snap", false, "Start with grid snapping enabled")
	flag.BoolVar(&cfg.rulers, "rulers", true, "Draw rulers")
	verbose := flag.Bool("v", false, "Verbose logging")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `patternkit - replay editor input against pattern pieces

Usage:
  patternkit [options] < script.txt
  patternkit -script script.txt -out frame.png -save pieces.json

Options:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Script commands (coordinates in screen pixels):
  tool line | click 100 100 | drag 0 0 50 50 shift | key Enter
  wheel 400 300 -1 | pan 20 0 | snap on | render frame.png
`)
	}
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	patternkit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config) error {
	if cfg.width <= 0 || cfg.height <= 0 {
		return fmt.Errorf("invalid frame size %dx%d", cfg.width, cfg.height)
	}
	log := patternkit.Logger()

	pieces, err := loadPieces(cfg.pieces)
	if err != nil {
		return err
	}
	var f patternkit.Factory
	for range cfg.rects {
		pieces = append(pieces, f.DefaultRectangle())
	}
	for _, p := range pieces {
		if err := p.Validate(); err != nil {
			log.Warn("invalid piece", "id", p.ID, "name", p.Name, "err", err)
		}
	}
	store := session.NewMemStore(pieces...)

	cmds, err := readScript(cfg.script)
	if err != nil {
		return err
	}

	s, err := session.New(store, session.WithSnap(cfg.snap), session.WithRulers(cfg.rulers))
	if err != nil {
		return err
	}
	defer s.Close()

	surf, err := render.NewGGSurface(cfg.width, cfg.height)
	if err != nil {
		return err
	}
	defer surf.Close()

	w, h := float64(cfg.width), float64(cfg.height)
	frames := 0
	p := &player{
		s: s,
		render: func(path string) error {
			s.Render(surf, w, h)
			frames++
			if path == "" {
				return nil
			}
			if err := surf.SavePNG(path); err != nil {
				return fmt.Errorf("saving frame: %w", err)
			}
			log.Info("frame saved", "path", path)
			return nil
		},
	}
	if err := p.run(cmds); err != nil {
		return err
	}

	if cfg.out != "" {
		if err := p.render(cfg.out); err != nil {
			return err
		}
	}
	if cfg.save != "" {
		if err := savePieces(cfg.save, store.Pieces()); err != nil {
			return err
		}
		log.Info("pieces saved", "path", cfg.save, "count", store.Len())
	}
	log.Info("done", "commands", len(cmds), "frames", frames, "status", s.Status())
	return nil
}

func readScript(path string) ([]command, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening script: %w", err)
		}
		defer f.Close()
		r = f
	}
	return parseScript(r)
}

func loadPieces(path string) ([]patternkit.Piece, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading pieces: %w", err)
	}
	var pieces []patternkit.Piece
	if err := json.Unmarshal(data, &pieces); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return pieces, nil
}

func savePieces(path string, pieces []patternkit.Piece) error {
	data, err := json.MarshalIndent(pieces, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding pieces: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing pieces: %w", err)
	}
	return nil
}
