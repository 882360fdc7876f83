package view

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"liftsim/src/types"
)

const clearScreen = "\033[H\033[2J"

// Screen redraws the last snapshot and the typed floor label on a raw-mode
// terminal. It is safe for concurrent use.
type Screen struct {
	mu     sync.Mutex
	out    io.Writer
	snap   types.Snapshot
	prompt string
}

func NewScreen(out io.Writer) *Screen {
	return &Screen{out: out}
}

func (s *Screen) Show(snap types.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = snap
	return s.draw()
}

func (s *Screen) SetPrompt(label string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prompt = label
	return s.draw()
}

// Raw mode does not translate newlines, so every line ends in \r\n.
func (s *Screen) draw() error {
	var buf bytes.Buffer
	if err := Render(&buf, s.snap); err != nil {
		return err
	}
	fmt.Fprintf(&buf, "floor> %s\n", s.prompt)
	frame := bytes.ReplaceAll(buf.Bytes(), []byte("\n"), []byte("\r\n"))
	_, err := s.out.Write(append([]byte(clearScreen), frame...))
	return err
}
