// Package watch replays a program run frame by frame in the terminal.
package watch

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tliron/commonlog"

	"marsrover/internal/interpreter"
)

var log = commonlog.GetLogger("marsrover.watch")

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("228"))
	captionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("204"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Frame is every rover at one moment of the run.
type Frame struct {
	Rovers  []interpreter.Rover
	Caption string
}

// Frames runs prog and records a frame before the first command and after
// each processed one. Rovers that have not started yet are shown in their
// initial state.
func Frames(prog *interpreter.Program) []Frame {
	current := make([]interpreter.Rover, len(prog.Entries))
	for i, e := range prog.Entries {
		current[i] = e.Rover
	}
	frames := []Frame{{Rovers: snapshot(current), Caption: "start"}}

	ctx := interpreter.NewContext()
	ctx.Observer = func(s interpreter.Step) {
		current[s.Entry] = s.Rover
		caption := fmt.Sprintf("rover %d, command %d (%s): %s", s.Entry+1, s.Index+1, s.Command, s.Rover)
		frames = append(frames, Frame{Rovers: snapshot(current), Caption: caption})
	}
	prog.Exec(ctx)
	return frames
}

func snapshot(rovers []interpreter.Rover) []interpreter.Rover {
	return append([]interpreter.Rover(nil), rovers...)
}

type keyMap struct {
	Next  key.Binding
	Prev  key.Binding
	Play  key.Binding
	Reset key.Binding
	Quit  key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Play, k.Reset, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var keys = keyMap{
	Next:  key.NewBinding(key.WithKeys("right", "l", "n"), key.WithHelp("→", "next")),
	Prev:  key.NewBinding(key.WithKeys("left", "h", "p"), key.WithHelp("←", "back")),
	Play:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "play/pause")),
	Reset: key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "restart")),
	Quit:  key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

type tickMsg time.Time

// Model is the bubbletea model of the replay.
type Model struct {
	title     string
	grid      interpreter.Grid
	frames    []Frame
	cursor    int
	playing   bool
	interval  time.Duration
	maxWidth  int
	maxHeight int
	help      help.Model
}

// Options tune the replay.
type Options struct {
	Title     string
	Interval  time.Duration
	MaxWidth  int
	MaxHeight int
}

func New(prog *interpreter.Program, opts Options) Model {
	return Model{
		title:     opts.Title,
		grid:      prog.Grid,
		frames:    Frames(prog),
		interval:  opts.Interval,
		maxWidth:  opts.MaxWidth,
		maxHeight: opts.MaxHeight,
		help:      help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Next):
			m.playing = false
			m.step(1)
		case key.Matches(msg, keys.Prev):
			m.playing = false
			m.step(-1)
		case key.Matches(msg, keys.Reset):
			m.playing = false
			m.cursor = 0
		case key.Matches(msg, keys.Play):
			m.playing = !m.playing
			if m.playing {
				if m.cursor == len(m.frames)-1 {
					m.cursor = 0
				}
				return m, m.tick()
			}
		}
	case tickMsg:
		if !m.playing {
			return m, nil
		}
		m.step(1)
		if m.cursor == len(m.frames)-1 {
			m.playing = false
			log.Debug("replay finished")
			return m, nil
		}
		return m, m.tick()
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m *Model) step(delta int) {
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor > len(m.frames)-1 {
		m.cursor = len(m.frames) - 1
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) View() string {
	frame := m.frames[m.cursor]

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s  frame %d/%d", m.title, m.cursor+1, len(m.frames))))
	b.WriteString("\n\n")
	if board, err := m.grid.Display(frame.Rovers, m.maxWidth, m.maxHeight); err != nil {
		b.WriteString(errorStyle.Render(err.Error()))
		b.WriteString("\n")
	} else {
		b.WriteString(board)
	}
	b.WriteString("\n")
	b.WriteString(captionStyle.Render(frame.Caption))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(keys))
	b.WriteString("\n")
	return b.String()
}

// Cursor is the index of the frame on screen.
func (m Model) Cursor() int { return m.cursor }

func (m Model) Playing() bool { return m.playing }

func (m Model) Frames() []Frame { return m.frames }
