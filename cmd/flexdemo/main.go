package main

import (
	"fmt"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rivo/uniseg"
	"golang.org/x/term"

	"goflex"
)

// flexdemo lays out a small avionics-style dashboard with the flex
// engine and paints it with lipgloss on every resize.

type leaf struct {
	node    *flex.Node
	style   lipgloss.Style
	content func() string
}

type model struct {
	root   *flex.Node
	leaves []*leaf
	state  *telemetry
	width  int
	height int
}

func initialModel() model {
	state := &telemetry{fuelC: 92, rwr: 1, tick: 0}
	root, leaves := buildDashboard(state)
	return model{root: root, leaves: leaves, state: state, width: 80, height: 24}
}

func (m model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(150*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

type tickMsg time.Time

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case tickMsg:
		m.state.advance()
		for _, l := range m.leaves {
			l.node.SetMeasureFunc(measureFor(l.content))
		}
		return m, tick()
	}
	return m, nil
}

func (m model) View() string {
	m.root.CalculateLayout(float64(m.width), float64(m.height))

	canvas := make([][]string, m.height)
	for i := range canvas {
		canvas[i] = make([]string, m.width)
		for j := range canvas[i] {
			canvas[i][j] = " "
		}
	}

	for _, l := range m.leaves {
		w := int(l.node.GetComputedWidth())
		h := int(l.node.GetComputedHeight())
		if w <= 0 || h <= 0 {
			continue
		}
		// lipgloss draws borders outside Width/Height, so shrink the
		// content box to keep the rendered block inside the computed box.
		bw := w - l.style.GetHorizontalBorderSize()
		bh := h - l.style.GetVerticalBorderSize()
		if bw < 1 || bh < 1 {
			continue
		}
		block := l.style.Width(bw).Height(bh).Render(l.content())
		paint(canvas, block, int(l.node.GetComputedLeft()), int(l.node.GetComputedTop()))
	}

	rows := make([]string, len(canvas))
	for i, row := range canvas {
		rows[i] = strings.Join(row, "")
	}
	return strings.Join(rows, "\n")
}

// paint blits block's lines onto canvas at (left, top), clipping to the
// canvas bounds. ANSI escape sequences occupy no columns; each one
// stays attached to the cell of the next visible rune so colors survive
// compositing.
func paint(canvas [][]string, block string, left, top int) {
	for dy, line := range strings.Split(block, "\n") {
		y := top + dy
		if y < 0 || y >= len(canvas) {
			continue
		}
		x := left
		var pending string
		for i := 0; i < len(line); {
			if line[i] == 0x1b {
				j := i + 1
				if j < len(line) && line[j] == '[' {
					j++
					for j < len(line) && (line[j] < 0x40 || line[j] > 0x7e) {
						j++
					}
					if j < len(line) {
						j++
					}
				}
				pending += line[i:j]
				i = j
				continue
			}
			r, size := utf8.DecodeRuneInString(line[i:])
			if x >= 0 && x < len(canvas[y]) {
				canvas[y][x] = pending + string(r)
			}
			pending = ""
			x++
			i += size
		}
		if pending != "" && x-1 >= 0 && x-1 < len(canvas[y]) {
			canvas[y][x-1] += pending
		}
	}
}

// measureFor returns a flex.MeasureFunc that sizes a leaf from its
// current text using grapheme-cluster counts, so double-width and
// combining runes measure the way they'll actually render.
func measureFor(content func() string) flex.MeasureFunc {
	return func(n *flex.Node, availWidth, availHeight float64) (float64, float64) {
		lines := strings.Split(content(), "\n")
		var maxW float64
		for _, line := range lines {
			w := float64(uniseg.StringWidth(line))
			if w > maxW {
				maxW = w
			}
		}
		return maxW, float64(len(lines))
	}
}

func main() {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		width, height = 80, 24
	}

	m := initialModel()
	m.width, m.height = width, height

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
