package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"goflex"
)

// telemetry holds the demo's mutable display state, updated on every
// tick.
type telemetry struct {
	tick   int
	fuelC  int
	rwr    int
	status string
	low    bool
}

func (t *telemetry) advance() {
	t.tick++
	t.status = fmt.Sprintf("TICK: %04d", t.tick)
	if t.tick%10 == 0 {
		t.fuelC--
		if t.fuelC < 0 {
			t.fuelC = 100
		}
		t.low = t.fuelC < 50
	}
	if t.tick%7 == 0 {
		t.rwr = (t.rwr + 1) % 5
	}
}

var (
	dim    = lipgloss.Color("28")
	bright = lipgloss.Color("82")
)

func panelStyle() lipgloss.Style {
	return lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(dim).Padding(0, 1)
}

// buildDashboard constructs the node tree for the demo: a three-panel
// status row, a log panel that grows to fill remaining space, and a
// status bar.
func buildDashboard(state *telemetry) (*flex.Node, []*leaf) {
	root := flex.NewNode()
	root.SetFlexDirection(flex.Column)
	root.SetWidth(flex.Percent(100))
	root.SetHeight(flex.Percent(100))
	root.SetRowGap(flex.Point(1))
	root.SetPaddingTop(flex.Point(1))
	root.SetPaddingLeft(flex.Point(1))
	root.SetPaddingRight(flex.Point(1))
	root.SetPaddingBottom(flex.Point(1))

	var leaves []*leaf

	statusRow := flex.NewNode()
	statusRow.SetFlexDirection(flex.Row)
	statusRow.SetColumnGap(flex.Point(1))
	statusRow.SetHeight(flex.Point(8))
	must(root.AppendChild(statusRow))

	sysPanel, l1 := textPanel("SYSTEM STATUS", func() string {
		return "RAM 00064K FRAM-HRC ... PASS\nMPS 00016K RMU-INIT ... PASS\nECC 00004K FRAM-ERR ... PASS\nI/O CTRL 8251A ... READY"
	})
	sysPanel.SetFlexGrow(1)
	must(statusRow.AppendChild(sysPanel))
	leaves = append(leaves, l1)

	fuelPanel, l2 := textPanel("FUEL STATUS", func() string {
		bar := fuelBar(state.fuelC)
		line := fmt.Sprintf("RES C %s %3d%%", bar, state.fuelC)
		if state.low {
			line += "\n*** LOW FUEL WARNING ***"
		}
		return line
	})
	fuelPanel.SetFlexGrow(1)
	must(statusRow.AppendChild(fuelPanel))
	leaves = append(leaves, l2)

	subPanel, l3 := textPanel("SUBSYSTEMS", func() string {
		return fmt.Sprintf("RWR: %s", rwrIndicator(state.rwr))
	})
	subPanel.SetFlexGrow(1)
	must(statusRow.AppendChild(subPanel))
	leaves = append(leaves, l3)

	logPanel, l4 := textPanel("LOG", func() string {
		return "21:14:32Z TACAN 22.1 ACQUIRED\n21:14:35Z RAD CH9 482.160 TX 15.2W\n21:14:38Z TADIL BUS A ONLINE"
	})
	logPanel.SetFlexGrow(1)
	must(root.AppendChild(logPanel))
	leaves = append(leaves, l4)

	statusBar := flex.NewNode()
	statusBar.SetFlexDirection(flex.Row)
	statusBar.SetJustifyContent(flex.JustifySpaceBetween)
	statusBar.SetHeight(flex.Point(1))
	must(root.AppendChild(statusBar))

	statusText, l5 := inlineText(func() string { return state.status })
	must(statusBar.AppendChild(statusText))
	leaves = append(leaves, l5)

	hint, l6 := inlineText(func() string { return "[Q]UIT" })
	must(statusBar.AppendChild(hint))
	leaves = append(leaves, l6)

	for _, l := range leaves {
		l.node.SetMeasureFunc(measureFor(l.content))
	}

	return root, leaves
}

func textPanel(title string, content func() string) (*flex.Node, *leaf) {
	n := flex.NewNode()
	n.SetFlexDirection(flex.Column)
	style := panelStyle()
	if title != "" {
		style = style.BorderTop(true)
	}
	l := &leaf{node: n, style: style.Foreground(bright), content: wrapTitle(title, content)}
	return n, l
}

func inlineText(content func() string) (*flex.Node, *leaf) {
	n := flex.NewNode()
	l := &leaf{node: n, style: lipgloss.NewStyle().Foreground(bright), content: content}
	return n, l
}

func wrapTitle(title string, content func() string) func() string {
	if title == "" {
		return content
	}
	return func() string { return title + "\n" + content() }
}

func fuelBar(pct int) string {
	filled := pct / 10
	bar := make([]byte, 10)
	for i := range bar {
		if i < filled {
			bar[i] = '#'
		} else {
			bar[i] = '-'
		}
	}
	return string(bar)
}

func rwrIndicator(level int) string {
	leds := []rune("----")
	for i := 0; i < level && i < len(leds); i++ {
		leds[i] = '*'
	}
	return "[" + string(leds) + "]"
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
