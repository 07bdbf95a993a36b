package shell

import (
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const consoleMaxLines = 500

// Console is the devtools panel: a scrolling log of what the shell sent to
// the frontend. Its methods must be called on the UI goroutine.
type Console struct {
	grid   *widget.TextGrid
	scroll *container.Scroll
	lines  []string
}

func NewConsole() *Console {
	grid := widget.NewTextGrid()
	scroll := container.NewVScroll(grid)
	scroll.SetMinSize(fyne.NewSize(0, 160))
	return &Console{grid: grid, scroll: scroll}
}

func (c *Console) Object() fyne.CanvasObject {
	return c.scroll
}

// Append adds a timestamped line, dropping the oldest past the line limit.
func (c *Console) Append(line string) {
	c.lines = append(c.lines, time.Now().Format("15:04:05.000")+"  "+line)
	if len(c.lines) > consoleMaxLines {
		c.lines = c.lines[len(c.lines)-consoleMaxLines:]
	}
	c.grid.SetText(strings.Join(c.lines, "\n"))
	c.scroll.ScrollToBottom()
}

func (c *Console) Clear() {
	c.lines = nil
	c.grid.SetText("")
}

// Lines returns a copy of the current console content.
func (c *Console) Lines() []string {
	return append([]string(nil), c.lines...)
}
