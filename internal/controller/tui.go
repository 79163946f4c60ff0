package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "github.com/mrdannyclark82/MillaCore-Fusion/internal/model"
)

// Header and footer lines reserved around the viewport.
const planViewChrome = 4

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			Padding(0, 1)
	helpStyle = lipgloss.NewStyle().Faint(true)
)

// TUI pages long plans with Bubble Tea. Everything else is rendered as in
// SimpleUI so the scan output keeps its parseable line shapes.
type TUI struct {
	*SimpleUI
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{SimpleUI: NewSimpleUI(cmd)}
}

// DisplayPlan prints the plan directly when it fits the terminal and opens
// a scrollable pager otherwise.
func (t *TUI) DisplayPlan(ctx context.Context, plan m.Plan) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	content := RenderPlanText(plan)
	output := t.out()

	width, height := terminalSize(output)
	model := newPlanViewModel(content, width, height)

	if !model.needsPagination() {
		_, err := io.WriteString(output, content)
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(output), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return err
	}

	// The alt screen is gone once the pager exits; keep the count visible.
	_, err := io.WriteString(output, planFooter(plan))

	return err
}

func terminalSize(w io.Writer) (int, int) {
	f, ok := w.(*os.File)
	if !ok {
		return 0, 0
	}

	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, 0
	}

	return width, height
}

// planViewModel is the Bubble Tea model for paging a rendered plan.
type planViewModel struct {
	content  string
	lines    int
	width    int
	height   int
	viewport viewport.Model
	quitting bool
}

func newPlanViewModel(content string, width, height int) planViewModel {
	vp := viewport.New(width, max(height-planViewChrome, 1))
	vp.SetContent(content)

	return planViewModel{
		content:  content,
		lines:    strings.Count(content, "\n"),
		width:    width,
		height:   height,
		viewport: vp,
	}
}

// needsPagination returns true when the plan is taller than the terminal.
func (pm planViewModel) needsPagination() bool {
	if pm.height == 0 {
		return false
	}

	return pm.lines > pm.height-planViewChrome
}

func (pm planViewModel) Init() tea.Cmd {
	return nil
}

func (pm planViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.width = msg.Width
		pm.height = msg.Height
		pm.viewport.Width = msg.Width
		pm.viewport.Height = max(msg.Height-planViewChrome, 1)

		return pm, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			pm.quitting = true
			return pm, tea.Quit
		case "g", "home":
			pm.viewport.GotoTop()
			return pm, nil
		case "G", "end":
			pm.viewport.GotoBottom()
			return pm, nil
		}
	}

	var cmd tea.Cmd
	pm.viewport, cmd = pm.viewport.Update(msg)

	return pm, cmd
}

func (pm planViewModel) View() string {
	if pm.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("dedupe - consolidation plan"))
	b.WriteString("\n\n")
	b.WriteString(pm.viewport.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(fmt.Sprintf("%3.f%% | ↑/k: up | ↓/j: down | g: top | G: bottom | q: quit",
		pm.viewport.ScrollPercent()*100)))

	return b.String()
}
