// Package moerepl is an interactive bubbletea front-end over the
// lang/interp/printer/diagnostic packages: a one-line input, a
// scrollback pane showing either the rendered AST or the rendered
// diagnostic for the last submitted expression, and a clipboard
// "yank" of the last result.
package moerepl

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/atotto/clipboard"

	"github.com/midbel/moebius/combinator"
	"github.com/midbel/moebius/diagnostic"
	"github.com/midbel/moebius/environ"
	"github.com/midbel/moebius/interp"
	"github.com/midbel/moebius/lang"
	"github.com/midbel/moebius/printer"
	"github.com/midbel/moebius/source"
)

var (
	activeBorder = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#5fd7ff"))

	errStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ff5f5f"))

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#5fff87"))
)

// Model is the top-level bubbletea model for the REPL.
type Model struct {
	input    textinput.Model
	pane     viewport.Model
	history  []string
	histIdx  int
	lastText string
	env      environ.Environ[int64]
	width    int
	height   int
}

func New() Model {
	ti := textinput.New()
	ti.Placeholder = "1 + 2 * 3"
	ti.Focus()

	vp := viewport.New()
	vp.SetWidth(80)
	vp.SetHeight(20)

	return Model{
		input:   ti,
		pane:    vp,
		histIdx: -1,
		env:     interp.NewEnv(),
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.pane.SetWidth(msg.Width - 2)
		m.pane.SetHeight(msg.Height - 6)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			line := strings.TrimSpace(m.input.Value())
			if line != "" {
				m.submit(line)
				m.history = append(m.history, line)
				m.histIdx = len(m.history)
			}
			m.input.SetValue("")
			return m, nil
		case "ctrl+y":
			clipboard.WriteAll(m.lastText)
			return m, nil
		case "ctrl+l":
			m.listVars()
			return m, nil
		case "up":
			if m.histIdx > 0 {
				m.histIdx--
				m.input.SetValue(m.history[m.histIdx])
			}
			return m, nil
		case "down":
			if m.histIdx < len(m.history)-1 {
				m.histIdx++
				m.input.SetValue(m.history[m.histIdx])
			} else {
				m.histIdx = len(m.history)
				m.input.SetValue("")
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) submit(line string) {
	if name, rest, ok := splitAssignment(line); ok {
		m.define(name, rest)
		return
	}

	src := source.FromBytes("<repl>", []byte(line))
	expr, res, diag := lang.ParseExpr(src)
	var b strings.Builder
	switch res {
	case combinator.Success:
		v, err := interp.Eval(expr, m.env)
		if err != nil {
			fmt.Fprintln(&b, errStyle.Render(err.Error()))
			m.lastText = err.Error()
		} else {
			p := printer.New()
			p.Print(&b, expr)
			fmt.Fprintf(&b, "%s\n", okStyle.Render(fmt.Sprintf("= %d", v)))
			m.lastText = fmt.Sprintf("%d", v)
		}
	case combinator.Failure:
		fmt.Fprintln(&b, errStyle.Render("failure: no rule matched"))
		m.lastText = "failure"
	default:
		if diag != nil {
			diagnostic.Render(&b, *diag, src)
			m.lastText = diagnostic.Summary(*diag)
		}
	}
	m.pane.SetContent(b.String())
	m.pane.GotoBottom()
}

// splitAssignment recognizes the REPL-only "name = expr" shorthand for
// env.Define; the grammar itself has no assignment operator, so this
// is handled before a line ever reaches lang.ParseExpr.
func splitAssignment(line string) (name, rest string, ok bool) {
	i := strings.IndexByte(line, '=')
	if i <= 0 {
		return "", "", false
	}
	name = strings.TrimSpace(line[:i])
	if name == "" {
		return "", "", false
	}
	for j, r := range name {
		isStart := r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		isPart := isStart || (r >= '0' && r <= '9')
		if j == 0 && !isStart || j > 0 && !isPart {
			return "", "", false
		}
	}
	return name, strings.TrimSpace(line[i+1:]), true
}

func (m *Model) define(name, rest string) {
	var b strings.Builder
	src := source.FromBytes("<repl>", []byte(rest))
	expr, res, diag := lang.ParseExpr(src)
	if res != combinator.Success {
		if diag != nil {
			diagnostic.Render(&b, *diag, src)
		} else {
			fmt.Fprintln(&b, errStyle.Render("failure: no rule matched"))
		}
		m.pane.SetContent(b.String())
		m.pane.GotoBottom()
		return
	}
	v, err := interp.Eval(expr, m.env)
	if err != nil {
		fmt.Fprintln(&b, errStyle.Render(err.Error()))
		m.pane.SetContent(b.String())
		m.pane.GotoBottom()
		return
	}
	m.env.Define(name, v)
	fmt.Fprintln(&b, okStyle.Render(fmt.Sprintf("%s = %d", name, v)))
	m.lastText = fmt.Sprintf("%d", v)
	m.pane.SetContent(b.String())
	m.pane.GotoBottom()
}

// listVars renders the names currently bound in this session's top
// scope, driven by environ.Env's Names/Len, otherwise unexercised
// outside of environ's own package.
func (m *Model) listVars() {
	var b strings.Builder
	names := m.env.Names()
	if m.env.Len() == 0 {
		fmt.Fprintln(&b, "no variables defined")
	} else {
		fmt.Fprintf(&b, "%d variable(s): %s\n", m.env.Len(), strings.Join(names, ", "))
	}
	m.pane.SetContent(b.String())
	m.pane.GotoBottom()
}

func (m Model) View() tea.View {
	header := activeBorder.Render(m.input.View())
	body := m.pane.View()
	v := tea.NewView(lipgloss.JoinVertical(lipgloss.Left, header, body, "ctrl+y yank · ctrl+l vars · ctrl+c quit"))
	v.AltScreen = true
	return v
}

// Run launches the REPL program in the current terminal. When
// debugPath is non-empty, bubbletea's own internal logging is
// redirected there for the session's lifetime (the alt-screen TUI
// otherwise has nowhere sane to print debug output).
func Run(debugPath string) error {
	if debugPath != "" {
		f, err := tea.LogToFile(debugPath, "moerepl")
		if err != nil {
			return err
		}
		defer f.Close()
	}
	p := tea.NewProgram(New())
	_, err := p.Run()
	return err
}
