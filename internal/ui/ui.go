// Package ui is the interactive menu wrapped around the build pipeline. It
// only calls the same library entry points the plain CLI commands use.
package ui

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/thomas11/rawsite"
)

type mode int

const (
	modeMenu mode = iota
	modeInput
)

type pathAction int

const (
	actionNewPost pathAction = iota
	actionEditPost
)

var menuChoices = []string{
	"Rebuild site",
	"New post",
	"Edit post",
	"Quit",
}

type editorFinishedMsg struct {
	path string
	err  error
}

// Model is the bubbletea model for the menu.
type Model struct {
	site     *rawsite.Site
	cursor   int
	mode     mode
	action   pathAction
	input    textinput.Model
	status   string
	failed   bool
	styles   styleSet
	quitting bool
}

// New returns a menu model for the given site.
func New(site *rawsite.Site) Model {
	ti := textinput.New()
	ti.Placeholder = "posts/my-post" + site.Config().FragmentExtensions[0]
	ti.CharLimit = 256
	ti.Width = 48

	return Model{
		site:   site,
		input:  ti,
		styles: defaultStyles(),
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case editorFinishedMsg:
		if msg.err != nil {
			return m.withError(fmt.Sprintf("editor: %v", msg.err)), nil
		}
		if err := m.site.BuildPost(msg.path); err != nil {
			return m.withError(fmt.Sprintf("build: %v", err)), nil
		}
		return m.withStatus("rebuilt page for " + msg.path), nil

	case tea.KeyMsg:
		if m.mode == modeInput {
			return m.updateInput(msg)
		}
		return m.updateMenu(msg)
	}
	return m, nil
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(menuChoices)-1 {
			m.cursor++
		}
	case "enter":
		return m.runChoice()
	}
	return m, nil
}

func (m Model) runChoice() (tea.Model, tea.Cmd) {
	switch menuChoices[m.cursor] {
	case "Rebuild site":
		report, err := m.site.RebuildAll()
		if err != nil {
			return m.withError(err.Error()), nil
		}
		status := fmt.Sprintf("%d fragments, %d pages generated", report.FragmentsFound, report.PagesGenerated)
		if n := len(report.Errors); n > 0 {
			return m.withError(fmt.Sprintf("%s, %d errors", status, n)), nil
		}
		return m.withStatus(status), nil
	case "New post":
		return m.promptForPath(actionNewPost), textinput.Blink
	case "Edit post":
		return m.promptForPath(actionEditPost), textinput.Blink
	case "Quit":
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) promptForPath(a pathAction) Model {
	m.mode = modeInput
	m.action = a
	m.input.SetValue("")
	m.input.Focus()
	return m
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeMenu
		m.input.Blur()
		return m, nil
	case "enter":
		path := strings.TrimSpace(m.input.Value())
		m.mode = modeMenu
		m.input.Blur()
		if path == "" {
			return m, nil
		}
		switch m.action {
		case actionNewPost:
			if err := m.site.NewPost(path); err != nil {
				return m.withError(err.Error()), nil
			}
			if err := m.site.BuildPost(path); err != nil {
				return m.withError(err.Error()), nil
			}
			return m.withStatus("created and built " + path), nil
		case actionEditPost:
			return m, openEditor(path)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) withStatus(s string) Model {
	m.status, m.failed = s, false
	return m
}

func (m Model) withError(s string) Model {
	m.status, m.failed = s, true
	return m
}

func openEditor(path string) tea.Cmd {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vi"
	}
	c := exec.Command(editor, path)
	return tea.ExecProcess(c, func(err error) tea.Msg {
		return editorFinishedMsg{path: path, err: err}
	})
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("rawsite — " + m.site.Config().Title))
	b.WriteString("\n\n")

	if m.mode == modeInput {
		prompt := "Path for the new post:"
		if m.action == actionEditPost {
			prompt = "Path of the post to edit:"
		}
		b.WriteString(prompt + "\n")
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(m.styles.Help.Render("enter: confirm · esc: back"))
	} else {
		for i, choice := range menuChoices {
			cursor := "  "
			line := m.styles.Item.Render(choice)
			if i == m.cursor {
				cursor = m.styles.Cursor.Render("> ")
				line = m.styles.Selected.Render(choice)
			}
			b.WriteString(cursor + line + "\n")
		}
		b.WriteString("\n")
		b.WriteString(m.styles.Help.Render("↑/↓: move · enter: select · q: quit"))
	}

	if m.status != "" {
		style := m.styles.Status
		if m.failed {
			style = m.styles.Error
		}
		b.WriteString("\n\n" + style.Render(m.status))
	}
	b.WriteString("\n")
	return b.String()
}

// Run starts the menu and blocks until the user quits.
func Run(site *rawsite.Site) error {
	_, err := tea.NewProgram(New(site)).Run()
	return err
}
