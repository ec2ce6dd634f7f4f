// Package picker implements a terminal file-open dialog for data files.
package picker

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// AllowedTypes are the file extensions offered by the picker.
var AllowedTypes = []string{".csv", ".txt", ".xlsx"}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")).MarginBottom(1)
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// Model is a bubbletea model wrapping a file picker.
type Model struct {
	filepicker filepicker.Model
	selected   string
	cancelled  bool
	err        error
}

// NewModel creates a picker rooted at dir.
func NewModel(dir string) Model {
	fp := filepicker.New()
	fp.AllowedTypes = AllowedTypes
	fp.CurrentDirectory = dir
	return Model{filepicker: fp}
}

func (m Model) Init() tea.Cmd {
	return m.filepicker.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "q":
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.filepicker, cmd = m.filepicker.Update(msg)

	if ok, path := m.filepicker.DidSelectFile(msg); ok {
		m.selected = path
		return m, tea.Quit
	}

	if ok, path := m.filepicker.DidSelectDisabledFile(msg); ok {
		m.err = fmt.Errorf("%s is not a data file", path)
	}

	return m, cmd
}

func (m Model) View() string {
	if m.selected != "" || m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Select your data"))
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(errStyle.Render(m.err.Error()))
	} else {
		b.WriteString(hintStyle.Render("enter to select, q to cancel"))
	}
	b.WriteString("\n\n")
	b.WriteString(m.filepicker.View())
	return b.String()
}

// Selected returns the chosen path, or "" if nothing was chosen.
func (m Model) Selected() string {
	return m.selected
}

// Cancelled reports whether the user quit without choosing.
func (m Model) Cancelled() bool {
	return m.cancelled
}

// Run shows the picker starting in dir and returns the chosen path.
// It returns "" with a nil error if the user cancels.
func Run(dir string, opts ...tea.ProgramOption) (string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		dir = wd
	}

	final, err := tea.NewProgram(NewModel(dir), opts...).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return "", nil
		}
		return "", fmt.Errorf("file picker: %w", err)
	}

	m, ok := final.(Model)
	if !ok || m.Cancelled() {
		return "", nil
	}
	return m.Selected(), nil
}
