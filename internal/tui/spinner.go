package tui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pixolin/wpplugin/internal/color"
	"github.com/pixolin/wpplugin/internal/selector"
)

// spinDoneMsg is sent when the wrapped operation finishes.
type spinDoneMsg struct {
	err error
}

// spinModel is the BubbleTea model shown while a blocking operation runs.
type spinModel struct {
	spinner spinner.Model
	message string
	fn      func() error
	err     error
	done    bool
	aborted bool
}

func newSpinModel(message string, fn func() error, theme color.Theme) spinModel {
	s := spinner.New(spinner.WithSpinner(spinner.Dot))

	if _, ok := theme.Title.GetForeground().(lipgloss.NoColor); !ok {
		s.Style = theme.Title
	}

	return spinModel{
		spinner: s,
		message: message,
		fn:      fn,
	}
}

// runFn returns a tea.Cmd that executes the wrapped operation.
func runFn(fn func() error) tea.Cmd {
	return func() tea.Msg {
		return spinDoneMsg{err: fn()}
	}
}

func (m spinModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, runFn(m.fn))
}

//nolint:ireturn // tea.Model is required by the bubbletea framework
func (m spinModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			m.aborted = true

			return m, tea.Quit
		}

	case spinner.TickMsg:
		if !m.done {
			var cmd tea.Cmd

			m.spinner, cmd = m.spinner.Update(msg)

			return m, cmd
		}

	case spinDoneMsg:
		m.done = true
		m.err = msg.err

		return m, tea.Quit
	}

	return m, nil
}

func (m spinModel) View() string {
	if m.done || m.aborted {
		// Return empty so BubbleTea clears the spinner view before normal
		// output resumes.
		return ""
	}

	return fmt.Sprintf("%s %s\n", m.spinner.View(), m.message)
}

// Spin runs fn while an animated spinner with the given message is shown on
// stderr. Without a terminal the spinner is skipped and fn runs directly.
// Pressing q or ctrl+c while the spinner is visible abandons the operation.
func Spin(message string, fn func() error, theme color.Theme) error {
	if !IsTerminal() {
		return fn()
	}

	p := tea.NewProgram(newSpinModel(message, fn, theme), tea.WithOutput(os.Stderr))

	finalModel, err := p.Run()
	if err != nil {
		// Fallback: run without the spinner UI.
		fmt.Fprintf(os.Stderr, "interactive UI failed: %v, falling back to plain output\n", err)

		return fn()
	}

	m, ok := finalModel.(spinModel)
	if !ok {
		return fn()
	}

	if m.aborted {
		return selector.ErrAborted
	}

	return m.err
}
