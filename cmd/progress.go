package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// taskResultMsg carries the outcome of the background task the progress
// line is fronting.
type taskResultMsg struct {
	err error
}

type progressModel struct {
	spin    spinner.Model
	label   string
	task    tea.Cmd
	started time.Time
	elapsed time.Duration
	err     error
	done    bool
}

func newProgressModel(label string, task tea.Cmd) progressModel {
	spin := spinner.New(spinner.WithSpinner(spinner.MiniDot))
	spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))

	return progressModel{
		spin:    spin,
		label:   label,
		task:    task,
		started: time.Now(),
	}
}

func (m progressModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.task)
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case taskResultMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	case spinner.TickMsg:
		m.elapsed = time.Since(m.started)
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m progressModel) View() string {
	if m.done {
		return ""
	}

	return fmt.Sprintf("%s %s %s", m.spin.View(), m.label, m.elapsed.Round(time.Second))
}

// runWithSpinner executes run while animating a progress line on output and
// returns whatever run returned. Cancelling ctx tears the program down.
func runWithSpinner(ctx context.Context, output io.Writer, label string, run func(context.Context) error) error {
	task := func() tea.Msg {
		return taskResultMsg{err: run(ctx)}
	}

	p := tea.NewProgram(
		newProgressModel(label, task),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	final, err := p.Run()
	if err != nil {
		return err
	}

	model, ok := final.(progressModel)
	if !ok {
		return fmt.Errorf("unexpected final progress model type %T", final)
	}

	return model.err
}
