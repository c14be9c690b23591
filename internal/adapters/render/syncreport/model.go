package syncreport

import (
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/yakov-partners/know2-cli/internal/domain"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type model struct {
	cache  *domain.ReferenceCache
	opts   RenderOptions
	styles styles
	output string
}

func newModel(cache *domain.ReferenceCache, opts RenderOptions) model {
	return model{
		cache:  cache,
		opts:   opts,
		styles: newStyles(),
	}
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = renderView(m.cache, m.opts, m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

// Render produces the post-sync dataset summary as a plain string.
func Render(cache *domain.ReferenceCache, opts RenderOptions) (string, error) {
	p := tea.NewProgram(
		newModel(cache, opts),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
