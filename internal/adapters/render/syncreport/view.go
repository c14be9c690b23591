package syncreport

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/yakov-partners/know2-cli/internal/domain"
)

type RenderOptions struct {
	Elapsed time.Duration
}

func renderView(cache *domain.ReferenceCache, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Know2 reference data"),
		s.header.Render(headerLine(cache, opts)),
	}

	if cache == nil {
		lines = append(lines, s.empty.Render("No cache available."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	table := make([]string, 0, len(domain.DatasetNames))
	for _, name := range domain.DatasetNames {
		table = append(table, datasetLine(name, len(cache.Mapping(name)), s))
	}
	lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, table...)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func headerLine(cache *domain.ReferenceCache, opts RenderOptions) string {
	if cache == nil {
		return "datasets: 0"
	}
	if opts.Elapsed > 0 {
		return fmt.Sprintf("datasets: %d, synced in %s", len(domain.DatasetNames), opts.Elapsed.Round(time.Millisecond))
	}
	return fmt.Sprintf("datasets: %d", len(domain.DatasetNames))
}

func datasetLine(name string, entries int, s styles) string {
	label := s.dataset.Render(fmt.Sprintf("%-30s", name))
	count := s.count.Render(fmt.Sprintf("%6d entries", entries))
	if entries == 0 {
		count = s.empty.Render("     0 entries")
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, label, " ", count)
}
