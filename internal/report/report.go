// internal/report/report.go
package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/sebschmi/fasta-cleaner/core/fastaclean"
)

var (
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Bold(true)
	labelStyle = lipgloss.NewStyle().Faint(true).Width(20)
)

func row(label string, value any) string {
	return labelStyle.Render(label) + fmt.Sprint(value)
}

// Render writes a human-readable summary of one cleaning run.
func Render(w io.Writer, input string, st fastaclean.Stats) {
	width := "n/a"
	if st.WidthKnown {
		width = fmt.Sprint(st.Width)
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(input),
		row("records", st.Records),
		row("sequence lines", st.SequenceLines),
		row("bases kept", st.BasesKept),
		row("characters dropped", st.Dropped),
		row("line width", width),
	)
	fmt.Fprintln(w, boxStyle.Render(body))
}
