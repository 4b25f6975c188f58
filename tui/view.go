package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

const helpLine = "  [← /→ ] Page  [↑/↓] Sub-page  [0-9] Jump to page  [t] Text/Image  [q] Quit  [c] Clear cache"

var (
	barStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#000080"))
	loadingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("3"))
)

// View renders the one-line header bar, the centered page body and the
// one-line footer bar.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	bodyHeight := m.height - 2
	if bodyHeight < 0 {
		bodyHeight = 0
	}

	return m.headerView() + "\n" + m.bodyView(bodyHeight) + "\n" + m.footerView()
}

func (m Model) headerView() string {
	left := fmt.Sprintf("  TELEVIDEO RAI - Page %d", m.page)
	if m.subPage > 1 {
		left += fmt.Sprintf(".%d", m.subPage)
	}

	var right string
	switch {
	case m.errMsg != "":
		right = fmt.Sprintf("ERROR: %s  ", m.errMsg)
	case m.loading:
		right = "Loading...  "
	default:
		if at, ok := m.fetchedAt(); ok {
			right = at.Local().Format("15:04:05") + "  "
		}
	}

	return barStyle.Render(bar(left, right, m.width))
}

func (m Model) bodyView(height int) string {
	if height == 0 {
		return ""
	}

	var content string
	if m.loading {
		content = loadingStyle.Render("Loading page...")
	} else {
		switch {
		case m.mode == ModeText && m.pageView != nil:
			content = strings.Join(m.pageView.Lines, "\n")
		case m.mode == ModeImage && m.imageView != nil:
			content = renderImage(m.imageView.Image, m.width, height)
		}
	}

	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) footerView() string {
	var text string
	switch {
	case m.message != "":
		text = "  " + m.message
	case m.input != "":
		text = fmt.Sprintf("  Go to page: %s_", m.input)
	default:
		text = helpLine
	}

	return barStyle.Render(bar(text, "", m.width))
}

// fetchedAt reports when the content on screen was captured.
func (m Model) fetchedAt() (time.Time, bool) {
	if m.mode == ModeText && m.pageView != nil {
		return m.pageView.FetchedAt, true
	}
	if m.mode == ModeImage && m.imageView != nil {
		return m.imageView.FetchedAt, true
	}
	return time.Time{}, false
}

// bar lays left and right out on a single line padded to width.
func bar(left, right string, width int) string {
	pad := width - lipgloss.Width(left) - lipgloss.Width(right)
	if pad < 0 {
		pad = 0
	}
	return left + strings.Repeat(" ", pad) + right
}
