// Package tui implements the interactive teletext browser as a Bubble
// Tea program. It renders pages served by a televideo.PageService and
// issues fetches as commands so the event loop never blocks on the
// network.
package tui

import (
	"context"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/televideo"
)

// Mode selects how a page is represented on screen.
type Mode int

const (
	// ModeImage renders the page's 16:9 raster with Unicode half blocks.
	ModeImage Mode = iota
	// ModeText renders the page's extracted text lines verbatim.
	ModeText
)

// Ensure Model implements tea.Model at compile time.
var _ tea.Model = Model{}

// Model holds the browser state. Navigation targets are committed only
// when a load succeeds, so a failed jump keeps the previous page on
// screen with the error in the header.
type Model struct {
	service televideo.PageService

	page    int
	subPage int
	mode    Mode

	pageView  *televideo.Page
	imageView *televideo.PageImage

	input   string
	loading bool
	errMsg  string
	message string

	width  int
	height int
}

// Option configures the initial Model state.
type Option func(*Model)

// WithStartPage sets the page loaded at startup.
func WithStartPage(page, subPage int) Option {
	return func(m *Model) {
		m.page = page
		m.subPage = subPage
	}
}

// WithMode sets the initial display mode.
func WithMode(mode Mode) Option {
	return func(m *Model) {
		m.mode = mode
	}
}

// New creates a Model that will load page 100.1 as an image unless
// options say otherwise.
func New(service televideo.PageService, opts ...Option) Model {
	m := Model{
		service: service,
		page:    televideo.MinPage,
		subPage: 1,
		mode:    ModeImage,
		loading: true,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init kicks off the initial page load.
func (m Model) Init() tea.Cmd {
	return m.load(m.page, m.subPage)
}

type pageLoadedMsg struct {
	page    int
	subPage int
	content *televideo.Page
}

type imageLoadedMsg struct {
	page    int
	subPage int
	content *televideo.PageImage
}

type loadFailedMsg struct {
	err error
}

// load builds the command that fetches the target page in the current
// display mode.
func (m Model) load(page, subPage int) tea.Cmd {
	service := m.service
	if m.mode == ModeText {
		return func() tea.Msg {
			p, err := service.FetchPage(context.Background(), page, subPage)
			if err != nil {
				return loadFailedMsg{err: err}
			}
			return pageLoadedMsg{page: page, subPage: subPage, content: p}
		}
	}
	return func() tea.Msg {
		pi, err := service.FetchImage(context.Background(), page, subPage)
		if err != nil {
			return loadFailedMsg{err: err}
		}
		return imageLoadedMsg{page: page, subPage: subPage, content: pi}
	}
}

// startLoad marks the model as loading and returns the fetch command.
func (m *Model) startLoad(page, subPage int) tea.Cmd {
	m.loading = true
	m.errMsg = ""
	m.message = ""
	return m.load(page, subPage)
}

// Update advances the model in response to key presses, window resizes
// and load results.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case pageLoadedMsg:
		m.loading = false
		m.page = msg.page
		m.subPage = msg.subPage
		m.pageView = msg.content
		return m, nil

	case imageLoadedMsg:
		m.loading = false
		m.page = msg.page
		m.subPage = msg.subPage
		m.imageView = msg.content
		return m, nil

	case loadFailedMsg:
		m.loading = false
		m.errMsg = televideo.ErrorMessage(msg.err)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey implements the key bindings. Keys that start a fetch are
// ignored while one is already in flight.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "c":
		if m.loading {
			return m, nil
		}
		m.service.ClearCache()
		cmd := m.startLoad(m.page, m.subPage)
		m.message = "Cache cleared!"
		return m, cmd

	case "t":
		if m.loading {
			return m, nil
		}
		if m.mode == ModeImage {
			m.mode = ModeText
		} else {
			m.mode = ModeImage
		}
		return m, m.startLoad(m.page, m.subPage)

	case "left":
		if m.loading || m.page <= televideo.MinPage {
			return m, nil
		}
		return m, m.startLoad(m.page-1, 1)

	case "right":
		if m.loading || m.page >= televideo.MaxPage {
			return m, nil
		}
		return m, m.startLoad(m.page+1, 1)

	case "up":
		if m.loading || m.subPage <= 1 {
			return m, nil
		}
		return m, m.startLoad(m.page, m.subPage-1)

	case "down":
		if m.loading {
			return m, nil
		}
		return m, m.startLoad(m.page, m.subPage+1)

	case "enter":
		if m.loading || m.input == "" {
			return m, nil
		}
		page, err := strconv.Atoi(m.input)
		m.input = ""
		if err != nil || page < televideo.MinPage || page > televideo.MaxPage {
			m.message = "Page must be between 100-899"
			return m, nil
		}
		return m, m.startLoad(page, 1)

	case "backspace":
		if m.input != "" {
			m.input = m.input[:len(m.input)-1]
		}
		m.message = ""
		return m, nil

	case "esc":
		m.input = ""
		m.message = ""
		return m, nil

	default:
		if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
			m.input += key
			m.message = ""
		}
		return m, nil
	}
}
