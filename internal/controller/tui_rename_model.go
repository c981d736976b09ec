package controller

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type tickMsg time.Time

const categoryWidth = 20

type renameDelegate struct {
	offset int
}

func (d renameDelegate) Height() int  { return 1 }
func (d renameDelegate) Spacing() int { return 0 }
func (d renameDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d renameDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	rename, ok := item.(renameItem)
	if !ok {
		return
	}

	isSelected := index == m.Index()

	var nameStyle, categoryStyle lipgloss.Style

	width := m.Width() - categoryWidth - 2

	name := rename.old + " → " + rename.new
	if rename.scope != "" {
		name += " (" + rename.scope + ")"
	}

	if isSelected {
		nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		categoryStyle = nameStyle.Width(categoryWidth)
		name = animateScroll(name, width, d.offset)
	} else {
		nameStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
		categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Width(categoryWidth)
		name = truncateToWidth(name, width)
	}

	_, _ = fmt.Fprintf(w, "%s  %s", categoryStyle.Render(rename.category), nameStyle.Render(name))
}

func animateScroll(text string, width int, offset int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	// ticks to wait before scrolling
	pause := 5

	if offset < pause {
		return truncateToWidth(text, width)
	}

	runes := []rune(text + "   ")
	n := len(runes)
	start := (offset - pause) % n

	res := make([]rune, 0, width)
	for i := range width {
		res = append(res, runes[(start+i)%n])
	}

	return string(res)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	maxWidth := width - lipgloss.Width(ellipsis)
	if maxWidth <= 0 {
		return ellipsis
	}

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// renameModel browses a rename map too long for one screen.
type renameModel struct {
	width        int
	height       int
	renameList   list.Model
	delegate     renameDelegate
	total        int
	totalFiles   int
	rendered     bool
	animOffset   int
	lastSelected int
}

func newRenameModel() renameModel {
	delegate := renameDelegate{}
	renameList := list.New([]list.Item{}, delegate, 80, 20)
	renameList.SetShowPagination(false)
	renameList.SetShowFilter(true)
	renameList.SetShowHelp(false)
	renameList.SetShowTitle(false)
	renameList.SetShowStatusBar(false)
	renameList.FilterInput.Placeholder = "Filter by name…"

	return renameModel{
		renameList:   renameList,
		delegate:     delegate,
		lastSelected: -1,
	}
}

func (m renameModel) Init() tea.Cmd {
	return tea.Tick(time.Second/2, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m renameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.renameList.SetWidth(m.width)

	case tickMsg:
		if m.renameList.FilterState() != list.Filtering && m.rendered {
			m.animOffset++
			m.delegate.offset = m.animOffset
			m.renameList.SetDelegate(m.delegate)

			return m, tea.Tick(time.Millisecond*150, func(t time.Time) tea.Msg {
				return tickMsg(t)
			})
		}

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		default:
			m.renameList, cmd = m.renameList.Update(msg)

			if m.renameList.Index() != m.lastSelected {
				m.lastSelected = m.renameList.Index()
				m.animOffset = 0
				m.delegate.offset = 0
				m.renameList.SetDelegate(m.delegate)
			}

			return m, cmd
		}

	case renamesMsg:
		m = m.handleRenamesMsg(msg)
	}

	return m, cmd
}

func (m renameModel) handleRenamesMsg(msg renamesMsg) renameModel {
	m.total = len(msg.renames)
	m.totalFiles = msg.files

	items := make([]list.Item, 0, len(msg.renames))
	for _, r := range msg.renames {
		items = append(items, r)
	}

	m.renameList.SetItems(items)
	m.rendered = true

	if len(items) > 0 && m.lastSelected == -1 {
		m.lastSelected = 0
	}

	return m
}

func (m renameModel) View() string {
	if !m.rendered {
		return "Loading rename map…\n"
	}

	title := titleStyle.Render("🔀 GPC Rename Map")
	summary := summaryStyle.Render(fmt.Sprintf(
		"Renamed: %s   Files: %s",
		accentStyle.Render(fmt.Sprintf("%d", m.total)),
		accentStyle.Render(fmt.Sprintf("%d", m.totalFiles)),
	))

	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(m.width).
		Render("↑/k up • ↓/j down • g/G top/bottom • / filter • q quit")

	return lipgloss.JoinVertical(lipgloss.Left, title, summary, m.renderTable(), footer)
}

func (m renameModel) renderTable() string {
	// title, summary, footer, border and header take nine rows
	listHeight := m.height - 9
	if listHeight < 5 {
		listHeight = 5
	}

	listWidth := m.width - 6

	m.renameList.SetHeight(listHeight)
	m.renameList.SetWidth(listWidth)

	headers := tableHeaderStyle.Width(listWidth).
		Render(fmt.Sprintf("%-*s  %s", categoryWidth, "Category", "Original → Renamed"))

	return tableContainerStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			headers,
			m.renameList.View(),
		),
	)
}
