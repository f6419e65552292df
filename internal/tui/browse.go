package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gerunddev/notemark/internal/markup"
	"github.com/gerunddev/notemark/internal/notes"
	"github.com/gerunddev/notemark/internal/render"
	"github.com/gerunddev/notemark/internal/styles"
)

const emptyText = "Nothing to do! Add a task?"

// NotesMsg carries the note list after a load or a change
type NotesMsg struct {
	Notes  []notes.Note
	Status string
	Err    error
}

type browseModel struct {
	model    *notes.Model
	table    table.Model
	viewport viewport.Model
	editor   textarea.Model
	list     []notes.Note
	editing  bool
	editID   int // 0 while composing a new note
	preview  string
	status   string
	err      error
	width    int
	height   int
}

// InitBrowseModel creates the notes browser backed by model
func InitBrowseModel(model *notes.Model) browseModel {
	columns := []table.Column{
		{Title: "ID", Width: 4},
		{Title: "Note", Width: 50},
		{Title: "Updated", Width: 19},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	ts := table.DefaultStyles()
	ts.Header = ts.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(styles.Border)).
		BorderBottom(true).
		Bold(false)
	ts.Selected = styles.SelectedStyle
	t.SetStyles(ts)

	vp := viewport.New(80, 8)
	vp.Style = previewStyle

	ta := textarea.New()
	ta.Placeholder = "Write your note here...\n\n" + render.Cheatsheet()
	ta.ShowLineNumbers = false
	ta.SetWidth(80)
	ta.SetHeight(8)

	return browseModel{
		model:    model,
		table:    t,
		viewport: vp,
		editor:   ta,
	}
}

func (m browseModel) Init() tea.Cmd {
	model := m.model
	return func() tea.Msg {
		return NotesMsg{Notes: model.Notes()}
	}
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		panelHeight := max((msg.Height-12)/2, 3)
		m.table.SetHeight(panelHeight)
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = panelHeight
		m.editor.SetWidth(msg.Width - 4)
		m.editor.SetHeight(panelHeight)
		return m, nil

	case NotesMsg:
		m.list = msg.Notes
		m.err = msg.Err
		if msg.Status != "" {
			m.status = msg.Status
		}
		m.setRows()
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.updateEditor(msg)
		}
		return m.updateList(msg)
	}

	return m, nil
}

func (m browseModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k", "down", "j":
		m.table, cmd = m.table.Update(msg)
		m.showSelected()
		return m, cmd
	case "n":
		return m.startEditing(0, "")
	case "e", "enter":
		if n := m.selected(); n != nil {
			return m.startEditing(n.ID, n.Text)
		}
	case "d":
		if n := m.selected(); n != nil {
			return m, m.delete(n.ID)
		}
	}

	return m, nil
}

func (m browseModel) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.stopEditing()
		m.status = "Edit cancelled"
		return m, nil
	case "ctrl+s":
		id, text := m.editID, m.editor.Value()
		m.stopEditing()
		return m, m.save(id, text)
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	m.setPreview()
	return m, cmd
}

func (m browseModel) startEditing(id int, text string) (tea.Model, tea.Cmd) {
	m.editing = true
	m.editID = id
	m.status = ""
	m.editor.SetValue(text)
	m.setPreview()
	return m, m.editor.Focus()
}

func (m *browseModel) stopEditing() {
	m.editing = false
	m.editID = 0
	m.editor.Blur()
	m.editor.Reset()
	m.preview = ""
}

// setPreview re-parses the editor contents. Runs on every keystroke.
func (m *browseModel) setPreview() {
	m.preview = render.Terminal(markup.Parse(m.editor.Value()))
}

func (m *browseModel) setRows() {
	rows := make([]table.Row, 0, len(m.list))
	for _, n := range m.list {
		updated := "-"
		if !n.UpdatedAt.IsZero() {
			updated = n.UpdatedAt.Local().Format(time.DateTime)
		}
		rows = append(rows, table.Row{strconv.Itoa(n.ID), n.Title(48), updated})
	}
	m.table.SetRows(rows)

	if c := m.table.Cursor(); c >= len(rows) {
		m.table.SetCursor(max(len(rows)-1, 0))
	}
	m.showSelected()
}

func (m *browseModel) showSelected() {
	n := m.selected()
	if n == nil {
		m.viewport.SetContent("")
		return
	}
	m.viewport.SetContent(render.Terminal(n.Parse()))
	m.viewport.GotoTop()
}

func (m browseModel) selected() *notes.Note {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.list) {
		return nil
	}
	return &m.list[i]
}

func (m browseModel) save(id int, text string) tea.Cmd {
	model := m.model
	return func() tea.Msg {
		ctx := context.Background()
		if id == 0 {
			n, err := model.Add(ctx, text)
			if errors.Is(err, notes.ErrEmptyNote) {
				return NotesMsg{Notes: model.Notes(), Status: "Empty note discarded"}
			}
			if err != nil {
				return NotesMsg{Notes: model.Notes(), Err: err}
			}
			return NotesMsg{Notes: model.Notes(), Status: fmt.Sprintf("Added note %d", n.ID)}
		}

		if _, err := model.Edit(ctx, id, text); err != nil {
			return NotesMsg{Notes: model.Notes(), Err: err}
		}
		return NotesMsg{Notes: model.Notes(), Status: fmt.Sprintf("Saved note %d", id)}
	}
}

func (m browseModel) delete(id int) tea.Cmd {
	model := m.model
	return func() tea.Msg {
		if err := model.Delete(context.Background(), id); err != nil {
			return NotesMsg{Notes: model.Notes(), Err: err}
		}
		return NotesMsg{Notes: model.Notes(), Status: fmt.Sprintf("Deleted note %d", id)}
	}
}

func (m browseModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Notes"))
	b.WriteString("\n")

	if m.editing {
		label := "New note"
		if m.editID != 0 {
			label = fmt.Sprintf("Editing note %d", m.editID)
		}
		b.WriteString(labelStyle.Render(label))
		b.WriteString("\n")
		b.WriteString(m.editor.View())
		b.WriteString("\n\n")
		b.WriteString(labelStyle.Render("Preview"))
		b.WriteString("\n")
		b.WriteString(previewStyle.Render(m.preview))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("ctrl+s save • esc cancel"))
		b.WriteString("\n")
		return b.String()
	}

	if len(m.list) == 0 {
		b.WriteString(emptyStyle.Render(emptyText))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("n new • q quit"))
	} else {
		b.WriteString(labelStyle.Render(fmt.Sprintf("Notes: %d", len(m.list))))
		b.WriteString("\n\n")
		b.WriteString(tableStyle.Render(m.table.View()))
		b.WriteString("\n\n")
		b.WriteString(m.viewport.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("↑/k up • ↓/j down • n new • e edit • d delete • q quit"))
	}
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render("✗ Error: " + m.err.Error()))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString(successStyle.Render("✓ " + m.status))
		b.WriteString("\n")
	}

	return b.String()
}

// Run starts the interactive notes browser
func Run(model *notes.Model) error {
	p := tea.NewProgram(InitBrowseModel(model), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
