package main

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tripod-mvc/tripod/facade"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	doneStyle   = lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("241"))
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	inputStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
)

// tasksMsg delivers a refreshed task list from the board mediator.
type tasksMsg struct {
	tasks []Task
}

// uiModel is the bubbletea model. It never mutates tasks directly: key
// input becomes notifications into the facade, and the task list only
// changes when a tasksMsg arrives back through the mediator.
type uiModel struct {
	app    *facade.Facade
	tasks  []Task
	input  string
	cursor int
}

func newUI(app *facade.Facade, tasks []Task) uiModel {
	return uiModel{app: app, tasks: tasks}
}

func (m uiModel) Init() tea.Cmd {
	return nil
}

func (m uiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tasksMsg:
		m.tasks = msg.tasks
		if m.cursor >= len(m.tasks) {
			m.cursor = max(0, len(m.tasks)-1)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m uiModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := context.Background()

	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "enter":
		title := strings.TrimSpace(m.input)
		if title != "" {
			m.app.SendNotification(ctx, noteTaskAdd, title, "")
		}
		m.input = ""
		return m, nil

	case "backspace":
		if m.input != "" {
			runes := []rune(m.input)
			m.input = string(runes[:len(runes)-1])
		}
		return m, nil

	case "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down":
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}
		return m, nil

	case "tab":
		if len(m.tasks) > 0 {
			m.app.SendNotification(ctx, noteTaskToggle, m.cursor, "")
		}
		return m, nil

	case "delete":
		if len(m.tasks) > 0 {
			m.app.SendNotification(ctx, noteTaskRemove, m.cursor, "")
		}
		return m, nil
	}

	if msg.Type == tea.KeyRunes {
		m.input += string(msg.Runes)
	} else if msg.Type == tea.KeySpace {
		m.input += " "
	}
	return m, nil
}

func (m uiModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("taskboard"))
	b.WriteString("\n\n")

	if len(m.tasks) == 0 {
		b.WriteString("  no tasks yet\n")
	}
	for i, task := range m.tasks {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}
		box := "[ ]"
		title := task.Title
		if task.Done {
			box = "[x]"
			title = doneStyle.Render(title)
		}
		fmt.Fprintf(&b, "%s%s %s\n", cursor, box, title)
	}

	b.WriteString("\n")
	b.WriteString(inputStyle.Render(m.input + "█"))
	b.WriteString("\n")
	b.WriteString(footerStyle.Render("enter add · tab toggle · del remove · esc quit"))
	b.WriteString("\n")

	return b.String()
}
