package main

import (
	"context"
	"fmt"
	"slices"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tripod-mvc/tripod/notify"
)

// Notification names wiring the board together. Input notifications carry
// commands; tasks.changed carries the refreshed task list to the mediator.
const (
	noteTaskAdd      = "task.add"
	noteTaskToggle   = "task.toggle"
	noteTaskRemove   = "task.remove"
	noteTasksChanged = "tasks.changed"
)

const (
	taskProxyName     = "tasks"
	boardMediatorName = "board"
)

// Task is one entry on the board.
type Task struct {
	Title string `json:"title"`
	Done  bool   `json:"done"`
}

// TaskProxy holds the board's task list in the Model.
type TaskProxy struct {
	tasks []Task
}

func NewTaskProxy(seed []string) *TaskProxy {
	p := &TaskProxy{}
	for _, title := range seed {
		p.Add(title)
	}
	return p
}

func (p *TaskProxy) Name() string { return taskProxyName }

func (p *TaskProxy) OnRegister() {}

func (p *TaskProxy) OnRemove() { p.tasks = nil }

func (p *TaskProxy) Add(title string) {
	p.tasks = append(p.tasks, Task{Title: title})
}

func (p *TaskProxy) Toggle(index int) error {
	if index < 0 || index >= len(p.tasks) {
		return fmt.Errorf("task index %d out of range", index)
	}
	p.tasks[index].Done = !p.tasks[index].Done
	return nil
}

func (p *TaskProxy) Remove(index int) error {
	if index < 0 || index >= len(p.tasks) {
		return fmt.Errorf("task index %d out of range", index)
	}
	p.tasks = slices.Delete(p.tasks, index, index+1)
	return nil
}

// Tasks returns a defensive copy of the task list.
func (p *TaskProxy) Tasks() []Task {
	return slices.Clone(p.tasks)
}

// addTaskCommand appends the task named in the notification body and
// announces the refreshed list.
type addTaskCommand struct {
	proxy *TaskProxy
}

func (c *addTaskCommand) Execute(ctx context.Context, note *notify.Notification, sender notify.Notifier) error {
	title, ok := note.Body.(string)
	if !ok || title == "" {
		return fmt.Errorf("%s: body must be a non-empty string, got %T", note.Name, note.Body)
	}
	c.proxy.Add(title)
	sender.SendNotification(ctx, noteTasksChanged, c.proxy.Tasks(), "")
	return nil
}

// toggleTaskCommand flips the done flag of the task at the body's index.
type toggleTaskCommand struct {
	proxy *TaskProxy
}

func (c *toggleTaskCommand) Execute(ctx context.Context, note *notify.Notification, sender notify.Notifier) error {
	index, ok := note.Body.(int)
	if !ok {
		return fmt.Errorf("%s: body must be an int index, got %T", note.Name, note.Body)
	}
	if err := c.proxy.Toggle(index); err != nil {
		return err
	}
	sender.SendNotification(ctx, noteTasksChanged, c.proxy.Tasks(), "")
	return nil
}

// removeTaskCommand deletes the task at the body's index.
type removeTaskCommand struct {
	proxy *TaskProxy
}

func (c *removeTaskCommand) Execute(ctx context.Context, note *notify.Notification, sender notify.Notifier) error {
	index, ok := note.Body.(int)
	if !ok {
		return fmt.Errorf("%s: body must be an int index, got %T", note.Name, note.Body)
	}
	if err := c.proxy.Remove(index); err != nil {
		return err
	}
	sender.SendNotification(ctx, noteTasksChanged, c.proxy.Tasks(), "")
	return nil
}

// boardMediator bridges tasks.changed notifications into the bubbletea
// program's message loop.
type boardMediator struct {
	send func(tea.Msg)
}

func (m *boardMediator) Name() string { return boardMediatorName }

func (m *boardMediator) Interests() []string { return []string{noteTasksChanged} }

func (m *boardMediator) OnRegister() {}

func (m *boardMediator) OnRemove() {}

func (m *boardMediator) HandleNotification(ctx context.Context, note *notify.Notification) {
	tasks, ok := note.Body.([]Task)
	if !ok {
		return
	}
	m.send(tasksMsg{tasks: tasks})
}
