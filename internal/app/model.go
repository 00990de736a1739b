package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/lakshaymaurya-felt/tempcleaner/internal/analyze"
	"github.com/lakshaymaurya-felt/tempcleaner/internal/clean"
	"github.com/lakshaymaurya-felt/tempcleaner/internal/config"
	"github.com/lakshaymaurya-felt/tempcleaner/internal/core"
	"github.com/lakshaymaurya-felt/tempcleaner/internal/tasks"
	"github.com/lakshaymaurya-felt/tempcleaner/internal/worker"
)

// ─── Buttons ─────────────────────────────────────────────────────────────────

type buttonKind int

const (
	kindTarget buttonKind = iota
	kindCleanAll
	kindTask
)

type button struct {
	kind   buttonKind
	target config.CleanTarget
	task   tasks.Task
}

func (b button) label() string {
	switch b.kind {
	case kindTarget:
		return b.target.Name + "  " + b.target.Path
	case kindCleanAll:
		return "Clean All Targets"
	default:
		return b.task.Name
	}
}

func (b button) tooltip() string {
	switch b.kind {
	case kindTarget:
		return b.target.Description
	case kindCleanAll:
		return "Delete the contents of every target above, one after another"
	default:
		return b.task.Description + " (" + b.task.Command + ")"
	}
}

// ─── Messages ────────────────────────────────────────────────────────────────

type cleanDoneMsg struct {
	target config.CleanTarget
	result clean.Result
}

type cleanAllDoneMsg struct {
	results map[string]clean.Result
}

type taskDoneMsg struct {
	task   tasks.Task
	result tasks.Result
}

type sizeMsg struct {
	target string
	usage  analyze.Usage
	err    error
}

// ─── Model ───────────────────────────────────────────────────────────────────

// Options configure the interactive UI.
type Options struct {
	// CommandTimeout bounds each task run.
	CommandTimeout time.Duration

	// Confirm asks before cleaning or running disruptive tasks.
	Confirm bool
}

// Model is the bubbletea Model for the TempCleaner window.
type Model struct {
	opts    Options
	exec    *worker.Executor
	send    *sender
	buttons []button
	cursor  int
	width   int
	height  int

	// pending is the action awaiting y/n; nil when no dialog is open.
	pending *button
	warning string

	// Status line. Concurrent jobs overwrite each other; the last one to
	// finish wins.
	status    string
	statusErr bool
	running   int

	sizes map[string]string

	showDetail bool
	detail     viewport.Model

	osName   string
	elevated bool

	spinner  spinner.Model
	keys     keyMap
	help     help.Model
	quitting bool
}

// New builds the model. Results of background jobs are delivered through
// send once the program is running.
func New(opts Options, exec *worker.Executor, send *sender) Model {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot

	m := Model{
		opts:     opts,
		exec:     exec,
		send:     send,
		width:    80,
		height:   24,
		sizes:    make(map[string]string),
		detail:   viewport.New(76, 14),
		osName:   core.OSDescription(),
		elevated: core.IsElevated(),
		spinner:  sp,
		keys:     newKeyMap(),
		help:     help.New(),
		status:   "Ready",
	}
	m.buttons = buildButtons(config.ResolveTargets())
	return m
}

func buildButtons(targets []config.CleanTarget) []button {
	var out []button
	for _, t := range targets {
		out = append(out, button{kind: kindTarget, target: t})
	}
	out = append(out, button{kind: kindCleanAll})
	for _, t := range tasks.List() {
		out = append(out, button{kind: kindTask, task: t})
	}
	return out
}

func (m Model) targets() []config.CleanTarget {
	var out []config.CleanTarget
	for _, b := range m.buttons {
		if b.kind == kindTarget {
			out = append(out, b.target)
		}
	}
	return out
}

// ─── tea.Model interface ─────────────────────────────────────────────────────

func (m Model) Init() tea.Cmd {
	m.measureAll()
	return m.spinner.Tick
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.detail.Width = max(msg.Width-4, 20)
		m.detail.Height = max(msg.Height-8, 5)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)

	case cleanDoneMsg:
		m.running--
		r := msg.result
		logErrors(msg.target.Name, r.Errors)
		m.status = fmt.Sprintf("Deleted %d items from %s", r.Deleted, msg.target.Name)
		m.statusErr = r.Failed()
		if r.Failed() {
			m.status += fmt.Sprintf(" (%d errors, see log)", len(r.Errors))
		}
		m.measure(msg.target)
		return m, nil

	case cleanAllDoneMsg:
		m.running--
		for _, t := range m.targets() {
			if r, ok := msg.results[t.Name]; ok {
				logErrors(t.Name, r.Errors)
			}
		}
		sum := clean.Summarize(msg.results)
		m.status = sum.String()
		m.statusErr = sum.Errors > 0
		m.measureAll()
		return m, nil

	case taskDoneMsg:
		m.running--
		m.status = fmt.Sprintf("%s: exit code %d", msg.task.Name, msg.result.ExitCode)
		m.statusErr = !msg.result.OK()
		m.detail.SetContent(renderOutput(msg.task, msg.result))
		m.detail.GotoTop()
		m.showDetail = true
		return m, nil

	case sizeMsg:
		if msg.err != nil {
			delete(m.sizes, msg.target)
			return m, nil
		}
		m.sizes[msg.target] = fmt.Sprintf("%s in %d items", core.FormatSize(msg.usage.Bytes), msg.usage.Items())
		return m, nil
	}

	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.renderView()
}

// ─── Input ───────────────────────────────────────────────────────────────────

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) && msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	// Output detail view.
	if m.showDetail {
		switch {
		case key.Matches(msg, m.keys.Cancel), msg.String() == "q":
			m.showDetail = false
			return m, nil
		}
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd
	}

	// Confirmation dialog.
	if m.pending != nil {
		switch {
		case key.Matches(msg, m.keys.Confirm):
			b := *m.pending
			m.pending = nil
			return m.dispatch(b), nil
		case key.Matches(msg, m.keys.Cancel):
			m.pending = nil
			m.status = "Cancelled"
			m.statusErr = false
		}
		return m, nil
	}

	m.warning = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.buttons)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Refresh):
		m.buttons = buildButtons(config.ResolveTargets())
		m.measureAll()
		m.status = "Targets refreshed"
		m.statusErr = false
	case key.Matches(msg, m.keys.Press):
		return m.press(m.buttons[m.cursor]), nil
	}
	return m, nil
}

// press validates a button and either opens a confirmation or dispatches.
func (m Model) press(b button) Model {
	switch b.kind {
	case kindTarget:
		if info, err := os.Stat(b.target.Path); err != nil || !info.IsDir() {
			m.warning = "Target not found: " + b.target.Path
			return m
		}
		if m.opts.Confirm {
			m.pending = &b
			return m
		}
	case kindCleanAll:
		if m.opts.Confirm {
			m.pending = &b
			return m
		}
	case kindTask:
		if m.opts.Confirm && b.task.Disruptive {
			m.pending = &b
			return m
		}
	}
	return m.dispatch(b)
}

// dispatch starts the job for b on the executor. Results come back as
// messages; the UI never waits for them.
func (m Model) dispatch(b button) Model {
	send := m.send
	m.running++
	m.statusErr = false

	switch b.kind {
	case kindTarget:
		t := b.target
		m.status = "Cleaning " + t.Name + "…"
		m.exec.Go("clean "+t.Name, func(context.Context) {
			send.Send(cleanDoneMsg{target: t, result: clean.CleanFolder(t.Path)})
		})
	case kindCleanAll:
		targets := config.ResolveTargets()
		m.status = "Cleaning all targets…"
		m.exec.Go("clean all", func(context.Context) {
			send.Send(cleanAllDoneMsg{results: clean.CleanMany(targets)})
		})
	case kindTask:
		t := b.task
		timeout := m.opts.CommandTimeout
		m.status = "Running " + t.Name + "…"
		m.exec.Go("task "+t.Name, func(ctx context.Context) {
			send.Send(taskDoneMsg{task: t, result: tasks.RunTask(ctx, t, timeout)})
		})
	}
	return m
}

// ─── Size preview ────────────────────────────────────────────────────────────

func (m Model) measureAll() {
	for _, t := range m.targets() {
		m.measure(t)
	}
}

func (m Model) measure(t config.CleanTarget) {
	send := m.send
	m.exec.Go("measure "+t.Name, func(context.Context) {
		sc := analyze.NewScanner(4)
		u, err := sc.Measure(t.Path)
		for _, w := range sc.Warnings() {
			zap.L().Debug("measure", zap.String("target", t.Name), zap.String("warning", w))
		}
		send.Send(sizeMsg{target: t.Name, usage: u, err: err})
	})
}

func logErrors(target string, errs []string) {
	for _, e := range errs {
		zap.L().Warn("clean error", zap.String("target", target), zap.String("error", e))
	}
}
