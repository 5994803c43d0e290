// Package panel is the interactive terminal rendition of the API page: two
// forms, four buttons, a link list and one result element per action.
package panel

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ziadkadry99/opspanel/internal/apiclient"
	"github.com/ziadkadry99/opspanel/internal/forms"
	"github.com/ziadkadry99/opspanel/internal/history"
	"github.com/ziadkadry99/opspanel/internal/render"
)

type action int

const (
	actionUser action = iota
	actionItem
	actionHealth
	actionFunc1
	actionFunc2
	actionUsers
)

// control is a focusable element, in tab order.
type control int

const (
	ctrlFirstName control = iota
	ctrlLastName
	ctrlAge
	ctrlMarried
	ctrlCreateUser
	ctrlItemName
	ctrlItemValue
	ctrlSubmitItem
	ctrlHealth
	ctrlFunc1
	ctrlFunc2
	ctrlUsers
	controlCount
)

// resultMsg carries a finished request and its rendered text back to Update.
type resultMsg struct {
	action action
	text   string
	lines  []string
}

// Model is the bubbletea model of the panel.
type Model struct {
	ctx      context.Context
	client   *apiclient.Client
	recorder *history.Recorder

	inputs  map[control]textinput.Model
	married bool
	focus   control

	results   map[action]string
	userLines []string
	pending   map[action]bool
	links     []apiclient.Link

	width int
}

// New builds a panel bound to client. recorder may be nil.
func New(ctx context.Context, client *apiclient.Client, recorder *history.Recorder) *Model {
	m := &Model{
		ctx:      ctx,
		client:   client,
		recorder: recorder,
		inputs:   make(map[control]textinput.Model),
		results:  make(map[action]string),
		pending:  make(map[action]bool),
		links:    client.Links(),
	}

	m.inputs[ctrlFirstName] = newInput("First name")
	m.inputs[ctrlLastName] = newInput("Last name")
	m.inputs[ctrlAge] = newInput("Age")
	m.inputs[ctrlItemName] = newInput("Name")
	m.inputs[ctrlItemValue] = newInput("Value")
	m.setFocus(ctrlFirstName)

	return m
}

func newInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.CharLimit = 128
	ti.Width = 24
	return ti
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case resultMsg:
		m.pending[msg.action] = false
		m.results[msg.action] = msg.text
		if msg.action == actionUsers {
			m.userLines = msg.lines
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "down":
			m.setFocus((m.focus + 1) % controlCount)
			return m, nil
		case "shift+tab", "up":
			m.setFocus((m.focus + controlCount - 1) % controlCount)
			return m, nil
		case "enter":
			return m, m.activate(m.focus)
		}
		if m.focus == ctrlMarried {
			switch msg.String() {
			case " ", "left", "right":
				m.married = !m.married
			}
			return m, nil
		}
	}

	if in, ok := m.inputs[m.focus]; ok {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = in.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) setFocus(c control) {
	for ctrl, in := range m.inputs {
		if ctrl == c {
			in.Focus()
		} else {
			in.Blur()
		}
		m.inputs[ctrl] = in
	}
	m.focus = c
}

func (m *Model) setInput(c control, value string) {
	in := m.inputs[c]
	in.SetValue(value)
	m.inputs[c] = in
}

func (m *Model) value(c control) string {
	return m.inputs[c].Value()
}

// activate runs whatever the focused control does on enter.
func (m *Model) activate(c control) tea.Cmd {
	switch c {
	case ctrlFirstName, ctrlLastName, ctrlAge, ctrlCreateUser:
		return m.submitUser()
	case ctrlMarried:
		m.married = !m.married
		return nil
	case ctrlItemName, ctrlItemValue, ctrlSubmitItem:
		return m.submitItem()
	case ctrlHealth:
		return m.start(actionHealth, render.PendingHealth, func(ctx context.Context) resultMsg {
			res := m.client.Health(ctx)
			return m.finish(ctx, actionHealth, res, render.JSON(res), nil, !res.Failed())
		})
	case ctrlFunc1:
		return m.start(actionFunc1, render.PendingFunc1, func(ctx context.Context) resultMsg {
			res := m.client.TriggerFunc1(ctx)
			return m.finish(ctx, actionFunc1, res, render.Trigger(res), nil, res.Accepted())
		})
	case ctrlFunc2:
		return m.start(actionFunc2, render.PendingFunc2, func(ctx context.Context) resultMsg {
			res := m.client.TriggerFunc2(ctx)
			return m.finish(ctx, actionFunc2, res, render.Trigger(res), nil, res.Accepted())
		})
	case ctrlUsers:
		m.userLines = nil
		return m.start(actionUsers, render.PendingUsers, func(ctx context.Context) resultMsg {
			res := m.client.ListUsers(ctx)
			summary, lines := render.Users(res)
			return m.finish(ctx, actionUsers, res, summary, lines, res.Accepted())
		})
	}
	return nil
}

func (m *Model) submitUser() tea.Cmd {
	married := "false"
	if m.married {
		married = "true"
	}
	user := forms.ParseUser(m.value(ctrlFirstName), m.value(ctrlLastName), m.value(ctrlAge), married)
	return m.start(actionUser, render.PendingUser, func(ctx context.Context) resultMsg {
		res := m.client.CreateUser(ctx, user)
		return m.finish(ctx, actionUser, res, render.UserCreated(res), nil, res.Accepted())
	})
}

func (m *Model) submitItem() tea.Cmd {
	item, err := forms.ParseItem(m.value(ctrlItemName), m.value(ctrlItemValue))
	if err != nil {
		m.results[actionItem] = render.InvalidItem
		return nil
	}
	return m.start(actionItem, render.PendingItem, func(ctx context.Context) resultMsg {
		res := m.client.SubmitItem(ctx, item)
		return m.finish(ctx, actionItem, res, render.JSON(res), nil, !res.Failed())
	})
}

// start marks a as outstanding and returns the command that performs it.
// While a is outstanding further triggers are ignored.
func (m *Model) start(a action, pending string, run func(context.Context) resultMsg) tea.Cmd {
	if m.pending[a] {
		return nil
	}
	m.pending[a] = true
	m.results[a] = pending
	ctx := m.ctx
	return func() tea.Msg {
		return run(ctx)
	}
}

func (m *Model) finish(ctx context.Context, a action, res apiclient.Result, text string, lines []string, ok bool) resultMsg {
	m.recorder.Record(ctx, res, recordedText(text, lines), ok)
	return resultMsg{action: a, text: text, lines: lines}
}

func recordedText(text string, lines []string) string {
	for _, l := range lines {
		text += "\n" + l
	}
	return text
}

// Run starts the panel on the terminal and blocks until the user quits.
func Run(ctx context.Context, client *apiclient.Client, recorder *history.Recorder) error {
	p := tea.NewProgram(New(ctx, client, recorder), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
