package orderflow

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func enter(t *testing.T, m *Machine) Session {
	t.Helper()
	step, err := m.Enter(Session{}, "PRIMO")
	require.NoError(t, err)
	require.Equal(t, StateAwaitingFrameSize, step.Session.State)
	require.Equal(t, PromptFrameSize, step.Prompt)
	require.True(t, step.StillInFlow)
	return step.Session
}

func at(state State, draft Draft) Session {
	return Session{State: state, Draft: draft}
}

func TestEnter_RequiresSelectedModel(t *testing.T) {
	m := NewMachine(Config{})

	for _, model := range []string{"", "   "} {
		before := Session{}
		step, err := m.Enter(before, model)
		require.ErrorIs(t, err, ErrMissingSelection)
		require.Equal(t, before, step.Session)
		require.False(t, step.StillInFlow)
		require.Nil(t, step.Completed)
	}
}

func TestEnter_RestartsActiveFlow(t *testing.T) {
	m := NewMachine(Config{})
	s := at(StateAwaitingPhone, Draft{SelectedModel: "TERZO", FrameSize: `M (17")`, CustomerName: "Ivan"})

	step, err := m.Enter(s, "ULTIMO")
	require.NoError(t, err)
	require.Equal(t, Session{State: StateAwaitingFrameSize, Draft: Draft{SelectedModel: "ULTIMO"}}, step.Session)
}

func TestSubmit_FrameSize(t *testing.T) {
	m := NewMachine(Config{})

	for _, size := range DefaultFrameSizes {
		t.Run(size, func(t *testing.T) {
			step, err := m.Submit(enter(t, m), size)
			require.NoError(t, err)
			require.Equal(t, StateAwaitingName, step.Session.State)
			require.Equal(t, size, step.Session.Draft.FrameSize)
			require.Equal(t, PromptName, step.Prompt)
		})
	}

	for _, input := range []string{"", "L", `l (19")`, ` L (19")`, `L (19") `, "XXL", "Каталог"} {
		t.Run("reject "+input, func(t *testing.T) {
			s := enter(t, m)
			step, err := m.Submit(s, input)

			verr, ok := IsValidation(err)
			require.True(t, ok)
			require.Equal(t, ReasonFrameSize, verr.Reason)
			require.Equal(t, StateAwaitingFrameSize, verr.State)
			require.Equal(t, s, step.Session)
			require.True(t, step.StillInFlow)
			require.Equal(t, PromptFrameSize, step.Prompt)
		})
	}
}

func TestSubmit_CustomFrameSizes(t *testing.T) {
	m := NewMachine(Config{FrameSizes: []string{"S"}})
	require.Equal(t, []string{"S"}, m.FrameSizes())

	step, err := m.Submit(enter(t, m), "S")
	require.NoError(t, err)
	require.Equal(t, StateAwaitingName, step.Session.State)

	_, err = m.Submit(enter(t, m), `M (17")`)
	require.Error(t, err)
}

func TestSubmit_Name(t *testing.T) {
	m := NewMachine(Config{})
	start := at(StateAwaitingName, Draft{SelectedModel: "PRIMO", FrameSize: `M (17")`})

	cases := []struct {
		input  string
		ok     bool
		stored string
		reason Reason
	}{
		{input: "Io", ok: true, stored: "Io"},
		{input: "  Анна Петрова  ", ok: true, stored: "Анна Петрова"},
		{input: "Яш", ok: true, stored: "Яш"},
		{input: `L (19")`, ok: true, stored: `L (19")`},
		{input: "I", reason: ReasonNameTooShort},
		{input: " Я ", reason: ReasonNameTooShort},
		{input: "   ", reason: ReasonEmpty},
		{input: "/help", reason: ReasonCommand},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			step, err := m.Submit(start, tc.input)
			if !tc.ok {
				verr, ok := IsValidation(err)
				require.True(t, ok)
				require.Equal(t, tc.reason, verr.Reason)
				require.Equal(t, StateAwaitingName, step.Session.State)
				require.Empty(t, step.Session.Draft.CustomerName)
				return
			}
			require.NoError(t, err)
			require.Equal(t, StateAwaitingPhone, step.Session.State)
			require.Equal(t, tc.stored, step.Session.Draft.CustomerName)
			require.Equal(t, PromptPhone, step.Prompt)
		})
	}
}

func TestSubmit_Phone(t *testing.T) {
	m := NewMachine(Config{CollectEmail: true})
	start := at(StateAwaitingPhone, Draft{SelectedModel: "PRIMO", FrameSize: `M (17")`, CustomerName: "Io"})

	for _, input := range []string{"1234", " 123 ", "", "    1"} {
		step, err := m.Submit(start, input)
		_, ok := IsValidation(err)
		require.True(t, ok, input)
		require.Equal(t, StateAwaitingPhone, step.Session.State)
	}

	step, err := m.Submit(start, " +7 913 000-00-00 ")
	require.NoError(t, err)
	require.Equal(t, StateAwaitingEmail, step.Session.State)
	require.Equal(t, "+7 913 000-00-00", step.Session.Draft.CustomerPhone)
	require.Equal(t, PromptEmail, step.Prompt)
}

func TestSubmit_PhoneCompletesWithoutEmail(t *testing.T) {
	m := NewMachine(Config{CollectEmail: false})
	start := at(StateAwaitingPhone, Draft{SelectedModel: "PRIMO", FrameSize: `M (17")`, CustomerName: "Io"})

	step, err := m.Submit(start, "12345")
	require.NoError(t, err)
	require.False(t, step.StillInFlow)
	require.Equal(t, Session{State: StateComplete}, step.Session)
	require.NotNil(t, step.Completed)
	require.Equal(t, "12345", step.Completed.CustomerPhone)
}

func TestSubmit_Email(t *testing.T) {
	m := NewMachine(Config{CollectEmail: true})
	start := at(StateAwaitingEmail, Draft{SelectedModel: "OTTIMO", FrameSize: `XL (21")`, CustomerName: "Io", CustomerPhone: "12345"})

	_, err := m.Submit(start, "  ")
	require.Error(t, err)

	step, err := m.Submit(start, " io@example.com ")
	require.NoError(t, err)
	require.Equal(t, StateComplete, step.Session.State)
	require.Equal(t, &Draft{
		SelectedModel: "OTTIMO",
		FrameSize:     `XL (21")`,
		CustomerName:  "Io",
		CustomerPhone: "12345",
		CustomerEmail: "io@example.com",
	}, step.Completed)
}

func TestCancel_FromEveryActiveState(t *testing.T) {
	m := NewMachine(Config{CollectEmail: true})
	draft := Draft{SelectedModel: "PRIMO", FrameSize: `M (17")`, CustomerName: "Io", CustomerPhone: "12345"}

	for _, state := range []State{StateAwaitingFrameSize, StateAwaitingName, StateAwaitingPhone, StateAwaitingEmail} {
		for _, signal := range DefaultCancelSignals {
			t.Run(state.String()+" "+signal, func(t *testing.T) {
				step, err := m.Submit(at(state, draft), signal)
				require.NoError(t, err)
				require.True(t, step.Cancelled)
				require.False(t, step.StillInFlow)
				require.Nil(t, step.Completed)
				require.Equal(t, Session{State: StateCancelled}, step.Session)

				again, err := m.Enter(step.Session, "PRIMO")
				require.NoError(t, err)
				require.Equal(t, StateAwaitingFrameSize, again.Session.State)
			})
		}

		require.Equal(t, Session{State: StateCancelled}, m.Cancel(at(state, draft)))
	}
}

func TestCancel_CommandWithBotSuffix(t *testing.T) {
	m := NewMachine(Config{})
	draft := Draft{SelectedModel: "PRIMO", FrameSize: `M (17")`}

	for _, input := range []string{"/cancel@TxedBot", " /cancel@TxedBot now ", "/cancel extra"} {
		step, err := m.Submit(at(StateAwaitingName, draft), input)
		require.NoError(t, err, input)
		require.True(t, step.Cancelled, input)
		require.Equal(t, Session{State: StateCancelled}, step.Session)
	}

	step, err := m.Submit(at(StateAwaitingName, draft), "/help@TxedBot")
	verr, ok := IsValidation(err)
	require.True(t, ok)
	require.Equal(t, ReasonCommand, verr.Reason)
	require.False(t, step.Cancelled)
	require.True(t, step.StillInFlow)
}

func TestCommandKey(t *testing.T) {
	cases := map[string]string{
		"/start":             "/start",
		"/start promo":       "/start",
		"/start@txed_bot":    "/start",
		"/cancel@txed_bot x": "/cancel",
		"  /cancel  ":        "/cancel",
		"Каталог":            "Каталог",
		"":                   "",
		`M (17")`:            `M (17")`,
	}
	for in, want := range cases {
		require.Equal(t, want, CommandKey(in), in)
	}
}

func TestState_Prompt(t *testing.T) {
	cases := map[State]Prompt{
		StateIdle:              PromptNone,
		StateAwaitingFrameSize: PromptFrameSize,
		StateAwaitingName:      PromptName,
		StateAwaitingPhone:     PromptPhone,
		StateAwaitingEmail:     PromptEmail,
		StateComplete:          PromptNone,
		StateCancelled:         PromptNone,
	}
	for state, want := range cases {
		require.Equal(t, want, state.Prompt(), state.String())
	}
}

func TestCancel_OutsideFlowIsNoop(t *testing.T) {
	m := NewMachine(Config{})
	for _, s := range []Session{{}, {State: StateComplete}, {State: StateCancelled}} {
		require.Equal(t, s, m.Cancel(s))
	}
}

func TestSubmit_OutsideFlow(t *testing.T) {
	m := NewMachine(Config{})
	_, err := m.Submit(Session{}, "hello")
	require.True(t, errors.Is(err, ErrNotInFlow))
}

func TestEndToEnd_Primo(t *testing.T) {
	m := NewMachine(Config{CollectEmail: false})

	step, err := m.Enter(Session{}, "PRIMO")
	require.NoError(t, err)

	step, err = m.Submit(step.Session, `L (19")`)
	require.NoError(t, err)
	require.Equal(t, StateAwaitingName, step.Session.State)

	step, err = m.Submit(step.Session, "Io")
	require.NoError(t, err)
	require.Equal(t, StateAwaitingPhone, step.Session.State)

	step, err = m.Submit(step.Session, "12345")
	require.NoError(t, err)
	require.False(t, step.StillInFlow)
	require.Equal(t, &Draft{
		SelectedModel: "PRIMO",
		FrameSize:     `L (19")`,
		CustomerName:  "Io",
		CustomerPhone: "12345",
	}, step.Completed)
}
