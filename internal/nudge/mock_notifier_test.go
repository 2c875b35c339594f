package nudge

type mockNotifier struct {
	called bool
	habits []string
	err    error
}

func (m *mockNotifier) SendNudge(habitNames []string) error {
	m.called = true
	m.habits = habitNames
	return m.err
}
