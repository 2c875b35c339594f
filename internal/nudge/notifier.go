package nudge

// Notifier delivers a reminder naming the habits whose streaks expire at
// midnight.
type Notifier interface {
	SendNudge(habitNames []string) error
}
