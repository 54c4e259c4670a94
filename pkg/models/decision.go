package models

// DecisionKind is the user's choice on a firing alarm.
type DecisionKind string

const (
	DecisionSnooze  DecisionKind = "Snooze"
	DecisionDismiss DecisionKind = "Dismiss"
)

// Decision is the outcome of a notification prompt. Minutes is only
// meaningful for a snooze; zero means "use the configured default".
type Decision struct {
	Kind    DecisionKind
	Minutes int
}

// Snooze returns a snooze decision for the given delay.
func Snooze(minutes int) Decision {
	return Decision{Kind: DecisionSnooze, Minutes: minutes}
}

// Dismiss returns a dismiss decision.
func Dismiss() Decision {
	return Decision{Kind: DecisionDismiss}
}
