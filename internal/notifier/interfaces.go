package notifier

// INotifier alerts the operations channel about conditions worth a human
// looking at (quota exhaustion, unmapped gateway errors). End users are never
// notified through this interface.
type INotifier interface {
	Notify(subject string, body string) error
}
