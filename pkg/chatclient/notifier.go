package chatclient

// Notifier receives user-facing notifications about CRUD outcomes,
// standing in for the UI's toast system.
type Notifier interface {
	Notify(title, description string)
	NotifyError(title, description string)
}

// NopNotifier discards all notifications.
type NopNotifier struct{}

func (NopNotifier) Notify(title, description string)      {}
func (NopNotifier) NotifyError(title, description string) {}
