package domain

// NotificationLevel is the severity of a user notification.
type NotificationLevel string

const (
	NotifySuccess NotificationLevel = "success"
	NotifyInfo    NotificationLevel = "info"
	NotifyWarn    NotificationLevel = "warn"
	NotifyError   NotificationLevel = "error"
)

// Notification is a message surfaced to the user by a boundary operation.
type Notification struct {
	Level   NotificationLevel `json:"level"`
	Message string            `json:"message"`
	Err     error             `json:"-"`
}
