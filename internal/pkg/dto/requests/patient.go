package requests

type UpdateSmsNotifications struct {
	SmsNotificationsEnabled bool `json:"smsNotificationsEnabled"`
}
