package dto

// MQUserCreatedMsg arrives on the user.created queue when the user
// service registers an account.
type MQUserCreatedMsg struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
