package domain

// Session is the minimal authenticated-identity record persisted across
// restarts. Created on login, removed on logout.
type Session struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}
