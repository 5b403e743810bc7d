package model

// Scope is the per-request caller identity extracted from the verified token.
type Scope struct {
	UserID   string `json:"user_id"`
	Username string `json:"username,omitempty"`
	Role     string `json:"role,omitempty"`
}
