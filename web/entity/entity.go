// Package entity defines data structures shared by the web layer of the
// cyberbank panel.
package entity

// Msg represents a standard API response message with success status,
// message text, and optional data object.
type Msg struct {
	Success bool   `json:"success"`
	Msg     string `json:"msg"`
	Obj     any    `json:"obj"`
}

// LoginForm carries the login credentials. Presence is the only rule the
// panel enforces; everything else is up to the backend.
type LoginForm struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

// RegisterForm carries the registration credentials.
type RegisterForm struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

// IncidentForm carries the four editable incident fields. The severity set
// mirrors the backend's accepted values; the backend stays authoritative.
type IncidentForm struct {
	Title       string `json:"title" form:"title" binding:"required"`
	Description string `json:"description" form:"description" binding:"required"`
	Severity    string `json:"severity" form:"severity" binding:"required,oneof=Low Medium High"`
	Bank        string `json:"bank" form:"bank" binding:"required"`
}
