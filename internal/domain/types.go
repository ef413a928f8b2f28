package domain

// ID is used across domain entities.
type ID int64

// Pagination carries paging params and totals.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalItems int `json:"totalItems"`
	TotalPages int `json:"totalPages"`
}

// Page is one locally paginated slice of a fetched list.
type Page[T any] struct {
	Items []T `json:"items"`
	Pagination
}

// Sort defines sorting preference.
type Sort struct {
	Field     string `json:"field"`
	Direction string `json:"direction"` // asc / desc
}

// Role values carried by a session.
const (
	RoleUser    = "user"
	RolePartner = "partner"
	RoleAdmin   = "admin"
)

// RequestContext carries authenticated user info when available.
type RequestContext struct {
	UserID    ID     `json:"userId"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	RequestID string `json:"-"`
}

// Action is a context action offered on an admin list row.
type Action string

const (
	ActionView   Action = "view"
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
)

// Row pairs a list item with the context actions the admin UI offers on it.
type Row[T any] struct {
	Item    T        `json:"item"`
	Actions []Action `json:"actions"`
}
