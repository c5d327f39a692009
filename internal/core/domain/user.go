package domain

// UserRole is the access level of a shop user.
type UserRole string

const (
	RoleUser  UserRole = "USER"
	RoleAdmin UserRole = "ADMIN"
)

// UserStatus is the lifecycle state of a user.
type UserStatus string

const (
	UserActive   UserStatus = "ACTIVE"
	UserInactive UserStatus = "INACTIVE"
	UserFrozen   UserStatus = "FREEZE"
)

// User is a shop staff member. Every account, transaction and closing belongs
// transitively to exactly one user.
type User struct {
	UserID       string     `json:"userID"`
	Phone        string     `json:"phone"`
	PasswordHash string     `json:"-"`
	FirstName    string     `json:"firstName"`
	LastName     string     `json:"lastName"`
	Role         UserRole   `json:"role"`
	Status       UserStatus `json:"status"`
	AuditFields
}
