package models

// User is the users table row.
type User struct {
	UserID       string `db:"user_id"`
	Phone        string `db:"phone"`
	PasswordHash string `db:"password_hash"`
	FirstName    string `db:"first_name"`
	LastName     string `db:"last_name"`
	Role         string `db:"role"`
	Status       string `db:"status"`
	AuditFields
}
