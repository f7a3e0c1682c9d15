// Package users serves read-only user lookups.
package users

// User mirrors a Salesforce user record. Role carries the role name
// when one is assigned.
type User struct {
	ID       string  `db:"id"`
	FullName string  `db:"full_name"`
	Email    string  `db:"email"`
	Role     *string `db:"role"`
}

// ListFilter narrows a user list query.
type ListFilter struct {
	Page     int
	PageSize int
}
