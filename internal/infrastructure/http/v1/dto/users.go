package dto

import "agent360/internal/domain/users"

type UserRow struct {
	ID       string  `json:"id"`
	FullName string  `json:"full_name"`
	Email    string  `json:"email"`
	Role     *string `json:"role"`
}

func FromUsers(items []users.User) []UserRow {
	out := make([]UserRow, 0, len(items))
	for _, u := range items {
		out = append(out, UserRow{
			ID:       u.ID,
			FullName: u.FullName,
			Email:    u.Email,
			Role:     u.Role,
		})
	}
	return out
}
