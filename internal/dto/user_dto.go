package dto

import "github.com/google/uuid"

// CreateUserRequest is the admin-provisioning create path. Password is
// optional; a random temporary one is generated when absent.
type CreateUserRequest struct {
	Email     string     `json:"email"`
	Password  string     `json:"password"`
	UserType  string     `json:"user_type"`
	ShopName  string     `json:"shop_name"`
	GSTNumber string     `json:"gst_number"`
	FullName  string     `json:"full_name"`
	Phone     string     `json:"phone"`
	Address   string     `json:"address"`
	CreatedBy *uuid.UUID `json:"created_by"`
}

// UserListFilter holds the optional query filters for listing users.
// Both are ANDed when supplied together.
type UserListFilter struct {
	UserType  string
	CreatedBy *uuid.UUID
}
