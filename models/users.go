package models

// UserRole is chosen by the client on the login screen; it is not authenticated.
type UserRole string

const (
	RoleStaff    UserRole = "staff"
	RoleCustomer UserRole = "customer"
)

func (r UserRole) Valid() bool {
	return r == RoleStaff || r == RoleCustomer
}
