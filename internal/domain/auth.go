package domain

import "fmt"

// Permissions granted to coffee shop staff.
const (
	PermissionGetDrinksDetail = "get:drinks-detail"
	PermissionPostDrinks      = "post:drinks"
	PermissionPatchDrinks     = "patch:drinks"
	PermissionDeleteDrinks    = "delete:drinks"
)

// AuthError is returned when a bearer token is missing, invalid or lacks a permission.
// Status is the HTTP status the failure maps to.
type AuthError struct {
	Status      int
	Code        string
	Description string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.Code, e.Status, e.Description)
}

func NewAuthError(status int, code, description string) *AuthError {
	return &AuthError{Status: status, Code: code, Description: description}
}

// Principal is the verified identity behind a request.
type Principal struct {
	Subject     string
	Permissions []string
}

// HasPermission reports whether the principal was granted permission.
func (p *Principal) HasPermission(permission string) bool {
	if p == nil {
		return false
	}
	for _, granted := range p.Permissions {
		if granted == permission {
			return true
		}
	}
	return false
}
