package models

import "time"

// Role values for the User discriminator.
const (
	RoleCustomer   = "customer"
	RoleRestaurant = "restaurant"
	RoleAdmin      = "admin"
)

// User represents an account on the platform. A single record serves as a
// customer, a restaurant, or an admin depending on Role; the restaurant-only
// fields are meaningless for the other roles.
type User struct {
	ID       string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password string `json:"-" gorm:"type:varchar(255)" validate:"required,min=6"`
	Phone    string `json:"phone" validate:"omitempty,max=30"`
	Address  string `json:"address" validate:"omitempty,max=500"`
	Role     string `json:"role" gorm:"type:varchar(20);default:customer" validate:"omitempty,oneof=customer restaurant admin"`

	// Restaurant-only attributes.
	CuisineType string `json:"cuisineType,omitempty" validate:"omitempty,max=100"`
	Description string `json:"description,omitempty" validate:"omitempty,max=500"`
	IsApproved  bool   `json:"isApproved" gorm:"default:false"`
	IsPromoted  bool   `json:"isPromoted" gorm:"default:false"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Sanitized returns a copy with the password hash blanked. The field already
// carries `json:"-"`, but handlers blank it anyway before embedding a user in
// a response map.
func (u User) Sanitized() User {
	u.Password = ""
	return u
}
