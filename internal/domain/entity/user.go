// Package entity contains the pure domain objects of the checkout and fulfillment flow.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the identity record backing both authentication and purchase
// ownership. PurchasedCourses accumulates the course ids of completed
// purchases so "mi área" can list them without joining compras.
type User struct {
	ID               uuid.UUID
	Email            string
	FullName         string
	Phone            string
	PasswordHash     string
	PurchasedCourses []string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// HasCourse reports whether the user already owns the given course id.
func (u *User) HasCourse(courseID string) bool {
	for _, c := range u.PurchasedCourses {
		if c == courseID {
			return true
		}
	}

	return false
}

// AddCourse appends courseID to the user's purchased courses if not already present.
func (u *User) AddCourse(courseID string) {
	if u.HasCourse(courseID) {
		return
	}
	u.PurchasedCourses = append(u.PurchasedCourses, courseID)
}
