// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// User is the identity the remote API reports for the authenticated session.
// The dashboard never creates or mutates users locally; it only displays them.
type User struct {
	ID    string `json:"id"`            // Opaque identifier assigned by the remote API.
	Name  string `json:"name"`          // Display name shown in the dashboard header.
	Email string `json:"email"`         // Login identifier.
	Age   *int   `json:"age,omitempty"` // Optional; nil when the user never provided one.
}
