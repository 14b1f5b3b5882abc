// Package dto defines data transfer objects for the auth feature's HTTP transport layer.
package dto

// RegisterReq represents the request body for the /register endpoint.
// Gin's binding tags enforce the registration policy (email format, password length).
type RegisterReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// RegisterRes represents the response for a successful registration.
type RegisterRes struct {
	Success bool `json:"success"`
}
