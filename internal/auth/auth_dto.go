package auth

import "optitrack/internal/employee"

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ProvisionRequest struct {
	EmployeeID string `json:"employeeId" binding:"omitempty,uuid"`
	Email      string `json:"email" binding:"required,email"`
	Role       string `json:"role" binding:"required"`
}

type InitiatePasswordSetupRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type CompletePasswordSetupRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

type AuthResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employeeId,omitempty"`
	Email      string `json:"email"`
	Role       string `json:"role"`
}

type LoginResponse struct {
	Token     string       `json:"token"`
	TokenType string       `json:"tokenType"`
	ExpiresAt string       `json:"expiresAt"`
	User      AuthResponse `json:"user"`
}

type MeResponse struct {
	AuthResponse
	Employee *employee.EmployeeResponse `json:"employee,omitempty"`
}
