// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RegisterRequest is the payload accepted by the registration endpoint.
type RegisterRequest struct {
	FullName        string `json:"fullName" validate:"required"`
	Email           string `json:"email" validate:"required"`
	Password        string `json:"password" validate:"required"`
	ProfileImageURL string `json:"profileImageUrl,omitempty"`
}

// LoginRequest is the payload accepted by the login endpoint.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResult is returned by a successful registration or login.
type AuthResult struct {
	// ID is the store-assigned identifier of the user.
	ID string `json:"id"`

	// User is the public projection of the account.
	User PublicProfile `json:"user"`

	// Token is the signed bearer token minted for this call.
	Token string `json:"token"`
}

// ErrorResponse is the JSON body written for every failed request.
type ErrorResponse struct {
	Message string `json:"message"`
}
