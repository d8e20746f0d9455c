package auth

import "errors"

var ErrUserNotFound = errors.New("user not found")

var ErrEmailTaken = errors.New("user already exists with this email")

var ErrInvalidCredentials = errors.New("invalid email or password")

var ErrInvalidToken = errors.New("invalid or expired token")

var ErrMissingFields = errors.New("all fields are required")
