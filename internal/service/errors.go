package service

import "errors"

var (
	// auth-specific errors
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")

	// todo-specific errors
	ErrTodoNotFound = errors.New("todo not found")
	ErrNoTodos      = errors.New("no todos found")
	ErrEmptyContent = errors.New("content must not be empty")
)
