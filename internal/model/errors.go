package model

import "errors"

// Common errors used across the application
var (
	// Session errors
	ErrSessionNotFound = errors.New("session not found")
	ErrRoomCodeTaken   = errors.New("room code already claimed")
	ErrGameNotWaiting  = errors.New("game has already started")
	ErrGameNotActive   = errors.New("game is not active")

	// Player errors
	ErrPlayerNotFound = errors.New("player not found")

	// Question set errors
	ErrQuestionSetNotFound = errors.New("question set not found")
	ErrNotOwner            = errors.New("question set belongs to another user")

	// Answer errors
	ErrInvalidQuestionIndex = errors.New("question index out of range")

	// User errors
	ErrUserNotFound = errors.New("user not found")
)
