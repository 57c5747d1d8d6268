package apperrors

import (
	"net/http"
)

// Predefined errors for the auth and task-board domains. Services return these
// directly so that equal conditions always produce byte-identical responses
// (the login/refresh anti-enumeration contract depends on that).

// --- auth ---

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"User already exists",
	http.StatusConflict,
)

// ErrInvalidCredentials covers both "no such user" and "wrong password".
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid credentials",
	http.StatusUnauthorized,
)

// ErrInvalidToken covers bad signature, expiry, revocation and unknown-user
// cases without distinguishing them.
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrEmailSendFailed = New(
	CodeExternalServiceError,
	"email",
	"Email could not be sent",
	http.StatusInternalServerError,
)

// --- workspaces ---

var ErrWorkspaceNotFound = NewNotFoundError("workspace", "Workspace not found")

var ErrNotWorkspaceMember = New(
	CodeForbidden,
	"workspace",
	"Not a member of workspace",
	http.StatusForbidden,
)

var ErrNotWorkspaceOwner = New(
	CodeForbidden,
	"workspace",
	"Only the workspace owner can perform this action",
	http.StatusForbidden,
)

// --- boards ---

var ErrBoardNotFound = NewNotFoundError("board", "Board not found")

var ErrNotBoardMember = New(
	CodeForbidden,
	"board",
	"Not a board member",
	http.StatusForbidden,
)

// --- columns and cards ---

var ErrColumnNotFound = NewNotFoundError("column", "Column not found")

var ErrCardNotFound = NewNotFoundError("card", "Card not found")
