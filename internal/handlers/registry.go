package handlers

// AppHandlers holds every handler in the application.
type AppHandlers struct {
	AuthHandler      *AuthHandler
	WorkspaceHandler *WorkspaceHandler
	BoardHandler     *BoardHandler
	ColumnHandler    *ColumnHandler
	CardHandler      *CardHandler
}
