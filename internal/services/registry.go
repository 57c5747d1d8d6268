package services

// ServiceContainer groups every service for handler wiring.
type ServiceContainer struct {
	AuthService      AuthService
	WorkspaceService WorkspaceService
	BoardService     BoardService
	ColumnService    ColumnService
	CardService      CardService
}
