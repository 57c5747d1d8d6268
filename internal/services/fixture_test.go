package services

import (
	"testing"

	"taskflow_backend/internal/models"
	"taskflow_backend/internal/services/dto"

	"github.com/stretchr/testify/require"
)

// hierarchyFixture wires every hierarchy service over one shared set of
// in-memory repositories, so a cascade in one service is observable through
// the others.
type hierarchyFixture struct {
	workspaces *fakeWorkspaceRepo
	boards     *fakeBoardRepo
	columns    *fakeColumnRepo
	cards      *fakeCardRepo
	comments   *fakeCommentRepo

	workspaceService WorkspaceService
	boardService     BoardService
	columnService    ColumnService
	cardService      CardService
}

func newHierarchyFixture(t *testing.T) *hierarchyFixture {
	t.Helper()
	f := &hierarchyFixture{
		workspaces: newFakeWorkspaceRepo(),
		boards:     newFakeBoardRepo(),
		columns:    newFakeColumnRepo(),
		cards:      newFakeCardRepo(),
		comments:   newFakeCommentRepo(),
	}
	f.workspaceService = NewWorkspaceService(f.workspaces, f.boards, f.columns, f.cards)
	f.boardService = NewBoardService(f.workspaces, f.boards, f.columns, f.cards)
	f.columnService = NewColumnService(f.workspaces, f.boards, f.columns, f.cards)
	f.cardService = NewCardService(f.workspaces, f.boards, f.columns, f.cards, f.comments)
	return f
}

func (f *hierarchyFixture) createWorkspace(t *testing.T, userID, name string) *models.Workspace {
	t.Helper()
	ws, err := f.workspaceService.Create(userID, &dto.CreateWorkspaceRequest{Name: name})
	require.NoError(t, err)
	return ws
}

func (f *hierarchyFixture) createBoard(t *testing.T, userID, workspaceID, title string) *models.Board {
	t.Helper()
	board, err := f.boardService.Create(userID, &dto.CreateBoardRequest{Title: title, WorkspaceID: workspaceID})
	require.NoError(t, err)
	return board
}

func (f *hierarchyFixture) createColumn(t *testing.T, userID, boardID, title string) *models.Column {
	t.Helper()
	column, err := f.columnService.Create(userID, &dto.CreateColumnRequest{BoardID: boardID, Title: title})
	require.NoError(t, err)
	return column
}

func (f *hierarchyFixture) createCard(t *testing.T, userID, boardID, columnID, title string) *models.Card {
	t.Helper()
	card, err := f.cardService.Create(userID, &dto.CreateCardRequest{
		Title:    title,
		BoardID:  boardID,
		ColumnID: columnID,
	})
	require.NoError(t, err)
	return card
}

// cardOrder returns the authoritative ordered card IDs of a column.
func (f *hierarchyFixture) cardOrder(t *testing.T, columnID string) []string {
	t.Helper()
	column, err := f.columns.FindByID(columnID)
	require.NoError(t, err)
	return column.Cards
}

// assertDensePositions checks that every card's cached position equals its
// index in the column's list.
func (f *hierarchyFixture) assertDensePositions(t *testing.T, columnID string) {
	t.Helper()
	column, err := f.columns.FindByID(columnID)
	require.NoError(t, err)
	for i, cardID := range column.Cards {
		card, err := f.cards.FindByID(cardID)
		require.NoError(t, err)
		require.Equal(t, i, card.Position, "card %s position out of sync", cardID)
		require.Equal(t, columnID, card.ColumnID, "card %s column out of sync", cardID)
	}
}
