package services

import (
	"testing"

	"taskflow_backend/internal/services/dto"
	"taskflow_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnCreate_AppendsAtEnd(t *testing.T) {
	t.Parallel()
	f := newHierarchyFixture(t)
	ws := f.createWorkspace(t, "alice", "Acme")
	board := f.createBoard(t, "alice", ws.ID, "Roadmap")

	column := f.createColumn(t, "alice", board.ID, "Review")

	assert.Equal(t, 3, column.Position)
	got, err := f.boards.FindByID(board.ID)
	require.NoError(t, err)
	require.Len(t, got.Columns, 4)
	assert.Equal(t, column.ID, got.Columns[3])
}

func TestColumnCreate_RequiresBoardMembership(t *testing.T) {
	t.Parallel()
	f := newHierarchyFixture(t)
	ws := f.createWorkspace(t, "alice", "Acme")
	board := f.createBoard(t, "alice", ws.ID, "Roadmap")

	_, err := f.columnService.Create("stranger", &dto.CreateColumnRequest{BoardID: board.ID, Title: "Nope"})
	assert.ErrorIs(t, err, apperrors.ErrNotBoardMember)

	_, err = f.columnService.Create("alice", &dto.CreateColumnRequest{BoardID: "missing", Title: "Nope"})
	assert.ErrorIs(t, err, apperrors.ErrBoardNotFound)
}

func TestColumnRename_EmptyTitleKeepsOld(t *testing.T) {
	t.Parallel()
	f := newHierarchyFixture(t)
	ws := f.createWorkspace(t, "alice", "Acme")
	board := f.createBoard(t, "alice", ws.ID, "Roadmap")

	got, err := f.columnService.Rename("alice", board.Columns[0], "")
	require.NoError(t, err)
	assert.Equal(t, "Todo", got.Title)

	got, err = f.columnService.Rename("alice", board.Columns[0], "Backlog")
	require.NoError(t, err)
	assert.Equal(t, "Backlog", got.Title)
}

func TestColumnReorder_RewritesPositions(t *testing.T) {
	t.Parallel()
	f := newHierarchyFixture(t)
	ws := f.createWorkspace(t, "alice", "Acme")
	board := f.createBoard(t, "alice", ws.ID, "Roadmap")
	reversed := []string{board.Columns[2], board.Columns[1], board.Columns[0]}

	err := f.columnService.Reorder("alice", &dto.ReorderColumnsRequest{
		BoardID:          board.ID,
		OrderedColumnIDs: reversed,
	})

	require.NoError(t, err)
	got, err := f.boards.FindByID(board.ID)
	require.NoError(t, err)
	assert.Equal(t, reversed, []string(got.Columns))
	for i, columnID := range reversed {
		column, err := f.columns.FindByID(columnID)
		require.NoError(t, err)
		assert.Equal(t, i, column.Position)
	}
}

func TestColumnReorder_WorkspaceScopeNotBoardMembership(t *testing.T) {
	t.Parallel()
	f := newHierarchyFixture(t)
	ws := f.createWorkspace(t, "alice", "Acme")
	board := f.createBoard(t, "alice", ws.ID, "Roadmap")
	_, err := f.workspaceService.AddMember("alice", ws.ID, "bob")
	require.NoError(t, err)

	// bob is only a workspace member; that is the scope being checked.
	err = f.columnService.Reorder("bob", &dto.ReorderColumnsRequest{
		BoardID:          board.ID,
		OrderedColumnIDs: []string{board.Columns[1], board.Columns[0], board.Columns[2]},
	})
	assert.NoError(t, err)

	err = f.columnService.Reorder("stranger", &dto.ReorderColumnsRequest{
		BoardID:          board.ID,
		OrderedColumnIDs: []string{board.Columns[0]},
	})
	assert.ErrorIs(t, err, apperrors.ErrNotWorkspaceMember)
}

func TestColumnReorder_ListIsTrusted(t *testing.T) {
	t.Parallel()
	f := newHierarchyFixture(t)
	ws := f.createWorkspace(t, "alice", "Acme")
	board := f.createBoard(t, "alice", ws.ID, "Roadmap")

	// A partial list replaces the board's list wholesale; dropped columns
	// are simply no longer referenced.
	partial := []string{board.Columns[2]}
	err := f.columnService.Reorder("alice", &dto.ReorderColumnsRequest{
		BoardID:          board.ID,
		OrderedColumnIDs: partial,
	})

	require.NoError(t, err)
	got, err := f.boards.FindByID(board.ID)
	require.NoError(t, err)
	assert.Equal(t, partial, []string(got.Columns))
	// The dropped columns still exist, just unlinked.
	_, err = f.columns.FindByID(board.Columns[0])
	assert.NoError(t, err)
}

func TestColumnDelete_CascadesCardsAndLeavesGap(t *testing.T) {
	t.Parallel()
	f := newHierarchyFixture(t)
	ws := f.createWorkspace(t, "alice", "Acme")
	board := f.createBoard(t, "alice", ws.ID, "Roadmap")
	doomed := board.Columns[1]
	card := f.createCard(t, "alice", board.ID, doomed, "Ship it")

	require.NoError(t, f.columnService.Delete("alice", doomed))

	_, err := f.columns.FindByID(doomed)
	assert.Error(t, err)
	_, err = f.cards.FindByID(card.ID)
	assert.Error(t, err)

	got, err := f.boards.FindByID(board.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{board.Columns[0], board.Columns[2]}, []string(got.Columns))

	// Sibling positions are untouched; the gap persists until a reorder.
	last, err := f.columns.FindByID(board.Columns[2])
	require.NoError(t, err)
	assert.Equal(t, 2, last.Position)
}

func TestColumnDelete_RequiresBoardMembership(t *testing.T) {
	t.Parallel()
	f := newHierarchyFixture(t)
	ws := f.createWorkspace(t, "alice", "Acme")
	board := f.createBoard(t, "alice", ws.ID, "Roadmap")
	_, err := f.workspaceService.AddMember("alice", ws.ID, "bob")
	require.NoError(t, err)

	err = f.columnService.Delete("bob", board.Columns[0])

	assert.ErrorIs(t, err, apperrors.ErrNotBoardMember)
}
