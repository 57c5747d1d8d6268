package services

import (
	"strings"
	"sync"

	"taskflow_backend/internal/models"
	"taskflow_backend/internal/repositories"

	"github.com/google/uuid"
)

// In-memory repository fakes. Find methods hand out copies so a mutation is
// only visible after an explicit Save/Update, the way a real database behaves.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}}
}

func (r *fakeUserRepo) FindByID(id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == strings.ToLower(email) {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByResetTokenHash(hash string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ResetTokenHash == hash && u.ResetTokenHash != "" &&
			u.ResetTokenExp != nil && u.ResetTokenExp.After(timeNow()) {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.Email = strings.ToLower(user.Email)
	for _, u := range r.users {
		if u.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) Update(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return repositories.ErrUserNotFound
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

type fakeRefreshTokenRepo struct {
	mu     sync.Mutex
	tokens map[string]*models.RefreshToken // keyed by token string
}

func newFakeRefreshTokenRepo() *fakeRefreshTokenRepo {
	return &fakeRefreshTokenRepo{tokens: map[string]*models.RefreshToken{}}
}

func (r *fakeRefreshTokenRepo) Create(token *models.RefreshToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if token.ID == "" {
		token.ID = uuid.NewString()
	}
	copied := *token
	r.tokens[token.Token] = &copied
	return nil
}

func (r *fakeRefreshTokenRepo) FindByToken(tokenString string) (*models.RefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tokens[tokenString]
	if !ok {
		return nil, repositories.ErrRefreshTokenNotFound
	}
	copied := *t
	return &copied, nil
}

func (r *fakeRefreshTokenRepo) DeleteByToken(tokenString string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tokens, tokenString)
	return nil
}

func (r *fakeRefreshTokenRepo) DeleteByUserID(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for k, t := range r.tokens {
		if t.UserID == userID {
			delete(r.tokens, k)
		}
	}
	return nil
}

func (r *fakeRefreshTokenRepo) CleanExpired() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for k, t := range r.tokens {
		if t.ExpiresAt.Before(timeNow()) {
			delete(r.tokens, k)
		}
	}
	return nil
}

func (r *fakeRefreshTokenRepo) countForUser(userID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, t := range r.tokens {
		if t.UserID == userID {
			n++
		}
	}
	return n
}

type fakeWorkspaceRepo struct {
	mu         sync.Mutex
	workspaces map[string]*models.Workspace
}

func newFakeWorkspaceRepo() *fakeWorkspaceRepo {
	return &fakeWorkspaceRepo{workspaces: map[string]*models.Workspace{}}
}

func (r *fakeWorkspaceRepo) Create(ws *models.Workspace) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ws.ID == "" {
		ws.ID = uuid.NewString()
	}
	copied := *ws
	r.workspaces[ws.ID] = &copied
	return nil
}

func (r *fakeWorkspaceRepo) FindByID(id string) (*models.Workspace, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ws, ok := r.workspaces[id]
	if !ok {
		return nil, repositories.ErrWorkspaceNotFound
	}
	copied := *ws
	return &copied, nil
}

func (r *fakeWorkspaceRepo) FindByMember(userID string) ([]models.Workspace, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Workspace
	for _, ws := range r.workspaces {
		if models.Contains(ws.Members, userID) {
			out = append(out, *ws)
		}
	}
	return out, nil
}

func (r *fakeWorkspaceRepo) Save(ws *models.Workspace) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.workspaces[ws.ID]; !ok {
		return repositories.ErrWorkspaceNotFound
	}
	copied := *ws
	r.workspaces[ws.ID] = &copied
	return nil
}

func (r *fakeWorkspaceRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.workspaces, id)
	return nil
}

type fakeBoardRepo struct {
	mu     sync.Mutex
	boards map[string]*models.Board
}

func newFakeBoardRepo() *fakeBoardRepo {
	return &fakeBoardRepo{boards: map[string]*models.Board{}}
}

func (r *fakeBoardRepo) Create(board *models.Board) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if board.ID == "" {
		board.ID = uuid.NewString()
	}
	copied := *board
	r.boards[board.ID] = &copied
	return nil
}

func (r *fakeBoardRepo) FindByID(id string) (*models.Board, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.boards[id]
	if !ok {
		return nil, repositories.ErrBoardNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *fakeBoardRepo) FindByWorkspaceID(workspaceID string) ([]models.Board, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Board
	for _, b := range r.boards {
		if b.WorkspaceID == workspaceID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBoardRepo) Save(board *models.Board) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.boards[board.ID]; !ok {
		return repositories.ErrBoardNotFound
	}
	copied := *board
	r.boards[board.ID] = &copied
	return nil
}

func (r *fakeBoardRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.boards, id)
	return nil
}

type fakeColumnRepo struct {
	mu      sync.Mutex
	columns map[string]*models.Column
}

func newFakeColumnRepo() *fakeColumnRepo {
	return &fakeColumnRepo{columns: map[string]*models.Column{}}
}

func (r *fakeColumnRepo) Create(column *models.Column) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if column.ID == "" {
		column.ID = uuid.NewString()
	}
	copied := *column
	r.columns[column.ID] = &copied
	return nil
}

func (r *fakeColumnRepo) FindByID(id string) (*models.Column, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	col, ok := r.columns[id]
	if !ok {
		return nil, repositories.ErrColumnNotFound
	}
	copied := *col
	return &copied, nil
}

func (r *fakeColumnRepo) FindByBoardID(boardID string) ([]models.Column, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Column
	for _, col := range r.columns {
		if col.BoardID == boardID {
			out = append(out, *col)
		}
	}
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].Position < out[i].Position {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out, nil
}

func (r *fakeColumnRepo) Save(column *models.Column) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.columns[column.ID]; !ok {
		return repositories.ErrColumnNotFound
	}
	copied := *column
	r.columns[column.ID] = &copied
	return nil
}

func (r *fakeColumnRepo) UpdatePosition(id string, position int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	col, ok := r.columns[id]
	if !ok {
		return repositories.ErrColumnNotFound
	}
	col.Position = position
	return nil
}

func (r *fakeColumnRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.columns, id)
	return nil
}

type fakeCardRepo struct {
	mu    sync.Mutex
	cards map[string]*models.Card
}

func newFakeCardRepo() *fakeCardRepo {
	return &fakeCardRepo{cards: map[string]*models.Card{}}
}

func (r *fakeCardRepo) Create(card *models.Card) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if card.ID == "" {
		card.ID = uuid.NewString()
	}
	copied := *card
	r.cards[card.ID] = &copied
	return nil
}

func (r *fakeCardRepo) FindByID(id string) (*models.Card, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.cards[id]
	if !ok {
		return nil, repositories.ErrCardNotFound
	}
	copied := *c
	return &copied, nil
}

func (r *fakeCardRepo) FindByColumnID(columnID string) ([]models.Card, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Card
	for _, c := range r.cards {
		if c.ColumnID == columnID {
			out = append(out, *c)
		}
	}
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].Position < out[i].Position {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out, nil
}

func (r *fakeCardRepo) Save(card *models.Card) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.cards[card.ID]; !ok {
		return repositories.ErrCardNotFound
	}
	copied := *card
	r.cards[card.ID] = &copied
	return nil
}

func (r *fakeCardRepo) UpdatePosition(id string, position int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.cards[id]
	if !ok {
		return repositories.ErrCardNotFound
	}
	c.Position = position
	return nil
}

func (r *fakeCardRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.cards, id)
	return nil
}

func (r *fakeCardRepo) DeleteByColumnID(columnID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, c := range r.cards {
		if c.ColumnID == columnID {
			delete(r.cards, id)
		}
	}
	return nil
}

type fakeCommentRepo struct {
	mu       sync.Mutex
	comments map[string]*models.Comment
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: map[string]*models.Comment{}}
}

func (r *fakeCommentRepo) Create(comment *models.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if comment.ID == "" {
		comment.ID = uuid.NewString()
	}
	copied := *comment
	r.comments[comment.ID] = &copied
	return nil
}

func (r *fakeCommentRepo) FindByCardID(cardID string) ([]models.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Comment
	for _, c := range r.comments {
		if c.CardID == cardID {
			out = append(out, *c)
		}
	}
	return out, nil
}

// failingEmailProvider rejects every send.
type failingEmailProvider struct{}

func (p *failingEmailProvider) Send(to, subject, textBody, htmlBody string) error {
	return errSMTPDown
}

func (p *failingEmailProvider) SendPasswordReset(to, resetURL string) error {
	return errSMTPDown
}

// recordingEmailProvider remembers the last reset mail it was asked to send.
type recordingEmailProvider struct {
	mu           sync.Mutex
	lastTo       string
	lastResetURL string
}

func (p *recordingEmailProvider) Send(to, subject, textBody, htmlBody string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lastTo = to
	return nil
}

func (p *recordingEmailProvider) SendPasswordReset(to, resetURL string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lastTo = to
	p.lastResetURL = resetURL
	return nil
}
