package services

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/devforum/devforum/internal/app/models"
	"github.com/devforum/devforum/internal/app/repositories"
	"github.com/devforum/devforum/internal/pkg/apperrors"
)

// In-memory fakes backing the service tests. They mirror the behavior
// of the SQL repositories closely enough for business-rule tests:
// toggles are set membership, comments keep append order and accepting
// an answer clears the previous mark in the same step.

type resourceKey struct {
	kind models.ResourceKind
	id   int64
}

type memSocial struct {
	likes    map[resourceKey]map[int64]bool
	comments []models.Comment
	nextID   int64
}

func newMemSocial() *memSocial {
	return &memSocial{likes: make(map[resourceKey]map[int64]bool)}
}

func (m *memSocial) ToggleLike(_ context.Context, kind models.ResourceKind, resourceID, userID int64) (bool, int64, error) {
	key := resourceKey{kind, resourceID}
	set, ok := m.likes[key]
	if !ok {
		set = make(map[int64]bool)
		m.likes[key] = set
	}
	if set[userID] {
		delete(set, userID)
	} else {
		set[userID] = true
	}
	return set[userID], int64(len(set)), nil
}

func (m *memSocial) LikeCount(_ context.Context, kind models.ResourceKind, resourceID int64) (int64, error) {
	return int64(len(m.likes[resourceKey{kind, resourceID}])), nil
}

func (m *memSocial) LikeCounts(_ context.Context, kind models.ResourceKind, resourceIDs []int64) (map[int64]int64, error) {
	counts := make(map[int64]int64, len(resourceIDs))
	for _, id := range resourceIDs {
		counts[id] = int64(len(m.likes[resourceKey{kind, id}]))
	}
	return counts, nil
}

func (m *memSocial) AddComment(_ context.Context, kind models.ResourceKind, resourceID, authorID int64, body string) (*models.Comment, error) {
	m.nextID++
	comment := models.Comment{
		ID:         m.nextID,
		Kind:       kind,
		ResourceID: resourceID,
		AuthorID:   authorID,
		Body:       body,
		CreatedAt:  time.Now(),
	}
	m.comments = append(m.comments, comment)
	return &comment, nil
}

func (m *memSocial) GetComments(_ context.Context, kind models.ResourceKind, resourceID int64) ([]models.Comment, error) {
	var out []models.Comment
	for _, c := range m.comments {
		if c.Kind == kind && c.ResourceID == resourceID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memSocial) GetCommentByID(_ context.Context, kind models.ResourceKind, resourceID, commentID int64) (*models.Comment, error) {
	for _, c := range m.comments {
		if c.ID == commentID && c.Kind == kind && c.ResourceID == resourceID {
			comment := c
			return &comment, nil
		}
	}
	return nil, apperrors.NewResourceNotFoundError("comment not found")
}

func (m *memSocial) DeleteComment(_ context.Context, commentID int64) error {
	for i, c := range m.comments {
		if c.ID == commentID {
			m.comments = append(m.comments[:i], m.comments[i+1:]...)
			return nil
		}
	}
	return apperrors.NewResourceNotFoundError("comment not found")
}

// checkersFor builds an existence checker map that recognizes the
// given resource IDs for every kind.
func checkersFor(ids ...int64) map[models.ResourceKind]ResourceChecker {
	existing := make(map[int64]bool, len(ids))
	for _, id := range ids {
		existing[id] = true
	}
	check := func(_ context.Context, id int64) error {
		if !existing[id] {
			return apperrors.NewResourceNotFoundError("resource not found")
		}
		return nil
	}
	return map[models.ResourceKind]ResourceChecker{
		models.KindProject:    check,
		models.KindBlog:       check,
		models.KindQuestion:   check,
		models.KindEvent:      check,
		models.KindDiscussion: check,
	}
}

type memQuestions struct {
	questions map[int64]*models.Question
	answers   []models.Answer
	upvotes   map[int64]map[int64]bool
	nextQID   int64
	nextAID   int64
}

func newMemQuestions() *memQuestions {
	return &memQuestions{
		questions: make(map[int64]*models.Question),
		upvotes:   make(map[int64]map[int64]bool),
	}
}

func (m *memQuestions) Create(_ context.Context, question *models.Question) (int64, error) {
	m.nextQID++
	question.ID = m.nextQID
	question.CreatedAt = time.Now()
	question.UpdatedAt = question.CreatedAt
	copied := *question
	m.questions[question.ID] = &copied
	return question.ID, nil
}

func (m *memQuestions) GetByID(_ context.Context, id int64) (*models.Question, error) {
	q, ok := m.questions[id]
	if !ok {
		return nil, apperrors.NewResourceNotFoundError("question not found")
	}
	copied := *q
	copied.Answers = nil
	return &copied, nil
}

func (m *memQuestions) GetAll(_ context.Context, _ repositories.QuestionFilter) ([]models.Question, int64, error) {
	var out []models.Question
	for _, q := range m.questions {
		out = append(out, *q)
	}
	return out, int64(len(out)), nil
}

func (m *memQuestions) Update(_ context.Context, question *models.Question) error {
	if _, ok := m.questions[question.ID]; !ok {
		return apperrors.NewResourceNotFoundError("question not found")
	}
	copied := *question
	m.questions[question.ID] = &copied
	return nil
}

func (m *memQuestions) Delete(_ context.Context, id int64) error {
	if _, ok := m.questions[id]; !ok {
		return apperrors.NewResourceNotFoundError("question not found")
	}
	delete(m.questions, id)
	return nil
}

func (m *memQuestions) IncrementViews(_ context.Context, id int64) error {
	q, ok := m.questions[id]
	if !ok {
		return apperrors.NewResourceNotFoundError("question not found")
	}
	q.Views++
	return nil
}

func (m *memQuestions) GetAnswers(_ context.Context, questionID int64) ([]models.Answer, error) {
	var out []models.Answer
	for _, a := range m.answers {
		if a.QuestionID == questionID {
			a.Upvotes = int64(len(m.upvotes[a.ID]))
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memQuestions) GetAnswerByID(_ context.Context, questionID, answerID int64) (*models.Answer, error) {
	for _, a := range m.answers {
		if a.ID == answerID && a.QuestionID == questionID {
			a.Upvotes = int64(len(m.upvotes[a.ID]))
			answer := a
			return &answer, nil
		}
	}
	return nil, apperrors.NewResourceNotFoundError("answer not found")
}

func (m *memQuestions) CreateAnswer(_ context.Context, answer *models.Answer) (int64, error) {
	m.nextAID++
	answer.ID = m.nextAID
	answer.CreatedAt = time.Now()
	answer.UpdatedAt = answer.CreatedAt
	m.answers = append(m.answers, *answer)
	return answer.ID, nil
}

func (m *memQuestions) UpdateAnswer(_ context.Context, answerID int64, content string) error {
	for i := range m.answers {
		if m.answers[i].ID == answerID {
			m.answers[i].Content = content
			m.answers[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return apperrors.NewResourceNotFoundError("answer not found")
}

func (m *memQuestions) DeleteAnswer(_ context.Context, answerID int64) error {
	for i := range m.answers {
		if m.answers[i].ID == answerID {
			m.answers = append(m.answers[:i], m.answers[i+1:]...)
			delete(m.upvotes, answerID)
			return nil
		}
	}
	return apperrors.NewResourceNotFoundError("answer not found")
}

func (m *memQuestions) AcceptAnswer(_ context.Context, questionID, answerID int64) error {
	found := false
	for i := range m.answers {
		if m.answers[i].QuestionID != questionID {
			continue
		}
		m.answers[i].IsAccepted = m.answers[i].ID == answerID
		if m.answers[i].ID == answerID {
			found = true
		}
	}
	if !found {
		return apperrors.NewResourceNotFoundError("answer not found")
	}
	return nil
}

func (m *memQuestions) ToggleAnswerUpvote(_ context.Context, answerID, userID int64) (bool, int64, error) {
	set, ok := m.upvotes[answerID]
	if !ok {
		set = make(map[int64]bool)
		m.upvotes[answerID] = set
	}
	if set[userID] {
		delete(set, userID)
	} else {
		set[userID] = true
	}
	return set[userID], int64(len(set)), nil
}

type memUsers struct {
	users  map[int64]*models.User
	nextID int64
}

func newMemUsers() *memUsers {
	return &memUsers{users: make(map[int64]*models.User)}
}

func (m *memUsers) Create(_ context.Context, user *models.User) (int64, error) {
	for _, u := range m.users {
		if u.Email == user.Email {
			return 0, apperrors.ErrEmailAlreadyExists
		}
	}
	m.nextID++
	user.ID = m.nextID
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	copied := *user
	m.users[user.ID] = &copied
	return user.ID, nil
}

func (m *memUsers) GetByID(_ context.Context, id int64) (*models.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (m *memUsers) EmailExists(_ context.Context, email string) (bool, error) {
	for _, u := range m.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *memUsers) UpdateProfile(_ context.Context, user *models.User) error {
	if _, ok := m.users[user.ID]; !ok {
		return apperrors.ErrUserNotFound
	}
	copied := *user
	m.users[user.ID] = &copied
	return nil
}

func (m *memUsers) UpdatePassword(_ context.Context, userID int64, passwordHash string) error {
	u, ok := m.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	u.Password = passwordHash
	return nil
}

func (m *memUsers) GetAll(_ context.Context, _, _ *string, _, _ int) ([]models.User, int64, error) {
	var out []models.User
	for _, u := range m.users {
		out = append(out, *u)
	}
	return out, int64(len(out)), nil
}

func (m *memUsers) GetContributionCounts(_ context.Context, _ int64) (int64, int64, int64, error) {
	return 0, 0, 0, nil
}

type tokenRecord struct {
	userID    int64
	expiresAt time.Time
	revoked   bool
}

type memTokens struct {
	tokens map[string]*tokenRecord
}

func newMemTokens() *memTokens {
	return &memTokens{tokens: make(map[string]*tokenRecord)}
}

func (m *memTokens) CreateToken(_ context.Context, token string, userID int64, expiresAt time.Time) error {
	m.tokens[token] = &tokenRecord{userID: userID, expiresAt: expiresAt}
	return nil
}

func (m *memTokens) GetTokenByValue(_ context.Context, token string) (int64, time.Time, error) {
	rec, ok := m.tokens[token]
	if !ok {
		return 0, time.Time{}, apperrors.ErrTokenNotFound
	}
	if rec.revoked {
		return 0, time.Time{}, apperrors.ErrTokenRevoked
	}
	if time.Now().After(rec.expiresAt) {
		return 0, time.Time{}, apperrors.ErrTokenExpired
	}
	return rec.userID, rec.expiresAt, nil
}

func (m *memTokens) RevokeToken(_ context.Context, token string) error {
	rec, ok := m.tokens[token]
	if !ok {
		return apperrors.ErrTokenNotFound
	}
	rec.revoked = true
	return nil
}

func (m *memTokens) RevokeAllUserTokens(_ context.Context, userID int64) error {
	for _, rec := range m.tokens {
		if rec.userID == userID {
			rec.revoked = true
		}
	}
	return nil
}

// memStorage records saved data URLs without touching the filesystem.
type memStorage struct {
	saved []string
}

func (m *memStorage) SaveFile(_ *multipart.FileHeader) (string, error) {
	return "http://files.test/upload", nil
}

func (m *memStorage) SaveFileWithPath(_ *multipart.FileHeader, path string) (string, error) {
	return "http://files.test/" + path + "/upload", nil
}

func (m *memStorage) SaveDataURL(_, path string) (string, error) {
	url := "http://files.test/" + path + "/image.png"
	m.saved = append(m.saved, url)
	return url, nil
}

func (m *memStorage) DeleteFile(_ string) error { return nil }

func (m *memStorage) GetFullPath(fileURL string) string { return fileURL }
