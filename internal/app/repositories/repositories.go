package repositories

import (
	"github.com/devforum/devforum/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository       *UserRepository
	TokenRepository      *TokenRepository
	ProjectRepository    *ProjectRepository
	BlogRepository       *BlogRepository
	QuestionRepository   *QuestionRepository
	EventRepository      *EventRepository
	DiscussionRepository *DiscussionRepository
	SocialRepository     *SocialRepository
}

// NewRepositories initializes all repositories
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(database),
		TokenRepository:      NewTokenRepository(database),
		ProjectRepository:    NewProjectRepository(database),
		BlogRepository:       NewBlogRepository(database),
		QuestionRepository:   NewQuestionRepository(database),
		EventRepository:      NewEventRepository(database),
		DiscussionRepository: NewDiscussionRepository(database),
		SocialRepository:     NewSocialRepository(database),
	}
}
