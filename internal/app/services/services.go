package services

// Services defined in this package:
// - AuthService: registration, login and refresh token rotation
// - UserService: profiles, password changes and user listings
// - ProjectService, BlogService, QuestionService, EventService,
//   DiscussionService: resource CRUD with filtering and pagination
// - SocialService: likes, attendance and comments shared by all
//   resource kinds
//
// Each service takes its persistence dependencies as small unexported
// interfaces so tests can substitute in-memory fakes.
