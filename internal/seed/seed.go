// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"quill/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DefaultPassword is the login password of every seeded user.
const DefaultPassword = "SeededPass12!@"

var tagPool = []string{
	"go", "databases", "web", "testing", "devops",
	"observability", "design", "performance", "career", "tooling",
}

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db  *gorm.DB
	rng *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:  db,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateUser constructs and persists a sample user. Optional override
// functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: gofakeit.Username() + fmt.Sprintf("%d", gofakeit.Number(100, 999)),
		Email:    gofakeit.Email(),
		Password: string(hashed),
	}
	for _, override := range overrides {
		override(user)
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreatePost constructs and persists a sample post for the given user with a
// realistic created_at spread over the last 90 days.
func (f *Factory) CreatePost(user *models.User, overrides ...func(*models.Post)) (*models.Post, error) {
	tags := make([]string, 0, 2)
	for _, idx := range f.rng.Perm(len(tagPool))[:f.rng.Intn(3)+1] {
		tags = append(tags, tagPool[idx])
	}

	post := &models.Post{
		UserID:     user.ID,
		Title:      gofakeit.Sentence(5),
		Content:    gofakeit.Paragraph(2, 4, 8, "\n"),
		Tags:       tags,
		ImageURL:   fmt.Sprintf("https://picsum.photos/seed/%s/800/450", gofakeit.UUID()),
		ViewsCount: f.rng.Intn(500),
	}

	daysBack := f.rng.Intn(90)
	hoursBack := f.rng.Intn(24)
	post.CreatedAt = time.Now().Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(hoursBack)*time.Hour)

	for _, override := range overrides {
		override(post)
	}
	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// CreateComment persists a sample comment on the post.
func (f *Factory) CreateComment(post *models.Post, user *models.User) (*models.Comment, error) {
	comment := &models.Comment{
		PostID:  post.ID,
		UserID:  user.ID,
		Content: gofakeit.Sentence(f.rng.Intn(12) + 3),
	}
	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// CreateTodo persists a sample todo for the user.
func (f *Factory) CreateTodo(user *models.User) (*models.Todo, error) {
	todo := &models.Todo{
		UserID: user.ID,
		Title:  gofakeit.VerbAction() + " " + gofakeit.NounConcrete(),
		Done:   f.rng.Intn(2) == 0,
	}
	if err := f.db.Create(todo).Error; err != nil {
		return nil, err
	}
	return todo, nil
}

// Seeder populates the database with a coherent data set.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
}

// NewSeeder creates a Seeder bound to the given database.
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db, factory: NewFactory(db)}
}

// ClearAll truncates every seeded table, child tables first.
func (s *Seeder) ClearAll() error {
	tables := []any{
		&models.CommentLike{},
		&models.Like{},
		&models.Comment{},
		&models.Todo{},
		&models.Post{},
		&models.Session{},
		&models.User{},
	}
	for _, table := range tables {
		if err := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(table).Error; err != nil {
			return err
		}
	}
	return nil
}

// Run seeds numUsers users with numPosts posts spread between them, plus
// comments, likes and todos.
func (s *Seeder) Run(numUsers, numPosts int) error {
	users := make([]*models.User, 0, numUsers)
	for i := 0; i < numUsers; i++ {
		user, err := s.factory.CreateUser()
		if err != nil {
			return fmt.Errorf("seed user: %w", err)
		}
		users = append(users, user)
	}

	rng := s.factory.rng
	posts := make([]*models.Post, 0, numPosts)
	for i := 0; i < numPosts; i++ {
		author := users[rng.Intn(len(users))]
		post, err := s.factory.CreatePost(author)
		if err != nil {
			return fmt.Errorf("seed post: %w", err)
		}
		posts = append(posts, post)
	}

	for _, post := range posts {
		for i := rng.Intn(5); i > 0; i-- {
			commenter := users[rng.Intn(len(users))]
			comment, err := s.factory.CreateComment(post, commenter)
			if err != nil {
				return fmt.Errorf("seed comment: %w", err)
			}
			if rng.Intn(3) == 0 {
				liker := users[rng.Intn(len(users))]
				s.db.Clauses(clause.OnConflict{DoNothing: true}).
					Create(&models.CommentLike{UserID: liker.ID, CommentID: comment.ID})
			}
		}
		for i := rng.Intn(8); i > 0; i-- {
			liker := users[rng.Intn(len(users))]
			s.db.Clauses(clause.OnConflict{DoNothing: true}).
				Create(&models.Like{UserID: liker.ID, PostID: post.ID})
		}
	}

	for _, user := range users {
		for i := rng.Intn(4); i > 0; i-- {
			if _, err := s.factory.CreateTodo(user); err != nil {
				return fmt.Errorf("seed todo: %w", err)
			}
		}
	}

	log.Printf("Seeded %d users and %d posts", len(users), len(posts))
	return nil
}
