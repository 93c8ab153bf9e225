package seed

import (
	"testing"

	"quill/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupSeedDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
		&models.CommentLike{},
		&models.Todo{},
	))
	return db
}

func TestSeederRun(t *testing.T) {
	db := setupSeedDB(t)
	s := NewSeeder(db)

	require.NoError(t, s.Run(5, 12))

	var users, posts int64
	db.Model(&models.User{}).Count(&users)
	db.Model(&models.Post{}).Count(&posts)
	assert.Equal(t, int64(5), users)
	assert.Equal(t, int64(12), posts)

	var post models.Post
	require.NoError(t, db.First(&post).Error)
	assert.NotEmpty(t, post.Title)
	assert.NotEmpty(t, post.Tags)
}

func TestSeederClearAll(t *testing.T) {
	db := setupSeedDB(t)
	s := NewSeeder(db)

	require.NoError(t, s.Run(3, 5))
	require.NoError(t, s.ClearAll())

	for _, model := range []any{
		&models.User{}, &models.Post{}, &models.Comment{},
		&models.Like{}, &models.CommentLike{}, &models.Todo{},
	} {
		var count int64
		db.Model(model).Count(&count)
		assert.Zero(t, count)
	}
}
