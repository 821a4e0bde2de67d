package services

import (
	"testing"

	"crow/internal/db"
	"crow/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrCreateCategory(t *testing.T) {
	setupTestDB(t)

	created, err := GetOrCreateCategory("Tech")
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	// Second call returns the same row, no duplicate.
	again, err := GetOrCreateCategory("Tech")
	require.NoError(t, err)
	assert.Equal(t, created.ID, again.ID)

	var count int64
	db.DB.Model(&models.Category{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

// Lookup is case-sensitive: "tech" and "Tech" are distinct categories.
func TestGetOrCreateCategoryCaseSensitive(t *testing.T) {
	setupTestDB(t)

	upper, err := GetOrCreateCategory("Tech")
	require.NoError(t, err)
	lower, err := GetOrCreateCategory("tech")
	require.NoError(t, err)

	assert.NotEqual(t, upper.ID, lower.ID)
}

func TestGetOrCreateCategoryEmptyName(t *testing.T) {
	setupTestDB(t)

	_, err := GetOrCreateCategory("   ")
	assert.ErrorIs(t, err, ErrEmptyContent)
}

func TestListCategoriesCounts(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "alice")

	tech, err := GetOrCreateCategory("Tech")
	require.NoError(t, err)
	_, err = GetOrCreateCategory("News")
	require.NoError(t, err)

	post := createTestPost(t, user, "tagged")
	require.NoError(t, db.DB.Model(post).Update("category_id", tech.ID).Error)

	categories, err := ListCategories()
	require.NoError(t, err)
	require.Len(t, categories, 2)

	byName := make(map[string]models.Category)
	for _, cat := range categories {
		byName[cat.Name] = cat
	}
	assert.Equal(t, 1, byName["Tech"].PostCount)
	assert.Equal(t, 0, byName["News"].PostCount)
}

// Deleting a category nulls the reference on its posts instead of cascading.
func TestCategoryDeleteIsWeak(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "alice")

	tech, err := GetOrCreateCategory("Tech")
	require.NoError(t, err)
	post := createTestPost(t, user, "tagged")
	require.NoError(t, db.DB.Model(post).Update("category_id", tech.ID).Error)

	require.NoError(t, db.DB.Delete(&models.Category{}, tech.ID).Error)

	var reloaded models.Post
	require.NoError(t, db.DB.First(&reloaded, post.ID).Error)
	assert.Nil(t, reloaded.CategoryID)
}
