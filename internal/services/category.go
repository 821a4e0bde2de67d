package services

import (
	"errors"
	"strings"
	"time"

	"crow/internal/db"
	"crow/internal/models"
	"crow/internal/utils"

	"gorm.io/gorm"
)

const categoryListCacheKey = "category:list"

// GetOrCreateCategory returns the category with the given name, creating it
// lazily on first reference. Lookup is case-sensitive, matching the unique
// index. Concurrent creates of the same name race on the index; the loser
// falls back to reading the winner's row instead of failing.
func GetOrCreateCategory(name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyContent
	}

	var category models.Category
	err := db.DB.Where("name = ?", name).First(&category).Error
	if err == nil {
		return &category, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	category = models.Category{Name: name}
	err = db.DB.Create(&category).Error
	if err == nil {
		utils.GetCache().Delete(categoryListCacheKey)
		return &category, nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// Someone else created it between our lookup and create.
		if err := db.DB.Where("name = ?", name).First(&category).Error; err != nil {
			return nil, err
		}
		return &category, nil
	}
	return nil, err
}

// ListCategories returns all categories with their post counts, cached briefly.
// The count joins live posts; it never touches the vote ledger.
func ListCategories() ([]models.Category, error) {
	if cached := utils.GetCache().Get(categoryListCacheKey); cached != nil {
		if categories, ok := cached.([]models.Category); ok {
			return categories, nil
		}
	}

	var categories []models.Category
	if err := db.DB.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}

	type countResult struct {
		CategoryID uint
		Count      int
	}
	var results []countResult
	db.DB.Model(&models.Post{}).
		Select("category_id, COUNT(*) as count").
		Where("category_id IS NOT NULL").
		Group("category_id").
		Scan(&results)

	countMap := make(map[uint]int)
	for _, r := range results {
		countMap[r.CategoryID] = r.Count
	}
	for i := range categories {
		categories[i].PostCount = countMap[categories[i].ID]
	}

	utils.GetCache().Set(categoryListCacheKey, categories, time.Minute)
	return categories, nil
}
