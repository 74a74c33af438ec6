package migration

import (
	"time"

	"github.com/yuriblog/blog-backend/internal/domain"
	"gorm.io/gorm"
)

// Models lists every table owned by the blog, in creation order
func Models() []interface{} {
	return []interface{}{
		&domain.Post{},
		&domain.Comment{},
		&domain.Subscriber{},
		&domain.GalleryItem{},
		&domain.Credential{},
		&domain.UserProfile{},
	}
}

// Run executes AutoMigrate for all blog tables.
func Run(db *gorm.DB) error {
	// 테이블 없으면 생성, 있으면 컬럼만 보강
	return db.AutoMigrate(Models()...)
}

// Seed inserts a welcome post when the posts table is empty.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&domain.Post{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return db.Create(&domain.Post{
		Title:   "Hello, world",
		Excerpt: "The first post on the new blog.",
		Content: "Welcome! New posts will show up here, and subscribers get an email for each one.",
		Date:    time.Now().UTC().Format(domain.DateLayout),
	}).Error
}

// Drop removes every blog table. Used by the migrate CLI -reset flag.
func Drop(db *gorm.DB) error {
	models := Models()
	for i := len(models) - 1; i >= 0; i-- {
		if err := db.Migrator().DropTable(models[i]); err != nil {
			return err
		}
	}
	return nil
}
