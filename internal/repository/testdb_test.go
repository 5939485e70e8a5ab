package repository

import (
	"fmt"
	"testing"

	"github.com/GlobisHR/site_service/internal/domain"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	if err := db.AutoMigrate(
		&domain.AboutUs{},
		&domain.Service{},
		&domain.Job{},
		&domain.Application{},
		&domain.BlogPost{},
		&domain.BlogImage{},
		&domain.BlogVideo{},
		&domain.Office{},
		&domain.ContactInquiry{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}
