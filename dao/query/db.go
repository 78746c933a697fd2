package query

import (
	"fmt"
	"sync"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/meloniq-lab/glotline/dao/model"
	"github.com/meloniq-lab/glotline/pkg/config"
	"github.com/meloniq-lab/glotline/pkg/logutils"
)

var (
	once     sync.Once
	instance *gorm.DB
)

// GetDB returns the singleton instance of the database connection.
func GetDB() *gorm.DB {
	once.Do(func() {
		dbConfig := config.GetConfig()

		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
			dbConfig.Postgres.Host,
			dbConfig.Postgres.User,
			dbConfig.Postgres.Password,
			dbConfig.Postgres.DBName,
			dbConfig.Postgres.Port,
			dbConfig.Postgres.SSLMode,
			dbConfig.Postgres.TimeZone,
		)
		var err error
		instance, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			panic(err)
		}
		sqlDB, err := instance.DB()
		if err != nil {
			panic(err)
		}
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetConnMaxLifetime(time.Hour)

		logutils.Log.Info("Postgres init success!")
	})
	return instance
}

// Migrate creates or updates the schema for all persisted entities.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Project{},
		&model.TranslationSet{},
		&model.Original{},
		&model.Translation{},
		&model.Glossary{},
		&model.GlossaryEntry{},
		&model.ValidatorPermission{},
	)
}
