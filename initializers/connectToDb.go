package initializers

import (
	"fmt"

	"github.com/Kariqs/amexan-store/utils"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func ConnectToDB(cfg Config) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.DatabaseDSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	utils.Info("connected to database", nil)
	return db, nil
}
