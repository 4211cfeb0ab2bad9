package initializers

import (
	"fmt"

	"github.com/Kariqs/amexan-store/models"
	"github.com/Kariqs/amexan-store/utils"
	"gorm.io/gorm"
)

func SyncDatabase(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Promotion{},
		&models.Order{},
		&models.OrderItem{},
		&models.WishlistItem{},
		&models.Review{},
	)
	if err != nil {
		return fmt.Errorf("sync database: %w", err)
	}
	utils.Info("database synced successfully", nil)
	return nil
}
