package config

import (
	"log/slog"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Gicotto/MyTaskApp/models"
)

// OpenDB открывает встроенную базу данных и при первом запуске создает
// схему: таблицы task, financial, user, role и связку user_roles.
func OpenDB(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&models.User{}, &models.Role{}, &models.Task{}, &models.Financial{}); err != nil {
		return nil, err
	}

	if err := seedRoles(db); err != nil {
		return nil, err
	}

	slog.Info("Успешное подключение к базе данных!", "path", cfg.DBPath)
	return db, nil
}

// seedRoles гарантирует наличие двух ожидаемых ролей. Повторный запуск
// ничего не меняет.
func seedRoles(db *gorm.DB) error {
	for _, name := range []string{"accounting", "management"} {
		role := models.Role{Name: name}
		if err := db.Where(models.Role{Name: name}).FirstOrCreate(&role).Error; err != nil {
			return err
		}
	}
	return nil
}
