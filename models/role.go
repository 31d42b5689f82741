package models

// Role определяет модель роли в базе данных. Роли создаются только при
// запуске приложения, регистрации новых ролей через веб-интерфейс нет.
type Role struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"unique;not null"`
}

func (Role) TableName() string { return "role" }
