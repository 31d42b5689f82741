package models

import "golang.org/x/crypto/bcrypt"

// User представляет учетную запись пользователя приложения.
// Пароль хранится только в виде bcrypt-хэша.
type User struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Username     string `json:"username" gorm:"unique;not null"`
	PasswordHash string `json:"-" gorm:"column:password_hash;not null"`
	Roles        []Role `json:"roles" gorm:"many2many:user_roles;"`
}

func (User) TableName() string { return "user" }

// SetPassword хэширует пароль и сохраняет хэш вместо исходного значения.
func (u *User) SetPassword(raw string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword сверяет пароль с сохраненным хэшем.
func (u *User) CheckPassword(raw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(raw)) == nil
}

// PermissionNames возвращает набор прав, производный от ролей: каждая
// роль дает одноименное право.
func (u *User) PermissionNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, role := range u.Roles {
		names = append(names, role.Name)
	}
	return names
}
