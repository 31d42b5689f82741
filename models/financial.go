package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OpeningBalance — баланс счета до первой операции.
var OpeningBalance = decimal.RequireFromString("1500.00")

// Financial представляет одну финансовую операцию (списание со счета).
// Balance — снимок текущего остатка, вычисляется один раз при создании
// записи и дальше не пересчитывается.
type Financial struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Date        time.Time       `json:"date" gorm:"not null;default:CURRENT_TIMESTAMP"`
	Title       string          `json:"title" gorm:"not null"`
	Description string          `json:"description" gorm:"not null"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:numeric(12,2);not null"`
	Category    string          `json:"category" gorm:"not null"`
	Balance     decimal.Decimal `json:"balance" gorm:"type:numeric(12,2)"`
}

func (Financial) TableName() string { return "financial" }

// NextBalance возвращает остаток после списания amount с prev.
func NextBalance(prev, amount decimal.Decimal) decimal.Decimal {
	return prev.Sub(amount)
}
