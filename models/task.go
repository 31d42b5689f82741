package models

import "time"

// Task представляет одну задачу в списке дел.
type Task struct {
	ID       uint      `json:"id" gorm:"primaryKey"`
	Content  string    `json:"content" gorm:"not null"`
	Complete int       `json:"complete" gorm:"default:0"`
	DueDate  time.Time `json:"due_date" gorm:"column:due_date;not null"`
	Created  time.Time `json:"created" gorm:"autoCreateTime"`
}

func (Task) TableName() string { return "task" }
