package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Gicotto/MyTaskApp/models"
)

// FinancialRepository exposes typed CRUD over the financial table.
//
// Listing is ordered by the transaction date, but the basis for the
// running balance is the newest row by id. The two orderings disagree
// when transactions are entered out of date order; that has always been
// the behavior and callers rely on it.
type FinancialRepository interface {
	// ListByDate returns all transactions ordered by date, oldest first.
	ListByDate() ([]models.Financial, error)
	// LastByID returns the most recently inserted transaction, or
	// ErrNotFound when the table is empty.
	LastByID() (*models.Financial, error)
	Get(id uint) (*models.Financial, error)
	Create(tx *models.Financial) error
	Update(tx *models.Financial) error
	Delete(id uint) error
}

type financialRepository struct {
	db *gorm.DB
}

func NewFinancialRepository(db *gorm.DB) FinancialRepository {
	return &financialRepository{db: db}
}

func (r *financialRepository) ListByDate() ([]models.Financial, error) {
	var txs []models.Financial
	if err := r.db.Order("date").Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}

func (r *financialRepository) LastByID() (*models.Financial, error) {
	var tx models.Financial
	if err := r.db.Order("id desc").First(&tx).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &tx, nil
}

func (r *financialRepository) Get(id uint) (*models.Financial, error) {
	var tx models.Financial
	if err := r.db.First(&tx, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &tx, nil
}

func (r *financialRepository) Create(tx *models.Financial) error {
	return r.db.Create(tx).Error
}

func (r *financialRepository) Update(tx *models.Financial) error {
	return r.db.Save(tx).Error
}

func (r *financialRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Financial{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
