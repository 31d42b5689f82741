package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/Gicotto/MyTaskApp/internal/repository"
	"github.com/Gicotto/MyTaskApp/models"
)

// ListTransactionsHandler renders the transaction list ordered by date
// together with the current balance.
func (h *Handler) ListTransactionsHandler(c *gin.Context) {
	transactions, err := h.Finance.ListByDate()
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.HTML(http.StatusOK, "finance.html", gin.H{
		"transactions":    transactions,
		"current_balance": currentBalance(transactions),
	})
}

// currentBalance is the balance snapshot of the last transaction in
// display order, or the opening balance when there are none.
func currentBalance(transactions []models.Financial) decimal.Decimal {
	if len(transactions) == 0 {
		return models.OpeningBalance
	}
	return transactions[len(transactions)-1].Balance
}

// CreateTransactionHandler records a new transaction. The stored
// balance is the previous balance minus the amount, where "previous"
// means the newest row by id, not by date. Display order and balance
// basis can therefore disagree for backdated entries; that quirk is
// kept as-is.
func (h *Handler) CreateTransactionHandler(c *gin.Context) {
	title := c.PostForm("title")
	description := c.PostForm("description")
	category := c.PostForm("category")
	if title == "" || description == "" || category == "" {
		c.String(http.StatusBadRequest, "title, description and category are required")
		return
	}
	amount, err := decimal.NewFromString(c.PostForm("amount"))
	if err != nil {
		c.String(http.StatusBadRequest, "amount must be a number")
		return
	}
	date, err := time.Parse(dateLayout, c.PostForm("date"))
	if err != nil {
		c.String(http.StatusBadRequest, "date must be a YYYY-MM-DD date")
		return
	}

	prevBalance := models.OpeningBalance
	if last, err := h.Finance.LastByID(); err == nil {
		prevBalance = last.Balance
	} else if !errors.Is(err, repository.ErrNotFound) {
		h.storeError(c, err)
		return
	}

	tx := models.Financial{
		Date:        date,
		Title:       title,
		Description: description,
		Amount:      amount,
		Category:    category,
		Balance:     models.NextBalance(prevBalance, amount),
	}
	if err := h.Finance.Create(&tx); err != nil {
		h.storeError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/finance")
}

// ShowEditTransactionPage renders the edit form for one transaction.
func (h *Handler) ShowEditTransactionPage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	tx, err := h.Finance.Get(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.String(http.StatusNotFound, "transaction not found")
			return
		}
		h.storeError(c, err)
		return
	}
	c.HTML(http.StatusOK, "edit-finance.html", gin.H{
		"transaction": tx,
	})
}

// UpdateTransactionHandler overwrites every field of a transaction with
// the submitted values. The balance is taken from the form verbatim and
// is NOT recomputed, so an edited transaction can disagree with the
// running-balance rule applied at creation time. Long-standing behavior,
// kept.
func (h *Handler) UpdateTransactionHandler(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	tx, err := h.Finance.Get(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.String(http.StatusNotFound, "transaction not found")
			return
		}
		h.storeError(c, err)
		return
	}

	title := c.PostForm("title")
	description := c.PostForm("description")
	category := c.PostForm("category")
	if title == "" || description == "" || category == "" {
		c.String(http.StatusBadRequest, "title, description and category are required")
		return
	}
	amount, err := decimal.NewFromString(c.PostForm("amount"))
	if err != nil {
		c.String(http.StatusBadRequest, "amount must be a number")
		return
	}
	balance, err := decimal.NewFromString(c.PostForm("balance"))
	if err != nil {
		c.String(http.StatusBadRequest, "balance must be a number")
		return
	}
	date, err := time.Parse(dateLayout, c.PostForm("date"))
	if err != nil {
		c.String(http.StatusBadRequest, "date must be a YYYY-MM-DD date")
		return
	}

	tx.Title = title
	tx.Description = description
	tx.Amount = amount
	tx.Category = category
	tx.Date = date
	tx.Balance = balance
	if err := h.Finance.Update(tx); err != nil {
		h.storeError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/finance")
}

// DeleteTransactionHandler removes a transaction permanently. Balances
// of later transactions are not adjusted.
func (h *Handler) DeleteTransactionHandler(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.Finance.Delete(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.String(http.StatusNotFound, "transaction not found")
			return
		}
		h.storeError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/finance")
}
