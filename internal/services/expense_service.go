package services

import (
	"context"
	"errors"
	"fmt"

	"smartbiz-backend/internal/cache"
	"smartbiz-backend/internal/live"
	"smartbiz-backend/internal/models"
	"smartbiz-backend/internal/repositories"
	"smartbiz-backend/internal/store"
	"smartbiz-backend/internal/timeutil"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrInvalidExpense = errors.New("expense amount is required")

// ExpenseService records standalone expenses: a single transaction insert
// with paid = amount and due = 0, no stock interaction.
type ExpenseService struct {
	DB              *pgxpool.Pool
	TransactionRepo *repositories.TransactionRepository
	Hub             *live.Hub
}

func NewExpenseService(db *pgxpool.Pool, transactionRepo *repositories.TransactionRepository, hub *live.Hub) *ExpenseService {
	return &ExpenseService{DB: db, TransactionRepo: transactionRepo, Hub: hub}
}

func (s *ExpenseService) Record(ctx context.Context, req *models.CreateExpenseRequest) (*models.Transaction, error) {
	if req.Amount <= 0 {
		return nil, ErrInvalidExpense
	}

	category := req.Category
	if category == "" {
		category = "Other"
	}

	txn := &models.Transaction{
		ID:         uuid.NewString(),
		Type:       models.TransactionExpense,
		Amount:     req.Amount,
		PaidAmount: req.Amount,
		DueAmount:  0,
		Category:   category,
		Note:       req.Note,
		CreatedAt:  timeutil.Now(),
	}

	batch := store.NewBatch(s.DB)
	batch.Add(s.TransactionRepo.InsertOp(txn))
	if err := batch.Commit(ctx); err != nil {
		return nil, fmt.Errorf("expense commit: %w", err)
	}

	cache.InvalidateDashboardStats(ctx)
	s.Hub.Publish(live.CollectionTransactions)
	return txn, nil
}

// ListExpenses returns the expense history, newest first.
func (s *ExpenseService) ListExpenses(ctx context.Context) ([]models.Transaction, error) {
	return s.TransactionRepo.ListByType(ctx, models.TransactionExpense, 0)
}
