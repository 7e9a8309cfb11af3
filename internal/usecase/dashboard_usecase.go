package usecase

import (
	"context"

	"finboard/internal/domain/entity"
)

// DashboardOverview is the aggregate the dashboard page renders: the summary
// cards, every account, and the most recent transactions.
type DashboardOverview struct {
	Summary            *entity.TransactionSummary `json:"summary"`
	Accounts           []entity.Account           `json:"accounts"`
	RecentTransactions []entity.Transaction       `json:"recentTransactions"`
}

// DashboardUsecase assembles the overview from several remote reads.
type DashboardUsecase interface {
	Overview(ctx context.Context) (*DashboardOverview, error)
}
