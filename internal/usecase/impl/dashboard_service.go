package impl

import (
	"context"
	"log/slog"
	"sort"

	deliverycontext "finboard/internal/delivery/context"
	"finboard/internal/domain/entity"
	"finboard/internal/domain/repository"
	"finboard/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// recentTransactionLimit caps how many transactions the overview carries.
const recentTransactionLimit = 5

// dashboardService implements the DashboardUsecase interface.
type dashboardService struct {
	accountRepo     repository.AccountRepository
	transactionRepo repository.TransactionRepository
	logger          *slog.Logger
}

// DashboardServiceParams holds dependencies for the dashboard service, injected by Fx.
type DashboardServiceParams struct {
	fx.In

	AccountRepo     repository.AccountRepository
	TransactionRepo repository.TransactionRepository
	Logger          *slog.Logger
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(params DashboardServiceParams) usecase.DashboardUsecase {
	return &dashboardService{
		accountRepo:     params.AccountRepo,
		transactionRepo: params.TransactionRepo,
		logger:          params.Logger,
	}
}

// Overview fans out the three remote reads the dashboard needs and joins the
// results. Any single failure fails the whole overview.
func (srv *dashboardService) Overview(ctx context.Context) (*usecase.DashboardOverview, error) {
	var (
		summary      *entity.TransactionSummary
		accounts     []entity.Account
		transactions []entity.Transaction
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		summary, err = srv.transactionRepo.Summary(groupCtx)

		return errors.Wrap(err, "fetch summary")
	})
	group.Go(func() error {
		var err error
		accounts, err = srv.accountRepo.List(groupCtx)

		return errors.Wrap(err, "list accounts")
	})
	group.Go(func() error {
		var err error
		transactions, err = srv.transactionRepo.List(groupCtx, "")

		return errors.Wrap(err, "list transactions")
	})

	if err := group.Wait(); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).
			Error("Failed to assemble dashboard overview", slog.Any("error", err))

		return nil, err
	}

	return &usecase.DashboardOverview{
		Summary:            summary,
		Accounts:           accounts,
		RecentTransactions: recentTransactions(transactions),
	}, nil
}

func recentTransactions(transactions []entity.Transaction) []entity.Transaction {
	sorted := make([]entity.Transaction, len(transactions))
	copy(sorted, transactions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	if len(sorted) > recentTransactionLimit {
		sorted = sorted[:recentTransactionLimit]
	}

	return sorted
}
