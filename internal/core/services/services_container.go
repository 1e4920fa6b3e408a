package services

import (
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(
	cfg *config.Config,
	repos portsrepo.RepositoryProvider,
	renderer portssvc.ReportRenderer,
	notifier portssvc.ReportNotifier,
) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		User:        NewUserService(repos.UserRepo),
		Token:       NewTokenService(cfg),
		GoogleOAuth: NewGoogleOAuthHandlerService(cfg),
		Account:     NewAccountService(repos.AccountRepo, repos.UserRepo),
		Category:    NewCategoryService(repos.CategoryRepo),
		Transaction: NewTransactionService(repos.TransactionRepo, repos.AccountRepo, repos.CategoryRepo),
		Budget:      NewBudgetService(repos.BudgetRepo, repos.TransactionRepo, repos.CategoryRepo),
		Report:      NewReportService(repos.ReportRepo, repos.UserRepo, repos.TransactionRepo, renderer, notifier),
	}
}
