package domain

//go:generate mockgen -destination=mocks/mock_repositories.go -package=mocks github.com/saradorri/pokerbankroll/internal/domain UserRepository,TournamentRepository,AdjustmentRepository,BankrollEventRepository,Transactor,BankrollLedger
//go:generate mockgen -destination=mocks/mock_usecases.go -package=mocks github.com/saradorri/pokerbankroll/internal/domain UserUseCase,TournamentUseCase,AdjustmentUseCase,DashboardUseCase
