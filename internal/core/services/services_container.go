package services

import (
	portsrepo "github.com/finhub/accounts_service/internal/core/ports/repositories"
	portssvc "github.com/finhub/accounts_service/internal/core/ports/services"
)

// NewServiceContainer wires the repositories and external-facing adapters
// into the application services the handlers consume.
func NewServiceContainer(
	repos portsrepo.RepositoryProvider,
	typeCache portsrepo.AccountTypeCache,
	userVerifier portssvc.UserVerifierSvc,
	publisher portssvc.EventPublisherSvc,
) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Account: NewAccountService(
			repos.AccountRepo,
			repos.AccountDetailRepo,
			repos.AccountTypeRepo,
			userVerifier,
			publisher,
		),
		AccountType: NewAccountTypeService(repos.AccountTypeRepo, typeCache),
	}
}
