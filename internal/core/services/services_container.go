package services

import (
	portsrepo "github.com/ktfabrics/khata_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/ktfabrics/khata_ledger_app/internal/core/ports/services"
)

// NewServiceContainer wires every service over the selected repository
// provider. The provider decides whether the backing store is postgres or
// the fixture dataset; services never know the difference.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Khata: NewKhataService(repos.KhataRepo),
		Bill:  NewBillService(repos.BillRepo),
		Party: NewPartyService(repos.PartyRepo),
		User:  NewUserService(repos.UserRepo),
	}
}
