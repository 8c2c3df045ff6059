package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// The pgsql and fixture packages each build one, so the store is selected
// exactly once at startup and injected everywhere.
type RepositoryProvider struct {
	KhataRepo KhataRepositoryFacade
	BillRepo  BillRepositoryFacade
	PartyRepo PartyRepositoryFacade
	UserRepo  UserRepositoryFacade
}
