package services

// ServiceContainer holds all service interfaces handed to route registration.
type ServiceContainer struct {
	Khata KhataSvcFacade
	Bill  BillSvcFacade
	Party PartySvcFacade
	User  UserSvcFacade
}
