package services

// ServiceContainer holds every service the handlers depend on.
type ServiceContainer struct {
	Trip     TripSvcFacade
	Expense  ExpenseSvcFacade
	Activity ActivitySvcFacade
}
