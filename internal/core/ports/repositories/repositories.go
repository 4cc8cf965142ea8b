package repositories

// RepositoryProvider holds every repository the services depend on.
type RepositoryProvider struct {
	TripRepo     TripRepositoryFacade
	ExpenseRepo  ExpenseRepositoryFacade
	ActivityRepo ActivityRepositoryFacade
}
