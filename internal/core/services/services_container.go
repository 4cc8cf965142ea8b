package services

import (
	portsrepo "github.com/SscSPs/trip_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/trip_ledger_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, feed *ExpenseFeed) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The trip service authorizes every other service's requests
	container.Trip = NewTripService(repos.TripRepo, WithTripFeed(feed), WithTripExpenses(repos.ExpenseRepo))
	container.Expense = NewExpenseService(repos.ExpenseRepo, repos.TripRepo, container.Trip, feed)
	container.Activity = NewActivityService(repos.ActivityRepo, container.Trip)

	return container
}
