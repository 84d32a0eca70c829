package repository

import "context"

// TransactionManager defines the interface for managing database
// transactions. It lets the use case layer run multi-step writes atomically
// without depending on a specific DB driver.
type TransactionManager interface {
	// Execute runs a function within a database transaction. If the function
	// returns an error, the transaction is rolled back; otherwise it is
	// committed. All repositories obtained from the factory share the same
	// transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repository instances bound to one transaction.
type RepositoryFactory interface {
	// UserPetRepo returns a UserPetRepository bound to the current
	// transaction.
	UserPetRepo() UserPetRepository
}
