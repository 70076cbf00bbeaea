package ports

import "context"

// Confirmer asks the user to approve a destructive step.
//
//go:generate mockgen -source=confirmer.go -destination=mocks/mock_confirmer.go -package=mocks
type Confirmer interface {
	// Confirm shows the question and blocks until an answer is read.
	// It returns true only for an affirmative answer.
	Confirm(ctx context.Context, question string) (bool, error)
}
