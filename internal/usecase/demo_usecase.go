package usecase

import (
	"context"
)

// DemoUsecase defines the interface for demo account maintenance.
type DemoUsecase interface {
	// ResetDemoAccounts restores the demo accounts to their seeded state,
	// deleting whatever orders and tokens visitors created.
	ResetDemoAccounts(ctx context.Context) error
}
