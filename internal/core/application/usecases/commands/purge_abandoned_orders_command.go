package commands

import (
	"errors"
	"fmt"
	"time"

	"bookstore/internal/pkg/errs"
	"bookstore/internal/pkg/guard"
)

var ErrPurgeAbandonedOrdersCommandIsNotConstructed = errors.New(
	"PurgeAbandonedOrdersCommand must be created via NewPurgeAbandonedOrdersCommand constructor",
)

// PurgeAbandonedOrdersCommand represents a request to delete in_progress
// orders that have not been touched for the given retention period.
// An order stuck in in_progress is a cart the customer walked away from;
// anything that reached in_processing is never purged.
type PurgeAbandonedOrdersCommand struct { //nolint:recvcheck //using for validation
	retention time.Duration

	guard guard.ConstructorGuard
}

// NewPurgeAbandonedOrdersCommand creates a command to purge stale carts.
// The retention period must be positive.
func NewPurgeAbandonedOrdersCommand(retention time.Duration) (PurgeAbandonedOrdersCommand, error) {
	cmd := PurgeAbandonedOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setRetention(retention); err != nil {
		return PurgeAbandonedOrdersCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PurgeAbandonedOrdersCommand) Validate() error {
	return c.guard.Validate(ErrPurgeAbandonedOrdersCommandIsNotConstructed)
}

// Retention returns how long an untouched cart is kept before purging.
func (c PurgeAbandonedOrdersCommand) Retention() time.Duration {
	return c.retention
}

func (c *PurgeAbandonedOrdersCommand) setRetention(retention time.Duration) error {
	if retention <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("retention", fmt.Errorf("%s is not positive", retention))
	}

	c.retention = retention
	return nil
}
