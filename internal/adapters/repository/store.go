// Package repository defines the user and catalog store interfaces and errors.
package repository

import (
	"context"

	"github.com/okian/voyago/internal/domain/model"
)

// UserStore provides access to seeded user profiles. Profiles are never
// deleted within a process; only preferences change.
type UserStore interface {
	// Get returns the user with the given id.
	// Returns ErrUserNotFound if the id is unknown.
	Get(ctx context.Context, id string) (model.User, error)

	// List returns all users in seed order.
	List(ctx context.Context) ([]model.User, error)

	// UpdatePreferences replaces the preference set of an existing user and
	// returns the updated profile. Returns ErrUserNotFound if id is unknown.
	UpdatePreferences(ctx context.Context, id string, prefs model.Preferences) (model.User, error)
}

// CatalogStore provides read access to the immutable item catalogs.
type CatalogStore interface {
	// Items returns the catalog for a category in seed order.
	// Returns ErrUnknownCategory for anything but flights/hotels/packages.
	Items(ctx context.Context, category model.Category) ([]model.TravelItem, error)

	// Count returns the total number of items across all catalogs.
	Count(ctx context.Context) int
}
