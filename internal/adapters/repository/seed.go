package repository

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/okian/voyago/internal/domain/model"
)

//go:embed seed/*.json
var seedFS embed.FS

// seedFiles maps each catalog category to its embedded seed file.
var seedFiles = map[model.Category]string{
	model.CategoryFlights:  "seed/flights.json",
	model.CategoryHotels:   "seed/hotels.json",
	model.CategoryPackages: "seed/packages.json",
}

// LoadSeed parses the embedded seed collections and returns a ready store.
func LoadSeed() (*MemoryStore, error) {
	raw, err := seedFS.ReadFile("seed/users.json")
	if err != nil {
		return nil, fmt.Errorf("read users seed: %w", err)
	}
	var users []model.User
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, fmt.Errorf("parse users seed: %w", err)
	}

	catalogs := make(map[model.Category][]model.TravelItem, len(seedFiles))
	for cat, path := range seedFiles {
		raw, err := seedFS.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s seed: %w", cat, err)
		}
		var items []model.TravelItem
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, fmt.Errorf("parse %s seed: %w", cat, err)
		}
		catalogs[cat] = items
	}

	return NewMemoryStore(users, catalogs), nil
}
