package refdata

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sahilm/fuzzy"
	"golang.org/x/sync/singleflight"

	"github.com/cedrichille/monopoly-companion-app/internal/store"
	"github.com/cedrichille/monopoly-companion-app/internal/store/schema"
)

// Catalog serves the immutable reference tables from memory
//
//go:generate mockgen -source=catalog.go -destination=../mocks/property_catalog.go -package=mocks -mock_names=Catalog=MockPropertyCatalog
type Catalog interface {
	// Versions returns every game version ordered by id
	Versions(ctx context.Context) ([]schema.GameVersion, error)

	// Properties returns the property definitions of a game version ordered by id
	Properties(ctx context.Context, gameVersionID int64) ([]schema.Property, error)

	// Search returns properties of a game version whose name fuzzily matches the query,
	// best match first. A limit of 0 returns every match.
	Search(ctx context.Context, gameVersionID int64, query string, limit int) ([]schema.Property, error)

	// Invalidate drops every cached entry; call it after the reference tables change
	Invalidate()
}

const versionsKey = "versions"

type catalog struct {
	store      store.Store
	properties *lru.Cache[int64, []schema.Property]
	versions   *lru.Cache[string, []schema.GameVersion]
	loads      singleflight.Group
}

// NewCatalog creates a catalog holding the properties of up to size game versions
func NewCatalog(st store.Store, size int) (Catalog, error) {
	if size <= 0 {
		size = 256
	}

	properties, err := lru.New[int64, []schema.Property](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create property cache: %w", err)
	}
	versions, err := lru.New[string, []schema.GameVersion](1)
	if err != nil {
		return nil, fmt.Errorf("failed to create game version cache: %w", err)
	}

	return &catalog{
		store:      st,
		properties: properties,
		versions:   versions,
	}, nil
}

// Versions returns every game version ordered by id
func (c *catalog) Versions(ctx context.Context) ([]schema.GameVersion, error) {
	if cached, ok := c.versions.Get(versionsKey); ok {
		return cached, nil
	}

	v, err, _ := c.loads.Do(versionsKey, func() (interface{}, error) {
		versions, err := c.store.ListGameVersions(ctx)
		if err != nil {
			return nil, err
		}
		c.versions.Add(versionsKey, versions)
		return versions, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]schema.GameVersion), nil
}

// Properties returns the property definitions of a game version ordered by id
func (c *catalog) Properties(ctx context.Context, gameVersionID int64) ([]schema.Property, error) {
	if cached, ok := c.properties.Get(gameVersionID); ok {
		return cached, nil
	}

	key := "properties:" + strconv.FormatInt(gameVersionID, 10)
	v, err, _ := c.loads.Do(key, func() (interface{}, error) {
		properties, err := c.store.ListPropertiesByGameVersion(ctx, gameVersionID)
		if err != nil {
			return nil, err
		}
		c.properties.Add(gameVersionID, properties)
		return properties, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]schema.Property), nil
}

// propertyNames implements fuzzy.Source over property names
type propertyNames []schema.Property

func (p propertyNames) String(i int) string {
	return strings.ToLower(p[i].Name)
}

func (p propertyNames) Len() int {
	return len(p)
}

// Search returns properties whose name fuzzily matches the query, best match first
func (c *catalog) Search(ctx context.Context, gameVersionID int64, query string, limit int) ([]schema.Property, error) {
	properties, err := c.Properties(ctx, gameVersionID)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return applyLimit(properties, limit), nil
	}

	matches := fuzzy.FindFrom(query, propertyNames(properties))
	// Equal scores keep board order
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Index < matches[j].Index
	})

	results := make([]schema.Property, 0, len(matches))
	for _, m := range matches {
		results = append(results, properties[m.Index])
	}
	return applyLimit(results, limit), nil
}

func applyLimit(properties []schema.Property, limit int) []schema.Property {
	if limit > 0 && len(properties) > limit {
		return properties[:limit]
	}
	return properties
}

// Invalidate drops every cached entry
func (c *catalog) Invalidate() {
	c.properties.Purge()
	c.versions.Purge()
}
