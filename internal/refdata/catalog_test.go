package refdata_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cedrichille/monopoly-companion-app/internal/domain"
	"github.com/cedrichille/monopoly-companion-app/internal/mocks"
	"github.com/cedrichille/monopoly-companion-app/internal/refdata"
	"github.com/cedrichille/monopoly-companion-app/internal/store/schema"
)

func classicProperties() []schema.Property {
	return []schema.Property{
		{ID: 1, GameVersionID: 1, Name: "Mediterranean Avenue", Group: "brown", Type: domain.PropertyTypeStreet},
		{ID: 2, GameVersionID: 1, Name: "Baltic Avenue", Group: "brown", Type: domain.PropertyTypeStreet},
		{ID: 3, GameVersionID: 1, Name: "Reading Railroad", Group: "station", Type: domain.PropertyTypeStation},
		{ID: 4, GameVersionID: 1, Name: "Park Place", Group: "dark_blue", Type: domain.PropertyTypeStreet},
		{ID: 5, GameVersionID: 1, Name: "Boardwalk", Group: "dark_blue", Type: domain.PropertyTypeStreet},
	}
}

func TestCatalog_PropertiesAreCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	st.EXPECT().ListPropertiesByGameVersion(gomock.Any(), int64(1)).Return(classicProperties(), nil).Times(1)

	c, err := refdata.NewCatalog(st, 4)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		properties, err := c.Properties(context.Background(), 1)
		require.NoError(t, err)
		assert.Len(t, properties, 5)
	}
}

func TestCatalog_ConcurrentReads(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	release := make(chan struct{})
	st := mocks.NewMockStore(ctrl)
	st.EXPECT().ListPropertiesByGameVersion(gomock.Any(), int64(1)).
		DoAndReturn(func(context.Context, int64) ([]schema.Property, error) {
			<-release
			return classicProperties(), nil
		}).MinTimes(1)

	c, err := refdata.NewCatalog(st, 4)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			properties, err := c.Properties(context.Background(), 1)
			assert.NoError(t, err)
			assert.Len(t, properties, 5)
		}()
	}
	close(release)
	wg.Wait()
}

func TestCatalog_InvalidateReloads(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	st.EXPECT().ListGameVersions(gomock.Any()).
		Return([]schema.GameVersion{{ID: 1, Name: "Classic (US)"}}, nil).Times(2)

	c, err := refdata.NewCatalog(st, 0)
	require.NoError(t, err)

	_, err = c.Versions(context.Background())
	require.NoError(t, err)
	_, err = c.Versions(context.Background())
	require.NoError(t, err)

	c.Invalidate()
	versions, err := c.Versions(context.Background())
	require.NoError(t, err)
	require.Len(t, versions, 1)
	assert.Equal(t, "Classic (US)", versions[0].Name)
}

func TestCatalog_ErrorsAreNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	gomock.InOrder(
		st.EXPECT().ListPropertiesByGameVersion(gomock.Any(), int64(1)).Return(nil, errors.New("connection refused")),
		st.EXPECT().ListPropertiesByGameVersion(gomock.Any(), int64(1)).Return(classicProperties(), nil),
	)

	c, err := refdata.NewCatalog(st, 4)
	require.NoError(t, err)

	_, err = c.Properties(context.Background(), 1)
	require.Error(t, err)

	properties, err := c.Properties(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, properties, 5)
}

func TestCatalog_Search(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		limit    int
		expected []string
	}{
		{
			name:     "empty query returns every property in board order",
			query:    "  ",
			expected: []string{"Mediterranean Avenue", "Baltic Avenue", "Reading Railroad", "Park Place", "Boardwalk"},
		},
		{
			name:     "exact name",
			query:    "Boardwalk",
			expected: []string{"Boardwalk"},
		},
		{
			name:     "partial and case insensitive",
			query:    "READING",
			expected: []string{"Reading Railroad"},
		},
		{
			name:     "limit",
			query:    "",
			limit:    2,
			expected: []string{"Mediterranean Avenue", "Baltic Avenue"},
		},
		{
			name:     "no match",
			query:    "zzz",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			st := mocks.NewMockStore(ctrl)
			st.EXPECT().ListPropertiesByGameVersion(gomock.Any(), int64(1)).Return(classicProperties(), nil)

			c, err := refdata.NewCatalog(st, 4)
			require.NoError(t, err)

			results, err := c.Search(context.Background(), 1, tt.query, tt.limit)
			require.NoError(t, err)

			names := make([]string, 0, len(results))
			for _, p := range results {
				names = append(names, p.Name)
			}
			assert.Equal(t, tt.expected, names)
		})
	}
}

func TestCatalog_SearchRanksTighterMatchesFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	st.EXPECT().ListPropertiesByGameVersion(gomock.Any(), int64(1)).Return(classicProperties(), nil)

	c, err := refdata.NewCatalog(st, 4)
	require.NoError(t, err)

	results, err := c.Search(context.Background(), 1, "ave", 0)
	require.NoError(t, err)
	require.NotEmpty(t, results)
	for _, p := range results[:2] {
		assert.Contains(t, []string{"Mediterranean Avenue", "Baltic Avenue"}, p.Name)
	}
}
