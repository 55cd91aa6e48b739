package sessioncache_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cedrichille/monopoly-companion-app/internal/adapter"
	"github.com/cedrichille/monopoly-companion-app/internal/mocks"
	"github.com/cedrichille/monopoly-companion-app/internal/sessioncache"
)

func TestRedis_Get(t *testing.T) {
	tests := []struct {
		name        string
		setupMocks  func(*mocks.MockRedisClient)
		expected    string
		expectedOK  bool
		expectedErr string
	}{
		{
			name: "cached session",
			setupMocks: func(c *mocks.MockRedisClient) {
				c.EXPECT().Get(gomock.Any(), "game").Return(`{"id":"abc"}`, nil)
			},
			expected:   `{"id":"abc"}`,
			expectedOK: true,
		},
		{
			name: "missing key is a miss, not an error",
			setupMocks: func(c *mocks.MockRedisClient) {
				c.EXPECT().Get(gomock.Any(), "game").Return("", adapter.ErrRedisNil)
			},
		},
		{
			name: "connection error",
			setupMocks: func(c *mocks.MockRedisClient) {
				c.EXPECT().Get(gomock.Any(), "game").Return("", assert.AnError)
			},
			expectedErr: "failed to get cached session",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := mocks.NewMockRedisClient(ctrl)
			tt.setupMocks(client)

			value, ok, err := sessioncache.NewRedis(client, "game", time.Hour).Get(context.Background())
			if tt.expectedErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedOK, ok)
			assert.Equal(t, tt.expected, value)
		})
	}
}

func TestRedis_SetAndDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockRedisClient(ctrl)
	cache := sessioncache.NewRedis(client, "", 24*time.Hour)

	client.EXPECT().SetEX(gomock.Any(), sessioncache.DefaultKey, "v", 24*time.Hour).Return(nil)
	client.EXPECT().Del(gomock.Any(), sessioncache.DefaultKey).Return(nil)
	client.EXPECT().Del(gomock.Any(), sessioncache.DefaultKey).Return(assert.AnError)

	require.NoError(t, cache.Set(context.Background(), "v"))
	require.NoError(t, cache.Delete(context.Background()))
	require.Error(t, cache.Delete(context.Background()))
}

func TestNoop(t *testing.T) {
	var cache sessioncache.Cache = sessioncache.Noop{}

	require.NoError(t, cache.Set(context.Background(), "v"))
	_, ok, err := cache.Get(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	require.NoError(t, cache.Delete(context.Background()))
}
