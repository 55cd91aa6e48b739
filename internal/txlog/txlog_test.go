package txlog_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cedrichille/monopoly-companion-app/internal/domain"
	"github.com/cedrichille/monopoly-companion-app/internal/mocks"
	"github.com/cedrichille/monopoly-companion-app/internal/store"
	"github.com/cedrichille/monopoly-companion-app/internal/store/schema"
	"github.com/cedrichille/monopoly-companion-app/internal/txlog"
)

func TestLog_Record(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	propertyID := int64(39)

	tests := []struct {
		name         string
		entry        txlog.Entry
		setupMocks   func(*mocks.MockStore, *mocks.MockClock)
		expectedErr  error
		validateFunc func(t *testing.T, tx *schema.Transaction)
	}{
		{
			name: "records a rent payment with details",
			entry: txlog.Entry{
				Turn: 2, PlayerID: 4, CounterpartyID: 3, Action: domain.ActionTypeRent,
				PropertyID: &propertyID, CashPaid: 100,
				Details: map[string]interface{}{"tier": "monopoly"},
			},
			setupMocks: func(st *mocks.MockStore, clock *mocks.MockClock) {
				st.EXPECT().GetActionTypeByCode(gomock.Any(), domain.ActionTypeRent).
					Return(&schema.ActionType{ID: 3, Code: domain.ActionTypeRent, Name: "rent"}, nil)
				clock.EXPECT().Now().Return(now)
				st.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tx *schema.Transaction) error {
						tx.ID = 7
						return nil
					})
			},
			validateFunc: func(t *testing.T, tx *schema.Transaction) {
				assert.Equal(t, int64(7), tx.ID)
				assert.Equal(t, int64(3), tx.ActionTypeID)
				assert.Equal(t, domain.ActionTypeRent, tx.ActionType.Code)
				assert.Equal(t, int64(100), tx.CashPaid)
				assert.Equal(t, &propertyID, tx.PropertyID)
				assert.JSONEq(t, `{"tier":"monopoly"}`, string(tx.Details))
				assert.Equal(t, now, tx.CreatedAt)

				ref, err := ulid.Parse(tx.Ref)
				require.NoError(t, err)
				assert.Equal(t, ulid.Timestamp(now), ref.Time())
			},
		},
		{
			name: "entry without details stores no JSON",
			entry: txlog.Entry{
				Turn: 1, PlayerID: 3, CounterpartyID: domain.PLAYER_ID_BANK, Action: domain.ActionTypeGo, CashReceived: 200,
			},
			setupMocks: func(st *mocks.MockStore, clock *mocks.MockClock) {
				st.EXPECT().GetActionTypeByCode(gomock.Any(), domain.ActionTypeGo).
					Return(&schema.ActionType{ID: 4, Code: domain.ActionTypeGo}, nil)
				clock.EXPECT().Now().Return(now)
				st.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(nil)
			},
			validateFunc: func(t *testing.T, tx *schema.Transaction) {
				assert.Nil(t, tx.Details)
				assert.Nil(t, tx.PropertyID)
				assert.Equal(t, int64(200), tx.CashReceived)
			},
		},
		{
			name:  "unknown action type is not found",
			entry: txlog.Entry{Action: domain.ActionType("auction")},
			setupMocks: func(st *mocks.MockStore, clock *mocks.MockClock) {
				st.EXPECT().GetActionTypeByCode(gomock.Any(), domain.ActionType("auction")).Return(nil, nil)
			},
			expectedErr: domain.ErrNotFound,
		},
		{
			name:        "negative amount is rejected",
			entry:       txlog.Entry{Action: domain.ActionTypeRent, CashPaid: -1},
			setupMocks:  func(st *mocks.MockStore, clock *mocks.MockClock) {},
			expectedErr: domain.ErrInvalidState,
		},
		{
			name:  "store failure propagates",
			entry: txlog.Entry{Action: domain.ActionTypeGo},
			setupMocks: func(st *mocks.MockStore, clock *mocks.MockClock) {
				st.EXPECT().GetActionTypeByCode(gomock.Any(), domain.ActionTypeGo).
					Return(&schema.ActionType{ID: 4, Code: domain.ActionTypeGo}, nil)
				clock.EXPECT().Now().Return(now)
				st.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(assert.AnError)
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			st := mocks.NewMockStore(ctrl)
			clock := mocks.NewMockClock(ctrl)
			tt.setupMocks(st, clock)

			tx, err := txlog.New(st, clock).Record(context.Background(), tt.entry)
			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.expectedErr))
				return
			}
			require.NoError(t, err)
			tt.validateFunc(t, tx)
		})
	}
}

func TestLog_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	player := int64(3)
	filter := store.TransactionFilter{PlayerID: &player, Limit: 10}
	st.EXPECT().ListTransactions(gomock.Any(), filter).Return([]schema.Transaction{{ID: 1}}, uint64(12), nil)

	txs, total, err := txlog.New(st, mocks.NewMockClock(ctrl)).List(context.Background(), filter)
	require.NoError(t, err)
	assert.Len(t, txs, 1)
	assert.Equal(t, uint64(12), total)
}
