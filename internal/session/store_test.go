package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.Load(ctx, "bk_1", []string{KeyBookingStage})
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Save(ctx, "bk_1", []Entry{
		{Key: KeyBookingStage, Value: []byte(`{"stage":"search","revision":0}`)},
		{Key: KeySelectedSeats, Value: []byte(`{}`)},
	}))

	values, err := store.Load(ctx, "bk_1", []string{KeyBookingStage, KeySelectedSeats, KeyCheckout})
	require.NoError(t, err)
	assert.Len(t, values, 2)
	assert.JSONEq(t, `{"stage":"search","revision":0}`, string(values[KeyBookingStage]))

	// Returned bytes are copies
	values[KeySelectedSeats][0] = 'x'
	again, err := store.Load(ctx, "bk_1", []string{KeySelectedSeats})
	require.NoError(t, err)
	assert.Equal(t, "{}", string(again[KeySelectedSeats]))

	_, err = store.Load(ctx, "bk_1", []string{KeyCheckout})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 1, store.Len())
}

func TestRedisStore_Save(t *testing.T) {
	redisClient, mock := redismock.NewClientMock()
	store := NewRedisStore(redisClient, 2*time.Hour)

	mock.ExpectTxPipeline()
	mock.ExpectSetEx("booking_session:bk_1:booking_stage", `{"stage":"search","revision":1}`, 2*time.Hour).SetVal("OK")
	mock.ExpectSetEx("booking_session:bk_1:selected_seats", `{}`, 2*time.Hour).SetVal("OK")
	mock.ExpectTxPipelineExec()

	err := store.Save(context.Background(), "bk_1", []Entry{
		{Key: KeyBookingStage, Value: []byte(`{"stage":"search","revision":1}`)},
		{Key: KeySelectedSeats, Value: []byte(`{}`)},
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStore_SaveFailsPartway(t *testing.T) {
	redisClient, mock := redismock.NewClientMock()
	store := NewRedisStore(redisClient, time.Hour)

	mock.ExpectTxPipeline()
	mock.ExpectSetEx("booking_session:bk_1:booking_stage", `{}`, time.Hour).SetVal("OK")
	mock.ExpectSetEx("booking_session:bk_1:selected_seats", `{}`, time.Hour).SetErr(errors.New("connection refused"))

	err := store.Save(context.Background(), "bk_1", []Entry{
		{Key: KeyBookingStage, Value: []byte(`{}`)},
		{Key: KeySelectedSeats, Value: []byte(`{}`)},
		{Key: KeyReconciliation, Value: []byte(`{}`)},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "save session bk_1")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStore_SaveNothing(t *testing.T) {
	redisClient, mock := redismock.NewClientMock()
	store := NewRedisStore(redisClient, time.Hour)

	assert.NoError(t, store.Save(context.Background(), "bk_1", nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStore_Load(t *testing.T) {
	redisClient, mock := redismock.NewClientMock()
	store := NewRedisStore(redisClient, time.Hour)

	mock.ExpectMGet(
		"booking_session:bk_1:booking_stage",
		"booking_session:bk_1:checkout",
	).SetVal([]interface{}{`{"stage":"offer_selected","revision":2}`, nil})

	values, err := store.Load(context.Background(), "bk_1", []string{KeyBookingStage, KeyCheckout})

	require.NoError(t, err)
	assert.Len(t, values, 1)
	assert.Equal(t, `{"stage":"offer_selected","revision":2}`, string(values[KeyBookingStage]))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStore_LoadMissing(t *testing.T) {
	redisClient, mock := redismock.NewClientMock()
	store := NewRedisStore(redisClient, time.Hour)

	mock.ExpectMGet("booking_session:gone:booking_stage").SetVal([]interface{}{nil})

	_, err := store.Load(context.Background(), "gone", []string{KeyBookingStage})

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStore_LoadError(t *testing.T) {
	redisClient, mock := redismock.NewClientMock()
	store := NewRedisStore(redisClient, time.Hour)

	mock.ExpectMGet("booking_session:bk_1:booking_stage").SetErr(errors.New("timeout"))

	_, err := store.Load(context.Background(), "bk_1", []string{KeyBookingStage})

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestNewRedisClient(t *testing.T) {
	client, err := NewRedisClient("redis://localhost:6379/3")
	require.NoError(t, err)
	assert.Equal(t, 3, client.Options().DB)
	assert.Equal(t, 4*time.Second, client.Options().DialTimeout)

	_, err = NewRedisClient("://bad")
	assert.Error(t, err)
}
