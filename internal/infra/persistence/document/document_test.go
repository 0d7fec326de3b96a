package document

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"hive/internal/domain/entity"
	domainerrors "hive/internal/domain/errors"
	"hive/internal/domain/repository"
	"hive/internal/errors"
	"hive/internal/infra/persistence/memory"
	"hive/internal/infra/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type failingKV struct{}

func (failingKV) Get(context.Context, string) ([]byte, error) { return nil, errors.New("connection refused") }
func (failingKV) Set(context.Context, string, []byte) error   { return errors.New("connection refused") }
func (failingKV) Delete(context.Context, string) error         { return errors.New("connection refused") }

func seedCart() []entity.CartItem {
	return []entity.CartItem{{ID: "seed", Name: "Milk", Quantity: 1, Price: 2.5}}
}

func TestGet_NeverWrittenReturnsDefault(t *testing.T) {
	docs := New[[]entity.CartItem](memory.NewKVStore(), validation.New(), discardLogger)

	got, err := docs.Get(context.Background(), "hive_cart_items", seedCart())
	require.NoError(t, err)
	assert.Equal(t, seedCart(), got)
}

func TestGet_StoredEmptyArrayStaysEmpty(t *testing.T) {
	ctx := context.Background()
	docs := New[[]entity.CartItem](memory.NewKVStore(), validation.New(), discardLogger)

	require.NoError(t, docs.Set(ctx, "hive_cart_items", []entity.CartItem{}))

	got, err := docs.Get(ctx, "hive_cart_items", seedCart())
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestGet_MalformedFallsBackToDefault(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKVStore()
	docs := New[[]entity.CartItem](kv, validation.New(), discardLogger)

	require.NoError(t, kv.Set(ctx, "hive_cart_items", []byte(`{"not":"an array"`)))

	got, err := docs.Get(ctx, "hive_cart_items", seedCart())
	require.NoError(t, err)
	assert.Equal(t, seedCart(), got)
}

func TestGet_InvalidRecordFallsBackToDefault(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKVStore()
	docs := New[[]entity.CartItem](kv, validation.New(), discardLogger)

	require.NoError(t, kv.Set(ctx, "hive_cart_items", []byte(`[{"id":"1","name":""}]`)))

	got, err := docs.Get(ctx, "hive_cart_items", seedCart())
	require.NoError(t, err)
	assert.Equal(t, seedCart(), got)
}

func TestSet_RejectsInvalidRecords(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKVStore()
	docs := New[[]entity.AutoShare](kv, validation.New(), discardLogger)

	err := docs.Set(ctx, "hive_auto_shares", []entity.AutoShare{{ID: "1", DepartureTime: "25:00"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Contains(t, err.Error(), "hhmm")

	_, err = kv.Get(ctx, "hive_auto_shares")
	assert.ErrorIs(t, err, repository.ErrKeyNotFound)
}

func TestSet_StructDocument(t *testing.T) {
	ctx := context.Background()
	docs := New[entity.RoommateSeekerProfile](memory.NewKVStore(), validation.New(), discardLogger)

	err := docs.Set(ctx, "p", entity.RoommateSeekerProfile{Name: "Sam"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	profile := entity.RoommateSeekerProfile{Name: "Sam", Location: "Downtown", Budget: 1200}
	require.NoError(t, docs.Set(ctx, "p", profile))

	got, err := docs.Get(ctx, "p", entity.RoommateSeekerProfile{})
	require.NoError(t, err)
	assert.Equal(t, profile, got)
}

func TestDelete_RestoresDefault(t *testing.T) {
	ctx := context.Background()
	docs := New[[]entity.CartItem](memory.NewKVStore(), validation.New(), discardLogger)

	require.NoError(t, docs.Set(ctx, "hive_cart_items", []entity.CartItem{}))
	require.NoError(t, docs.Delete(ctx, "hive_cart_items"))

	got, err := docs.Get(ctx, "hive_cart_items", seedCart())
	require.NoError(t, err)
	assert.Equal(t, seedCart(), got)
}

func TestBackendFailureIsStoreUnavailable(t *testing.T) {
	ctx := context.Background()
	docs := New[[]entity.CartItem](failingKV{}, validation.New(), discardLogger)

	_, err := docs.Get(ctx, "k", nil)
	assert.ErrorIs(t, err, domainerrors.ErrStoreUnavailable)
	assert.ErrorIs(t, docs.Set(ctx, "k", nil), domainerrors.ErrStoreUnavailable)
	assert.ErrorIs(t, docs.Delete(ctx, "k"), domainerrors.ErrStoreUnavailable)
}
