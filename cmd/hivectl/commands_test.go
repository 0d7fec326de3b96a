package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"hive/internal/domain/constants"
	"hive/internal/domain/entity"
	"hive/internal/infra/persistence/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedStore(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKVStore()
	require.NoError(t, kv.Set(ctx, constants.KeyCartItems, []byte(`[]`)))

	var out bytes.Buffer
	require.NoError(t, seedStore(ctx, kv, false, &out))

	assert.Contains(t, out.String(), "skip   hive_cart_items")
	assert.Contains(t, out.String(), "seeded hive_roommates")

	stored, err := kv.Get(ctx, constants.KeyCartItems)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(stored), "existing data is kept without -force")

	var partners []entity.GamePartner
	raw, err := kv.Get(ctx, constants.KeyGamePartners)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &partners))
	assert.Len(t, partners, 5)

	out.Reset()
	require.NoError(t, seedStore(ctx, kv, true, &out))
	stored, err = kv.Get(ctx, constants.KeyCartItems)
	require.NoError(t, err)
	assert.NotEqual(t, `[]`, string(stored))
}

func TestDump(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKVStore()
	require.NoError(t, kv.Set(ctx, "hive_activity", []byte(`[{"id":"a1"}]`)))

	var out bytes.Buffer
	require.NoError(t, dump(ctx, kv, "hive_activity", false, &out))
	assert.Equal(t, "[\n  {\n    \"id\": \"a1\"\n  }\n]\n", out.String())

	out.Reset()
	require.NoError(t, dump(ctx, kv, "hive_activity", true, &out))
	assert.Equal(t, "[{\"id\":\"a1\"}]\n", out.String())

	assert.Error(t, dump(ctx, kv, "hive_missing", false, &out))
}
