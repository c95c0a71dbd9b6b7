package dbmetrics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetExecutor_WithoutTx(t *testing.T) {
	db := &SqlTxWrapper{}
	ctx := context.Background()

	assert.Same(t, db, GetExecutor(ctx, db))
	assert.False(t, IsInTransaction(ctx))
}

func TestGetExecutor_WithTx(t *testing.T) {
	db := &SqlTxWrapper{}
	tx := &SqlTxWrapper{}
	ctx := WithTx(context.Background(), tx)

	assert.Same(t, tx, GetExecutor(ctx, db))
	assert.True(t, IsInTransaction(ctx))
}

func TestOperation(t *testing.T) {
	assert.Equal(t, "select", operation("SELECT id FROM bookings"))
	assert.Equal(t, "insert", operation("\n  INSERT INTO bookings"))
	assert.Equal(t, "unknown", operation("   "))
}
