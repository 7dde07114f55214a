package transactor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAfterCommit_OutsideTransactionRunsNow(t *testing.T) {
	ctx := context.Background()

	ran := false
	AfterCommit(ctx, func(context.Context) {
		ran = true
	})

	assert.False(t, InTransaction(ctx))
	assert.True(t, ran)
}

func TestAfterCommit_RunsOnCommitInOrder(t *testing.T) {
	txCtx, commit := WithCommitHooks(context.Background())

	var order []int
	AfterCommit(txCtx, func(context.Context) { order = append(order, 1) })
	AfterCommit(txCtx, func(context.Context) { order = append(order, 2) })

	assert.True(t, InTransaction(txCtx))
	assert.Empty(t, order)

	commit(context.Background())
	assert.Equal(t, []int{1, 2}, order)

	commit(context.Background())
	assert.Equal(t, []int{1, 2}, order)
}
