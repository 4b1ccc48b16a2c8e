package driver_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benchtable/tablegen/internal/driver"
)

func TestRun_PositionalOrdering(t *testing.T) {
	t.Parallel()

	p := driver.New(4)

	items := []int{5, 1, 4, 2, 3}

	results, err := driver.Run(context.Background(), p, items, func(_ context.Context, n int) (int, error) {
		return n * 10, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{50, 10, 40, 20, 30}, results)
}

func TestRun_PropagatesFirstError(t *testing.T) {
	t.Parallel()

	p := driver.New(2)

	items := []int{1, 2, 3}
	sentinel := errors.New("boom")

	_, err := driver.Run(context.Background(), p, items, func(_ context.Context, n int) (int, error) {
		if n == 2 {
			return 0, sentinel
		}

		return n, nil
	})
	require.Error(t, err)
}

func TestRun_EmptyJobs(t *testing.T) {
	t.Parallel()

	p := driver.New(0)

	results, err := driver.Run(context.Background(), p, []int{}, func(_ context.Context, n int) (int, error) {
		return n, nil
	})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestNew_ZeroConcurrencyReturnsPool(t *testing.T) {
	t.Parallel()

	p := driver.New(0)
	assert.NotNil(t, p)
}
