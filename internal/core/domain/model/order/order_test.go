package order_test

import (
	"testing"
	"time"

	"parcelrelay/internal/core/domain/model/kernel"
	"parcelrelay/internal/core/domain/model/order"
	"parcelrelay/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()

	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("creates unclaimed order", func(t *testing.T) {
		id := kernel.NewUUID()
		parcelID := kernel.NewUUID()
		from := kernel.NewUUID()
		to := kernel.NewUUID()

		o, err := order.NewOrder(id, parcelID, from, to)

		require.NoError(t, err)
		assert.True(t, o.ID().IsEqual(id))
		assert.True(t, o.Parcel().IsEqual(parcelID))
		assert.True(t, o.From().IsEqual(from))
		require.NotNil(t, o.To())
		assert.True(t, o.To().IsEqual(to))
		assert.Nil(t, o.Owner())
		assert.Nil(t, o.StartedAt())
		assert.Nil(t, o.FinishedAt())
		assert.Nil(t, o.Next())
		assert.Equal(t, order.PhaseUnclaimed, o.Phase())
	})

	t.Run("rejects missing references", func(t *testing.T) {
		valid := kernel.NewUUID()
		var zero kernel.UUID

		cases := []struct {
			name                  string
			id, parcel, from, to  kernel.UUID
		}{
			{"zero id", zero, valid, valid, valid},
			{"zero parcel", valid, zero, valid, valid},
			{"zero from", valid, valid, zero, valid},
			{"zero to", valid, valid, valid, zero},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := order.NewOrder(tc.id, tc.parcel, tc.from, tc.to)
				require.Error(t, err)
			})
		}
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("restores claimed order", func(t *testing.T) {
		owner := kernel.NewUUID()
		started := time.Now().UTC()
		to := kernel.NewUUID()

		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			&to, &owner, &started, nil, nil,
		)

		require.NoError(t, err)
		assert.Equal(t, order.PhaseClaimed, o.Phase())
		require.NotNil(t, o.Owner())
		assert.True(t, o.Owner().IsEqual(owner))
		require.NotNil(t, o.StartedAt())
		assert.Equal(t, started, *o.StartedAt())
	})

	t.Run("restores legacy row without to address", func(t *testing.T) {
		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			nil, nil, nil, nil, nil,
		)

		require.NoError(t, err)
		assert.Nil(t, o.To())
		assert.Equal(t, order.PhaseUnclaimed, o.Phase())
	})

	t.Run("rejects owner without started at", func(t *testing.T) {
		owner := kernel.NewUUID()

		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			nil, &owner, nil, nil, nil,
		)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects started at without owner", func(t *testing.T) {
		started := time.Now().UTC()

		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			nil, nil, &started, nil, nil,
		)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects finished at without started at", func(t *testing.T) {
		finished := time.Now().UTC()

		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			nil, nil, nil, &finished, nil,
		)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_Phase(t *testing.T) {
	t.Run("classifies full lifecycle", func(t *testing.T) {
		o := newTestOrder(t)
		courier := kernel.NewUUID()

		assert.Equal(t, order.PhaseUnclaimed, o.Phase())

		require.NoError(t, o.Claim(courier, time.Now()))
		assert.Equal(t, order.PhaseClaimed, o.Phase())

		require.NoError(t, o.Finish(courier, time.Now()))
		assert.Equal(t, order.PhaseFinished, o.Phase())
	})
}

func TestOrder_Claim(t *testing.T) {
	t.Run("sets owner and started at together", func(t *testing.T) {
		o := newTestOrder(t)
		courier := kernel.NewUUID()
		now := time.Now()

		err := o.Claim(courier, now)

		require.NoError(t, err)
		require.NotNil(t, o.Owner())
		assert.True(t, o.Owner().IsEqual(courier))
		require.NotNil(t, o.StartedAt())
		assert.Equal(t, now.UTC(), *o.StartedAt())
		assert.Nil(t, o.FinishedAt())
	})

	t.Run("rejects claiming an already claimed order", func(t *testing.T) {
		o := newTestOrder(t)
		first := kernel.NewUUID()
		second := kernel.NewUUID()

		require.NoError(t, o.Claim(first, time.Now()))
		err := o.Claim(second, time.Now())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		// The winner keeps the order.
		assert.True(t, o.Owner().IsEqual(first))
	})

	t.Run("rejects claiming a finished order", func(t *testing.T) {
		o := newTestOrder(t)
		courier := kernel.NewUUID()
		require.NoError(t, o.Claim(courier, time.Now()))
		require.NoError(t, o.Finish(courier, time.Now()))

		err := o.Claim(kernel.NewUUID(), time.Now())

		require.Error(t, err)
	})

	t.Run("rejects invalid courier id", func(t *testing.T) {
		o := newTestOrder(t)
		var zero kernel.UUID

		err := o.Claim(zero, time.Now())

		require.Error(t, err)
		assert.Nil(t, o.Owner())
	})
}

func TestOrder_Finish(t *testing.T) {
	t.Run("sets finished at for the owner", func(t *testing.T) {
		o := newTestOrder(t)
		courier := kernel.NewUUID()
		require.NoError(t, o.Claim(courier, time.Now()))
		now := time.Now()

		err := o.Finish(courier, now)

		require.NoError(t, err)
		require.NotNil(t, o.FinishedAt())
		assert.Equal(t, now.UTC(), *o.FinishedAt())
	})

	t.Run("rejects finish by non owner", func(t *testing.T) {
		o := newTestOrder(t)
		courier := kernel.NewUUID()
		stranger := kernel.NewUUID()
		require.NoError(t, o.Claim(courier, time.Now()))

		err := o.Finish(stranger, time.Now())

		require.Error(t, err)
		require.ErrorIs(t, err, order.ErrNotOwner)
		assert.Nil(t, o.FinishedAt())
	})

	t.Run("rejects finish of unclaimed order", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.Finish(kernel.NewUUID(), time.Now())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("second finish is rejected and state unchanged", func(t *testing.T) {
		o := newTestOrder(t)
		courier := kernel.NewUUID()
		require.NoError(t, o.Claim(courier, time.Now()))
		require.NoError(t, o.Finish(courier, time.Now()))
		firstFinish := *o.FinishedAt()

		err := o.Finish(courier, time.Now().Add(time.Hour))

		require.Error(t, err)
		assert.Equal(t, firstFinish, *o.FinishedAt())
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("constructed order validates", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Validate())
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("nil order fails validation", func(t *testing.T) {
		var o *order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_IsEqual(t *testing.T) {
	first := newTestOrder(t)
	second := newTestOrder(t)

	assert.True(t, first.IsEqual(first))
	assert.False(t, first.IsEqual(second))
	assert.False(t, first.IsEqual(nil))
}

// Invariant from the data model: started-at is non-nil exactly when owner is
// non-nil, at every observable point of the lifecycle.
func TestOrder_StartedAtOwnerInvariant(t *testing.T) {
	o := newTestOrder(t)
	courier := kernel.NewUUID()

	assert.Equal(t, o.Owner() == nil, o.StartedAt() == nil)

	require.NoError(t, o.Claim(courier, time.Now()))
	assert.Equal(t, o.Owner() == nil, o.StartedAt() == nil)

	require.NoError(t, o.Finish(courier, time.Now()))
	assert.Equal(t, o.Owner() == nil, o.StartedAt() == nil)
	assert.NotNil(t, o.StartedAt())
	assert.NotNil(t, o.FinishedAt())
}
