package delivery_test

import (
	"testing"
	"time"

	"delivery-tracking/internal/core/domain/model/delivery"
	"delivery-tracking/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNewDelivery(t *testing.T) *delivery.Delivery {
	t.Helper()

	d, err := delivery.NewDelivery(kernel.NewUUID(), kernel.NewUUID(), "12 Rue de la Paix", "5 Avenue Anatole")
	require.NoError(t, err)
	return d
}

func TestNewDelivery(t *testing.T) {
	t.Run("starts_pending_without_driver", func(t *testing.T) {
		// Given
		id := kernel.NewUUID()
		orderID := kernel.NewUUID()

		// When
		d, err := delivery.NewDelivery(id, orderID, "12 Rue de la Paix", "5 Avenue Anatole")

		// Then
		require.NoError(t, err)
		assert.True(t, id.IsEqual(d.ID()))
		assert.True(t, orderID.IsEqual(d.OrderID()))
		assert.Equal(t, delivery.Pending, d.Status())
		assert.Nil(t, d.DriverID())
		assert.Nil(t, d.EstimatedMinutes())
		assert.Nil(t, d.CurrentLocation())
		assert.Nil(t, d.PickupTime())
		assert.Nil(t, d.DeliveryTime())
		assert.Nil(t, d.Rating())
	})

	t.Run("empty_addresses_are_allowed", func(t *testing.T) {
		// When
		d, err := delivery.NewDelivery(kernel.NewUUID(), kernel.NewUUID(), "", "")

		// Then
		require.NoError(t, err)
		assert.Empty(t, d.PickupAddress())
		assert.Empty(t, d.DeliveryAddress())
	})

	t.Run("rejects_invalid_identifiers", func(t *testing.T) {
		// When
		_, err := delivery.NewDelivery(kernel.UUID{}, kernel.NewUUID(), "a", "b")

		// Then
		require.Error(t, err)
	})
}

func TestRestoreDelivery(t *testing.T) {
	t.Run("restores_full_state", func(t *testing.T) {
		// Given
		id := kernel.NewUUID()
		orderID := kernel.NewUUID()
		driverID := kernel.NewUUID()
		location, err := kernel.NewGeoPoint(48.8566, 2.3522)
		require.NoError(t, err)
		minutes := 25
		pickup := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		delivered := pickup.Add(30 * time.Minute)
		rating := 4
		comment := "quick and careful"

		// When
		d, err := delivery.RestoreDelivery(
			id, orderID, "12 Rue de la Paix", "5 Avenue Anatole",
			&driverID, delivery.Delivered, &minutes, &location,
			&pickup, &delivered, &rating, &comment,
		)

		// Then
		require.NoError(t, err)
		assert.Equal(t, delivery.Delivered, d.Status())
		assert.True(t, driverID.IsEqual(*d.DriverID()))
		assert.Equal(t, 25, *d.EstimatedMinutes())
		assert.Equal(t, pickup, *d.PickupTime())
		assert.Equal(t, delivered, *d.DeliveryTime())
		assert.Equal(t, 4, *d.Rating())
		assert.Equal(t, "quick and careful", *d.Comment())
	})

	t.Run("rejects_invalid_status", func(t *testing.T) {
		// When
		_, err := delivery.RestoreDelivery(
			kernel.NewUUID(), kernel.NewUUID(), "a", "b",
			nil, delivery.Unknown, nil, nil, nil, nil, nil, nil,
		)

		// Then
		require.Error(t, err)
	})

	t.Run("rejects_invalid_driver_reference", func(t *testing.T) {
		// Given
		var zeroDriver kernel.UUID

		// When
		_, err := delivery.RestoreDelivery(
			kernel.NewUUID(), kernel.NewUUID(), "a", "b",
			&zeroDriver, delivery.Assigned, nil, nil, nil, nil, nil, nil,
		)

		// Then
		require.Error(t, err)
	})
}

func TestDelivery_Assign(t *testing.T) {
	t.Run("assigns_driver_from_pending", func(t *testing.T) {
		// Given
		d := mustNewDelivery(t)
		driverID := kernel.NewUUID()

		// When
		err := d.Assign(driverID)

		// Then
		require.NoError(t, err)
		assert.Equal(t, delivery.Assigned, d.Status())
		require.NotNil(t, d.DriverID())
		assert.True(t, driverID.IsEqual(*d.DriverID()))
	})

	t.Run("reassigns_driver_while_assigned", func(t *testing.T) {
		// Given
		d := mustNewDelivery(t)
		require.NoError(t, d.Assign(kernel.NewUUID()))
		replacement := kernel.NewUUID()

		// When
		err := d.Assign(replacement)

		// Then
		require.NoError(t, err)
		assert.True(t, replacement.IsEqual(*d.DriverID()))
	})

	t.Run("rejects_assignment_after_pickup", func(t *testing.T) {
		// Given
		d := mustNewDelivery(t)
		require.NoError(t, d.Assign(kernel.NewUUID()))
		require.NoError(t, d.ChangeStatus(delivery.PickedUp, time.Now().UTC()))

		// When
		err := d.Assign(kernel.NewUUID())

		// Then
		require.Error(t, err)
	})
}

func TestDelivery_ChangeStatus(t *testing.T) {
	t.Run("pickup_records_timestamp_once", func(t *testing.T) {
		// Given
		d := mustNewDelivery(t)
		require.NoError(t, d.Assign(kernel.NewUUID()))
		first := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

		// When
		require.NoError(t, d.ChangeStatus(delivery.PickedUp, first))
		require.NoError(t, d.ChangeStatus(delivery.PickedUp, first.Add(time.Hour)))

		// Then
		require.NotNil(t, d.PickupTime())
		assert.Equal(t, first, *d.PickupTime())
	})

	t.Run("delivered_records_timestamp_once", func(t *testing.T) {
		// Given
		d := mustNewDelivery(t)
		require.NoError(t, d.Assign(kernel.NewUUID()))
		pickup := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		require.NoError(t, d.ChangeStatus(delivery.PickedUp, pickup))
		completed := pickup.Add(20 * time.Minute)

		// When
		require.NoError(t, d.ChangeStatus(delivery.Delivered, completed))
		require.NoError(t, d.ChangeStatus(delivery.Delivered, completed.Add(time.Hour)))

		// Then
		assert.Equal(t, delivery.Delivered, d.Status())
		require.NotNil(t, d.DeliveryTime())
		assert.Equal(t, completed, *d.DeliveryTime())
	})

	t.Run("delivery_time_cannot_precede_pickup_time", func(t *testing.T) {
		// Given
		d := mustNewDelivery(t)
		require.NoError(t, d.Assign(kernel.NewUUID()))
		pickup := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		require.NoError(t, d.ChangeStatus(delivery.PickedUp, pickup))

		// When
		err := d.ChangeStatus(delivery.Delivered, pickup.Add(-time.Minute))

		// Then
		require.Error(t, err)
		assert.Equal(t, delivery.PickedUp, d.Status())
		assert.Nil(t, d.DeliveryTime())
	})

	t.Run("delivered_without_pickup_records_only_delivery_time", func(t *testing.T) {
		// Given
		d := mustNewDelivery(t)
		require.NoError(t, d.Assign(kernel.NewUUID()))
		now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

		// When
		err := d.ChangeStatus(delivery.Delivered, now)

		// Then
		require.NoError(t, err)
		assert.Nil(t, d.PickupTime())
		require.NotNil(t, d.DeliveryTime())
		assert.Equal(t, now, *d.DeliveryTime())
	})

	t.Run("rejects_invalid_target_status", func(t *testing.T) {
		// Given
		d := mustNewDelivery(t)

		// When
		err := d.ChangeStatus(delivery.Unknown, time.Now().UTC())

		// Then
		require.Error(t, err)
		assert.Equal(t, delivery.Pending, d.Status())
	})
}

func TestDelivery_SetEstimatedMinutes(t *testing.T) {
	t.Run("records_estimate", func(t *testing.T) {
		// Given
		d := mustNewDelivery(t)

		// When
		err := d.SetEstimatedMinutes(35)

		// Then
		require.NoError(t, err)
		require.NotNil(t, d.EstimatedMinutes())
		assert.Equal(t, 35, *d.EstimatedMinutes())
	})

	t.Run("rejects_negative_estimate", func(t *testing.T) {
		// Given
		d := mustNewDelivery(t)

		// When
		err := d.SetEstimatedMinutes(-1)

		// Then
		require.Error(t, err)
		assert.Nil(t, d.EstimatedMinutes())
	})
}

func TestDelivery_UpdateLocation(t *testing.T) {
	t.Run("records_position", func(t *testing.T) {
		// Given
		d := mustNewDelivery(t)
		location, err := kernel.NewGeoPoint(48.8566, 2.3522)
		require.NoError(t, err)

		// When
		err = d.UpdateLocation(location)

		// Then
		require.NoError(t, err)
		require.NotNil(t, d.CurrentLocation())
		equal, err := location.IsEqual(*d.CurrentLocation())
		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("rejects_zero_value_location", func(t *testing.T) {
		// Given
		d := mustNewDelivery(t)

		// When
		err := d.UpdateLocation(kernel.GeoPoint{})

		// Then
		require.Error(t, err)
		assert.Nil(t, d.CurrentLocation())
	})
}

func TestDelivery_Rate(t *testing.T) {
	t.Run("records_rating_with_comment", func(t *testing.T) {
		// Given
		d := mustNewDelivery(t)
		comment := "left at the door as asked"

		// When
		err := d.Rate(5, &comment)

		// Then
		require.NoError(t, err)
		require.NotNil(t, d.Rating())
		assert.Equal(t, 5, *d.Rating())
		assert.Equal(t, comment, *d.Comment())
	})

	t.Run("comment_is_optional", func(t *testing.T) {
		// Given
		d := mustNewDelivery(t)

		// When
		err := d.Rate(3, nil)

		// Then
		require.NoError(t, err)
		assert.Nil(t, d.Comment())
	})

	t.Run("rejects_out_of_range_rating", func(t *testing.T) {
		// Given
		d := mustNewDelivery(t)

		// Then
		require.Error(t, d.Rate(0, nil))
		require.Error(t, d.Rate(6, nil))
		assert.Nil(t, d.Rating())
	})
}

func TestDelivery_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		// Given
		var d delivery.Delivery

		// When
		err := d.Validate()

		// Then
		require.Error(t, err)
		assert.Equal(t, delivery.ErrDeliveryIsNotConstructed, err)
	})
}

func TestDelivery_Equals(t *testing.T) {
	t.Run("same_identity", func(t *testing.T) {
		// Given
		id := kernel.NewUUID()
		orderID := kernel.NewUUID()
		first, err := delivery.NewDelivery(id, orderID, "a", "b")
		require.NoError(t, err)
		second, err := delivery.NewDelivery(id, orderID, "a", "b")
		require.NoError(t, err)

		// When
		equal, err := first.Equals(second)

		// Then
		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("different_identity", func(t *testing.T) {
		// Given
		first := mustNewDelivery(t)
		second := mustNewDelivery(t)

		// When
		equal, err := first.Equals(second)

		// Then
		require.NoError(t, err)
		assert.False(t, equal)
	})

	t.Run("nil_other", func(t *testing.T) {
		// Given
		d := mustNewDelivery(t)

		// When
		_, err := d.Equals(nil)

		// Then
		require.Error(t, err)
	})
}
