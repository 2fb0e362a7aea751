package queries_test

import (
	"testing"

	"delivery-tracking/internal/core/application/usecases/queries"
	"delivery-tracking/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetDeliveryByIDQuery_Valid(t *testing.T) {
	query, err := queries.NewGetDeliveryByIDQuery(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestNewGetDeliveryByIDQuery_EmptyID(t *testing.T) {
	_, err := queries.NewGetDeliveryByIDQuery(kernel.UUID{})
	require.Error(t, err)
}

func TestGetDeliveryByIDQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetDeliveryByIDQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetDeliveryByIDQueryIsNotConstructed)
}

func TestNewGetDeliveryByOrderIDQuery_Valid(t *testing.T) {
	query, err := queries.NewGetDeliveryByOrderIDQuery(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestGetDeliveryByOrderIDQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetDeliveryByOrderIDQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetDeliveryByOrderIDQueryIsNotConstructed)
}

func TestNewGetDeliveriesByDriverIDQuery_Valid(t *testing.T) {
	query, err := queries.NewGetDeliveriesByDriverIDQuery(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestGetDeliveriesByDriverIDQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetDeliveriesByDriverIDQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetDeliveriesByDriverIDQueryIsNotConstructed)
}

func TestNewGetAllDeliveriesQuery_Valid(t *testing.T) {
	query := queries.NewGetAllDeliveriesQuery()
	require.NoError(t, query.Validate())
}

func TestGetAllDeliveriesQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetAllDeliveriesQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetAllDeliveriesQueryIsNotConstructed)
}

func TestNewGetAllDriversQuery_Valid(t *testing.T) {
	query := queries.NewGetAllDriversQuery()
	require.NoError(t, query.Validate())
}

func TestGetAllDriversQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetAllDriversQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetAllDriversQueryIsNotConstructed)
}
