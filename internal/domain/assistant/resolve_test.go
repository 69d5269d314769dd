package assistant_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/retail-wizard/internal/domain/assistant"
)

func TestResolveLocation_WarehouseUsaDC(t *testing.T) {
	r := assistant.IntentResult{
		Intent:       assistant.IntentGetStock,
		DCNumber:     strPtr("3"),
		LocationType: locPtr(assistant.LocationWarehouse),
	}
	id, ok := assistant.ResolveLocation(r)
	assert.True(t, ok)
	assert.Equal(t, int64(3), id)
}

func TestResolveLocation_StoreUsaTienda(t *testing.T) {
	r := assistant.IntentResult{
		StoreNumber:  strPtr("1234"),
		DCNumber:     strPtr("3"),
		LocationType: locPtr(assistant.LocationStore),
	}
	id, ok := assistant.ResolveLocation(r)
	assert.True(t, ok)
	assert.Equal(t, int64(1234), id)
}

func TestResolveLocation_SinTag(t *testing.T) {
	r := assistant.IntentResult{StoreNumber: strPtr("1234"), DCNumber: strPtr("3")}
	_, ok := assistant.ResolveLocation(r)
	assert.False(t, ok)
}

func TestResolveLocation_TagSinNumero(t *testing.T) {
	r := assistant.IntentResult{StoreNumber: strPtr("1234"), LocationType: locPtr(assistant.LocationWarehouse)}
	_, ok := assistant.ResolveLocation(r)
	assert.False(t, ok)
}

func TestResolveLocation_NumeroNoNumerico(t *testing.T) {
	r := assistant.IntentResult{StoreNumber: strPtr("norte"), LocationType: locPtr(assistant.LocationStore)}
	_, ok := assistant.ResolveLocation(r)
	assert.False(t, ok)
}

func TestResolve(t *testing.T) {
	r := assistant.IntentResult{
		Intent:       assistant.IntentSetStock,
		SKUNumber:    strPtr("30000913"),
		DCNumber:     strPtr("12"),
		SOH:          intPtr(0),
		LocationType: locPtr(assistant.LocationWarehouse),
	}
	p := assistant.Resolve(r)
	if assert.NotNil(t, p.SKU) {
		assert.Equal(t, int64(30000913), *p.SKU)
	}
	if assert.NotNil(t, p.LocationID) {
		assert.Equal(t, int64(12), *p.LocationID)
	}
	if assert.NotNil(t, p.Quantity) {
		assert.Equal(t, int64(0), *p.Quantity)
	}
	assert.Equal(t, locPtr(assistant.LocationWarehouse), p.LocationType)
}

func TestResolve_SKUInvalido(t *testing.T) {
	p := assistant.Resolve(assistant.IntentResult{SKUNumber: strPtr("ABC-1")})
	assert.Nil(t, p.SKU)
	assert.Nil(t, p.LocationID)
}
