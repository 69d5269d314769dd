package assistant

// Params campos resueltos que necesita el dispatcher. nil = no disponible.
type Params struct {
	SKU          *int64
	LocationID   *int64
	LocationType *LocationType
	Quantity     *int64
}

// ResolveLocation elige el número de tienda cuando el tag es S y el del centro de
// distribución cuando es W. Sin tag, o con un número no numérico, no hay ubicación.
func ResolveLocation(r IntentResult) (int64, bool) {
	if r.LocationType == nil {
		return 0, false
	}
	var raw *string
	switch *r.LocationType {
	case LocationStore:
		raw = r.StoreNumber
	case LocationWarehouse:
		raw = r.DCNumber
	}
	if raw == nil {
		return 0, false
	}
	id := intField(*raw)
	if id == nil {
		return 0, false
	}
	return *id, true
}

// Resolve convierte el resultado del clasificador en parámetros tipados.
func Resolve(r IntentResult) Params {
	p := Params{
		LocationType: r.LocationType,
		Quantity:     r.SOH,
	}
	if r.SKUNumber != nil {
		p.SKU = intField(*r.SKUNumber)
	}
	if id, ok := ResolveLocation(r); ok {
		p.LocationID = &id
	}
	return p
}
