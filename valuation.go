package immo

import "github.com/etnz/immo/date"

// Valuation is the estimated market value of the property at a date, along
// with the inputs that produced it.
type Valuation struct {
	Value  Money
	Manual bool // true when the value comes from the manual override

	// The fields below describe the market estimate and are zero for manual
	// valuations.
	PointDate       date.Date // date of the market point used
	PricePerArea    Money     // raw market price per m²
	AdjustedPerArea Money     // market price plus goodwill per m²
}

// Estimate resolves the property's market value at asOf.
//
// A manual override wins. Otherwise the latest market point on or before
// asOf, adjusted by the per-m² goodwill, is scaled by the surface area and
// the parking value is added. With no override, no surface area or no market
// point, the valuation is unknown: ok is false, and callers must propagate
// the absence rather than treat it as zero.
func Estimate(b *Book, asOf date.Date) (v Valuation, ok bool) {
	p := b.Property()

	if !p.MarketValueOverride.IsZero() {
		return Valuation{Value: p.MarketValueOverride, Manual: true}, true
	}

	if p.SurfaceArea.IsZero() {
		return Valuation{}, false
	}
	on, price, ok := b.LatestPoint(asOf)
	if !ok {
		return Valuation{}, false
	}

	adjusted := price.Add(p.GoodwillPerArea)
	return Valuation{
		Value:           adjusted.Mul(p.SurfaceArea).Add(p.Parking),
		PointDate:       on,
		PricePerArea:    price,
		AdjustedPerArea: adjusted,
	}, true
}
