// Package membership provides the membership plans and the client aggregate
// of the coworking space. Plans are fixed fare classes; clients carry the
// mutable state (visits, debt, status) that the plans parameterize.
package membership

// Tier identifies one of the four fixed fare classes. The values are the
// legacy tags used in persisted client documents.
type Tier string

const (
	TierBasic    Tier = "Basica"
	TierStandard Tier = "Estandar"
	TierPremium  Tier = "Premium"
	TierStudent  Tier = "Estudiante"
)

// IsValid returns true if the tier is a recognized fare class.
func (t Tier) IsValid() bool {
	switch t {
	case TierBasic, TierStandard, TierPremium, TierStudent:
		return true
	default:
		return false
	}
}

// String returns the persisted tag of the tier.
func (t Tier) String() string {
	return string(t)
}

// Plan is an immutable fare class: monthly price, included visits, product
// discount and the debt ceiling at which a client is auto-suspended.
type Plan struct {
	Tier               Tier
	Name               string
	MonthlyPrice       float64
	IncludedVisits     int
	ProductDiscountPct float64
	DebtCeiling        float64
}

var plans = []Plan{
	{Tier: TierBasic, Name: "Basic", MonthlyPrice: 100, IncludedVisits: 10, ProductDiscountPct: 5, DebtCeiling: 100},
	{Tier: TierStandard, Name: "Standard", MonthlyPrice: 200, IncludedVisits: 30, ProductDiscountPct: 10, DebtCeiling: 200},
	{Tier: TierPremium, Name: "Premium", MonthlyPrice: 350, IncludedVisits: 80, ProductDiscountPct: 15, DebtCeiling: 350},
	{Tier: TierStudent, Name: "Student", MonthlyPrice: 70, IncludedVisits: 15, ProductDiscountPct: 10, DebtCeiling: 70},
}

// Plans returns the fixed catalog in a stable order.
func Plans() []Plan {
	out := make([]Plan, len(plans))
	copy(out, plans)
	return out
}

// PlanFor resolves a persisted tier tag to its plan. Unknown tags fail
// closed to the Basic plan so legacy documents always load.
func PlanFor(tier Tier) Plan {
	for _, p := range plans {
		if p.Tier == tier {
			return p
		}
	}
	return plans[0]
}

// CanEnter reports whether a client with the given visit count still has
// visits included in this plan.
func (p Plan) CanEnter(visitsUsed int) bool {
	return visitsUsed < p.IncludedVisits
}

// DiscountFor returns the per-unit discount this plan grants on a price.
func (p Plan) DiscountFor(price float64) float64 {
	return price * (p.ProductDiscountPct / 100)
}
