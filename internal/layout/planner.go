package layout

import (
	"preizo/internal/label"
	"preizo/internal/pricing"
)

// LogoSet tells which logo assets exist. It is resolved once at startup.
type LogoSet interface {
	Has(logo Logo) bool
}

// Logos is a fixed LogoSet.
type Logos map[Logo]bool

func (l Logos) Has(logo Logo) bool { return l[logo] }

// variant is one template: its style table entry and the ordered rules that
// build the lines of the tag.
type variant struct {
	Style Style
	Rules []rule
}

var variants = map[label.Department]variant{
	label.DepartmentProduce: {
		Style: Styles[label.DepartmentProduce],
		Rules: []rule{
			logoRule,
			spacerRule,
			manufacturerRule,
			productNameRule,
			additionalInfoRule,
			weighOrPerPackRule,
			priceRule,
			unitPriceRule,
		},
	},
	label.DepartmentDryGoods: {
		Style: Styles[label.DepartmentDryGoods],
		Rules: []rule{
			logoRule,
			manufacturerRule,
			productNameRule,
			varietiesRule,
			perPackRule,
			priceRule,
			unitPriceRule,
		},
	},
	label.DepartmentBeverages: {
		Style: Styles[label.DepartmentBeverages],
		Rules: []rule{
			logoRule,
			manufacturerRule,
			productNameRule,
			varietiesRule,
			perPackRule,
			priceRule,
			depositRule,
			unitPriceRule,
			packagingRule,
		},
	},
	label.DepartmentUnspecified: {
		Style: Styles[label.DepartmentUnspecified],
		Rules: []rule{
			logoRule,
			departmentRule,
			manufacturerRule,
			productNameRule,
			varietiesRule,
			priceRule,
			depositRule,
			unitPriceRule,
			packagingRule,
		},
	},
}

// Planner builds plans. It holds no mutable state and is safe for
// concurrent use.
type Planner struct {
	logos LogoSet
}

func NewPlanner(logos LogoSet) *Planner {
	if logos == nil {
		logos = Logos{}
	}
	return &Planner{logos: logos}
}

// Plan selects the department variant and runs its rules in order.
func (p *Planner) Plan(in label.Input) Plan {
	v, ok := variants[in.Department]
	if !ok {
		v = variants[label.DepartmentUnspecified]
	}

	s := scope{in: in, style: v.Style, logos: p.logos}
	s.unitPrice, s.hasPrice = pricing.Calculate(in, v.Style.AllowGebinde)

	plan := Plan{Variant: v.Style.Name, Page: v.Style.Page}
	for _, r := range v.Rules {
		plan.Blocks = append(plan.Blocks, r(s)...)
	}
	return plan
}
