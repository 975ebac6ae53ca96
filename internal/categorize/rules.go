package categorize

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bankcat-dev/bankcat/internal/model"
)

// Sign constrains a rule to one side of the statement.
type Sign int

const (
	SignAny      Sign = iota
	SignIncoming      // amount >= 0
	SignOutgoing      // amount < 0
)

// Rule maps a set of keyword alternatives to a category. Keywords are
// matched as substrings of the normalized (lowercased, trimmed) detail
// text; a rule with a sign constraint only applies to that side.
type Rule struct {
	Name     string
	Category model.Category
	Keywords []string
	Sign     Sign
}

// Matches reports whether the rule applies to the given detail and amount.
func (r Rule) Matches(detail string, amount decimal.Decimal) bool {
	switch r.Sign {
	case SignIncoming:
		if amount.IsNegative() {
			return false
		}
	case SignOutgoing:
		if !amount.IsNegative() {
			return false
		}
	}
	for _, kw := range r.Keywords {
		if strings.Contains(detail, kw) {
			return true
		}
	}
	return false
}

// Normalize folds a detail string for keyword matching.
func Normalize(detail string) string {
	return strings.Join(strings.Fields(strings.ToLower(detail)), " ")
}

// DefaultRules returns the built-in rule table. Order is load-bearing:
// rules are evaluated top to bottom and the first match wins, so
// specializations (salary, cheque, fees) sit above the generic transfer
// and deposit rules they would otherwise be shadowed by.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name:     "card-payment",
			Category: model.CategoryCardPayment,
			Keywords: []string{"card transaction", "card payment", "card ending in"},
		},
		{
			Name:     "cheque",
			Category: model.CategoryCheque,
			Keywords: []string{"cheque"},
		},
		{
			Name:     "salary",
			Category: model.CategorySalary,
			Keywords: []string{"salary", "payroll", "employment", "stipendio", "stipend"},
		},
		{
			Name:     "loan",
			Category: model.CategoryLoan,
			Keywords: []string{"loan", "repayment"},
		},
		{
			Name:     "tax",
			Category: model.CategoryTax,
			Keywords: []string{"tax", "vat", "customs", "government", "gov"},
		},
		{
			Name:     "direct-debit",
			Category: model.CategoryDirectDebit,
			Keywords: []string{"sdd outwards", "sdd inwards", "direct debit"},
		},
		{
			Name:     "insurance",
			Category: model.CategoryInsurance,
			Keywords: []string{"insurance", "mapfre", "msv life"},
		},
		{
			// Fee reversals show the same keywords credited back, so
			// this rule only claims the outgoing side.
			Name:     "fee",
			Category: model.CategoryFee,
			Keywords: []string{"wise charges", "administration fee", "standing instruction charge", "fee", "charge", "commission"},
			Sign:     SignOutgoing,
		},
		{
			Name:     "bill-payment",
			Category: model.CategoryBillPayment,
			Keywords: []string{"24x7 bill", "24x7 mobile pay", "24x7 pay", "standing instruction", "bill payment"},
		},
		{
			Name:     "transfer",
			Category: model.CategoryTransfer,
			Keywords: []string{
				"sent money to", "received money from",
				"account to account", "transfer between own accounts",
				"sct inwards", "sct outwards", "instant payment",
				"payment order outwards", "transfer",
			},
		},
		{
			Name:     "cashback",
			Category: model.CategoryCashback,
			Keywords: []string{"cashback"},
			Sign:     SignIncoming,
		},
		{
			Name:     "refund",
			Category: model.CategoryRefund,
			Keywords: []string{"refund"},
		},
		{
			Name:     "food-retail",
			Category: model.CategoryFoodRetail,
			Keywords: []string{"hotel", "catering", "restaurant", "supermarket", "butcher", "food", "retail", "eat"},
		},
		{
			Name:     "utility",
			Category: model.CategoryUtility,
			Keywords: []string{"electricity", "water", "gas", "utility"},
		},
		{
			Name:     "deposit",
			Category: model.CategoryDeposit,
			Keywords: []string{"atm cash deposit", "deposit"},
		},
		{
			Name:     "withdrawal",
			Category: model.CategoryWithdrawal,
			Keywords: []string{"withdrawal", "atm"},
		},
	}
}

// Resolver assigns a category to a transaction detail. The rule table
// is fixed at construction; Resolve is pure and safe for concurrent use.
type Resolver struct {
	rules []Rule
}

// NewResolver creates a Resolver over an ordered rule list.
func NewResolver(rules []Rule) *Resolver {
	return &Resolver{rules: rules}
}

// DefaultResolver returns a Resolver over the built-in table.
func DefaultResolver() *Resolver {
	return NewResolver(DefaultRules())
}

// Resolve returns the category of the first matching rule, or
// CategoryUncategorized when nothing matches. It is total: any detail
// string and any amount yield a valid category.
func (r *Resolver) Resolve(detail string, amount decimal.Decimal) model.Category {
	normalized := Normalize(detail)
	for _, rule := range r.rules {
		if rule.Matches(normalized, amount) {
			return rule.Category
		}
	}
	return model.CategoryUncategorized
}

// Rules returns a copy of the resolver's ordered rule table.
func (r *Resolver) Rules() []Rule {
	out := make([]Rule, len(r.rules))
	copy(out, r.rules)
	return out
}
