package model

// Category labels the semantic purpose of a transaction. The set is a
// stable contract with reporting layers: adding a tag is backward
// compatible, renaming one is not.
type Category string

const (
	CategoryCardPayment   Category = "card payment"
	CategoryTransfer      Category = "transfer"
	CategoryCheque        Category = "cheque"
	CategoryFee           Category = "fee"
	CategorySalary        Category = "salary"
	CategoryLoan          Category = "loan repayment"
	CategoryTax           Category = "tax/government"
	CategoryBillPayment   Category = "bill payment"
	CategoryDirectDebit   Category = "direct debit"
	CategoryInsurance     Category = "insurance"
	CategoryFoodRetail    Category = "retail/food"
	CategoryUtility       Category = "utility"
	CategoryCashback      Category = "cashback"
	CategoryRefund        Category = "refund"
	CategoryDeposit       Category = "deposit"
	CategoryWithdrawal    Category = "withdrawal"
	CategoryUncategorized Category = "uncategorized"
)

// Categories returns every known tag in display order.
func Categories() []Category {
	return []Category{
		CategoryCardPayment,
		CategoryTransfer,
		CategoryCheque,
		CategoryFee,
		CategorySalary,
		CategoryLoan,
		CategoryTax,
		CategoryBillPayment,
		CategoryDirectDebit,
		CategoryInsurance,
		CategoryFoodRetail,
		CategoryUtility,
		CategoryCashback,
		CategoryRefund,
		CategoryDeposit,
		CategoryWithdrawal,
		CategoryUncategorized,
	}
}

// Valid reports whether c is one of the known tags.
func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}
