package accounting

import (
	"fmt"

	"github.com/SscSPs/bizbooks/internal/apperrors"
	"github.com/SscSPs/bizbooks/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MaxAmount is the exclusive upper bound of a stored money value, NUMERIC(18,2).
var MaxAmount = decimal.New(1, 16)

// NormalizeAmount validates a client supplied money value and rounds it to
// cents. The sign is checked on the unrounded value.
func NormalizeAmount(amount *decimal.Decimal, field string) (decimal.Decimal, error) {
	if amount == nil {
		return decimal.Zero, apperrors.NewBadRequestError(field + " is required")
	}
	if amount.IsNegative() {
		return decimal.Zero, apperrors.NewBadRequestError(field + " must not be negative")
	}
	rounded := amount.Round(2)
	if err := CheckAmountRange(rounded, field); err != nil {
		return decimal.Zero, err
	}
	return rounded, nil
}

// CheckAmountRange rejects values a NUMERIC(18,2) column cannot hold.
func CheckAmountRange(amount decimal.Decimal, field string) error {
	if amount.Abs().Cmp(MaxAmount) >= 0 {
		return apperrors.NewBadRequestError(field + " must be less than " + MaxAmount.String())
	}
	return nil
}

// CalculateSignedAmount applies the direction of a posting to its amount.
// INCOME increases the account, EXPENSE decreases it. For a TRANSFER the
// result is the change to the source account.
func CalculateSignedAmount(txn domain.Transaction) (decimal.Decimal, error) {
	if txn.Amount.IsNegative() {
		return decimal.Zero, apperrors.NewBadRequestError("Amount must not be negative")
	}
	switch txn.Type {
	case domain.TransactionIncome:
		return txn.Amount, nil
	case domain.TransactionExpense, domain.TransactionTransfer:
		return txn.Amount.Neg(), nil
	default:
		return decimal.Zero, apperrors.NewBadRequestError(fmt.Sprintf("Unknown transaction type '%s'", txn.Type))
	}
}

// BalanceChanges returns the per-account balance deltas a posting produces.
// A TRANSFER moves the amount from AccountID to ToAccountID.
func BalanceChanges(txn domain.Transaction) (map[string]decimal.Decimal, error) {
	signed, err := CalculateSignedAmount(txn)
	if err != nil {
		return nil, err
	}
	changes := map[string]decimal.Decimal{txn.AccountID: signed}
	if txn.Type != domain.TransactionTransfer {
		return changes, nil
	}
	if txn.ToAccountID == nil || *txn.ToAccountID == "" {
		return nil, apperrors.NewBadRequestError("toAccountId is required for TRANSFER")
	}
	if *txn.ToAccountID == txn.AccountID {
		return nil, apperrors.NewBadRequestError("Cannot transfer to the same account")
	}
	changes[*txn.ToAccountID] = txn.Amount
	return changes, nil
}

// InvoiceTotals computes line totals in place and returns subtotal and total.
func InvoiceTotals(items []domain.InvoiceItem, tax decimal.Decimal) (subtotal, total decimal.Decimal) {
	subtotal = decimal.Zero
	for i := range items {
		items[i].Total = items[i].Price.Mul(decimal.NewFromInt(int64(items[i].Quantity)))
		subtotal = subtotal.Add(items[i].Total)
	}
	return subtotal, subtotal.Add(tax)
}

// PayrollTotals splits items into earnings and deductions.
func PayrollTotals(items []domain.PayrollItem) (gross, deductions, net decimal.Decimal) {
	gross, deductions = decimal.Zero, decimal.Zero
	for _, item := range items {
		switch {
		case item.Type.IsEarning():
			gross = gross.Add(item.Amount)
		case item.Type.IsDeduction():
			deductions = deductions.Add(item.Amount)
		}
	}
	return gross, deductions, gross.Sub(deductions)
}
