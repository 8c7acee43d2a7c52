package accounting_test

import (
	"testing"

	"github.com/SscSPs/bizbooks/internal/apperrors"
	"github.com/SscSPs/bizbooks/internal/core/domain"
	"github.com/SscSPs/bizbooks/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestCalculateSignedAmount(t *testing.T) {
	tests := []struct {
		name    string
		txn     domain.Transaction
		want    string
		wantErr error
	}{
		{"income adds", domain.Transaction{Type: domain.TransactionIncome, Amount: decimal.NewFromInt(5000)}, "5000", nil},
		{"expense subtracts", domain.Transaction{Type: domain.TransactionExpense, Amount: decimal.NewFromInt(2000)}, "-2000", nil},
		{"transfer debits source", domain.Transaction{Type: domain.TransactionTransfer, Amount: decimal.RequireFromString("10.50")}, "-10.5", nil},
		{"zero amount", domain.Transaction{Type: domain.TransactionIncome, Amount: decimal.Zero}, "0", nil},
		{"negative amount", domain.Transaction{Type: domain.TransactionIncome, Amount: decimal.NewFromInt(-1)}, "", apperrors.ErrValidation},
		{"unknown type", domain.Transaction{Type: "REFUND", Amount: decimal.NewFromInt(1)}, "", apperrors.ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := accounting.CalculateSignedAmount(tt.txn)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestBalanceChanges_IncomeThenExpense(t *testing.T) {
	balance := decimal.Zero
	for _, txn := range []domain.Transaction{
		{AccountID: "acc-1", Type: domain.TransactionIncome, Amount: decimal.NewFromInt(5000)},
		{AccountID: "acc-1", Type: domain.TransactionExpense, Amount: decimal.NewFromInt(2000)},
	} {
		changes, err := accounting.BalanceChanges(txn)
		require.NoError(t, err)
		balance = balance.Add(changes["acc-1"])
	}
	assert.True(t, decimal.NewFromInt(3000).Equal(balance))
}

func TestBalanceChanges_Transfer(t *testing.T) {
	changes, err := accounting.BalanceChanges(domain.Transaction{
		AccountID:   "src",
		ToAccountID: strPtr("dst"),
		Type:        domain.TransactionTransfer,
		Amount:      decimal.NewFromInt(300),
	})
	require.NoError(t, err)
	assert.Len(t, changes, 2)
	assert.True(t, decimal.NewFromInt(-300).Equal(changes["src"]))
	assert.True(t, decimal.NewFromInt(300).Equal(changes["dst"]))

	_, err = accounting.BalanceChanges(domain.Transaction{AccountID: "src", Type: domain.TransactionTransfer, Amount: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = accounting.BalanceChanges(domain.Transaction{AccountID: "src", ToAccountID: strPtr("src"), Type: domain.TransactionTransfer, Amount: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestInvoiceTotals(t *testing.T) {
	items := []domain.InvoiceItem{
		{Description: "Widget", Quantity: 2, Price: decimal.NewFromInt(100)},
		{Description: "Setup", Quantity: 1, Price: decimal.NewFromInt(50)},
	}
	subtotal, total := accounting.InvoiceTotals(items, decimal.NewFromInt(10))
	assert.True(t, decimal.NewFromInt(250).Equal(subtotal))
	assert.True(t, decimal.NewFromInt(260).Equal(total))
	assert.True(t, decimal.NewFromInt(200).Equal(items[0].Total))
	assert.True(t, decimal.NewFromInt(50).Equal(items[1].Total))
}

func TestPayrollTotals(t *testing.T) {
	items := []domain.PayrollItem{
		{Type: domain.PayrollSalary, Amount: decimal.NewFromInt(4000)},
		{Type: domain.PayrollBonus, Amount: decimal.NewFromInt(500)},
		{Type: domain.PayrollOvertime, Amount: decimal.NewFromInt(250)},
		{Type: domain.PayrollTax, Amount: decimal.NewFromInt(700)},
		{Type: domain.PayrollInsurance, Amount: decimal.NewFromInt(150)},
		{Type: domain.PayrollDeduction, Amount: decimal.NewFromInt(100)},
	}
	gross, deductions, net := accounting.PayrollTotals(items)
	assert.True(t, decimal.NewFromInt(4750).Equal(gross))
	assert.True(t, decimal.NewFromInt(950).Equal(deductions))
	assert.True(t, decimal.NewFromInt(3800).Equal(net))
}

func TestNormalizeAmount(t *testing.T) {
	amount := func(s string) *decimal.Decimal {
		d := decimal.RequireFromString(s)
		return &d
	}
	tests := []struct {
		name    string
		in      *decimal.Decimal
		want    string
		wantErr error
	}{
		{"rounds to cents", amount("10.005"), "10.01", nil},
		{"zero", amount("0"), "0", nil},
		{"largest storable", amount("9999999999999999.99"), "9999999999999999.99", nil},
		{"negative below a cent", amount("-0.004"), "", apperrors.ErrValidation},
		{"negative", amount("-1"), "", apperrors.ErrValidation},
		{"rounds up past the limit", amount("9999999999999999.995"), "", apperrors.ErrValidation},
		{"too large", amount("100000000000000000000"), "", apperrors.ErrValidation},
		{"missing", nil, "", apperrors.ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := accounting.NormalizeAmount(tt.in, "Amount")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestCheckAmountRange(t *testing.T) {
	assert.NoError(t, accounting.CheckAmountRange(decimal.RequireFromString("-9999999999999999.99"), "Balance"))

	err := accounting.CheckAmountRange(decimal.New(1, 16), "Invoice total")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "Invoice total must be less than 10000000000000000")
}
