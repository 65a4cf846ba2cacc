package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestTypeIsValid(t *testing.T) {
	valid := []Type{TypeIncome, TypeExpense, TypeCredit, TypeTransfer, TypeInvestment}
	for _, ty := range valid {
		if !ty.IsValid() {
			t.Errorf("Type(%q).IsValid() = false, want true", ty)
		}
	}
	invalid := []Type{"", "DEBIT", "income", "REFUND"}
	for _, ty := range invalid {
		if ty.IsValid() {
			t.Errorf("Type(%q).IsValid() = true, want false", ty)
		}
	}
}

func TestTransactionValidate(t *testing.T) {
	tests := []struct {
		name    string
		tx      Transaction
		wantErr bool
	}{
		{
			name: "valid expense",
			tx: Transaction{
				Amount:   decimal.NewFromInt(131),
				Currency: "INR",
				Type:     TypeExpense,
			},
			wantErr: false,
		},
		{
			name: "zero amount",
			tx: Transaction{
				Amount:   decimal.Zero,
				Currency: "INR",
				Type:     TypeExpense,
			},
			wantErr: true,
		},
		{
			name: "negative amount",
			tx: Transaction{
				Amount:   decimal.NewFromInt(-5),
				Currency: "INR",
				Type:     TypeIncome,
			},
			wantErr: true,
		},
		{
			name: "blank currency",
			tx: Transaction{
				Amount: decimal.NewFromInt(10),
				Type:   TypeIncome,
			},
			wantErr: true,
		},
		{
			name: "unknown type",
			tx: Transaction{
				Amount:   decimal.NewFromInt(10),
				Currency: "USD",
				Type:     "REFUND",
			},
			wantErr: true,
		},
		{
			name: "negative balance",
			tx: Transaction{
				Amount:   decimal.NewFromInt(10),
				Currency: "USD",
				Type:     TypeIncome,
				Balance:  decimal.NewNullDecimal(decimal.NewFromInt(-1)),
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tx.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
