package postgres

import (
	"time"

	"mangopay-sync/internal/core/domain"
	"mangopay-sync/pkg/money"

	"github.com/shopspring/decimal"
)

// outcomeColumns are the reconciled processor fields shared by every
// money movement table.
type outcomeColumns struct {
	executionDate *time.Time
	status        *string
	resultCode    *string
}

func outcomeOf(o domain.Outcome) outcomeColumns {
	c := outcomeColumns{executionDate: o.ExecutionDate, resultCode: o.ResultCode}
	if o.Status != nil {
		s := string(*o.Status)
		c.status = &s
	}
	return c
}

func (c *outcomeColumns) dest() []any {
	return []any{&c.executionDate, &c.status, &c.resultCode}
}

func (c outcomeColumns) outcome() domain.Outcome {
	o := domain.Outcome{ExecutionDate: c.executionDate, ResultCode: c.resultCode}
	if c.status != nil {
		s := domain.TransactionStatus(*c.status)
		o.Status = &s
	}
	return o
}

// amountOf rebuilds an amount stored as NUMERIC plus a currency column.
func amountOf(v decimal.Decimal, currency string) money.Amount {
	return money.Amount{Value: v, Currency: currency}
}
