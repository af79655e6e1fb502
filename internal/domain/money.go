package domain

import (
	"encoding/json"

	"github.com/cockroachdb/apd/v3"
	"github.com/cockroachdb/errors"
)

// moneyCtx never rounds: Add and Mul are exact at precision 0.
var moneyCtx = apd.BaseContext.WithPrecision(0)

// textCtx only formats; it is wide enough for any amount NewMoney accepts.
var textCtx = apd.BaseContext.WithPrecision(2 * (maxMoneyDigits + 1))

// Amounts are limited to maxMoneyDigits digits on either side of the point so
// that sums of quantity times price stay far inside apd's exponent range.
const maxMoneyDigits = 64

// Money is an exact decimal amount. The zero value is 0.
type Money struct {
	d apd.Decimal
}

// NewMoney parses a decimal string such as "10000" or "12.50".
func NewMoney(s string) (Money, error) {
	var m Money
	if _, _, err := m.d.SetString(s); err != nil {
		return Money{}, Validationf("invalid amount %q", s)
	}
	if m.d.Form != apd.Finite {
		return Money{}, Validationf("invalid amount %q", s)
	}
	if m.d.IsZero() {
		if m.d.Exponent < -maxMoneyDigits || m.d.Exponent > maxMoneyDigits {
			m.d.SetInt64(0)
		}
		return m, nil
	}
	if m.d.Exponent < -maxMoneyDigits {
		return Money{}, Validationf("amount %q has more than %d decimal places", s, maxMoneyDigits)
	}
	if adj := m.d.NumDigits() + int64(m.d.Exponent); adj > maxMoneyDigits {
		return Money{}, Validationf("amount %q has more than %d integer digits", s, maxMoneyDigits)
	}
	return m, nil
}

// MoneyFromInt returns an integral amount.
func MoneyFromInt(v int64) Money {
	var m Money
	m.d.SetInt64(v)
	return m
}

// MustMoney is NewMoney for literals known to be valid.
func MustMoney(s string) Money {
	m, err := NewMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) IsNegative() bool { return m.d.Sign() < 0 }

func (m Money) IsZero() bool { return m.d.IsZero() }

// Cmp compares m and o and returns -1, 0 or +1.
func (m Money) Cmp(o Money) int { return m.d.Cmp(&o.d) }

func (m Money) Add(o Money) Money {
	var r Money
	if _, err := moneyCtx.Add(&r.d, &m.d, &o.d); err != nil {
		panic(errors.Wrap(err, "money add"))
	}
	return r
}

// Times returns m multiplied by an integral quantity.
func (m Money) Times(qty int64) Money {
	var q, r apd.Decimal
	q.SetInt64(qty)
	if _, err := moneyCtx.Mul(&r, &m.d, &q); err != nil {
		panic(errors.Wrap(err, "money multiply"))
	}
	return Money{d: r}
}

func (m Money) String() string {
	if m.d.Exponent > 0 {
		// 1E+4 reads badly on a receipt.
		var r apd.Decimal
		if _, err := textCtx.Quantize(&r, &m.d, 0); err == nil {
			return r.Text('f')
		}
	}
	return m.d.Text('f')
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalJSON accepts both JSON numbers and numeric strings.
func (m *Money) UnmarshalJSON(b []byte) error {
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		var s string
		if err2 := json.Unmarshal(b, &s); err2 != nil {
			return Validationf("invalid amount %s", string(b))
		}
		n = json.Number(s)
	}
	parsed, err := NewMoney(n.String())
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
