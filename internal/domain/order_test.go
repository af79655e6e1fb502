package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kitchen-pos/internal/domain"
)

func TestParseOrderStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    domain.OrderStatus
		wantErr bool
	}{
		{in: "COOKING", want: domain.StatusCooking},
		{in: "meal", want: domain.StatusMeal},
		{in: " COMPLETION ", want: domain.StatusCompletion},
		{in: "SERVED", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := domain.ParseOrderStatus(tt.in)
			if tt.wantErr {
				assert.True(t, errors.Is(err, domain.ErrValidation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOrderStatus_JSON(t *testing.T) {
	var body struct {
		Status domain.OrderStatus `json:"orderStatus"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"orderStatus":"MEAL"}`), &body))
	assert.Equal(t, domain.StatusMeal, body.Status)

	err := json.Unmarshal([]byte(`{"orderStatus":"BURNT"}`), &body)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))

	b, err := json.Marshal(body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"orderStatus":"MEAL"}`, string(b))
}

func TestOrderStatus_Predicates(t *testing.T) {
	assert.True(t, domain.StatusCooking.Active())
	assert.True(t, domain.StatusMeal.Active())
	assert.False(t, domain.StatusCompletion.Active())
	assert.True(t, domain.StatusCompletion.Terminal())
	assert.False(t, domain.OrderStatus(42).Valid())
	assert.Equal(t, "UNKNOWN", domain.OrderStatus(42).String())
}

func TestValidateOrderLines(t *testing.T) {
	known := map[int64]bool{1: true, 2: true}

	assert.NoError(t, domain.ValidateOrderLines([]domain.OrderLine{{MenuID: 1, Quantity: 10}, {MenuID: 2, Quantity: 1}}, known))

	err := domain.ValidateOrderLines(nil, known)
	assert.True(t, errors.Is(err, domain.ErrEmptyOrder))
	assert.True(t, errors.Is(err, domain.ErrValidation))

	err = domain.ValidateOrderLines([]domain.OrderLine{{MenuID: 1, Quantity: 1}, {MenuID: 9999, Quantity: 10}}, known)
	assert.True(t, errors.Is(err, domain.ErrReference))

	err = domain.ValidateOrderLines([]domain.OrderLine{{MenuID: 1, Quantity: 0}}, known)
	assert.True(t, errors.Is(err, domain.ErrValidation))

	// No upper bound on quantity.
	assert.NoError(t, domain.ValidateOrderLines([]domain.OrderLine{{MenuID: 1, Quantity: 1_000_000}}, known))
}

func TestDistinctMenuIDs(t *testing.T) {
	ids := domain.DistinctMenuIDs([]domain.OrderLine{{MenuID: 3}, {MenuID: 1}, {MenuID: 3}})
	assert.Equal(t, []int64{3, 1}, ids)
}

func TestPlaceOrder(t *testing.T) {
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	table := domain.OrderTable{ID: 7, NumberOfGuests: 4}

	order, err := domain.PlaceOrder(table, []domain.OrderLine{{MenuID: 1, Quantity: 2}}, now)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCooking, order.OrderStatus)
	assert.Equal(t, int64(7), order.OrderTableID)
	assert.Equal(t, now, order.OrderedTime)
	require.Len(t, order.OrderLineItems, 1)
	assert.Equal(t, int64(2), order.OrderLineItems[0].Quantity)

	table.Empty = true
	_, err = domain.PlaceOrder(table, []domain.OrderLine{{MenuID: 1, Quantity: 2}}, now)
	assert.True(t, errors.Is(err, domain.ErrConflict))
}

func TestOrder_ChangeStatus(t *testing.T) {
	o := domain.Order{ID: 1, OrderStatus: domain.StatusCooking}

	require.NoError(t, o.ChangeStatus(domain.StatusMeal))
	assert.Equal(t, domain.StatusMeal, o.OrderStatus)

	require.NoError(t, o.ChangeStatus(domain.StatusCompletion))
	assert.Equal(t, domain.StatusCompletion, o.OrderStatus)

	for _, next := range []domain.OrderStatus{domain.StatusCooking, domain.StatusMeal, domain.StatusCompletion} {
		err := o.ChangeStatus(next)
		assert.True(t, errors.Is(err, domain.ErrConflict), "transition to %s", next)
	}
	assert.Equal(t, domain.StatusCompletion, o.OrderStatus)

	fresh := domain.Order{ID: 2, OrderStatus: domain.StatusCooking}
	assert.True(t, errors.Is(fresh.ChangeStatus(domain.OrderStatus(0)), domain.ErrValidation))
}
