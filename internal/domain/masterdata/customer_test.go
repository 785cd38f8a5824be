package masterdata

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retailops/erp-backend/internal/domain/shared/valueobject"
)

func TestNewCustomerGroup(t *testing.T) {
	g, err := NewCustomerGroup("vip", "VIP Customers", decimal.NewFromInt(10))
	require.NoError(t, err)
	assert.Equal(t, "VIP", g.Code)

	_, err = NewCustomerGroup("VIP", "VIP Customers", decimal.NewFromInt(101))
	assert.Error(t, err)

	_, err = NewCustomerGroup("VIP", "VIP Customers", decimal.NewFromInt(-1))
	assert.Error(t, err)
}

func TestNewCustomer(t *testing.T) {
	c, err := NewCustomer("cust-001", "Jane Mbeki")
	require.NoError(t, err)
	assert.Equal(t, "CUST-001", c.Code)
	assert.True(t, c.Active)
	assert.True(t, c.CreditLimit.IsZero())

	_, err = NewCustomer("", "Jane Mbeki")
	assert.Error(t, err)
}

func TestCustomerSetCreditLimit(t *testing.T) {
	c, err := NewCustomer("CUST-001", "Jane Mbeki")
	require.NoError(t, err)

	require.NoError(t, c.SetCreditLimit(valueobject.NewMoneyFromFloat(5000)))
	assert.Equal(t, "5000.00", c.CreditLimit.String())

	assert.Error(t, c.SetCreditLimit(valueobject.NewMoneyFromFloat(-1)))
}
