package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadRows() [][]string {
	return [][]string{
		{"Load #", "Container #", "Customer", "Date", "Driver", "Charges Type", "Total Charges", "Driver Pay Total", "Expense Total", "Profit", "Profit Margin"},
		{"AIM_M103161", "CONT1", "Acme Imports", "1/15/24", "J. Smith", "Drayage, Chassis", "$1,000.00", "$400.00", "$100.00", "$200.00", "20%"},
		{"", "CONT2", "Dropped", "1/16/24", "", "", "$50", "", "", "", ""},
		{"AIM_M200001", "", "Beta Freight", "2/1/24", "", "Drayage", "$500.00", "$150.00", "$50.00", "$100.00", "20%"},
		{"LOCAL-77", "", "Gamma LLC", "bad-date", "K. Lee", " , transload ,", "not-a-number", "", "", "-$25", ""},
	}
}

func TestLoadParser_Parse(t *testing.T) {
	otr := JoinIndex{"M103161": {}}

	records := NewLoadParser(nil).Parse(loadRows(), otr)
	require.Len(t, records, 3, "empty Load # rows are dropped, malformed rows kept")

	first := records[0]
	assert.Equal(t, "AIM_M103161", first.LoadNumber)
	assert.Equal(t, "Acme Imports", first.Customer)
	assert.Equal(t, []string{"Drayage", "Chassis"}, first.ChargesType)
	assert.Equal(t, 1000.0, first.TotalCharges)
	assert.Equal(t, 400.0, first.DriverPayTotal)
	assert.Equal(t, 20.0, first.ProfitMargin)
	assert.True(t, first.IsOTR)

	second := records[1]
	assert.Equal(t, "AIM_M200001", second.LoadNumber)
	assert.False(t, second.IsOTR, "identifier absent from the registry")

	third := records[2]
	assert.Equal(t, "LOCAL-77", third.LoadNumber)
	assert.False(t, third.IsOTR, "no derivable identifier means unjoinable")
	assert.Equal(t, []string{"transload"}, third.ChargesType, "empty entries dropped")
	assert.Zero(t, third.TotalCharges, "malformed amount degrades to zero")
	assert.Equal(t, -25.0, third.Profit)
}

func TestLoadParser_PreservesRowOrder(t *testing.T) {
	records := NewLoadParser(nil).Parse(loadRows(), nil)
	require.Len(t, records, 3)
	assert.Equal(t, "AIM_M103161", records[0].LoadNumber)
	assert.Equal(t, "AIM_M200001", records[1].LoadNumber)
	assert.Equal(t, "LOCAL-77", records[2].LoadNumber)
}

func TestLoadParser_EmptyInput(t *testing.T) {
	assert.Nil(t, NewLoadParser(nil).Parse(nil, nil))
	assert.Empty(t, NewLoadParser(nil).Parse([][]string{{"Load #"}}, nil))
}
