package money

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoney_UnmarshalNumberOrString(t *testing.T) {
	var payload struct {
		Rates []Money `json:"rates"`
	}
	err := json.Unmarshal([]byte(`{"rates": [100, 200, "300"]}`), &payload)
	assert.NoError(t, err)
	assert.Len(t, payload.Rates, 3)

	total := Zero()
	for _, r := range payload.Rates {
		total = total.Add(r)
	}
	assert.Equal(t, "600.00", total.String())
}

func TestMoney_UnmarshalInvalid(t *testing.T) {
	var m Money
	err := json.Unmarshal([]byte(`"12.3.4"`), &m)
	assert.Error(t, err)
}

func TestMoney_MarshalFixedTwo(t *testing.T) {
	m, err := FromString("99.5")
	assert.NoError(t, err)

	out, err := json.Marshal(m)
	assert.NoError(t, err)
	assert.Equal(t, `"99.50"`, string(out))
}

func TestMoney_DivByZero(t *testing.T) {
	m := FromFloat(100)
	assert.True(t, m.Div(Zero().Decimal()).IsZero())
}
