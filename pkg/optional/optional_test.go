package optional

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name   Value[string] `json:"name"`
	Chance Value[int]    `json:"chance"`
}

func TestUnmarshal_Presence(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantName   bool
		wantChance bool
	}{
		{"missing keys", `{}`, false, false},
		{"explicit null", `{"name": null, "chance": null}`, false, false},
		{"zero values are present", `{"name": "", "chance": 0}`, true, true},
		{"both set", `{"name": "Ana", "chance": 7}`, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p payload
			require.NoError(t, json.Unmarshal([]byte(tt.body), &p))
			assert.Equal(t, tt.wantName, p.Name.Present())
			assert.Equal(t, tt.wantChance, p.Chance.Present())
		})
	}
}

func TestUnmarshal_TypeMismatch(t *testing.T) {
	var p payload
	err := json.Unmarshal([]byte(`{"chance": "seven"}`), &p)

	var typeErr *json.UnmarshalTypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "chance", typeErr.Field)
}

func TestMarshal(t *testing.T) {
	out, err := json.Marshal(payload{Name: Of("Ana")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name": "Ana", "chance": null}`, string(out))
}

func TestNonBlank(t *testing.T) {
	_, ok := NonBlank(Of("   "))
	assert.False(t, ok)
	_, ok = NonBlank(None[string]())
	assert.False(t, ok)

	v, ok := NonBlank(Of(" ana@example.com"))
	assert.True(t, ok)
	assert.Equal(t, " ana@example.com", v)
}

func TestPtr(t *testing.T) {
	assert.Nil(t, None[int]().Ptr())
	p := Of(7).Ptr()
	require.NotNil(t, p)
	assert.Equal(t, 7, *p)
}
