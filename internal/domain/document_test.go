package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeInsightsDocument(t *testing.T) {
	doc, err := DecodeInsightsDocument([]byte(`{"data":[{"date":"2023-01-01","reach":10,"Content_Type":"Reel","likes":"7"}]}`))
	require.NoError(t, err)
	require.Len(t, doc.Data, 1)

	keys := make([]string, 0)
	for _, field := range doc.Data[0] {
		keys = append(keys, field.Key)
	}
	assert.Equal(t, []string{"date", "reach", "Content_Type", "likes"}, keys)

	value, ok := doc.Data[0].Get("reach")
	assert.True(t, ok)
	assert.Equal(t, 10.0, value)

	_, ok = doc.Data[0].Get("shares")
	assert.False(t, ok)

	t.Run("Chave repetida mantém a primeira posição e o último valor", func(t *testing.T) {
		doc, err := DecodeInsightsDocument([]byte(`{"data":[{"date":"2023-01-01","Content_Type":"Photo","likes":1,"likes":5}]}`))
		require.NoError(t, err)
		require.Len(t, doc.Data, 1)

		assert.Equal(t, RawRecord{
			{Key: "date", Value: "2023-01-01"},
			{Key: "Content_Type", Value: "Photo"},
			{Key: "likes", Value: 5.0},
		}, doc.Data[0])
	})
}

func TestDecodeDemographicsDocument(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected CategoryValues
		wantErr  bool
	}{
		{
			name:    "Ordem do documento preservada",
			payload: `{"data":[{"name":"audience_state","values":[{"value":{"Rio de Janeiro":12.5,"Bahia":3,"Acre":0.5}}]}]}`,
			expected: CategoryValues{
				{Category: "Rio de Janeiro", Percentage: 12.5},
				{Category: "Bahia", Percentage: 3},
				{Category: "Acre", Percentage: 0.5},
			},
		},
		{
			name:    "Chave repetida mantém a primeira posição",
			payload: `{"data":[{"name":"audience_state","values":[{"value":{"Bahia":3,"Pará":1,"Bahia":9}}]}]}`,
			expected: CategoryValues{
				{Category: "Bahia", Percentage: 9},
				{Category: "Pará", Percentage: 1},
			},
		},
		{
			name:    "Percentual não numérico",
			payload: `{"data":[{"name":"audience_state","values":[{"value":{"Bahia":"três"}}]}]}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := DecodeDemographicsDocument([]byte(tt.payload))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDocument)
				return
			}

			require.NoError(t, err)
			require.Len(t, doc.Data, 1)
			require.Len(t, doc.Data[0].Values, 1)
			assert.Equal(t, tt.expected, doc.Data[0].Values[0].Value)
		})
	}
}

func TestRegionLookup(t *testing.T) {
	code, ok := RegionCodeByName("São Paulo")
	assert.True(t, ok)
	assert.Equal(t, "SP", code)

	_, ok = RegionCodeByName("sao paulo")
	assert.False(t, ok)

	assert.True(t, IsRegionCode("DF"))
	assert.False(t, IsRegionCode("df"))
	assert.Len(t, BrazilStates, 27)
}
