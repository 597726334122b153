package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name       string
		config     Config
		wantSource string
		wantErr    bool
	}{
		{
			name:       "Origem em maiúsculas é normalizada",
			config:     Config{Data: Data{Source: " FILE "}},
			wantSource: DataSourceFile,
		},
		{
			name:       "Origem vazia usa dados sintéticos",
			config:     Config{Synthetic: Synthetic{StartDate: "2023-01-01", Days: 30}},
			wantSource: DataSourceSynthetic,
		},
		{
			name:    "Origem desconhecida",
			config:  Config{Data: Data{Source: "s3"}},
			wantErr: true,
		},
		{
			name:    "Data inicial sintética inválida",
			config:  Config{Data: Data{Source: DataSourceSynthetic}, Synthetic: Synthetic{StartDate: "01/01/2023"}},
			wantErr: true,
		},
		{
			name:    "Quantidade de dias negativa",
			config:  Config{Data: Data{Source: DataSourceSynthetic}, Synthetic: Synthetic{StartDate: "2023-01-01", Days: -1}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.config
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSource, cfg.Data.Source)
		})
	}
}
