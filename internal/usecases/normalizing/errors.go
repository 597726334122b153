package normalizing

import (
	"fmt"
)

// MalformedDateError indica que o campo de data de um registro não pôde ser interpretado
type MalformedDateError struct {
	Index int // Posição do registro na entrada
	Value any // Valor bruto do campo date (nil quando ausente)
	Err   error
}

// Error implementa a interface error
func (e *MalformedDateError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed date at record %d (%v): %s", e.Index, e.Value, e.Err.Error())
	}
	return fmt.Sprintf("malformed date at record %d (%v)", e.Index, e.Value)
}

// Unwrap retorna o erro subjacente
func (e *MalformedDateError) Unwrap() error {
	return e.Err
}
