package dashboarding

import "errors"

var ErrInvalidDateRange = errors.New("a data de início não pode ser posterior à data de fim")
