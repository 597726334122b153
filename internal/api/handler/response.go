package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/instagram-dashboard-api/internal/domain"
	"github.com/vfg2006/instagram-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/instagram-dashboard-api/internal/usecases/normalizing"
	"github.com/vfg2006/instagram-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/instagram-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, logger log.Logger, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.WithError(err).Error("falha ao codificar a resposta")
	}
}

// writeServiceError traduz os erros do pipeline para os códigos da API
func writeServiceError(w http.ResponseWriter, logger log.Logger, err error) {
	var dateErr *normalizing.MalformedDateError

	switch {
	case errors.Is(err, domain.ErrDocumentNotFound):
		logger.WithError(err).Warn("documento de origem ausente")
		apiErrors.WriteError(w, apiErrors.ErrDocumentNotFound, "Documento de origem não encontrado", err.Error())
	case errors.As(err, &dateErr):
		logger.WithError(err).Warn("registro com data malformada")
		apiErrors.WriteError(w, apiErrors.ErrInvalidDocument, "Registro com data malformada", map[string]any{
			"index": dateErr.Index,
			"value": dateErr.Value,
		})
	case errors.Is(err, domain.ErrInvalidDocument):
		logger.WithError(err).Warn("documento de origem inválido")
		apiErrors.WriteError(w, apiErrors.ErrInvalidDocument, "Documento de origem inválido", err.Error())
	case errors.Is(err, dashboarding.ErrInvalidDateRange):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
	default:
		logger.WithError(err).Error("erro ao montar a visão")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
	}
}
