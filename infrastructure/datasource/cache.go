package datasource

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/instagram-dashboard-api/internal/domain"
	"github.com/vfg2006/instagram-dashboard-api/pkg/utils"
)

// Cache guarda os documentos já decodificados durante toda a vida do processo.
// Cada documento é carregado na primeira leitura e nunca é invalidado; falhas de
// carga não são guardadas. Os valores devolvidos são somente leitura.
type Cache struct {
	source     Source
	snapshotID string

	mu        sync.Mutex
	documents map[string]any
}

// NewCache cria o cache sobre a origem informada
func NewCache(source Source) *Cache {
	snapshotID, err := utils.GenerateID()
	if err != nil {
		logrus.WithError(err).Warn("Não foi possível gerar o ID do snapshot")
	}

	return &Cache{
		source:     source,
		snapshotID: snapshotID,
		documents:  make(map[string]any),
	}
}

// SnapshotID identifica a carga de documentos deste processo
func (c *Cache) SnapshotID() string {
	return c.snapshotID
}

// Insights retorna o documento de insights do usuário
func (c *Cache) Insights(ctx context.Context) (*domain.InsightsDocument, error) {
	doc, err := c.load(ctx, domain.UserInsightsDocument, func(data []byte) (any, error) {
		return domain.DecodeInsightsDocument(data)
	})
	if err != nil {
		return nil, err
	}
	return doc.(*domain.InsightsDocument), nil
}

// Demographics retorna um documento de demografia pelo nome
func (c *Cache) Demographics(ctx context.Context, name string) (*domain.DemographicsDocument, error) {
	doc, err := c.load(ctx, name, func(data []byte) (any, error) {
		return domain.DecodeDemographicsDocument(data)
	})
	if err != nil {
		return nil, err
	}
	return doc.(*domain.DemographicsDocument), nil
}

func (c *Cache) load(ctx context.Context, name string, decode func([]byte) (any, error)) (any, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if doc, ok := c.documents[name]; ok {
		return doc, nil
	}

	data, err := c.source.ReadDocument(ctx, name)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao carregar o documento %s", name)
	}

	doc, err := decode(data)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao decodificar o documento %s", name)
	}

	c.documents[name] = doc

	logrus.WithFields(logrus.Fields{
		"document":    name,
		"bytes":       len(data),
		"snapshot_id": c.snapshotID,
	}).Info("Documento carregado no cache")

	return doc, nil
}
