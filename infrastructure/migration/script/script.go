package main

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/instagram-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/instagram-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/instagram-dashboard-api/internal/config"
	"github.com/vfg2006/instagram-dashboard-api/internal/domain"
	"github.com/vfg2006/instagram-dashboard-api/pkg/utils"
)

const createDocumentsTable = `
CREATE TABLE IF NOT EXISTS raw_documents (
	id         VARCHAR(6) PRIMARY KEY,
	name       TEXT NOT NULL UNIQUE,
	payload    JSONB NOT NULL,
	created_at TIMESTAMP NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMP NOT NULL DEFAULT NOW()
)`

var documentNames = []string{
	domain.UserInsightsDocument,
	domain.DemographicsCityDocument,
	domain.DemographicsStateDocument,
}

func setupLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.Info("Iniciando script de carga dos documentos brutos...")
}

func insertDocuments(tx *sql.Tx, dataDir string) error {
	startTime := time.Now()
	successCount := 0

	for _, name := range documentNames {
		path := filepath.Join(dataDir, name+".json")
		payload, err := os.ReadFile(path)
		if err != nil {
			logrus.WithError(err).WithField("path", path).Warn("Arquivo não encontrado, pulando")
			continue
		}

		id, err := utils.GenerateID()
		if err != nil {
			return err
		}

		query, args, err := repository.BuildUpsertDocumentQuery(id, name, payload)
		if err != nil {
			return err
		}

		if _, err := tx.Exec(query, args...); err != nil {
			logrus.WithError(err).WithField("document", name).Error("Erro ao inserir documento")
			return err
		}

		successCount++
		logrus.WithFields(logrus.Fields{
			"document": name,
			"bytes":    len(payload),
		}).Info("Documento carregado")
	}

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"loaded":   successCount,
		"total":    len(documentNames),
	}).Info("Carga de documentos concluída")

	return nil
}

// seed cria a tabela e carrega os documentos em uma única transação
func seed(ctx context.Context, conn postgres.Conn, dataDir string) error {
	if err := conn.Ping(ctx); err != nil {
		return err
	}

	if _, err := conn.ExecContext(ctx, createDocumentsTable); err != nil {
		return err
	}

	if err := conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		return insertDocuments(tx, dataDir)
	}); err != nil {
		return err
	}

	names, err := repository.NewDocumentRepository(conn).ListDocumentNames(ctx)
	if err != nil {
		return err
	}
	logrus.WithField("documents", names).Info("Documentos disponíveis no banco")

	return nil
}

func main() {
	setupLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	ctx := context.Background()
	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	if err := seed(ctx, conn, cfg.Data.Dir); err != nil {
		logrus.WithError(err).Fatal("Erro na carga dos documentos, transação revertida")
	}
}
