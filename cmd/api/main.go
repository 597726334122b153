package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/instagram-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/instagram-dashboard-api/infrastructure/datasource"
	"github.com/vfg2006/instagram-dashboard-api/infrastructure/integrator/geo"
	"github.com/vfg2006/instagram-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/instagram-dashboard-api/internal/api"
	"github.com/vfg2006/instagram-dashboard-api/internal/config"
	"github.com/vfg2006/instagram-dashboard-api/internal/scheduler"
	"github.com/vfg2006/instagram-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/instagram-dashboard-api/pkg/log"
	"github.com/vfg2006/instagram-dashboard-api/pkg/utils"
)

func main() {
	log.Setup("info")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel := log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		store    dashboarding.DocumentStore
		snapshot *datasource.Cache
	)

	switch cfg.Data.Source {
	case config.DataSourcePostgres:
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()

		snapshot = datasource.NewCache(repository.NewDocumentRepository(pgConn))
		store = snapshot
	case config.DataSourceFile:
		snapshot = datasource.NewCache(datasource.NewFileSource(cfg.Data.Dir))
		store = snapshot
	default:
		logrus.Info("Nenhuma origem de dados configurada, usando dados sintéticos")
	}

	logrus.WithFields(logrus.Fields{
		"source":   cfg.Data.Source,
		"data_dir": cfg.Data.Dir,
	}).Info("Origem de dados configurada")

	dashboardService := dashboarding.NewService(cfg, store)

	geoIntegrator := geo.New(cfg.Geo.URL, utils.NewHTTPFetcher(cfg.Geo.Timeout))

	reportService := scheduler.NewPipelineReportService(dashboardService, cfg)

	// Aquece o cache; falhas são registradas e a carga é tentada de novo na próxima leitura
	reportService.RunNow(ctx)

	if err := reportService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de relatório do pipeline")
	} else {
		logrus.Info("Agendador de relatório do pipeline iniciado com sucesso")
	}

	var snapshotProvider interface{ SnapshotID() string }
	if snapshot != nil {
		snapshotProvider = snapshot
	}

	server, err := api.New(cfg, dashboardService, snapshotProvider, geoIntegrator, reportService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
