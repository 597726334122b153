package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/instagram-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/instagram-dashboard-api/internal/domain"
)

const (
	documentsTable = "raw_documents rd"
)

// DocumentRepository lê os documentos brutos guardados no Postgres.
// Implementa datasource.Source.
type DocumentRepository interface {
	ReadDocument(ctx context.Context, name string) ([]byte, error)
	ListDocumentNames(ctx context.Context) ([]string, error)
}

type documentRepository struct {
	conn postgres.Queryer
}

func NewDocumentRepository(conn postgres.Queryer) DocumentRepository {
	return &documentRepository{
		conn: conn,
	}
}

func (r *documentRepository) ReadDocument(ctx context.Context, name string) ([]byte, error) {
	query, args, err := buildReadDocumentQuery(name)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var payload []byte
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&payload)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.Wrapf(domain.ErrDocumentNotFound, "raw_documents %s", name)
		}
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return nil, fmt.Errorf("erro ao escanear documento: %w", err)
	}

	return payload, nil
}

func (r *documentRepository) ListDocumentNames(ctx context.Context) ([]string, error) {
	query, args, err := squirrel.
		Select("rd.name").
		From(documentsTable).
		OrderBy("rd.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("erro ao escanear nome do documento: %w", err)
		}
		names = append(names, name)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return names, nil
}

func buildReadDocumentQuery(name string) (string, []interface{}, error) {
	return squirrel.
		Select("rd.payload").
		From(documentsTable).
		Where(squirrel.Eq{"rd.name": name}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

// BuildUpsertDocumentQuery monta o INSERT ... ON CONFLICT usado pelo script de carga
func BuildUpsertDocumentQuery(id, name string, payload []byte) (string, []interface{}, error) {
	return squirrel.StatementBuilder.
		Insert("raw_documents").
		Columns("id", "name", "payload").
		Values(id, name, payload).
		Suffix(`
			ON CONFLICT (name) DO UPDATE SET
				payload = EXCLUDED.payload,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}
