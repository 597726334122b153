package datasource

import (
	"context"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/vfg2006/instagram-dashboard-api/internal/domain"
)

//go:generate mockgen -source=source.go -destination=mocks/source_mock.go -package=mocks

// Source lê o conteúdo bruto de um documento pelo nome
type Source interface {
	ReadDocument(ctx context.Context, name string) ([]byte, error)
}

// FileSource lê documentos JSON de um diretório local (<dir>/<nome>.json)
type FileSource struct {
	Dir string
}

func NewFileSource(dir string) *FileSource {
	return &FileSource{Dir: dir}
}

func (s *FileSource) ReadDocument(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := filepath.Join(s.Dir, name+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(domain.ErrDocumentNotFound, "file %s", path)
		}
		return nil, errors.Wrapf(err, "erro ao ler o arquivo %s", path)
	}

	return data, nil
}
