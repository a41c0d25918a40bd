package objectionRepository

import (
	"ScriptForge/internal/entity"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		var err error
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Templates: &templatesRepository{q: sqlExecutor, log: r.log},
		Commit:    commitFunc,
		Rollback:  rollbackFunc,
	}, nil
}

type Client struct {
	Templates interface {
		CreateTemplate(ctx context.Context, template entity.ObjectionTemplate) (int64, error)
		GetTemplateByID(ctx context.Context, id int64) (entity.ObjectionTemplate, error)
		GetTemplatesForCompany(ctx context.Context, companyID int64) ([]entity.ObjectionTemplate, error)
		GetTemplatesByType(ctx context.Context, objectionType string, companyID int64) ([]entity.ObjectionTemplate, error)
		DeleteTemplate(ctx context.Context, id int64) error
	}

	Commit   func() error
	Rollback func() error
}

type templatesRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
