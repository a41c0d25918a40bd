package scriptRepository

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
		Scripts:  &scriptsRepository{q: sqlExecutor, log: r.log},
		Library:  &libraryRepository{q: sqlExecutor, log: r.log},
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

type Client struct {
	Scripts interface {
		CreateScript(ctx context.Context, script entity.Script) (int64, error)
		GetScriptByID(ctx context.Context, id int64) (entity.Script, error)
		GetScriptsByCompany(ctx context.Context, companyID int64, limit, offset int) ([]entity.Script, int, error)
		DeleteScript(ctx context.Context, id int64) error
	}

	Library interface {
		CreateEntry(ctx context.Context, entry entity.ScriptLibraryEntry) (int64, error)
		GetEntryByID(ctx context.Context, id int64) (entity.ScriptLibraryEntry, error)
		GetEntriesByCompany(ctx context.Context, companyID int64) ([]entity.ScriptLibraryEntry, error)
		SetFavorite(ctx context.Context, id int64, favorite bool) error
		IncrementUsage(ctx context.Context, id int64) error
		DeleteEntry(ctx context.Context, id int64) error
	}

	Commit   func() error
	Rollback func() error
}

type scriptsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type libraryRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
