package companyRepository

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
		Companies:    &companiesRepository{q: sqlExecutor, log: r.log},
		BrandVoices:  &brandVoicesRepository{q: sqlExecutor, log: r.log},
		TrainingData: &trainingDataRepository{q: sqlExecutor, log: r.log},
		Memories:     &memoriesRepository{q: sqlExecutor, log: r.log},
		Commit:       commitFunc,
		Rollback:     rollbackFunc,
	}, nil
}

type Client struct {
	Companies interface {
		CreateCompany(ctx context.Context, company entity.Company) (int64, error)
		GetCompanyByID(ctx context.Context, id int64) (entity.Company, error)
		GetCompanyByName(ctx context.Context, name string) (entity.Company, error)
		GetCompaniesByUser(ctx context.Context, userID string, limit, offset int) ([]entity.Company, int, error)
		DeleteCompany(ctx context.Context, id int64) error
	}

	BrandVoices interface {
		CreateBrandVoice(ctx context.Context, voice entity.BrandVoice) (int64, error)
		GetBrandVoiceByID(ctx context.Context, id int64) (entity.BrandVoice, error)
		GetBrandVoicesByCompany(ctx context.Context, companyID int64) ([]entity.BrandVoice, error)
		DeleteBrandVoice(ctx context.Context, id int64) error
	}

	TrainingData interface {
		CreateTrainingData(ctx context.Context, data entity.TrainingData) (int64, error)
		GetTrainingDataByCompany(ctx context.Context, companyID int64, dataType string) ([]entity.TrainingData, error)
		DeleteTrainingData(ctx context.Context, id int64) error
	}

	Memories interface {
		UpsertMemory(ctx context.Context, memory entity.MemoryData) error
		GetMemoryByKey(ctx context.Context, companyID int64, memoryKey string) (entity.MemoryData, error)
		GetMemoriesByCompany(ctx context.Context, companyID int64, memoryType string) ([]entity.MemoryData, error)
		DeleteMemory(ctx context.Context, id int64) error
	}

	Commit   func() error
	Rollback func() error
}

type companiesRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type brandVoicesRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type trainingDataRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type memoriesRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
