package companyRepository

import (
	"ScriptForge/internal/api/company"
	"ScriptForge/internal/entity"
	contextPkg "ScriptForge/pkg/context"
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type TrainingDataDB struct {
	ID        sql.NullInt64  `db:"id"`
	CompanyID sql.NullInt64  `db:"company_id"`
	DataType  sql.NullString `db:"data_type"`
	Content   sql.NullString `db:"content"`
	Metadata  sql.NullString `db:"metadata"`
	CreatedAt time.Time      `db:"created_at"`
}

type MemoryDataDB struct {
	ID          sql.NullInt64  `db:"id"`
	CompanyID   sql.NullInt64  `db:"company_id"`
	MemoryType  sql.NullString `db:"memory_type"`
	MemoryKey   sql.NullString `db:"memory_key"`
	MemoryValue sql.NullString `db:"memory_value"`
	Metadata    sql.NullString `db:"metadata"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

func (r *trainingDataRepository) CreateTrainingData(ctx context.Context, data entity.TrainingData) (int64, error) {
	requestID := contextPkg.GetRequestID(ctx)

	metadata, err := marshalMetadata(data.Metadata)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateTrainingData metadata marshal err")
		return 0, err
	}

	argsKV := map[string]interface{}{
		"company_id": data.CompanyID,
		"data_type":  data.DataType,
		"content":    data.Content,
		"metadata":   metadata,
		"created_at": data.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreateTrainingData, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateTrainingData named query preparation err")
		return 0, err
	}
	query = r.q.Rebind(query)

	var id int64
	if err := r.q.QueryRowxContext(ctx, query, args...).Scan(&id); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when storing training data")
		return 0, err
	}

	return id, nil
}

func (r *trainingDataRepository) GetTrainingDataByCompany(ctx context.Context, companyID int64, dataType string) ([]entity.TrainingData, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var dataList []TrainingDataDB

	namedQuery := queryGetTrainingDataByCompany
	argsKV := map[string]interface{}{
		"company_id": companyID,
	}

	if dataType != "" {
		namedQuery = queryGetTrainingDataByCompanyAndType
		argsKV["data_type"] = dataType
	}

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTrainingDataByCompany named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &dataList, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTrainingDataByCompany execution err")
		return nil, err
	}

	var result []entity.TrainingData
	for _, dataDB := range dataList {
		result = append(result, r.makeTrainingData(requestID, dataDB))
	}

	return result, nil
}

func (r *trainingDataRepository) DeleteTrainingData(ctx context.Context, id int64) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteTrainingData, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteTrainingData named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteTrainingData execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteTrainingData rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
		}).Warn("DeleteTrainingData no rows affected")
		return companies.ErrTrainingDataNotFound
	}

	return nil
}

func (r *trainingDataRepository) makeTrainingData(requestID string, data TrainingDataDB) entity.TrainingData {
	metadata, err := unmarshalMetadata(data.Metadata)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("makeTrainingData metadata unmarshal err")
	}

	return entity.TrainingData{
		ID:        data.ID.Int64,
		CompanyID: data.CompanyID.Int64,
		DataType:  data.DataType.String,
		Content:   data.Content.String,
		Metadata:  metadata,
		CreatedAt: data.CreatedAt,
	}
}

func (r *memoriesRepository) UpsertMemory(ctx context.Context, memory entity.MemoryData) error {
	requestID := contextPkg.GetRequestID(ctx)

	metadata, err := marshalMetadata(memory.Metadata)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpsertMemory metadata marshal err")
		return err
	}

	argsKV := map[string]interface{}{
		"company_id":   memory.CompanyID,
		"memory_type":  memory.MemoryType,
		"memory_key":   memory.MemoryKey,
		"memory_value": memory.MemoryValue,
		"metadata":     metadata,
		"created_at":   memory.CreatedAt,
		"updated_at":   memory.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryUpsertMemory, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpsertMemory named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when saving memory")
		return err
	}

	return nil
}

func (r *memoriesRepository) GetMemoryByKey(ctx context.Context, companyID int64, memoryKey string) (entity.MemoryData, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var memory MemoryDataDB

	argsKV := map[string]interface{}{
		"company_id": companyID,
		"memory_key": memoryKey,
	}

	query, args, err := sqlx.Named(queryGetMemoryByKey, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetMemoryByKey named query preparation err")
		return entity.MemoryData{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&memory); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("GetMemoryByKey no rows found")
			return entity.MemoryData{}, companies.ErrMemoryNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetMemoryByKey execution err")
		return entity.MemoryData{}, err
	}

	return r.makeMemory(requestID, memory), nil
}

func (r *memoriesRepository) GetMemoriesByCompany(ctx context.Context, companyID int64, memoryType string) ([]entity.MemoryData, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var memoriesList []MemoryDataDB

	namedQuery := queryGetMemoriesByCompany
	argsKV := map[string]interface{}{
		"company_id": companyID,
	}

	if memoryType != "" {
		namedQuery = queryGetMemoriesByCompanyAndType
		argsKV["memory_type"] = memoryType
	}

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetMemoriesByCompany named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &memoriesList, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetMemoriesByCompany execution err")
		return nil, err
	}

	var result []entity.MemoryData
	for _, memoryDB := range memoriesList {
		result = append(result, r.makeMemory(requestID, memoryDB))
	}

	return result, nil
}

func (r *memoriesRepository) DeleteMemory(ctx context.Context, id int64) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteMemory, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteMemory named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteMemory execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteMemory rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
		}).Warn("DeleteMemory no rows affected")
		return companies.ErrMemoryNotFound
	}

	return nil
}

func (r *memoriesRepository) makeMemory(requestID string, memory MemoryDataDB) entity.MemoryData {
	metadata, err := unmarshalMetadata(memory.Metadata)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("makeMemory metadata unmarshal err")
	}

	return entity.MemoryData{
		ID:          memory.ID.Int64,
		CompanyID:   memory.CompanyID.Int64,
		MemoryType:  memory.MemoryType.String,
		MemoryKey:   memory.MemoryKey.String,
		MemoryValue: memory.MemoryValue.String,
		Metadata:    metadata,
		CreatedAt:   memory.CreatedAt,
		UpdatedAt:   memory.UpdatedAt,
	}
}

func marshalMetadata(metadata map[string]string) (string, error) {
	if len(metadata) == 0 {
		return "{}", nil
	}

	raw, err := json.Marshal(metadata)
	if err != nil {
		return "", err
	}

	return string(raw), nil
}

func unmarshalMetadata(metadata sql.NullString) (map[string]string, error) {
	if !metadata.Valid || metadata.String == "" {
		return nil, nil
	}

	var result map[string]string
	if err := json.Unmarshal([]byte(metadata.String), &result); err != nil {
		return nil, err
	}

	return result, nil
}
