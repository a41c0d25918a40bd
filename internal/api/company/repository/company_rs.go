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
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type CompanyDB struct {
	ID        sql.NullInt64  `db:"id"`
	Name      sql.NullString `db:"name"`
	UserID    sql.NullString `db:"user_id"`
	CreatedAt time.Time      `db:"created_at"`
}

type BrandVoiceDB struct {
	ID              sql.NullInt64  `db:"id"`
	Name            sql.NullString `db:"name"`
	CompanyID       sql.NullInt64  `db:"company_id"`
	VoiceType       sql.NullString `db:"voice_type"`
	Description     sql.NullString `db:"description"`
	TrainingPrompts sql.NullString `db:"training_prompts"`
	CreatedAt       time.Time      `db:"created_at"`
}

func (r *companiesRepository) CreateCompany(ctx context.Context, company entity.Company) (int64, error) {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"name":       company.Name,
		"user_id":    company.UserID,
		"created_at": company.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreateCompany, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateCompany named query preparation err")
		return 0, err
	}
	query = r.q.Rebind(query)

	var id int64
	if err := r.q.QueryRowxContext(ctx, query, args...).Scan(&id); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating company")
		return 0, err
	}

	return id, nil
}

func (r *companiesRepository) GetCompanyByID(ctx context.Context, id int64) (entity.Company, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var company CompanyDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetCompanyByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCompanyByID named query preparation err")
		return entity.Company{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&company); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("GetCompanyByID no rows found")
			return entity.Company{}, companies.ErrCompanyNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCompanyByID execution err")
		return entity.Company{}, err
	}

	return r.makeCompany(company), nil
}

func (r *companiesRepository) GetCompanyByName(ctx context.Context, name string) (entity.Company, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var company CompanyDB

	argsKV := map[string]interface{}{
		"name": name,
	}

	query, args, err := sqlx.Named(queryGetCompanyByName, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCompanyByName named query preparation err")
		return entity.Company{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&company); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Company{}, companies.ErrCompanyNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCompanyByName execution err")
		return entity.Company{}, err
	}

	return r.makeCompany(company), nil
}

func (r *companiesRepository) GetCompaniesByUser(ctx context.Context, userID string, limit, offset int) ([]entity.Company, int, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var companiesList []CompanyDB
	var total int

	countQuery, countArgs, err := sqlx.Named(queryCountCompaniesByUser, map[string]interface{}{
		"user_id": userID,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountCompaniesByUser named query preparation err")
		return nil, 0, err
	}

	countQuery = r.q.Rebind(countQuery)

	if err := r.q.QueryRowxContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountCompaniesByUser execution err")
		return nil, 0, err
	}

	argsKV := map[string]interface{}{
		"user_id": userID,
		"limit":   limit,
		"offset":  offset,
	}

	query, args, err := sqlx.Named(queryGetCompaniesByUser, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCompaniesByUser named query preparation err")
		return nil, 0, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &companiesList, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCompaniesByUser execution err")
		return nil, 0, err
	}

	var result []entity.Company
	for _, companyDB := range companiesList {
		result = append(result, r.makeCompany(companyDB))
	}

	return result, total, nil
}

func (r *companiesRepository) DeleteCompany(ctx context.Context, id int64) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteCompany, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteCompany named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteCompany execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteCompany rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
		}).Warn("DeleteCompany no rows affected")
		return companies.ErrCompanyNotFound
	}

	return nil
}

func (r *companiesRepository) makeCompany(company CompanyDB) entity.Company {
	return entity.Company{
		ID:        company.ID.Int64,
		Name:      company.Name.String,
		UserID:    company.UserID.String,
		CreatedAt: company.CreatedAt,
	}
}

func (r *brandVoicesRepository) CreateBrandVoice(ctx context.Context, voice entity.BrandVoice) (int64, error) {
	requestID := contextPkg.GetRequestID(ctx)

	prompts, err := json.Marshal(voice.TrainingPrompts)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateBrandVoice training prompts marshal err")
		return 0, err
	}

	argsKV := map[string]interface{}{
		"name":             voice.Name,
		"company_id":       voice.CompanyID,
		"voice_type":       voice.VoiceType,
		"description":      voice.Description,
		"training_prompts": string(prompts),
		"created_at":       voice.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreateBrandVoice, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateBrandVoice named query preparation err")
		return 0, err
	}
	query = r.q.Rebind(query)

	var id int64
	if err := r.q.QueryRowxContext(ctx, query, args...).Scan(&id); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating brand voice")
		return 0, err
	}

	return id, nil
}

func (r *brandVoicesRepository) GetBrandVoiceByID(ctx context.Context, id int64) (entity.BrandVoice, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var voice BrandVoiceDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetBrandVoiceByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBrandVoiceByID named query preparation err")
		return entity.BrandVoice{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&voice); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("GetBrandVoiceByID no rows found")
			return entity.BrandVoice{}, companies.ErrBrandVoiceNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBrandVoiceByID execution err")
		return entity.BrandVoice{}, err
	}

	return r.makeBrandVoice(requestID, voice), nil
}

func (r *brandVoicesRepository) GetBrandVoicesByCompany(ctx context.Context, companyID int64) ([]entity.BrandVoice, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var voicesList []BrandVoiceDB

	argsKV := map[string]interface{}{
		"company_id": companyID,
	}

	query, args, err := sqlx.Named(queryGetBrandVoicesByCompany, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBrandVoicesByCompany named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &voicesList, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBrandVoicesByCompany execution err")
		return nil, err
	}

	var result []entity.BrandVoice
	for _, voiceDB := range voicesList {
		result = append(result, r.makeBrandVoice(requestID, voiceDB))
	}

	return result, nil
}

func (r *brandVoicesRepository) DeleteBrandVoice(ctx context.Context, id int64) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteBrandVoice, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteBrandVoice named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteBrandVoice execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteBrandVoice rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
		}).Warn("DeleteBrandVoice no rows affected")
		return companies.ErrBrandVoiceNotFound
	}

	return nil
}

func (r *brandVoicesRepository) makeBrandVoice(requestID string, voice BrandVoiceDB) entity.BrandVoice {
	var prompts []string
	if voice.TrainingPrompts.Valid && voice.TrainingPrompts.String != "" {
		if err := json.Unmarshal([]byte(voice.TrainingPrompts.String), &prompts); err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("makeBrandVoice training prompts unmarshal err")
		}
	}

	return entity.BrandVoice{
		ID:              voice.ID.Int64,
		Name:            voice.Name.String,
		CompanyID:       voice.CompanyID.Int64,
		VoiceType:       voice.VoiceType.String,
		Description:     voice.Description.String,
		TrainingPrompts: prompts,
		CreatedAt:       voice.CreatedAt,
	}
}
