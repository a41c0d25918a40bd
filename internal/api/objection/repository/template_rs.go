package objectionRepository

import (
	"ScriptForge/internal/api/objection"
	"ScriptForge/internal/entity"
	contextPkg "ScriptForge/pkg/context"
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ObjectionTemplateDB struct {
	ID               sql.NullInt64  `db:"id"`
	ObjectionType    sql.NullString `db:"objection_type"`
	ObjectionText    sql.NullString `db:"objection_text"`
	ResponseTemplate sql.NullString `db:"response_template"`
	CompanyID        sql.NullInt64  `db:"company_id"`
	IsDefault        sql.NullBool   `db:"is_default"`
	CreatedAt        time.Time      `db:"created_at"`
}

func (r *templatesRepository) CreateTemplate(ctx context.Context, template entity.ObjectionTemplate) (int64, error) {
	requestID := contextPkg.GetRequestID(ctx)

	var companyID interface{}
	if template.CompanyID > 0 {
		companyID = template.CompanyID
	}

	argsKV := map[string]interface{}{
		"objection_type":    template.ObjectionType,
		"objection_text":    template.ObjectionText,
		"response_template": template.ResponseTemplate,
		"company_id":        companyID,
		"is_default":        template.IsDefault,
		"created_at":        template.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreateTemplate, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateTemplate named query preparation err")
		return 0, err
	}
	query = r.q.Rebind(query)

	var id int64
	if err := r.q.QueryRowxContext(ctx, query, args...).Scan(&id); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating objection template")
		return 0, err
	}

	return id, nil
}

func (r *templatesRepository) GetTemplateByID(ctx context.Context, id int64) (entity.ObjectionTemplate, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var template ObjectionTemplateDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetTemplateByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTemplateByID named query preparation err")
		return entity.ObjectionTemplate{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&template); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("GetTemplateByID no rows found")
			return entity.ObjectionTemplate{}, objections.ErrTemplateNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTemplateByID execution err")
		return entity.ObjectionTemplate{}, err
	}

	return makeTemplate(template), nil
}

func (r *templatesRepository) GetTemplatesForCompany(ctx context.Context, companyID int64) ([]entity.ObjectionTemplate, error) {
	return r.selectTemplates(ctx, queryGetTemplatesForCompany, map[string]interface{}{
		"company_id": companyID,
	})
}

func (r *templatesRepository) GetTemplatesByType(ctx context.Context, objectionType string, companyID int64) ([]entity.ObjectionTemplate, error) {
	return r.selectTemplates(ctx, queryGetTemplatesByType, map[string]interface{}{
		"objection_type": objectionType,
		"company_id":     companyID,
	})
}

func (r *templatesRepository) selectTemplates(ctx context.Context, namedQuery string, argsKV map[string]interface{}) ([]entity.ObjectionTemplate, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var templatesList []ObjectionTemplateDB

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("selectTemplates named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &templatesList, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("selectTemplates execution err")
		return nil, err
	}

	var result []entity.ObjectionTemplate
	for _, templateDB := range templatesList {
		result = append(result, makeTemplate(templateDB))
	}

	return result, nil
}

func (r *templatesRepository) DeleteTemplate(ctx context.Context, id int64) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteTemplate, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteTemplate named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteTemplate execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteTemplate rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
		}).Warn("DeleteTemplate no rows affected")
		return objections.ErrTemplateNotFound
	}

	return nil
}

func makeTemplate(template ObjectionTemplateDB) entity.ObjectionTemplate {
	return entity.ObjectionTemplate{
		ID:               template.ID.Int64,
		ObjectionType:    template.ObjectionType.String,
		ObjectionText:    template.ObjectionText.String,
		ResponseTemplate: template.ResponseTemplate.String,
		CompanyID:        template.CompanyID.Int64,
		IsDefault:        template.IsDefault.Bool,
		CreatedAt:        template.CreatedAt,
	}
}
