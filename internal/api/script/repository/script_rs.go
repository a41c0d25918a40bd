package scriptRepository

import (
	"ScriptForge/internal/api/script"
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

type ScriptDB struct {
	ID               sql.NullInt64  `db:"id"`
	CompanyID        sql.NullInt64  `db:"company_id"`
	BrandVoiceID     sql.NullInt64  `db:"brand_voice_id"`
	ScriptType       sql.NullString `db:"script_type"`
	Audience         sql.NullString `db:"audience"`
	Tone             sql.NullString `db:"tone"`
	ProductInfo      sql.NullString `db:"product_info"`
	FormatType       sql.NullString `db:"format_type"`
	HandleObjections sql.NullBool   `db:"handle_objections"`
	UseTrainingData  sql.NullBool   `db:"use_training_data"`
	GeneratedScript  sql.NullString `db:"generated_script"`
	Metadata         sql.NullString `db:"metadata"`
	CreatedAt        time.Time      `db:"created_at"`
}

func (r *scriptsRepository) CreateScript(ctx context.Context, script entity.Script) (int64, error) {
	requestID := contextPkg.GetRequestID(ctx)

	metadata, err := json.Marshal(script.Metadata)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateScript metadata marshal err")
		return 0, err
	}

	var brandVoiceID interface{}
	if script.BrandVoiceID > 0 {
		brandVoiceID = script.BrandVoiceID
	}

	argsKV := map[string]interface{}{
		"company_id":        script.CompanyID,
		"brand_voice_id":    brandVoiceID,
		"script_type":       script.ScriptType,
		"audience":          script.Audience,
		"tone":              script.Tone,
		"product_info":      script.ProductInfo,
		"format_type":       script.FormatType,
		"handle_objections": script.HandleObjections,
		"use_training_data": script.UseTrainingData,
		"generated_script":  script.GeneratedScript,
		"metadata":          string(metadata),
		"created_at":        script.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreateScript, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateScript named query preparation err")
		return 0, err
	}
	query = r.q.Rebind(query)

	var id int64
	if err := r.q.QueryRowxContext(ctx, query, args...).Scan(&id); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when storing script")
		return 0, err
	}

	return id, nil
}

func (r *scriptsRepository) GetScriptByID(ctx context.Context, id int64) (entity.Script, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var script ScriptDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetScriptByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetScriptByID named query preparation err")
		return entity.Script{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&script); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("GetScriptByID no rows found")
			return entity.Script{}, scripts.ErrScriptNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetScriptByID execution err")
		return entity.Script{}, err
	}

	return r.makeScript(requestID, script), nil
}

func (r *scriptsRepository) GetScriptsByCompany(ctx context.Context, companyID int64, limit, offset int) ([]entity.Script, int, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var scriptsList []ScriptDB
	var total int

	countQuery, countArgs, err := sqlx.Named(queryCountScriptsByCompany, map[string]interface{}{
		"company_id": companyID,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountScriptsByCompany named query preparation err")
		return nil, 0, err
	}

	countQuery = r.q.Rebind(countQuery)

	if err := r.q.QueryRowxContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountScriptsByCompany execution err")
		return nil, 0, err
	}

	argsKV := map[string]interface{}{
		"company_id": companyID,
		"limit":      limit,
		"offset":     offset,
	}

	query, args, err := sqlx.Named(queryGetScriptsByCompany, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetScriptsByCompany named query preparation err")
		return nil, 0, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &scriptsList, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetScriptsByCompany execution err")
		return nil, 0, err
	}

	var result []entity.Script
	for _, scriptDB := range scriptsList {
		result = append(result, r.makeScript(requestID, scriptDB))
	}

	return result, total, nil
}

func (r *scriptsRepository) DeleteScript(ctx context.Context, id int64) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteScript, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteScript named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteScript execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteScript rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
		}).Warn("DeleteScript no rows affected")
		return scripts.ErrScriptNotFound
	}

	return nil
}

func (r *scriptsRepository) makeScript(requestID string, script ScriptDB) entity.Script {
	var metadata map[string]string
	if script.Metadata.Valid && script.Metadata.String != "" {
		if err := json.Unmarshal([]byte(script.Metadata.String), &metadata); err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("makeScript metadata unmarshal err")
		}
	}

	return entity.Script{
		ID:               script.ID.Int64,
		CompanyID:        script.CompanyID.Int64,
		BrandVoiceID:     script.BrandVoiceID.Int64,
		ScriptType:       script.ScriptType.String,
		Audience:         script.Audience.String,
		Tone:             script.Tone.String,
		ProductInfo:      script.ProductInfo.String,
		FormatType:       script.FormatType.String,
		HandleObjections: script.HandleObjections.Bool,
		UseTrainingData:  script.UseTrainingData.Bool,
		GeneratedScript:  script.GeneratedScript.String,
		Metadata:         metadata,
		CreatedAt:        script.CreatedAt,
	}
}
