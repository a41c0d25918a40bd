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
	"github.com/sirupsen/logrus"
)

type LibraryEntryDB struct {
	ID         sql.NullInt64  `db:"id"`
	ScriptID   sql.NullInt64  `db:"script_id"`
	Title      sql.NullString `db:"title"`
	Tags       sql.NullString `db:"tags"`
	IsFavorite sql.NullBool   `db:"is_favorite"`
	UsageCount sql.NullInt64  `db:"usage_count"`
	CreatedAt  time.Time      `db:"created_at"`
}

func (r *libraryRepository) CreateEntry(ctx context.Context, entry entity.ScriptLibraryEntry) (int64, error) {
	requestID := contextPkg.GetRequestID(ctx)

	tags, err := json.Marshal(entry.Tags)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateEntry tags marshal err")
		return 0, err
	}

	argsKV := map[string]interface{}{
		"script_id":   entry.ScriptID,
		"title":       entry.Title,
		"tags":        string(tags),
		"is_favorite": entry.IsFavorite,
		"usage_count": entry.UsageCount,
		"created_at":  entry.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreateLibraryEntry, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateEntry named query preparation err")
		return 0, err
	}
	query = r.q.Rebind(query)

	var id int64
	if err := r.q.QueryRowxContext(ctx, query, args...).Scan(&id); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when saving library entry")
		return 0, err
	}

	return id, nil
}

func (r *libraryRepository) GetEntryByID(ctx context.Context, id int64) (entity.ScriptLibraryEntry, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var entry LibraryEntryDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetLibraryEntryByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetEntryByID named query preparation err")
		return entity.ScriptLibraryEntry{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&entry); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("GetEntryByID no rows found")
			return entity.ScriptLibraryEntry{}, scripts.ErrLibraryEntryNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetEntryByID execution err")
		return entity.ScriptLibraryEntry{}, err
	}

	return r.makeEntry(requestID, entry), nil
}

func (r *libraryRepository) GetEntriesByCompany(ctx context.Context, companyID int64) ([]entity.ScriptLibraryEntry, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var entriesList []LibraryEntryDB

	argsKV := map[string]interface{}{
		"company_id": companyID,
	}

	query, args, err := sqlx.Named(queryGetLibraryEntriesByCompany, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetEntriesByCompany named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &entriesList, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetEntriesByCompany execution err")
		return nil, err
	}

	var result []entity.ScriptLibraryEntry
	for _, entryDB := range entriesList {
		result = append(result, r.makeEntry(requestID, entryDB))
	}

	return result, nil
}

func (r *libraryRepository) SetFavorite(ctx context.Context, id int64, favorite bool) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":          id,
		"is_favorite": favorite,
	}

	query, args, err := sqlx.Named(querySetLibraryFavorite, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("SetFavorite named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("SetFavorite execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("SetFavorite rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
		}).Warn("SetFavorite no rows affected")
		return scripts.ErrLibraryEntryNotFound
	}

	return nil
}

func (r *libraryRepository) IncrementUsage(ctx context.Context, id int64) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryIncrementLibraryUsage, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("IncrementUsage named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("IncrementUsage execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("IncrementUsage rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
		}).Warn("IncrementUsage no rows affected")
		return scripts.ErrLibraryEntryNotFound
	}

	return nil
}

func (r *libraryRepository) DeleteEntry(ctx context.Context, id int64) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteLibraryEntry, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteEntry named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteEntry execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteEntry rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
		}).Warn("DeleteEntry no rows affected")
		return scripts.ErrLibraryEntryNotFound
	}

	return nil
}

func (r *libraryRepository) makeEntry(requestID string, entry LibraryEntryDB) entity.ScriptLibraryEntry {
	var tags []string
	if entry.Tags.Valid && entry.Tags.String != "" {
		if err := json.Unmarshal([]byte(entry.Tags.String), &tags); err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("makeEntry tags unmarshal err")
		}
	}

	return entity.ScriptLibraryEntry{
		ID:         entry.ID.Int64,
		ScriptID:   entry.ScriptID.Int64,
		Title:      entry.Title.String,
		Tags:       tags,
		IsFavorite: entry.IsFavorite.Bool,
		UsageCount: entry.UsageCount.Int64,
		CreatedAt:  entry.CreatedAt,
	}
}
