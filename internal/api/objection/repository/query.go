package objectionRepository

const (
	queryCreateTemplate = `
		INSERT INTO objection_templates (
			objection_type,
			objection_text,
			response_template,
			company_id,
			is_default,
			created_at
		) VALUES (
			:objection_type,
			:objection_text,
			:response_template,
			:company_id,
			:is_default,
			:created_at
		)
		RETURNING id
	`

	queryGetTemplateByID = `
		SELECT
			id,
			objection_type,
			objection_text,
			response_template,
			company_id,
			is_default,
			created_at
		FROM objection_templates
		WHERE id = :id
	`

	queryGetTemplatesForCompany = `
		SELECT
			id,
			objection_type,
			objection_text,
			response_template,
			company_id,
			is_default,
			created_at
		FROM objection_templates
		WHERE company_id = :company_id OR is_default = TRUE
		ORDER BY is_default ASC, created_at DESC
	`

	queryGetTemplatesByType = `
		SELECT
			id,
			objection_type,
			objection_text,
			response_template,
			company_id,
			is_default,
			created_at
		FROM objection_templates
		WHERE objection_type = :objection_type
		  AND (company_id = :company_id OR is_default = TRUE)
		ORDER BY is_default ASC, created_at DESC
	`

	queryDeleteTemplate = `
		DELETE FROM objection_templates
		WHERE id = :id
	`
)
