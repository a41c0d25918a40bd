package scriptRepository

const (
	queryCreateScript = `
		INSERT INTO scripts (
			company_id,
			brand_voice_id,
			script_type,
			audience,
			tone,
			product_info,
			format_type,
			handle_objections,
			use_training_data,
			generated_script,
			metadata,
			created_at
		) VALUES (
			:company_id,
			:brand_voice_id,
			:script_type,
			:audience,
			:tone,
			:product_info,
			:format_type,
			:handle_objections,
			:use_training_data,
			:generated_script,
			:metadata,
			:created_at
		)
		RETURNING id
	`

	queryGetScriptByID = `
		SELECT
			id,
			company_id,
			brand_voice_id,
			script_type,
			audience,
			tone,
			product_info,
			format_type,
			handle_objections,
			use_training_data,
			generated_script,
			metadata,
			created_at
		FROM scripts
		WHERE id = :id
	`

	queryGetScriptsByCompany = `
		SELECT
			id,
			company_id,
			brand_voice_id,
			script_type,
			audience,
			tone,
			product_info,
			format_type,
			handle_objections,
			use_training_data,
			generated_script,
			metadata,
			created_at
		FROM scripts
		WHERE company_id = :company_id
		ORDER BY created_at DESC
		LIMIT :limit OFFSET :offset
	`

	queryCountScriptsByCompany = `
		SELECT COUNT(*)
		FROM scripts
		WHERE company_id = :company_id
	`

	queryDeleteScript = `
		DELETE FROM scripts
		WHERE id = :id
	`

	queryCreateLibraryEntry = `
		INSERT INTO script_library (
			script_id,
			title,
			tags,
			is_favorite,
			usage_count,
			created_at
		) VALUES (
			:script_id,
			:title,
			:tags,
			:is_favorite,
			:usage_count,
			:created_at
		)
		RETURNING id
	`

	queryGetLibraryEntryByID = `
		SELECT
			id,
			script_id,
			title,
			tags,
			is_favorite,
			usage_count,
			created_at
		FROM script_library
		WHERE id = :id
	`

	queryGetLibraryEntriesByCompany = `
		SELECT
			sl.id,
			sl.script_id,
			sl.title,
			sl.tags,
			sl.is_favorite,
			sl.usage_count,
			sl.created_at
		FROM script_library sl
		JOIN scripts s ON s.id = sl.script_id
		WHERE s.company_id = :company_id
		ORDER BY sl.is_favorite DESC, sl.created_at DESC
	`

	querySetLibraryFavorite = `
		UPDATE script_library
		SET is_favorite = :is_favorite
		WHERE id = :id
	`

	queryIncrementLibraryUsage = `
		UPDATE script_library
		SET usage_count = usage_count + 1
		WHERE id = :id
	`

	queryDeleteLibraryEntry = `
		DELETE FROM script_library
		WHERE id = :id
	`
)
