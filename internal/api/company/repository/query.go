package companyRepository

const (
	queryCreateCompany = `
		INSERT INTO companies (
			name,
			user_id,
			created_at
		) VALUES (
			:name,
			:user_id,
			:created_at
		)
		RETURNING id
	`

	queryGetCompanyByID = `
		SELECT
			id,
			name,
			user_id,
			created_at
		FROM companies
		WHERE id = :id
	`

	queryGetCompanyByName = `
		SELECT
			id,
			name,
			user_id,
			created_at
		FROM companies
		WHERE name = :name
	`

	queryGetCompaniesByUser = `
		SELECT
			id,
			name,
			user_id,
			created_at
		FROM companies
		WHERE user_id = :user_id
		ORDER BY created_at DESC
		LIMIT :limit OFFSET :offset
	`

	queryCountCompaniesByUser = `
		SELECT COUNT(*)
		FROM companies
		WHERE user_id = :user_id
	`

	queryDeleteCompany = `
		DELETE FROM companies
		WHERE id = :id
	`

	queryCreateBrandVoice = `
		INSERT INTO brand_voices (
			name,
			company_id,
			voice_type,
			description,
			training_prompts,
			created_at
		) VALUES (
			:name,
			:company_id,
			:voice_type,
			:description,
			:training_prompts,
			:created_at
		)
		RETURNING id
	`

	queryGetBrandVoiceByID = `
		SELECT
			id,
			name,
			company_id,
			voice_type,
			description,
			training_prompts,
			created_at
		FROM brand_voices
		WHERE id = :id
	`

	queryGetBrandVoicesByCompany = `
		SELECT
			id,
			name,
			company_id,
			voice_type,
			description,
			training_prompts,
			created_at
		FROM brand_voices
		WHERE company_id = :company_id
		ORDER BY created_at DESC
	`

	queryDeleteBrandVoice = `
		DELETE FROM brand_voices
		WHERE id = :id
	`

	queryCreateTrainingData = `
		INSERT INTO training_data (
			company_id,
			data_type,
			content,
			metadata,
			created_at
		) VALUES (
			:company_id,
			:data_type,
			:content,
			:metadata,
			:created_at
		)
		RETURNING id
	`

	queryGetTrainingDataByCompany = `
		SELECT
			id,
			company_id,
			data_type,
			content,
			metadata,
			created_at
		FROM training_data
		WHERE company_id = :company_id
		ORDER BY created_at DESC
	`

	queryGetTrainingDataByCompanyAndType = `
		SELECT
			id,
			company_id,
			data_type,
			content,
			metadata,
			created_at
		FROM training_data
		WHERE company_id = :company_id
		  AND data_type = :data_type
		ORDER BY created_at DESC
	`

	queryDeleteTrainingData = `
		DELETE FROM training_data
		WHERE id = :id
	`

	queryUpsertMemory = `
		INSERT INTO memory_data (
			company_id,
			memory_type,
			memory_key,
			memory_value,
			metadata,
			created_at,
			updated_at
		) VALUES (
			:company_id,
			:memory_type,
			:memory_key,
			:memory_value,
			:metadata,
			:created_at,
			:updated_at
		)
		ON CONFLICT (company_id, memory_key) DO UPDATE
		SET
			memory_type = EXCLUDED.memory_type,
			memory_value = EXCLUDED.memory_value,
			metadata = EXCLUDED.metadata,
			updated_at = EXCLUDED.updated_at
	`

	queryGetMemoryByKey = `
		SELECT
			id,
			company_id,
			memory_type,
			memory_key,
			memory_value,
			metadata,
			created_at,
			updated_at
		FROM memory_data
		WHERE company_id = :company_id
		  AND memory_key = :memory_key
	`

	queryGetMemoriesByCompany = `
		SELECT
			id,
			company_id,
			memory_type,
			memory_key,
			memory_value,
			metadata,
			created_at,
			updated_at
		FROM memory_data
		WHERE company_id = :company_id
		ORDER BY updated_at DESC
	`

	queryGetMemoriesByCompanyAndType = `
		SELECT
			id,
			company_id,
			memory_type,
			memory_key,
			memory_value,
			metadata,
			created_at,
			updated_at
		FROM memory_data
		WHERE company_id = :company_id
		  AND memory_type = :memory_type
		ORDER BY updated_at DESC
	`

	queryDeleteMemory = `
		DELETE FROM memory_data
		WHERE id = :id
	`
)
