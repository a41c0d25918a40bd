package entity

import "time"

type Script struct {
	ID               int64             `db:"id"`
	CompanyID        int64             `db:"company_id"`
	BrandVoiceID     int64             `db:"brand_voice_id"`
	ScriptType       string            `db:"script_type"`
	Audience         string            `db:"audience"`
	Tone             string            `db:"tone"`
	ProductInfo      string            `db:"product_info"`
	FormatType       string            `db:"format_type"`
	HandleObjections bool              `db:"handle_objections"`
	UseTrainingData  bool              `db:"use_training_data"`
	GeneratedScript  string            `db:"generated_script"`
	Metadata         map[string]string `db:"metadata"`
	CreatedAt        time.Time         `db:"created_at"`
}

type ScriptLibraryEntry struct {
	ID         int64     `db:"id"`
	ScriptID   int64     `db:"script_id"`
	Title      string    `db:"title"`
	Tags       []string  `db:"tags"`
	IsFavorite bool      `db:"is_favorite"`
	UsageCount int64     `db:"usage_count"`
	CreatedAt  time.Time `db:"created_at"`
}
