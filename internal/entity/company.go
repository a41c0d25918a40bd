package entity

import "time"

type Company struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	UserID    string    `db:"user_id"`
	CreatedAt time.Time `db:"created_at"`
}

type BrandVoice struct {
	ID              int64     `db:"id"`
	Name            string    `db:"name"`
	CompanyID       int64     `db:"company_id"`
	VoiceType       string    `db:"voice_type"`
	Description     string    `db:"description"`
	TrainingPrompts []string  `db:"training_prompts"`
	CreatedAt       time.Time `db:"created_at"`
}

type TrainingData struct {
	ID        int64             `db:"id"`
	CompanyID int64             `db:"company_id"`
	DataType  string            `db:"data_type"`
	Content   string            `db:"content"`
	Metadata  map[string]string `db:"metadata"`
	CreatedAt time.Time         `db:"created_at"`
}

type MemoryData struct {
	ID          int64             `db:"id"`
	CompanyID   int64             `db:"company_id"`
	MemoryType  string            `db:"memory_type"`
	MemoryKey   string            `db:"memory_key"`
	MemoryValue string            `db:"memory_value"`
	Metadata    map[string]string `db:"metadata"`
	CreatedAt   time.Time         `db:"created_at"`
	UpdatedAt   time.Time         `db:"updated_at"`
}
