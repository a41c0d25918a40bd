package entity

import "time"

type ObjectionTemplate struct {
	ID               int64     `db:"id"`
	ObjectionType    string    `db:"objection_type"`
	ObjectionText    string    `db:"objection_text"`
	ResponseTemplate string    `db:"response_template"`
	CompanyID        int64     `db:"company_id"`
	IsDefault        bool      `db:"is_default"`
	CreatedAt        time.Time `db:"created_at"`
}
