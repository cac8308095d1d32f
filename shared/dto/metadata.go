package dto

import (
	"catalog/shared/constant"
	"catalog/shared/model"
	"catalog/shared/timezone"
)

type Metadata struct {
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func (m *Metadata) FromModel(model model.Metadata) {
	m.CreatedAt = timezone.Format(model.CreatedAt, constant.DateFormat)
	m.UpdatedAt = timezone.Format(model.UpdatedAt, constant.DateFormat)
}
