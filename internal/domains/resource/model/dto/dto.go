package dto

import (
	"catalog/internal/domains/resource/model"
	gDto "catalog/shared/dto"
	gModel "catalog/shared/model"
	"catalog/shared/timezone"

	"github.com/lib/pq"
)

type CreateResourceRequest struct {
	Name      string   `json:"name"       validate:"required,max=255"`
	Type      string   `json:"type"       validate:"required,oneof=SEAT ROOM DESK EQUIPMENT"`
	Capacity  int      `json:"capacity"   validate:"required,min=1"`
	Floor     *int     `json:"floor"      validate:"required,min=0"`
	LocationX *float64 `json:"location_x" validate:"omitempty"`
	LocationY *float64 `json:"location_y" validate:"omitempty"`
	Amenities []string `json:"amenities"  validate:"omitempty"`
}

func (c *CreateResourceRequest) ToModel() model.Resource {
	floor := 0
	if c.Floor != nil {
		floor = *c.Floor
	}

	amenities := pq.StringArray{}
	if c.Amenities != nil {
		amenities = pq.StringArray(c.Amenities)
	}

	return model.Resource{
		Name:      c.Name,
		Type:      c.Type,
		Capacity:  c.Capacity,
		Floor:     floor,
		LocationX: c.LocationX,
		LocationY: c.LocationY,
		Amenities: amenities,
		Status:    model.StatusAvailable,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
			UpdatedAt: timezone.Now(),
		},
	}
}

// UpdateResourceRequest carries a partial update. Only non-nil fields
// override the stored record; the resource type is immutable.
type UpdateResourceRequest struct {
	Name      *string  `db:"name"       json:"name"       validate:"omitempty,max=255"`
	Capacity  *int     `db:"capacity"   json:"capacity"   validate:"omitempty,min=1"`
	Floor     *int     `db:"floor"      json:"floor"      validate:"omitempty,min=0"`
	LocationX *float64 `db:"location_x" json:"location_x" validate:"omitempty"`
	LocationY *float64 `db:"location_y" json:"location_y" validate:"omitempty"`
	Amenities []string `json:"amenities"                  validate:"omitempty"`
	Status    *string  `db:"status"     json:"status"     validate:"omitempty,oneof=AVAILABLE MAINTENANCE UNAVAILABLE"`
}

type ResourceResponse struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Type      string   `json:"type"`
	Capacity  int      `json:"capacity"`
	Floor     int      `json:"floor"`
	LocationX *float64 `json:"location_x"`
	LocationY *float64 `json:"location_y"`
	Amenities []string `json:"amenities"`
	Status    string   `json:"status"`
	gDto.Metadata
}

func (r *ResourceResponse) FromModel(model model.Resource) {
	r.ID = model.ID
	r.Name = model.Name
	r.Type = model.Type
	r.Capacity = model.Capacity
	r.Floor = model.Floor
	r.LocationX = model.LocationX
	r.LocationY = model.LocationY
	r.Amenities = []string(model.Amenities)
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetResourcesResponse []ResourceResponse

func (r *GetResourcesResponse) FromModels(models []model.Resource) {
	res := make(GetResourcesResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	*r = res
}
