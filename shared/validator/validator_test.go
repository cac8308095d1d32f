package validator_test

import (
	"net/http"
	"strings"
	"testing"

	"catalog/shared/failure"
	"catalog/shared/validator"

	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	Name     string `json:"name"     validate:"required,max=10"`
	Capacity int    `json:"capacity" validate:"required,min=1"`
	Status   string `json:"status"   validate:"omitempty,oneof=AVAILABLE MAINTENANCE UNAVAILABLE"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{
			name:    "valid payload",
			body:    `{"name":"Room A","capacity":4}`,
			wantErr: false,
		},
		{
			name:    "malformed json",
			body:    `{"name":`,
			wantErr: true,
		},
		{
			name:    "missing required field",
			body:    `{"capacity":4}`,
			wantErr: true,
		},
		{
			name:    "invalid enum value",
			body:    `{"name":"Room A","capacity":4,"status":"BROKEN"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req sampleRequest
			err := validator.Validate(strings.NewReader(tt.body), &req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateStruct_Messages(t *testing.T) {
	req := sampleRequest{Capacity: 4}

	err := validator.ValidateStruct(&req)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Name is required")
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("ROOM", "oneof=SEAT ROOM DESK EQUIPMENT"))
	assert.Error(t, validator.ValidateVar("GARAGE", "oneof=SEAT ROOM DESK EQUIPMENT"))
}
