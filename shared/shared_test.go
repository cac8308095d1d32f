package shared_test

import (
	"context"
	"testing"
	"time"

	"catalog/shared"
	cacheMocks "catalog/shared/cache/mocks"
	"catalog/shared/constant"
	"catalog/shared/dto"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestConvertStringToInt(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
		wantErr  bool
	}{
		{name: "valid number", input: "42", expected: 42},
		{name: "zero", input: "0", expected: 0},
		{name: "negative number", input: "-3", expected: -3},
		{name: "not a number", input: "floor", wantErr: true},
		{name: "empty string", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := shared.ConvertStringToInt(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

func TestConvertStringToInt64(t *testing.T) {
	result, err := shared.ConvertStringToInt64("9001")

	assert.NoError(t, err)
	assert.Equal(t, int64(9001), result)

	_, err = shared.ConvertStringToInt64("abc")
	assert.Error(t, err)
}

func TestTransformFields(t *testing.T) {
	type updateRequest struct {
		Name     string `db:"name"`
		Capacity *int   `db:"capacity"`
		Floor    *int   `db:"floor"`
		Ignored  string
	}

	capacity := 6
	floor := 0
	req := updateRequest{
		Name:     "Study Room B",
		Capacity: &capacity,
		Floor:    &floor,
		Ignored:  "not tagged",
	}

	fields := shared.TransformFields(req)

	assert.Equal(t, "Study Room B", fields["name"])
	assert.Equal(t, &capacity, fields["capacity"])
	assert.Equal(t, &floor, fields["floor"], "pointer to zero must survive the zero-value check")
	assert.NotContains(t, fields, "Ignored")

	updatedAt, ok := fields[constant.FieldUpdatedAt].(time.Time)
	assert.True(t, ok, "expected updated_at to be stamped")
	assert.False(t, updatedAt.IsZero())
}

func TestTransformFields_SkipsUnsetFields(t *testing.T) {
	type updateRequest struct {
		Name  string `db:"name"`
		Floor *int   `db:"floor"`
	}

	fields := shared.TransformFields(updateRequest{})

	assert.NotContains(t, fields, "name")
	assert.NotContains(t, fields, "floor")
	assert.Contains(t, fields, constant.FieldUpdatedAt)
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID(7, "id", "resources")

	where, args := group.GetWhereClause()

	assert.Equal(t, "(resources.id = :id)", where)
	assert.Equal(t, map[string]any{"id": int64(7)}, args)
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "resource:get:7", shared.BuildCacheKey("resource:get", "7"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{SortBy: "id", SortDir: dto.SortDirAsc}
	typeFilter := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "type", Value: "ROOM", Operator: dto.FilterOperatorEq},
		},
	}
	statusFilter := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "status", Value: "AVAILABLE", Operator: dto.FilterOperatorEq},
		},
	}

	first := shared.BuildCacheKeyWithQuery("resource:gets", params, typeFilter)
	second := shared.BuildCacheKeyWithQuery("resource:gets", params, typeFilter)
	third := shared.BuildCacheKeyWithQuery("resource:gets", params, statusFilter)

	assert.Equal(t, first, second, "same query shape must produce the same key")
	assert.NotEqual(t, first, third, "different filters must not collide")
	assert.Contains(t, first, "resource:gets:")
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().
		Clear(gomock.Any(), "resource:gets*").
		Return(nil)

	shared.InvalidateCaches(context.Background(), mockCache, "resource:gets")
}

func TestInvalidateCaches_SwallowsClearFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().
		Clear(gomock.Any(), "resource:get*").
		Return(assert.AnError)

	assert.NotPanics(t, func() {
		shared.InvalidateCaches(context.Background(), mockCache, "resource:get")
	})
}
