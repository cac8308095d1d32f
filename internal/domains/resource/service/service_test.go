package service_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"catalog/config"
	"catalog/infras/otel/mocks"
	resourceMocks "catalog/internal/domains/resource/mocks"
	"catalog/internal/domains/resource/model"
	"catalog/internal/domains/resource/model/dto"
	"catalog/internal/domains/resource/service"
	"catalog/shared/cache"
	gDto "catalog/shared/dto"
	"catalog/shared/failure"
	gModel "catalog/shared/model"
	"catalog/shared/timezone"
)

// missCache never hits and accepts every write, keeping the async cache
// goroutines deterministic under test.
type missCache struct{}

func (missCache) Save(_ context.Context, _ string, _ any, _ int) error { return nil }
func (missCache) Get(_ context.Context, _ string, _ any) error         { return cache.Nil }
func (missCache) Delete(_ context.Context, _ string) error             { return nil }
func (missCache) Clear(_ context.Context, _ string) error              { return nil }

func intPtr(v int) *int { return &v }

func uniqueViolation() error {
	return fmt.Errorf("failed to insert data (resource): %w", &pq.Error{Code: "23505"})
}

func validResource() model.Resource {
	return model.Resource{
		ID:        42,
		Name:      "Reading Room A",
		Type:      model.TypeRoom,
		Capacity:  8,
		Floor:     2,
		Amenities: pq.StringArray{"whiteboard", "projector"},
		Status:    model.StatusAvailable,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
			UpdatedAt: timezone.Now(),
		},
	}
}

func TestResourceService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := resourceMocks.NewMockResource(ctrl)
	mockPublisher := resourceMocks.NewMockPublisherResource(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	svc := service.New(mockRepo, mockPublisher, cfg, missCache{}, mockOtel)

	req := dto.CreateResourceRequest{
		Name:      "Reading Room A",
		Type:      model.TypeRoom,
		Capacity:  8,
		Floor:     intPtr(2),
		Amenities: []string{"whiteboard", "projector"},
	}

	tests := []struct {
		name      string
		setupMock func()
		wantCode  int
		wantErr   bool
	}{
		{
			name: "successful create",
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(int64(42), nil)

				mockPublisher.EXPECT().
					ResourceCreated(gomock.Any(), gomock.Any())
			},
			wantErr: false,
		},
		{
			name: "name already taken",
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(int64(0), uniqueViolation())
			},
			wantCode: http.StatusConflict,
			wantErr:  true,
		},
		{
			name: "repository failure",
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(int64(0), errors.New("connection refused"))
			},
			wantCode: http.StatusInternalServerError,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Create(context.Background(), req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, int64(42), res.ID)
			assert.Equal(t, model.StatusAvailable, res.Status)
			assert.Equal(t, req.Name, res.Name)
		})
	}
}

func TestResourceService_CreateForcesAvailableStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := resourceMocks.NewMockResource(ctrl)
	mockPublisher := resourceMocks.NewMockPublisherResource(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockPublisher, &config.Config{}, missCache{}, mockOtel)

	var inserted model.Resource

	mockRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, mod model.Resource) (int64, error) {
			inserted = mod

			return 7, nil
		})

	mockPublisher.EXPECT().ResourceCreated(gomock.Any(), gomock.Any())

	_, err := svc.Create(context.Background(), dto.CreateResourceRequest{
		Name:     "Desk 7",
		Type:     model.TypeDesk,
		Capacity: 1,
		Floor:    intPtr(0),
	})

	assert.NoError(t, err)
	assert.Equal(t, model.StatusAvailable, inserted.Status)
	assert.False(t, inserted.CreatedAt.IsZero())
	assert.False(t, inserted.UpdatedAt.IsZero())
}

func TestResourceService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := resourceMocks.NewMockResource(ctrl)
	mockPublisher := resourceMocks.NewMockPublisherResource(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockPublisher, &config.Config{}, missCache{}, mockOtel)

	tests := []struct {
		name      string
		id        int64
		setupMock func()
		wantCode  int
		wantErr   bool
	}{
		{
			name: "resource found",
			id:   42,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validResource(), nil)
			},
			wantErr: false,
		},
		{
			name: "resource not found",
			id:   99,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Resource{}, nil)
			},
			wantCode: http.StatusNotFound,
			wantErr:  true,
		},
		{
			name: "repository failure",
			id:   42,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Resource{}, errors.New("connection refused"))
			},
			wantCode: http.StatusInternalServerError,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Get(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, int64(42), res.ID)
			assert.Equal(t, "Reading Room A", res.Name)
			assert.Equal(t, []string{"whiteboard", "projector"}, res.Amenities)
		})
	}
}

func TestResourceService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := resourceMocks.NewMockResource(ctrl)
	mockPublisher := resourceMocks.NewMockPublisherResource(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockPublisher, &config.Config{}, missCache{}, mockOtel)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldType,
				Operator: gDto.FilterOperatorEq,
				Value:    model.TypeRoom,
				Table:    model.TableName,
			},
		},
	}

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), filter).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Resource, error) {
			assert.Equal(t, model.FieldID, params.SortBy)
			assert.Equal(t, gDto.SortDirAsc, params.SortDir)

			return []model.Resource{validResource()}, nil
		})

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{}, filter)

	assert.NoError(t, err)
	assert.Len(t, res, 1)
	assert.Equal(t, int64(42), res[0].ID)
}

func TestResourceService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := resourceMocks.NewMockResource(ctrl)
	mockPublisher := resourceMocks.NewMockPublisherResource(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockPublisher, &config.Config{}, missCache{}, mockOtel)

	newName := "Reading Room B"

	tests := []struct {
		name      string
		req       dto.UpdateResourceRequest
		setupMock func()
		wantCode  int
		wantErr   bool
	}{
		{
			name: "successful partial update",
			req:  dto.UpdateResourceRequest{Name: &newName, Amenities: []string{"lamp"}},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validResource(), nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, &newName, fields[model.FieldName])
						assert.Equal(t, pq.StringArray{"lamp"}, fields[model.FieldAmenities])
						assert.Contains(t, fields, "updated_at")
						assert.NotContains(t, fields, model.FieldCapacity)

						return nil
					})

				updated := validResource()
				updated.Name = newName
				updated.Amenities = pq.StringArray{"lamp"}

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(updated, nil)

				mockPublisher.EXPECT().
					ResourceUpdated(gomock.Any(), gomock.Any())
			},
			wantErr: false,
		},
		{
			name: "resource not found",
			req:  dto.UpdateResourceRequest{Name: &newName},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Resource{}, nil)
			},
			wantCode: http.StatusNotFound,
			wantErr:  true,
		},
		{
			name: "name already taken",
			req:  dto.UpdateResourceRequest{Name: &newName},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validResource(), nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(uniqueViolation())
			},
			wantCode: http.StatusConflict,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Update(context.Background(), tt.req, 42)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, newName, res.Name)
			assert.Equal(t, []string{"lamp"}, res.Amenities)
		})
	}
}

func TestResourceService_UpdateSkipsBlankName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := resourceMocks.NewMockResource(ctrl)
	mockPublisher := resourceMocks.NewMockPublisherResource(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockPublisher, &config.Config{}, missCache{}, mockOtel)

	blankName := "  "
	capacity := 12

	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(validResource(), nil)

	mockRepo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
			assert.NotContains(t, fields, model.FieldName)
			assert.Equal(t, &capacity, fields[model.FieldCapacity])
			assert.Contains(t, fields, "updated_at")

			return nil
		})

	updated := validResource()
	updated.Capacity = capacity

	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(updated, nil)

	mockPublisher.EXPECT().
		ResourceUpdated(gomock.Any(), gomock.Any())

	req := dto.UpdateResourceRequest{Name: &blankName, Capacity: &capacity}

	res, err := svc.Update(context.Background(), req, 42)

	assert.NoError(t, err)
	assert.Equal(t, "Reading Room A", res.Name)
	assert.Equal(t, capacity, res.Capacity)
}

func TestResourceService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := resourceMocks.NewMockResource(ctrl)
	mockPublisher := resourceMocks.NewMockPublisherResource(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockPublisher, &config.Config{}, missCache{}, mockOtel)

	tests := []struct {
		name      string
		setupMock func()
		wantCode  int
		wantErr   bool
	}{
		{
			name: "successful delete",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)

				mockPublisher.EXPECT().
					ResourceDeleted(gomock.Any(), int64(42))
			},
			wantErr: false,
		},
		{
			name: "resource not found",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantCode: http.StatusNotFound,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Delete(context.Background(), 42)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestResourceService_SetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := resourceMocks.NewMockResource(ctrl)
	mockPublisher := resourceMocks.NewMockPublisherResource(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockPublisher, &config.Config{}, missCache{}, mockOtel)

	t.Run("overwrites status without emitting an event", func(t *testing.T) {
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, model.StatusUnavailable, fields[model.FieldStatus])
				assert.Contains(t, fields, "updated_at")

				return nil
			})

		err := svc.SetStatus(context.Background(), 42, model.StatusUnavailable)

		assert.NoError(t, err)
	})

	t.Run("resource not found", func(t *testing.T) {
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.SetStatus(context.Background(), 99, model.StatusAvailable)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
