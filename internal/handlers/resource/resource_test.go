package resource_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"catalog/config"
	"catalog/infras/jwt"
	"catalog/infras/otel/mocks"
	resourceMocks "catalog/internal/domains/resource/mocks"
	"catalog/internal/domains/resource/model"
	"catalog/internal/domains/resource/model/dto"
	resourceHandler "catalog/internal/handlers/resource"
	gDto "catalog/shared/dto"
	"catalog/shared/failure"
	"catalog/transport/http/middleware"
)

func setupRouter(t *testing.T) (chi.Router, *resourceMocks.MockServiceResource) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockService := resourceMocks.NewMockServiceResource(ctrl)
	mockOtel := mocks.NewOtel()

	// Empty access secret disables authentication.
	cfg := &config.Config{}
	auth := middleware.NewAuthMiddleware(jwt.New(cfg), mockOtel, cfg)

	handler := resourceHandler.New(mockService, auth, mockOtel)

	router := chi.NewRouter()
	handler.Router(router)

	return router, mockService
}

func TestHandler_Health(t *testing.T) {
	router, _ := setupRouter(t)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/resources/health", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "Catalog Service is running!", recorder.Body.String())
}

func TestHandler_CreateResource(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(svc *resourceMocks.MockServiceResource)
		wantCode  int
	}{
		{
			name: "successful create",
			body: `{"name":"Reading Room A","type":"ROOM","capacity":8,"floor":2}`,
			setupMock: func(svc *resourceMocks.MockServiceResource) {
				svc.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(dto.ResourceResponse{ID: 42, Name: "Reading Room A"}, nil)
			},
			wantCode: http.StatusCreated,
		},
		{
			name:      "missing name",
			body:      `{"type":"ROOM","capacity":8,"floor":2}`,
			setupMock: func(svc *resourceMocks.MockServiceResource) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "unknown type",
			body:      `{"name":"Reading Room A","type":"GARAGE","capacity":8,"floor":2}`,
			setupMock: func(svc *resourceMocks.MockServiceResource) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "malformed body",
			body:      `{"name":`,
			setupMock: func(svc *resourceMocks.MockServiceResource) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "duplicate name",
			body: `{"name":"Reading Room A","type":"ROOM","capacity":8,"floor":2}`,
			setupMock: func(svc *resourceMocks.MockServiceResource) {
				svc.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(dto.ResourceResponse{}, failure.Conflict("resource name already exists"))
			},
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockService := setupRouter(t)
			tt.setupMock(mockService)

			request := httptest.NewRequest(http.MethodPost, "/resources/", strings.NewReader(tt.body))
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantCode, recorder.Code)
		})
	}
}

func TestHandler_GetResourceByID(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		setupMock func(svc *resourceMocks.MockServiceResource)
		wantCode  int
	}{
		{
			name: "resource found",
			path: "/resources/42",
			setupMock: func(svc *resourceMocks.MockServiceResource) {
				svc.EXPECT().
					Get(gomock.Any(), int64(42)).
					Return(dto.ResourceResponse{ID: 42}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "resource not found",
			path: "/resources/99",
			setupMock: func(svc *resourceMocks.MockServiceResource) {
				svc.EXPECT().
					Get(gomock.Any(), int64(99)).
					Return(dto.ResourceResponse{}, failure.NotFound("resource not found"))
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:      "invalid id",
			path:      "/resources/abc",
			setupMock: func(svc *resourceMocks.MockServiceResource) {},
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockService := setupRouter(t)
			tt.setupMock(mockService)

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantCode, recorder.Code)
		})
	}
}

func filterFields(t *testing.T, group gDto.FilterGroup) []string {
	t.Helper()

	fields := make([]string, 0, len(group.Filters))

	for _, f := range group.Filters {
		filter, ok := f.(gDto.Filter)
		assert.True(t, ok)

		fields = append(fields, filter.Field)
	}

	return fields
}

func TestHandler_GetResourcesFilterPrecedence(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantFields []string
		wantCode   int
	}{
		{
			name:       "no filter",
			query:      "",
			wantFields: []string{},
			wantCode:   http.StatusOK,
		},
		{
			name:       "search wins over every other filter",
			query:      "?search=room&type=ROOM&floor=2&status=AVAILABLE",
			wantFields: []string{model.FieldName},
			wantCode:   http.StatusOK,
		},
		{
			name:       "type with status is conjunctive",
			query:      "?type=ROOM&status=AVAILABLE",
			wantFields: []string{model.FieldType, model.FieldStatus},
			wantCode:   http.StatusOK,
		},
		{
			name:       "type wins over floor",
			query:      "?type=ROOM&floor=2",
			wantFields: []string{model.FieldType},
			wantCode:   http.StatusOK,
		},
		{
			name:       "floor with status is conjunctive",
			query:      "?floor=2&status=MAINTENANCE",
			wantFields: []string{model.FieldFloor, model.FieldStatus},
			wantCode:   http.StatusOK,
		},
		{
			name:       "status alone",
			query:      "?status=UNAVAILABLE",
			wantFields: []string{model.FieldStatus},
			wantCode:   http.StatusOK,
		},
		{
			name:       "blank search falls through to type",
			query:      "?search=%20&type=ROOM",
			wantFields: []string{model.FieldType},
			wantCode:   http.StatusOK,
		},
		{
			name:     "invalid floor",
			query:    "?floor=abc",
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "invalid status",
			query:    "?status=BROKEN",
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "invalid type",
			query:    "?type=GARAGE",
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockService := setupRouter(t)

			if tt.wantCode == http.StatusOK {
				mockService.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ interface{}, _ gDto.QueryParams, filter gDto.FilterGroup) (dto.GetResourcesResponse, error) {
						assert.ElementsMatch(t, tt.wantFields, filterFields(t, filter))

						return dto.GetResourcesResponse{}, nil
					})
			}

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/resources/"+tt.query, nil))

			assert.Equal(t, tt.wantCode, recorder.Code)
		})
	}
}

func TestHandler_UpdateResource(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		body      string
		setupMock func(svc *resourceMocks.MockServiceResource)
		wantCode  int
	}{
		{
			name: "successful update",
			path: "/resources/42",
			body: `{"name":"Reading Room B"}`,
			setupMock: func(svc *resourceMocks.MockServiceResource) {
				svc.EXPECT().
					Update(gomock.Any(), gomock.Any(), int64(42)).
					Return(dto.ResourceResponse{ID: 42, Name: "Reading Room B"}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "resource not found",
			path: "/resources/99",
			body: `{"name":"Reading Room B"}`,
			setupMock: func(svc *resourceMocks.MockServiceResource) {
				svc.EXPECT().
					Update(gomock.Any(), gomock.Any(), int64(99)).
					Return(dto.ResourceResponse{}, failure.NotFound("resource not found"))
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:      "invalid status value",
			path:      "/resources/42",
			body:      `{"status":"BROKEN"}`,
			setupMock: func(svc *resourceMocks.MockServiceResource) {},
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockService := setupRouter(t)
			tt.setupMock(mockService)

			request := httptest.NewRequest(http.MethodPut, tt.path, strings.NewReader(tt.body))
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantCode, recorder.Code)
		})
	}
}

func TestHandler_DeleteResource(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		setupMock func(svc *resourceMocks.MockServiceResource)
		wantCode  int
	}{
		{
			name: "successful delete",
			path: "/resources/42",
			setupMock: func(svc *resourceMocks.MockServiceResource) {
				svc.EXPECT().
					Delete(gomock.Any(), int64(42)).
					Return(nil)
			},
			wantCode: http.StatusNoContent,
		},
		{
			name: "resource not found",
			path: "/resources/99",
			setupMock: func(svc *resourceMocks.MockServiceResource) {
				svc.EXPECT().
					Delete(gomock.Any(), int64(99)).
					Return(failure.NotFound("resource not found"))
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockService := setupRouter(t)
			tt.setupMock(mockService)

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodDelete, tt.path, nil))

			assert.Equal(t, tt.wantCode, recorder.Code)
		})
	}
}
