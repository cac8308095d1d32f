package resource

import (
	"net/http"
	"strings"

	"catalog/infras/otel"
	"catalog/internal/domains/resource/model"
	"catalog/internal/domains/resource/model/dto"
	"catalog/internal/domains/resource/service"
	"catalog/shared"
	"catalog/shared/constant"
	gDto "catalog/shared/dto"
	"catalog/shared/failure"
	"catalog/shared/validator"
	"catalog/transport/http/middleware"
	"catalog/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	healthMessage = "Catalog Service is running!"

	oneofResourceType   = "omitempty,oneof=SEAT ROOM DESK EQUIPMENT"
	oneofResourceStatus = "omitempty,oneof=AVAILABLE MAINTENANCE UNAVAILABLE"
)

type Handler struct {
	service service.Resource
	auth    middleware.Auth
	otel    otel.Otel
}

func New(service service.Resource, auth middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		auth:    auth,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/resources", func(routerGroup chi.Router) {
		routerGroup.Get("/health", handler.Health)
		routerGroup.Get("/", handler.GetResources)
		routerGroup.Get("/{id}", handler.GetResourceByID)

		routerGroup.Group(func(protected chi.Router) {
			protected.Use(handler.auth.Auth)
			protected.Post("/", handler.CreateResource)
			protected.Put("/{id}", handler.UpdateResource)
			protected.Delete("/{id}", handler.DeleteResource)
		})
	})
}

// Health reports service liveness without touching any dependency.
// @Summary Health check
// @Produce plain
// @Success 200 {string} string "Catalog Service is running!"
// @Router /v1/resources/health [get]
func (handler *Handler) Health(writer http.ResponseWriter, request *http.Request) {
	response.WithText(writer, http.StatusOK, healthMessage)
}

// CreateResource handles the creation of a new resource.
// @Summary Create a new resource
// @Tags Resource
// @Accept json
// @Produce json
// @Param request body dto.CreateResourceRequest true "Resource fields"
// @Success 201 {object} response.Data[dto.ResourceResponse] "Created resource"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/resources [post]
// @Security BearerAuth
func (handler *Handler) CreateResource(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateResource")
	defer scope.End()

	var req dto.CreateResourceRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create resource")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Resource created successfully")

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetResources retrieves resources with optional filtering.
// A non-blank search term takes precedence over every other filter; type and
// floor may each be combined with status; a lone status matches exactly.
// @Summary Get all resources
// @Tags Resource
// @Produce json
// @Param type query string false "Filter by type"
// @Param floor query integer false "Filter by floor"
// @Param status query string false "Filter by status"
// @Param search query string false "Case-insensitive name search"
// @Success 200 {object} response.Data[dto.GetResourcesResponse] "List of resources"
// @Failure 400 {object} response.Error
// @Router /v1/resources [get]
func (handler *Handler) GetResources(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetResources")
	defer scope.End()

	filterGroup, err := buildListFilter(request)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build resource filter")

		response.WithError(writer, err)

		return
	}

	resources, err := handler.service.GetAll(ctx, gDto.QueryParams{}, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get resources")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Resources retrieved successfully")

	response.WithJSON(writer, http.StatusOK, resources)
}

// GetResourceByID retrieves a resource by its ID.
// @Summary Get a resource by ID
// @Tags Resource
// @Produce json
// @Param id path integer true "Resource ID"
// @Success 200 {object} response.Data[dto.ResourceResponse] "Resource details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/resources/{id} [get]
func (handler *Handler) GetResourceByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetResourceByID")
	defer scope.End()

	id, err := shared.ConvertStringToInt64(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, failure.BadRequestFromString("invalid resource id"))

		return
	}

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get resource")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// UpdateResource applies a partial update to a resource.
// @Summary Update a resource
// @Tags Resource
// @Accept json
// @Produce json
// @Param id path integer true "Resource ID"
// @Param request body dto.UpdateResourceRequest true "Fields to update"
// @Success 200 {object} response.Data[dto.ResourceResponse] "Updated resource"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/resources/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateResource(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateResource")
	defer scope.End()

	id, err := shared.ConvertStringToInt64(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, failure.BadRequestFromString("invalid resource id"))

		return
	}

	var req dto.UpdateResourceRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update resource")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Resource updated successfully")

	response.WithJSON(writer, http.StatusOK, res)
}

// DeleteResource removes a resource permanently.
// @Summary Delete a resource
// @Tags Resource
// @Param id path integer true "Resource ID"
// @Success 204 "No content"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/resources/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteResource(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteResource")
	defer scope.End()

	id, err := shared.ConvertStringToInt64(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, failure.BadRequestFromString("invalid resource id"))

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete resource")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Resource deleted successfully")

	response.WithNoContent(writer)
}

func buildListFilter(request *http.Request) (gDto.FilterGroup, error) {
	query := request.URL.Query()

	search := query.Get(constant.RequestParamSearch)
	typeParam := query.Get(constant.RequestParamType)
	floorParam := query.Get(constant.RequestParamFloor)
	statusParam := query.Get(constant.RequestParamStatus)

	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	statusFilter := func() (gDto.Filter, error) {
		if err := validator.ValidateVar(statusParam, oneofResourceStatus); err != nil {
			return gDto.Filter{}, err
		}

		return gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    statusParam,
			Table:    model.TableName,
		}, nil
	}

	switch {
	case strings.TrimSpace(search) != "":
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    search,
			Table:    model.TableName,
		})
	case typeParam != "":
		if err := validator.ValidateVar(typeParam, oneofResourceType); err != nil {
			return filterGroup, err
		}

		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldType,
			Operator: gDto.FilterOperatorEq,
			Value:    typeParam,
			Table:    model.TableName,
		})

		if statusParam != "" {
			filter, err := statusFilter()
			if err != nil {
				return filterGroup, err
			}

			filterGroup.Filters = append(filterGroup.Filters, filter)
		}
	case floorParam != "":
		floor, err := shared.ConvertStringToInt(floorParam)
		if err != nil {
			return filterGroup, failure.BadRequestFromString("invalid floor value") //nolint:wrapcheck
		}

		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldFloor,
			Operator: gDto.FilterOperatorEq,
			Value:    floor,
			Table:    model.TableName,
		})

		if statusParam != "" {
			filter, err := statusFilter()
			if err != nil {
				return filterGroup, err
			}

			filterGroup.Filters = append(filterGroup.Filters, filter)
		}
	case statusParam != "":
		filter, err := statusFilter()
		if err != nil {
			return filterGroup, err
		}

		filterGroup.Filters = append(filterGroup.Filters, filter)
	}

	return filterGroup, nil
}
