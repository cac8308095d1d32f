package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Resource=MockServiceResource

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"catalog/config"
	"catalog/infras/otel"
	"catalog/internal/domains/resource/model"
	"catalog/internal/domains/resource/model/dto"
	"catalog/internal/domains/resource/publisher"
	"catalog/internal/domains/resource/repository"
	"catalog/shared"
	"catalog/shared/cache"
	"catalog/shared/constant"
	gDto "catalog/shared/dto"
	"catalog/shared/failure"
	"catalog/shared/timezone"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetResource    = "resource:get"
	cacheGetAllResource = "resource:gets"

	msgResourceNotFound  = "resource not found"
	msgResourceNameTaken = "resource name already exists"
)

type Resource interface {
	Create(ctx context.Context, req dto.CreateResourceRequest) (dto.ResourceResponse, error)
	Get(ctx context.Context, id int64) (dto.ResourceResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetResourcesResponse, error)
	Update(ctx context.Context, req dto.UpdateResourceRequest, id int64) (dto.ResourceResponse, error)
	Delete(ctx context.Context, id int64) error
	SetStatus(ctx context.Context, id int64, status string) error
}

type serviceImpl struct {
	repo      repository.Resource
	publisher publisher.Resource
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(repo repository.Resource, pub publisher.Resource, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Resource {
	return &serviceImpl{
		repo:      repo,
		publisher: pub,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateResourceRequest) (res dto.ResourceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	mod := req.ToModel()

	id, err := s.repo.Insert(ctx, mod)
	if err != nil {
		if isUniqueViolation(err) {
			log.Error().Str("name", req.Name).Msg("resource name already exists")

			return res, failure.Conflict(msgResourceNameTaken) //nolint:wrapcheck
		}

		return res, err
	}

	mod.ID = id
	res.FromModel(mod)

	s.publisher.ResourceCreated(ctx, res)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllResource)
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.ResourceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetResource, strconv.FormatInt(id, 10))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for resource")

		return res, nil
	}

	resource, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get resource")

		return res, fmt.Errorf("failed to get resource: %w", err)
	}

	if resource.ID == 0 {
		return res, failure.NotFound(msgResourceNotFound) //nolint:wrapcheck
	}

	res.FromModel(resource)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save resource to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetResourcesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	if params.SortBy == "" {
		params.SortBy = model.FieldID
		params.SortDir = gDto.SortDirAsc
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllResource, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for resources")

		return res, nil
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get resources")

		return res, fmt.Errorf("failed to get resources: %w", err)
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save resources to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateResourceRequest, id int64) (res dto.ResourceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check resource existence")

		return res, err
	}

	if current.ID == 0 {
		log.Error().Int64("id", id).Msg("resource not found")

		return res, failure.NotFound(msgResourceNotFound) //nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req)

	// A blank name never overwrites the stored one.
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		delete(updatedFields, model.FieldName)
	}

	if req.Amenities != nil {
		updatedFields[model.FieldAmenities] = pq.StringArray(req.Amenities)
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		if isUniqueViolation(err) {
			log.Error().Int64("id", id).Msg("resource name already exists")

			return res, failure.Conflict(msgResourceNameTaken) //nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to update resource")

		return res, fmt.Errorf("failed to update resource: %w", err)
	}

	updated, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to reload resource")

		return res, fmt.Errorf("failed to reload resource: %w", err)
	}

	res.FromModel(updated)

	s.publisher.ResourceUpdated(ctx, res)

	s.invalidateResourceCaches(ctx, id)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if resource exists")

		return fmt.Errorf("failed to check if resource exists: %w", err)
	}

	if !exist {
		log.Error().Int64("id", id).Msg("resource not found")

		return failure.NotFound(msgResourceNotFound) //nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete resource")

		return fmt.Errorf("failed to delete resource: %w", err)
	}

	s.publisher.ResourceDeleted(ctx, id)

	s.invalidateResourceCaches(ctx, id)

	return nil
}

// SetStatus serves the booking event path. It overwrites the status without
// emitting a resource lifecycle event, so a status sync never echoes back
// onto the bus.
func (s *serviceImpl) SetStatus(ctx context.Context, id int64, status string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if resource exists")

		return fmt.Errorf("failed to check if resource exists: %w", err)
	}

	if !exist {
		log.Error().Int64("id", id).Msg("resource not found")

		return failure.NotFound(msgResourceNotFound) //nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldStatus:       status,
		constant.FieldUpdatedAt: timezone.Now(),
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Int64("id", id).Str("status", status).Msg("failed to set resource status")

		return fmt.Errorf("failed to set resource status: %w", err)
	}

	s.invalidateResourceCaches(ctx, id)

	return nil
}

func (s *serviceImpl) invalidateResourceCaches(ctx context.Context, id int64) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetResource, strconv.FormatInt(id, 10))); err != nil {
			log.Error().Err(err).Msg("failed to delete resource cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllResource)
	}()
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error

	return errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation
}
