package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"catalog/infras/otel"
	"catalog/infras/postgres"
	"catalog/internal/domains/resource/model"
	gDto "catalog/shared/dto"
	gRepo "catalog/shared/repository"
)

type Resource interface {
	Insert(ctx context.Context, model model.Resource) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Resource, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Resource, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Resource]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Resource {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Resource](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Insert persists the resource and returns the database-assigned id.
func (r *repositoryImpl) Insert(ctx context.Context, mod model.Resource) (int64, error) {
	return r.InsertReturning(ctx, mod)
}
