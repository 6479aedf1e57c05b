package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"campusbook/infras/otel"
	"campusbook/infras/postgres"
	"campusbook/internal/domains/venue/model"
	gDto "campusbook/shared/dto"
	gRepo "campusbook/shared/repository"
)

type Venue interface {
	Insert(ctx context.Context, model model.Venue) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Venue, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Venue, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Venue]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Venue {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Venue](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
