package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"campusbook/infras/otel"
	"campusbook/infras/postgres"
	"campusbook/internal/domains/schedule/model"
	gDto "campusbook/shared/dto"
	gRepo "campusbook/shared/repository"
)

type Schedule interface {
	Insert(ctx context.Context, model model.SchedulePolicy) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.SchedulePolicy, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.SchedulePolicy]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Schedule {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.SchedulePolicy](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
