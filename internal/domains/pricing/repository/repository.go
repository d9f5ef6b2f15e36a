package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"innkeeper/infras/otel"
	"innkeeper/infras/postgres"
	"innkeeper/internal/domains/pricing/model"
	gDto "innkeeper/shared/dto"
	gRepo "innkeeper/shared/repository"
)

type RateOverride interface {
	Insert(ctx context.Context, model model.RateOverride) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.RateOverride, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type rateOverrideRepositoryImpl struct {
	gRepo.Repository[model.RateOverride]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) RateOverride {
	return &rateOverrideRepositoryImpl{
		Repository: gRepo.NewRepository[model.RateOverride](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type Promotion interface {
	Insert(ctx context.Context, model model.Promotion) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Promotion, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type promotionRepositoryImpl struct {
	gRepo.Repository[model.Promotion]
	db   *postgres.Connection
	otel otel.Otel
}

func NewPromotion(db *postgres.Connection, otel otel.Otel) Promotion {
	return &promotionRepositoryImpl{
		Repository: gRepo.NewRepository[model.Promotion](model.PromotionEntityName, model.PromotionTableName, model.PromotionFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
