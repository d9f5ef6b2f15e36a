package repository

//go:generate go run go.uber.org/mock/mockgen -source=./roomtype.go -destination=../mocks/roomtype_mock.go -package=mocks

import (
	"context"
	"innkeeper/infras/otel"
	"innkeeper/infras/postgres"
	"innkeeper/internal/domains/room/model"
	gDto "innkeeper/shared/dto"
	gRepo "innkeeper/shared/repository"
)

type RoomType interface {
	Insert(ctx context.Context, model model.RoomType) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.RoomType, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.RoomType, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type roomTypeRepositoryImpl struct {
	gRepo.Repository[model.RoomType]
	db   *postgres.Connection
	otel otel.Otel
}

func NewRoomType(db *postgres.Connection, otel otel.Otel) RoomType {
	return &roomTypeRepositoryImpl{
		Repository: gRepo.NewRepository[model.RoomType](model.RoomTypeEntityName, model.RoomTypeTableName, model.RoomTypeFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
