package repository

//go:generate go run go.uber.org/mock/mockgen -source=./line.go -destination=../mocks/line_mock.go -package=mocks

import (
	"context"
	"innkeeper/infras/otel"
	"innkeeper/infras/postgres"
	"innkeeper/internal/domains/booking/model"
	gDto "innkeeper/shared/dto"
	gRepo "innkeeper/shared/repository"

	"github.com/jmoiron/sqlx"
)

type RoomTypeLine interface {
	Insert(ctx context.Context, model model.RoomTypeLine) error
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.RoomTypeLine) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.RoomTypeLine, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.RoomTypeLine, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) error
}

type lineRepositoryImpl struct {
	gRepo.Repository[model.RoomTypeLine]
	db   *postgres.Connection
	otel otel.Otel
}

func NewLine(db *postgres.Connection, otel otel.Otel) RoomTypeLine {
	return &lineRepositoryImpl{
		Repository: gRepo.NewRepository[model.RoomTypeLine](model.LineEntityName, model.LineTableName, model.LineFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
