package repository

//go:generate go run go.uber.org/mock/mockgen -source=./calllog.go -destination=../mocks/calllog_mock.go -package=mocks

import (
	"context"
	"innkeeper/infras/otel"
	"innkeeper/infras/postgres"
	"innkeeper/internal/domains/booking/model"
	gDto "innkeeper/shared/dto"
	gRepo "innkeeper/shared/repository"
)

// CallLog is append-only: no update or delete of historical calls.
type CallLog interface {
	Insert(ctx context.Context, model model.CallLog) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.CallLog, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type callLogRepositoryImpl struct {
	gRepo.Repository[model.CallLog]
	db   *postgres.Connection
	otel otel.Otel
}

func NewCallLog(db *postgres.Connection, otel otel.Otel) CallLog {
	return &callLogRepositoryImpl{
		Repository: gRepo.NewRepository[model.CallLog](model.CallLogEntityName, model.CallLogTableName, model.CallLogFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
