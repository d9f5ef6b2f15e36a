package repository

//go:generate go run go.uber.org/mock/mockgen -source=./assignment.go -destination=../mocks/assignment_mock.go -package=mocks

import (
	"context"
	"time"

	"innkeeper/infras/otel"
	"innkeeper/infras/postgres"
	"innkeeper/internal/domains/booking/model"
	gDto "innkeeper/shared/dto"
	gRepo "innkeeper/shared/repository"

	"github.com/jmoiron/sqlx"
)

type RoomAssignment interface {
	Insert(ctx context.Context, model model.RoomAssignment) error
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.RoomAssignment) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.RoomAssignment, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.RoomAssignment, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	ExistTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	CountTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) error
}

type assignmentRepositoryImpl struct {
	gRepo.Repository[model.RoomAssignment]
	db   *postgres.Connection
	otel otel.Otel
}

func NewAssignment(db *postgres.Connection, otel otel.Otel) RoomAssignment {
	return &assignmentRepositoryImpl{
		Repository: gRepo.NewRepository[model.RoomAssignment](model.AssignmentEntityName, model.AssignmentTableName, model.AssignmentFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// OverlapFilter matches non-cancelled assignments on roomID whose half-open
// [start, end) interval intersects the given one, excluding excludeID when
// non-empty so an assignment never collides with itself on a date change.
func OverlapFilter(roomID string, start, end time.Time, excludeID string) gDto.FilterGroup {
	filters := []any{
		gDto.Filter{Field: model.AssignmentFieldRoomID, Operator: gDto.FilterOperatorEq, Value: roomID, Table: model.AssignmentTableName},
		gDto.Filter{Field: model.AssignmentFieldStatus, Operator: gDto.FilterOperatorNotEq, Value: model.RoomStatusCancelled, Table: model.AssignmentTableName},
		gDto.Filter{ArgName: "overlap_end", Field: model.AssignmentFieldStartDate, Operator: gDto.FilterOperatorLess, Value: end, Table: model.AssignmentTableName},
		gDto.Filter{ArgName: "overlap_start", Field: model.AssignmentFieldEndDate, Operator: gDto.FilterOperatorGreater, Value: start, Table: model.AssignmentTableName},
	}

	if excludeID != "" {
		filters = append(filters, gDto.Filter{ArgName: "exclude_id", Field: model.AssignmentFieldID, Operator: gDto.FilterOperatorNotEq, Value: excludeID, Table: model.AssignmentTableName})
	}

	return gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd, Filters: filters}
}

// ActiveByLineFilter matches the non-cancelled assignments of one line, the
// set bounded by the line's quota.
func ActiveByLineFilter(lineID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.AssignmentFieldLineID, Operator: gDto.FilterOperatorEq, Value: lineID, Table: model.AssignmentTableName},
			gDto.Filter{Field: model.AssignmentFieldStatus, Operator: gDto.FilterOperatorNotEq, Value: model.RoomStatusCancelled, Table: model.AssignmentTableName},
		},
	}
}
