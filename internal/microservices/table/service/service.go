package service

import (
	"time"

	"kitchen-pos/internal/common/logger"
	"kitchen-pos/internal/domain"
)

type Service struct {
	TableService      TableServiceInterface
	TableGroupService TableGroupServiceInterface
}

type Deps struct {
	Tx     domain.Transactor
	Events domain.EventPublisher
	Log    *logger.Logger
	Now    func() time.Time
}

func New(d Deps) *Service {
	if d.Events == nil {
		d.Events = domain.NopPublisher{}
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	return &Service{
		TableService:      NewTableService(d),
		TableGroupService: NewTableGroupService(d),
	}
}
