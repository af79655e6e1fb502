package service

import (
	"time"

	"kitchen-pos/internal/common/logger"
	"kitchen-pos/internal/domain"
)

type Service struct {
	ProductService   ProductServiceInterface
	MenuGroupService MenuGroupServiceInterface
	MenuService      MenuServiceInterface
}

// Deps are the collaborators shared by the catalog services.
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
		ProductService:   NewProductService(d),
		MenuGroupService: NewMenuGroupService(d),
		MenuService:      NewMenuService(d),
	}
}
