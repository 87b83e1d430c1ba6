package repository

import "github.com/jhoicas/CampoStock-api/internal/domain/entity"

// VisitRepository puerto de lectura de visitas (referencia).
type VisitRepository interface {
	GetByID(id string) (*entity.Visit, error)
	ListByStore(storeID string, limit, offset int) ([]*entity.Visit, error)
}
