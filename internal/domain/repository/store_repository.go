package repository

import "github.com/jhoicas/CampoStock-api/internal/domain/entity"

// StoreRepository puerto de lectura de tiendas (referencia).
type StoreRepository interface {
	GetByID(id string) (*entity.Store, error)
	List(limit, offset int) ([]*entity.Store, error)
}
