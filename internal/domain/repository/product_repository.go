package repository

import "github.com/jhoicas/CampoStock-api/internal/domain/entity"

// ProductRepository puerto de lectura de productos (referencia).
type ProductRepository interface {
	GetByID(id string) (*entity.Product, error)
	List(limit, offset int) ([]*entity.Product, error)
}
