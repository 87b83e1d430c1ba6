package reference

import (
	"context"

	"github.com/jhoicas/CampoStock-api/internal/domain"
	"github.com/jhoicas/CampoStock-api/internal/domain/entity"
	"github.com/jhoicas/CampoStock-api/internal/domain/repository"
)

// UseCase lecturas de datos maestros (tiendas, productos, empleados, visitas).
// Este subsistema no los escribe: los administra la aplicación de ventas que lo
// rodea y aquí solo alimentan las pantallas y las verificaciones de referencia.
type UseCase struct {
	storeRepo    repository.StoreRepository
	productRepo  repository.ProductRepository
	employeeRepo repository.EmployeeRepository
	visitRepo    repository.VisitRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	storeRepo repository.StoreRepository,
	productRepo repository.ProductRepository,
	employeeRepo repository.EmployeeRepository,
	visitRepo repository.VisitRepository,
) *UseCase {
	return &UseCase{
		storeRepo:    storeRepo,
		productRepo:  productRepo,
		employeeRepo: employeeRepo,
		visitRepo:    visitRepo,
	}
}

// GetStore devuelve una tienda o ErrNotFound.
func (uc *UseCase) GetStore(ctx context.Context, id string) (*entity.Store, error) {
	s, err := uc.storeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

// ListStores lista tiendas.
func (uc *UseCase) ListStores(ctx context.Context, limit, offset int) ([]*entity.Store, error) {
	return uc.storeRepo.List(limit, offset)
}

// GetProduct devuelve un producto o ErrNotFound.
func (uc *UseCase) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	p, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

// ListProducts lista productos.
func (uc *UseCase) ListProducts(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	return uc.productRepo.List(limit, offset)
}

// ListEmployees lista empleados.
func (uc *UseCase) ListEmployees(ctx context.Context, limit, offset int) ([]*entity.Employee, error) {
	return uc.employeeRepo.List(limit, offset)
}

// ListStoreVisits lista las visitas de una tienda.
func (uc *UseCase) ListStoreVisits(ctx context.Context, storeID string, limit, offset int) ([]*entity.Visit, error) {
	return uc.visitRepo.ListByStore(storeID, limit, offset)
}
