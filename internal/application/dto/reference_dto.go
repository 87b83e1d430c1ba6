package dto

import (
	"github.com/jhoicas/CampoStock-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// StoreDTO tienda de referencia en respuestas.
type StoreDTO struct {
	ID      string `json:"id"`
	Code    string `json:"code"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Region  string `json:"region,omitempty"`
}

// NewStoreDTO mapea la entidad a DTO.
func NewStoreDTO(s *entity.Store) StoreDTO {
	return StoreDTO{ID: s.ID, Code: s.Code, Name: s.Name, Address: s.Address, Region: s.Region}
}

// ProductDTO producto de referencia en respuestas.
type ProductDTO struct {
	ID          string          `json:"id"`
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	UnitMeasure string          `json:"unit_measure,omitempty"`
}

// NewProductDTO mapea la entidad a DTO.
func NewProductDTO(p *entity.Product) ProductDTO {
	return ProductDTO{ID: p.ID, SKU: p.SKU, Name: p.Name, Price: p.Price, UnitMeasure: p.UnitMeasure}
}

// EmployeeDTO empleado de referencia en respuestas.
type EmployeeDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role"`
}

// NewEmployeeDTO mapea la entidad a DTO.
func NewEmployeeDTO(e *entity.Employee) EmployeeDTO {
	return EmployeeDTO{ID: e.ID, Name: e.Name, Email: e.Email, Role: e.Role}
}
