package repository

import "github.com/jhoicas/CampoStock-api/internal/domain/entity"

// EmployeeRepository puerto de lectura de empleados (referencia).
type EmployeeRepository interface {
	GetByID(id string) (*entity.Employee, error)
	List(limit, offset int) ([]*entity.Employee, error)
}
