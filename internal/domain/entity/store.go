package entity

import "time"

// Store tienda atendida por el equipo de terreno (dato de referencia, solo lectura aquí;
// el módulo maestro geográfico/organizacional es quien la administra).
type Store struct {
	ID        string
	Code      string
	Name      string
	Address   string
	Region    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
