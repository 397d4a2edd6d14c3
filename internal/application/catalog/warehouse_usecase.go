package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

// WarehouseUseCase CRUD de bodegas y ubicaciones.
type WarehouseUseCase struct {
	warehouseRepo repository.WarehouseRepository
	locationRepo  repository.LocationRepository
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(
	warehouseRepo repository.WarehouseRepository,
	locationRepo repository.LocationRepository,
) *WarehouseUseCase {
	return &WarehouseUseCase{warehouseRepo: warehouseRepo, locationRepo: locationRepo}
}

// CreateWarehouse persiste una bodega nueva.
func (uc *WarehouseUseCase) CreateWarehouse(in dto.WarehouseRequest) (*entity.Warehouse, error) {
	if in.Name == "" || in.ShortCode == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	wh := &entity.Warehouse{
		ID:        uuid.New().String(),
		Name:      in.Name,
		ShortCode: in.ShortCode,
		Address:   in.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.warehouseRepo.Create(wh); err != nil {
		return nil, err
	}
	return wh, nil
}

// GetWarehouse devuelve una bodega o ErrNotFound.
func (uc *WarehouseUseCase) GetWarehouse(id string) (*entity.Warehouse, error) {
	wh, err := uc.warehouseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if wh == nil {
		return nil, domain.ErrNotFound
	}
	return wh, nil
}

// ListWarehouses lista bodegas con paginación.
func (uc *WarehouseUseCase) ListWarehouses(limit, offset int) ([]*entity.Warehouse, error) {
	return uc.warehouseRepo.List(limit, offset)
}

// UpdateWarehouse actualiza nombre y dirección.
func (uc *WarehouseUseCase) UpdateWarehouse(id string, in dto.WarehouseRequest) (*entity.Warehouse, error) {
	wh, err := uc.GetWarehouse(id)
	if err != nil {
		return nil, err
	}
	if in.Name != "" {
		wh.Name = in.Name
	}
	if in.Address != "" {
		wh.Address = in.Address
	}
	wh.UpdatedAt = time.Now()
	if err := uc.warehouseRepo.Update(wh); err != nil {
		return nil, err
	}
	return wh, nil
}

// DeleteWarehouse elimina una bodega sin ubicaciones.
func (uc *WarehouseUseCase) DeleteWarehouse(id string) error {
	if _, err := uc.GetWarehouse(id); err != nil {
		return err
	}
	locations, err := uc.locationRepo.ListByWarehouse(id)
	if err != nil {
		return err
	}
	if len(locations) > 0 {
		return domain.ErrConflict
	}
	return uc.warehouseRepo.Delete(id)
}

// CreateLocation persiste una ubicación dentro de una bodega existente.
func (uc *WarehouseUseCase) CreateLocation(in dto.LocationRequest) (*entity.Location, error) {
	if in.WarehouseID == "" || in.Name == "" || in.ShortCode == "" {
		return nil, domain.ErrInvalidInput
	}
	if _, err := uc.GetWarehouse(in.WarehouseID); err != nil {
		return nil, err
	}
	now := time.Now()
	loc := &entity.Location{
		ID:          uuid.New().String(),
		WarehouseID: in.WarehouseID,
		Name:        in.Name,
		ShortCode:   in.ShortCode,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.locationRepo.Create(loc); err != nil {
		return nil, err
	}
	return loc, nil
}

// GetLocation devuelve una ubicación o ErrNotFound.
func (uc *WarehouseUseCase) GetLocation(id string) (*entity.Location, error) {
	loc, err := uc.locationRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, domain.ErrNotFound
	}
	return loc, nil
}

// ListLocations lista ubicaciones; si warehouseID no es vacío, filtra por bodega.
func (uc *WarehouseUseCase) ListLocations(warehouseID string, limit, offset int) ([]*entity.Location, error) {
	if warehouseID != "" {
		return uc.locationRepo.ListByWarehouse(warehouseID)
	}
	return uc.locationRepo.List(limit, offset)
}

// UpdateLocation actualiza nombre y código corto.
func (uc *WarehouseUseCase) UpdateLocation(id string, in dto.LocationRequest) (*entity.Location, error) {
	loc, err := uc.GetLocation(id)
	if err != nil {
		return nil, err
	}
	if in.Name != "" {
		loc.Name = in.Name
	}
	if in.ShortCode != "" {
		loc.ShortCode = in.ShortCode
	}
	loc.UpdatedAt = time.Now()
	if err := uc.locationRepo.Update(loc); err != nil {
		return nil, err
	}
	return loc, nil
}

// DeleteLocation elimina una ubicación.
func (uc *WarehouseUseCase) DeleteLocation(id string) error {
	if _, err := uc.GetLocation(id); err != nil {
		return err
	}
	return uc.locationRepo.Delete(id)
}
