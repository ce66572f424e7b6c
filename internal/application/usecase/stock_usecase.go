package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Vinoteca-api/internal/application/dto"
	"github.com/jhoicas/Vinoteca-api/internal/domain"
	"github.com/jhoicas/Vinoteca-api/internal/domain/entity"
	"github.com/jhoicas/Vinoteca-api/internal/domain/repository"
)

// StockUseCase CRUD directo sobre el libro de stock (superficie admin).
// La invariante quantity >= 0 y la unicidad (producto, sucursal) las respalda
// la tabla; los traslados entre sucursales pasan por el motor de movimientos,
// nunca por aquí.
type StockUseCase struct {
	repo        repository.StockRepository
	productRepo repository.ProductRepository
	branchRepo  repository.BranchRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(repo repository.StockRepository, productRepo repository.ProductRepository, branchRepo repository.BranchRepository) *StockUseCase {
	return &StockUseCase{repo: repo, productRepo: productRepo, branchRepo: branchRepo}
}

// Create crea una entrada de stock explícita. Valida que producto y sucursal
// existan y que la cantidad no sea negativa; una pareja repetida falla con
// domain.ErrDuplicate.
func (uc *StockUseCase) Create(in dto.CreateStockRequest) (*dto.StockResponse, error) {
	if in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	branch, err := uc.branchRepo.GetByID(in.BranchID)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, domain.ErrBranchNotFound
	}
	now := time.Now()
	stock := &entity.Stock{
		ID:        uuid.New().String(),
		ProductID: in.ProductID,
		BranchID:  in.BranchID,
		Quantity:  in.Quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(stock); err != nil {
		return nil, err
	}
	return toStockResponse(stock), nil
}

// GetByID obtiene una entrada de stock por ID.
func (uc *StockUseCase) GetByID(id string) (*dto.StockResponse, error) {
	stock, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if stock == nil {
		return nil, nil
	}
	return toStockResponse(stock), nil
}

// List lista entradas de stock, opcionalmente filtradas por sucursal.
func (uc *StockUseCase) List(branchID string, limit, offset int) (*dto.StockListResponse, error) {
	list, err := uc.repo.List(branchID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toStockResponse(s))
	}
	return &dto.StockListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// UpdateQuantity fija la cantidad de una entrada (ajuste directo, admin).
func (uc *StockUseCase) UpdateQuantity(id string, in dto.UpdateStockRequest) (*dto.StockResponse, error) {
	if in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	stock, err := uc.repo.UpdateQuantity(id, in.Quantity)
	if err != nil {
		return nil, err
	}
	if stock == nil {
		return nil, nil
	}
	return toStockResponse(stock), nil
}

// Delete elimina una entrada de stock por ID.
func (uc *StockUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toStockResponse(s *entity.Stock) *dto.StockResponse {
	if s == nil {
		return nil
	}
	return &dto.StockResponse{
		ID:        s.ID,
		ProductID: s.ProductID,
		BranchID:  s.BranchID,
		Quantity:  s.Quantity,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
