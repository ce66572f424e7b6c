package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Vinoteca-api/internal/application/dto"
	"github.com/jhoicas/Vinoteca-api/internal/application/movement"
	"github.com/jhoicas/Vinoteca-api/internal/domain"
	"github.com/jhoicas/Vinoteca-api/internal/domain/entity"
	"github.com/jhoicas/Vinoteca-api/internal/domain/repository"
	apphttp "github.com/jhoicas/Vinoteca-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Backend en memoria para rutas de traslados montadas por el Router real
// ──────────────────────────────────────────────────────────────────────────────

type inventoryStore struct {
	users     map[string]*entity.User
	products  map[string]*entity.Product
	branches  map[string]*entity.Branch
	stock     map[string]*entity.Stock // clave "productID|branchID"
	movements []*entity.Movement

	listErr error // fuerza un fallo de listado para simular errores de storage
}

func (s *inventoryStore) key(productID, branchID string) string { return productID + "|" + branchID }

// MovementRepository
func (s *inventoryStore) Create(m *entity.Movement) error {
	s.movements = append(s.movements, m)
	return nil
}
func (s *inventoryStore) List(limit, offset int) ([]*entity.Movement, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.movements, nil
}

// StockRepository
func (s *inventoryStore) Get(productID, branchID string) (*entity.Stock, error) {
	return s.stock[s.key(productID, branchID)], nil
}
func (s *inventoryStore) EnsureRow(productID, branchID string) (*entity.Stock, error) {
	k := s.key(productID, branchID)
	if s.stock[k] == nil {
		s.stock[k] = &entity.Stock{ProductID: productID, BranchID: branchID}
	}
	return s.stock[k], nil
}
func (s *inventoryStore) Increment(productID, branchID string, qty int64) error {
	s.stock[s.key(productID, branchID)].Quantity += qty
	return nil
}
func (s *inventoryStore) Decrement(productID, branchID string, qty int64) error {
	row := s.stock[s.key(productID, branchID)]
	if row == nil || row.Quantity < qty {
		return domain.ErrInsufficientStock
	}
	row.Quantity -= qty
	return nil
}

// Vistas tipadas sobre el mismo store, para cumplir cada puerto por separado.
type storeUsers struct{ s *inventoryStore }

func (v storeUsers) Create(*entity.User) error                  { return nil }
func (v storeUsers) GetByID(id string) (*entity.User, error)    { return v.s.users[id], nil }
func (v storeUsers) GetByUsername(string) (*entity.User, error) { return nil, nil }
func (v storeUsers) Update(*entity.User) error                  { return nil }
func (v storeUsers) List(int, int) ([]*entity.User, error)      { return nil, nil }
func (v storeUsers) Delete(string) error                        { return nil }

type storeProducts struct{ s *inventoryStore }

func (v storeProducts) Create(*entity.Product) error               { return nil }
func (v storeProducts) GetByID(id string) (*entity.Product, error) { return v.s.products[id], nil }
func (v storeProducts) GetByName(string) (*entity.Product, error)  { return nil, nil }
func (v storeProducts) Update(*entity.Product) error               { return nil }
func (v storeProducts) List(int, int) ([]*entity.Product, error)   { return nil, nil }
func (v storeProducts) Delete(string) error                        { return nil }

type storeBranches struct{ s *inventoryStore }

func (v storeBranches) Create(*entity.Branch) error               { return nil }
func (v storeBranches) GetByID(id string) (*entity.Branch, error) { return v.s.branches[id], nil }
func (v storeBranches) GetByName(string) (*entity.Branch, error)  { return nil, nil }
func (v storeBranches) Update(*entity.Branch) error               { return nil }
func (v storeBranches) List(int, int) ([]*entity.Branch, error)   { return nil, nil }
func (v storeBranches) Delete(string) error                       { return nil }

type storeStock struct{ s *inventoryStore }

func (v storeStock) Get(p, b string) (*entity.Stock, error)       { return v.s.Get(p, b) }
func (v storeStock) EnsureRow(p, b string) (*entity.Stock, error) { return v.s.EnsureRow(p, b) }
func (v storeStock) Increment(p, b string, q int64) error         { return v.s.Increment(p, b, q) }
func (v storeStock) Decrement(p, b string, q int64) error         { return v.s.Decrement(p, b, q) }
func (v storeStock) Create(*entity.Stock) error                   { return nil }
func (v storeStock) GetByID(string) (*entity.Stock, error)        { return nil, nil }
func (v storeStock) List(string, int, int) ([]*entity.Stock, error) {
	return nil, nil
}
func (v storeStock) UpdateQuantity(string, int64) (*entity.Stock, error) { return nil, nil }
func (v storeStock) Delete(string) error                                 { return nil }

type storeMovements struct{ s *inventoryStore }

func (v storeMovements) Create(m *entity.Movement) error { return v.s.Create(m) }
func (v storeMovements) List(limit, offset int) ([]*entity.Movement, error) {
	return v.s.List(limit, offset)
}

// passthroughTxRunner ejecuta la función directamente sobre el store compartido.
type passthroughTxRunner struct{ s *inventoryStore }

func (r passthroughTxRunner) Run(_ context.Context, fn func(
	movRepo repository.MovementRepository,
	stockRepo repository.StockRepository,
	productRepo repository.ProductRepository,
	branchRepo repository.BranchRepository,
	userRepo repository.UserRepository,
) error) error {
	return fn(storeMovements{r.s}, storeStock{r.s}, storeProducts{r.s}, storeBranches{r.s}, storeUsers{r.s})
}

func newInventoryStore() *inventoryStore {
	return &inventoryStore{
		users: map[string]*entity.User{
			testUserID: {ID: testUserID, Username: "vendedor", Role: entity.RoleUser},
		},
		products: map[string]*entity.Product{
			"prod-1": {ID: "prod-1", Name: "Malbec Reserva"},
		},
		branches: map[string]*entity.Branch{
			"branch-1": {ID: "branch-1", Name: "Casa Central"},
			"branch-2": {ID: "branch-2", Name: "Sucursal Norte"},
		},
		stock: map[string]*entity.Stock{
			"prod-1|branch-1": {ProductID: "prod-1", BranchID: "branch-1", Quantity: 10},
		},
	}
}

// buildRouterApp monta el Router completo con el motor de traslados sobre el
// store en memoria; el resto de los casos de uso no se ejercitan aquí.
func buildRouterApp(store *inventoryStore) *fiber.App {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		MovementUC: movement.NewCreateMovementUseCase(passthroughTxRunner{store}, storeMovements{store}),
		JWTSecret:  testJWTSecret,
	})
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, authHeader string, payload any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Autorización de /api/movements: basta el bearer, sin scopes
// ──────────────────────────────────────────────────────────────────────────────

// Un token con solo rol (sin scopes) debe poder registrar traslados: los
// movimientos no exigen scopes, solo un bearer válido.
func TestRouterMovements_TokenSinScopes_PuedeCrear(t *testing.T) {
	store := newInventoryStore()
	app := buildRouterApp(store)

	resp := postJSON(t, app, "/api/movements", tokenFor(t, entity.RoleUser), dto.CreateMovementRequest{
		ProductID:           "prod-1",
		Quantity:            3,
		OriginBranchID:      "branch-1",
		DestinationBranchID: "branch-2",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Len(t, store.movements, 1)
	assert.Equal(t, testUserID, store.movements[0].UserID, "el user_id debe salir del token")
	assert.Equal(t, int64(7), store.stock["prod-1|branch-1"].Quantity)
	assert.Equal(t, int64(3), store.stock["prod-1|branch-2"].Quantity)
}

func TestRouterMovements_TokenSinScopes_PuedeListar(t *testing.T) {
	app := buildRouterApp(newInventoryStore())

	req := httptest.NewRequest(http.MethodGet, "/api/movements", nil)
	req.Header.Set("Authorization", tokenFor(t, entity.RoleUser))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouterMovements_SinToken_Retorna401(t *testing.T) {
	app := buildRouterApp(newInventoryStore())

	resp := postJSON(t, app, "/api/movements", "", dto.CreateMovementRequest{
		ProductID:           "prod-1",
		Quantity:            1,
		OriginBranchID:      "branch-1",
		DestinationBranchID: "branch-2",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Errores internos: el detalle de storage nunca viaja al cliente
// ──────────────────────────────────────────────────────────────────────────────

func TestRouterMovements_ErrorDeStorage_RespuestaGenerica(t *testing.T) {
	store := newInventoryStore()
	store.listErr = errors.New(`pq: relation "movements" does not exist`)
	app := buildRouterApp(store)

	req := httptest.NewRequest(http.MethodGet, "/api/movements", nil)
	req.Header.Set("Authorization", tokenFor(t, entity.RoleUser))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "INTERNAL", out.Code)
	assert.Equal(t, "error interno", out.Message)
	assert.NotContains(t, string(body), "relation", "el error de la base no debe filtrarse")
}
