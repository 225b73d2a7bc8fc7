package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mayorista-api/internal/application/stock"
	"github.com/jhoicas/mayorista-api/internal/application/usecase"
	"github.com/jhoicas/mayorista-api/internal/domain"
	"github.com/jhoicas/mayorista-api/internal/domain/entity"
	"github.com/jhoicas/mayorista-api/internal/domain/repository"
	apphttp "github.com/jhoicas/mayorista-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para levantar la API completa sin PostgreSQL.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	products  map[string]*entity.Product
	receipts  []*entity.Receipt
	sales     []*entity.Sale
	saleItems []*entity.SaleItem
	movements []*entity.StockMovement
}

type memProductRepo struct{ s *memStore }

func (r *memProductRepo) Create(_ context.Context, p *entity.Product) error {
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *memProductRepo) List(_ context.Context, _ string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.s.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memProductRepo) Update(_ context.Context, p *entity.Product) error {
	if _, ok := r.s.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) SetStock(_ context.Context, id string, qty decimal.Decimal) error {
	p, ok := r.s.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.StockQty = qty
	return nil
}

func (r *memProductRepo) SetCost(_ context.Context, id string, cost decimal.Decimal) error {
	p, ok := r.s.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.CostPrice = cost
	return nil
}

func (r *memProductRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.s.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.products, id)
	return nil
}

type memReceiptRepo struct{ s *memStore }

func (r *memReceiptRepo) Create(_ context.Context, rc *entity.Receipt) error {
	cr := *rc
	r.s.receipts = append(r.s.receipts, &cr)
	return nil
}

func (r *memReceiptRepo) CreateItem(_ context.Context, _ *entity.ReceiptItem) error { return nil }

func (r *memReceiptRepo) List(_ context.Context, limit int) ([]*entity.Receipt, error) {
	var out []*entity.Receipt
	for i := len(r.s.receipts) - 1; i >= 0 && len(out) < limit; i-- {
		cr := *r.s.receipts[i]
		out = append(out, &cr)
	}
	return out, nil
}

type memSaleRepo struct{ s *memStore }

func (r *memSaleRepo) Create(_ context.Context, sl *entity.Sale) error {
	cs := *sl
	r.s.sales = append(r.s.sales, &cs)
	return nil
}

func (r *memSaleRepo) CreateItem(_ context.Context, it *entity.SaleItem) error {
	ci := *it
	r.s.saleItems = append(r.s.saleItems, &ci)
	return nil
}

func (r *memSaleRepo) GetByID(_ context.Context, id string) (*entity.Sale, error) {
	for _, sl := range r.s.sales {
		if sl.ID == id {
			cs := *sl
			for _, it := range r.s.saleItems {
				if it.SaleID == id {
					cs.Items = append(cs.Items, *it)
				}
			}
			return &cs, nil
		}
	}
	return nil, nil
}

func (r *memSaleRepo) List(_ context.Context, limit int) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for i := len(r.s.sales) - 1; i >= 0 && len(out) < limit; i-- {
		sl, _ := r.GetByID(context.Background(), r.s.sales[i].ID)
		out = append(out, sl)
	}
	return out, nil
}

type memMovementRepo struct{ s *memStore }

func (r *memMovementRepo) Create(_ context.Context, m *entity.StockMovement) error {
	cm := *m
	r.s.movements = append(r.s.movements, &cm)
	return nil
}

func (r *memMovementRepo) ListByProduct(_ context.Context, productID string, limit int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for i := len(r.s.movements) - 1; i >= 0 && len(out) < limit; i-- {
		if r.s.movements[i].ProductID == productID {
			cm := *r.s.movements[i]
			out = append(out, &cm)
		}
	}
	return out, nil
}

// memTxRunner no simula rollback: los tests de atomicidad viven en el paquete
// de casos de uso; aquí solo interesa el mapeo HTTP.
type memTxRunner struct{ s *memStore }

func (r *memTxRunner) RunReceipt(_ context.Context, fn func(
	repository.ProductRepository, repository.ReceiptRepository, repository.StockMovementRepository,
) error) error {
	return fn(&memProductRepo{r.s}, &memReceiptRepo{r.s}, &memMovementRepo{r.s})
}

func (r *memTxRunner) RunSale(_ context.Context, fn func(
	repository.ProductRepository, repository.SaleRepository, repository.StockMovementRepository,
) error) error {
	return fn(&memProductRepo{r.s}, &memSaleRepo{r.s}, &memMovementRepo{r.s})
}

// buildAPI arma una app Fiber con todas las rutas y un producto sembrado.
func buildAPI(t *testing.T) (*fiber.App, *memStore, string) {
	t.Helper()
	store := &memStore{products: map[string]*entity.Product{}}
	now := time.Now()
	store.products["p1"] = &entity.Product{
		ID: "p1", Name: "Arroz", Unit: "DONA",
		CostPrice: decimal.NewFromInt(100), SalePrice: decimal.NewFromInt(150),
		StockQty: decimal.NewFromInt(10), MinQty: decimal.NewFromInt(5),
		CreatedAt: now, UpdatedAt: now,
	}

	runner := &memTxRunner{store}
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ProductUC: usecase.NewProductUseCase(&memProductRepo{store}, &memMovementRepo{store}),
		ReceiptUC: stock.NewReceiptUseCase(runner, &memReceiptRepo{store}),
		SaleUC:    stock.NewSaleUseCase(runner, &memSaleRepo{store}),
		JWTSecret: testJWTSecret,
	})
	return app, store, validToken(t)
}

func doJSON(t *testing.T, app *fiber.App, method, path, token, body string) *http.Response {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_RutasProtegidasSinToken_Retornan401(t *testing.T) {
	app, _, _ := buildAPI(t)

	paths := []string{"/api/products", "/api/receipts", "/api/sales"}
	for _, p := range paths {
		resp := doJSON(t, app, http.MethodGet, p, "", "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, p)
		resp.Body.Close()
	}
}

func TestAPI_CrearVenta_RespetaContrato(t *testing.T) {
	app, store, token := buildAPI(t)

	resp := doJSON(t, app, http.MethodPost, "/api/sales", token,
		`{"items":[{"productId":"p1","qty":"4","price":"150"}]}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	// Nombres de campo del contrato del cliente
	assert.Contains(t, body, "subtotal")
	assert.Contains(t, body, "total")
	assert.Contains(t, body, "createdAt")
	items, ok := body["items"].([]any)
	require.True(t, ok)
	require.Len(t, items, 1)
	item := items[0].(map[string]any)
	assert.Contains(t, item, "productId")
	assert.Contains(t, item, "lineTotal")
	assert.Equal(t, "Arroz", item["name"])

	// Efecto en stock
	assert.True(t, decimal.NewFromInt(6).Equal(store.products["p1"].StockQty))
}

func TestAPI_VentaSinStock_Retorna409(t *testing.T) {
	app, _, token := buildAPI(t)

	resp := doJSON(t, app, http.MethodPost, "/api/sales", token,
		`{"items":[{"productId":"p1","qty":"50","price":"150"}]}`)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "INSUFFICIENT_STOCK", body["code"])
}

func TestAPI_VentaInvalida_Retorna400(t *testing.T) {
	app, _, token := buildAPI(t)

	resp := doJSON(t, app, http.MethodPost, "/api/sales", token, `{"items":[]}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "VALIDATION", body["code"])
}

func TestAPI_VentaProductoInexistente_Retorna404(t *testing.T) {
	app, _, token := buildAPI(t)

	resp := doJSON(t, app, http.MethodPost, "/api/sales", token,
		`{"items":[{"productId":"no-existe","qty":"1","price":"10"}]}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestAPI_CrearRecepcion_RespetaContrato(t *testing.T) {
	app, store, token := buildAPI(t)

	resp := doJSON(t, app, http.MethodPost, "/api/receipts", token,
		`{"note":"pedido","items":[{"productId":"p1","qty":"5","costPrice":"120"}]}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Contains(t, body, "totalCost")
	assert.Contains(t, body, "note")
	items := body["items"].([]any)
	require.Len(t, items, 1)
	assert.Contains(t, items[0].(map[string]any), "lineCost")

	assert.True(t, decimal.NewFromInt(15).Equal(store.products["p1"].StockQty))
	assert.True(t, decimal.NewFromInt(120).Equal(store.products["p1"].CostPrice))
}

func TestAPI_CrearProducto_Retorna201(t *testing.T) {
	app, _, token := buildAPI(t)

	resp := doJSON(t, app, http.MethodPost, "/api/products", token,
		`{"name":"Azúcar","salePrice":"80"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Azúcar", body["name"])
	assert.Equal(t, "DONA", body["unit"])
}

func TestAPI_ProductoInexistente_Retorna404(t *testing.T) {
	app, _, token := buildAPI(t)

	resp := doJSON(t, app, http.MethodGet, "/api/products/no-existe", token, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "NOT_FOUND", body["code"])
}
