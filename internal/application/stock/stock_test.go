package stock_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mayorista-api/internal/application/dto"
	"github.com/jhoicas/mayorista-api/internal/application/stock"
	"github.com/jhoicas/mayorista-api/internal/domain"
	"github.com/jhoicas/mayorista-api/internal/domain/entity"
	"github.com/jhoicas/mayorista-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria: un store compartido más repos que lo mutan. El fakeTxRunner
// clona el store antes de ejecutar el callback y solo publica los cambios si
// fn devuelve nil, imitando el Commit/Rollback real.
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	products     map[string]*entity.Product
	receipts     []*entity.Receipt
	receiptItems []*entity.ReceiptItem
	sales        []*entity.Sale
	saleItems    []*entity.SaleItem
	movements    []*entity.StockMovement
}

func newFakeStore() *fakeStore {
	return &fakeStore{products: map[string]*entity.Product{}}
}

func (s *fakeStore) clone() *fakeStore {
	c := newFakeStore()
	for id, p := range s.products {
		cp := *p
		c.products[id] = &cp
	}
	for _, r := range s.receipts {
		cr := *r
		c.receipts = append(c.receipts, &cr)
	}
	for _, it := range s.receiptItems {
		ci := *it
		c.receiptItems = append(c.receiptItems, &ci)
	}
	for _, sl := range s.sales {
		cs := *sl
		c.sales = append(c.sales, &cs)
	}
	for _, it := range s.saleItems {
		ci := *it
		c.saleItems = append(c.saleItems, &ci)
	}
	for _, m := range s.movements {
		cm := *m
		c.movements = append(c.movements, &cm)
	}
	return c
}

func (s *fakeStore) replaceWith(other *fakeStore) {
	s.products = other.products
	s.receipts = other.receipts
	s.receiptItems = other.receiptItems
	s.sales = other.sales
	s.saleItems = other.saleItems
	s.movements = other.movements
}

// ── repos ─────────────────────────────────────────────────────────────────────

type fakeProductRepo struct{ store *fakeStore }

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.store.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := r.store.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeProductRepo) List(_ context.Context, _ string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.store.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	if _, ok := r.store.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	r.store.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) SetStock(_ context.Context, id string, qty decimal.Decimal) error {
	p, ok := r.store.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.StockQty = qty
	return nil
}

func (r *fakeProductRepo) SetCost(_ context.Context, id string, cost decimal.Decimal) error {
	p, ok := r.store.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.CostPrice = cost
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.store.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.store.products, id)
	return nil
}

type fakeReceiptRepo struct{ store *fakeStore }

func (r *fakeReceiptRepo) Create(_ context.Context, rc *entity.Receipt) error {
	cr := *rc
	r.store.receipts = append(r.store.receipts, &cr)
	return nil
}

func (r *fakeReceiptRepo) CreateItem(_ context.Context, it *entity.ReceiptItem) error {
	ci := *it
	r.store.receiptItems = append(r.store.receiptItems, &ci)
	return nil
}

func (r *fakeReceiptRepo) List(_ context.Context, limit int) ([]*entity.Receipt, error) {
	var out []*entity.Receipt
	for i := len(r.store.receipts) - 1; i >= 0 && len(out) < limit; i-- {
		rc := *r.store.receipts[i]
		rc.Items = nil
		for _, it := range r.store.receiptItems {
			if it.ReceiptID == rc.ID {
				rc.Items = append(rc.Items, *it)
			}
		}
		out = append(out, &rc)
	}
	return out, nil
}

type fakeSaleRepo struct{ store *fakeStore }

func (r *fakeSaleRepo) Create(_ context.Context, s *entity.Sale) error {
	cs := *s
	r.store.sales = append(r.store.sales, &cs)
	return nil
}

func (r *fakeSaleRepo) CreateItem(_ context.Context, it *entity.SaleItem) error {
	ci := *it
	r.store.saleItems = append(r.store.saleItems, &ci)
	return nil
}

func (r *fakeSaleRepo) GetByID(_ context.Context, id string) (*entity.Sale, error) {
	for _, s := range r.store.sales {
		if s.ID == id {
			cs := *s
			for _, it := range r.store.saleItems {
				if it.SaleID == id {
					cs.Items = append(cs.Items, *it)
				}
			}
			return &cs, nil
		}
	}
	return nil, nil
}

func (r *fakeSaleRepo) List(_ context.Context, limit int) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for i := len(r.store.sales) - 1; i >= 0 && len(out) < limit; i-- {
		s, _ := r.GetByID(context.Background(), r.store.sales[i].ID)
		out = append(out, s)
	}
	return out, nil
}

type fakeMovementRepo struct{ store *fakeStore }

func (r *fakeMovementRepo) Create(_ context.Context, m *entity.StockMovement) error {
	cm := *m
	r.store.movements = append(r.store.movements, &cm)
	return nil
}

func (r *fakeMovementRepo) ListByProduct(_ context.Context, productID string, limit int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for i := len(r.store.movements) - 1; i >= 0 && len(out) < limit; i-- {
		if r.store.movements[i].ProductID == productID {
			cm := *r.store.movements[i]
			out = append(out, &cm)
		}
	}
	return out, nil
}

// fakeTxRunner ejecuta el callback sobre un clon del store y publica los
// cambios solo en caso de éxito.
type fakeTxRunner struct{ store *fakeStore }

func (r *fakeTxRunner) RunReceipt(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	receiptRepo repository.ReceiptRepository,
	movRepo repository.StockMovementRepository,
) error) error {
	tx := r.store.clone()
	if err := fn(&fakeProductRepo{tx}, &fakeReceiptRepo{tx}, &fakeMovementRepo{tx}); err != nil {
		return err
	}
	r.store.replaceWith(tx)
	return nil
}

func (r *fakeTxRunner) RunSale(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	movRepo repository.StockMovementRepository,
) error) error {
	tx := r.store.clone()
	if err := fn(&fakeProductRepo{tx}, &fakeSaleRepo{tx}, &fakeMovementRepo{tx}); err != nil {
		return err
	}
	r.store.replaceWith(tx)
	return nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func seedProduct(store *fakeStore, id, name string, stock, cost string) *entity.Product {
	now := time.Now()
	p := &entity.Product{
		ID:        id,
		Name:      name,
		Unit:      entity.UnitDefault,
		CostPrice: dec(cost),
		SalePrice: dec("0"),
		StockQty:  dec(stock),
		MinQty:    dec("5"),
		CreatedAt: now,
		UpdatedAt: now,
	}
	store.products[id] = p
	return p
}

func newFixtures() (*fakeStore, *stock.ReceiptUseCase, *stock.SaleUseCase) {
	store := newFakeStore()
	runner := &fakeTxRunner{store}
	receiptUC := stock.NewReceiptUseCase(runner, &fakeReceiptRepo{store})
	saleUC := stock.NewSaleUseCase(runner, &fakeSaleRepo{store})
	return store, receiptUC, saleUC
}

// ──────────────────────────────────────────────────────────────────────────────
// Recepciones
// ──────────────────────────────────────────────────────────────────────────────

func TestReceipt_SumaStockYRegistraMovimientos(t *testing.T) {
	store, receiptUC, _ := newFixtures()
	seedProduct(store, "p1", "Arroz", "10", "100")
	seedProduct(store, "p2", "Azúcar", "0", "50")

	note := "pedido semanal"
	out, err := receiptUC.Create(context.Background(), dto.CreateReceiptRequest{
		Note: &note,
		Items: []dto.ReceiptItemRequest{
			{ProductID: "p1", Qty: dec("5"), CostPrice: dec("120")},
			{ProductID: "p2", Qty: dec("20"), CostPrice: dec("55")},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	// Encabezado: totalCost = 5*120 + 20*55 = 1700
	assert.True(t, dec("1700").Equal(out.TotalCost), "totalCost esperado 1700, fue %s", out.TotalCost)
	require.Len(t, out.Items, 2)
	assert.Equal(t, "Arroz", out.Items[0].Name)
	assert.True(t, dec("600").Equal(out.Items[0].LineCost))

	// Stock sumado
	assert.True(t, dec("15").Equal(store.products["p1"].StockQty))
	assert.True(t, dec("20").Equal(store.products["p2"].StockQty))

	// Costo sobrescrito con el último costo de entrada
	assert.True(t, dec("120").Equal(store.products["p1"].CostPrice))
	assert.True(t, dec("55").Equal(store.products["p2"].CostPrice))

	// Un movimiento IN por línea, apuntando a la recepción
	require.Len(t, store.movements, 2)
	for _, m := range store.movements {
		assert.Equal(t, entity.MovementTypeIN, m.Type)
		assert.Equal(t, entity.MovementNoteReceipt, m.Note)
		require.NotNil(t, m.ReceiptID)
		assert.Equal(t, out.ID, *m.ReceiptID)
		assert.Nil(t, m.SaleID)
	}
}

func TestReceipt_CostoUltimoGana(t *testing.T) {
	store, receiptUC, _ := newFixtures()
	seedProduct(store, "p1", "Arroz", "0", "100")

	// Dos líneas del mismo producto con costos distintos: gana el último
	_, err := receiptUC.Create(context.Background(), dto.CreateReceiptRequest{
		Items: []dto.ReceiptItemRequest{
			{ProductID: "p1", Qty: dec("5"), CostPrice: dec("110")},
			{ProductID: "p1", Qty: dec("3"), CostPrice: dec("90")},
		},
	})
	require.NoError(t, err)

	assert.True(t, dec("90").Equal(store.products["p1"].CostPrice))
	assert.True(t, dec("8").Equal(store.products["p1"].StockQty))
}

func TestReceipt_ValidacionRechazaSinEscribir(t *testing.T) {
	store, receiptUC, _ := newFixtures()
	seedProduct(store, "p1", "Arroz", "10", "100")

	cases := []dto.CreateReceiptRequest{
		{Items: nil},
		{Items: []dto.ReceiptItemRequest{{ProductID: "", Qty: dec("1"), CostPrice: dec("1")}}},
		{Items: []dto.ReceiptItemRequest{{ProductID: "p1", Qty: dec("0"), CostPrice: dec("1")}}},
		{Items: []dto.ReceiptItemRequest{{ProductID: "p1", Qty: dec("-2"), CostPrice: dec("1")}}},
		{Items: []dto.ReceiptItemRequest{{ProductID: "p1", Qty: dec("1"), CostPrice: dec("-1")}}},
	}
	for _, in := range cases {
		_, err := receiptUC.Create(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}

	// Sin efectos
	assert.Empty(t, store.receipts)
	assert.Empty(t, store.movements)
	assert.True(t, dec("10").Equal(store.products["p1"].StockQty))
}

func TestReceipt_ProductoInexistente_RollbackTotal(t *testing.T) {
	store, receiptUC, _ := newFixtures()
	seedProduct(store, "p1", "Arroz", "10", "100")

	// Primera línea válida, segunda con producto inexistente: nada persiste
	_, err := receiptUC.Create(context.Background(), dto.CreateReceiptRequest{
		Items: []dto.ReceiptItemRequest{
			{ProductID: "p1", Qty: dec("5"), CostPrice: dec("120")},
			{ProductID: "no-existe", Qty: dec("1"), CostPrice: dec("10")},
		},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.Empty(t, store.receipts)
	assert.Empty(t, store.receiptItems)
	assert.Empty(t, store.movements)
	assert.True(t, dec("10").Equal(store.products["p1"].StockQty))
	assert.True(t, dec("100").Equal(store.products["p1"].CostPrice))
}

// ──────────────────────────────────────────────────────────────────────────────
// Ventas
// ──────────────────────────────────────────────────────────────────────────────

func TestSale_DescuentaStockYRegistraMovimientos(t *testing.T) {
	store, _, saleUC := newFixtures()
	seedProduct(store, "p1", "Arroz", "10", "100")

	out, err := saleUC.Create(context.Background(), dto.CreateSaleRequest{
		Items: []dto.SaleItemRequest{
			{ProductID: "p1", Qty: dec("4"), Price: dec("150")},
		},
	})
	require.NoError(t, err)

	// subtotal == total (sin descuentos)
	assert.True(t, out.Subtotal.Equal(out.Total))
	assert.True(t, dec("600").Equal(out.Total))
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Arroz", out.Items[0].Name)
	assert.Equal(t, entity.UnitDefault, out.Items[0].Unit)

	assert.True(t, dec("6").Equal(store.products["p1"].StockQty))

	require.Len(t, store.movements, 1)
	m := store.movements[0]
	assert.Equal(t, entity.MovementTypeOUT, m.Type)
	assert.Equal(t, entity.MovementNoteSale, m.Note)
	assert.True(t, dec("4").Equal(m.Qty), "qty del movimiento siempre positiva")
	require.NotNil(t, m.SaleID)
	assert.Equal(t, out.ID, *m.SaleID)
	assert.Nil(t, m.ReceiptID)
}

func TestSale_StockInsuficiente_RollbackTotal(t *testing.T) {
	store, _, saleUC := newFixtures()
	seedProduct(store, "p1", "Arroz", "10", "100")
	seedProduct(store, "p2", "Azúcar", "2", "50")

	// Primera línea cabe, segunda excede el stock: todo se revierte
	_, err := saleUC.Create(context.Background(), dto.CreateSaleRequest{
		Items: []dto.SaleItemRequest{
			{ProductID: "p1", Qty: dec("5"), Price: dec("150")},
			{ProductID: "p2", Qty: dec("3"), Price: dec("70")},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Empty(t, store.sales)
	assert.Empty(t, store.saleItems)
	assert.Empty(t, store.movements)
	assert.True(t, dec("10").Equal(store.products["p1"].StockQty))
	assert.True(t, dec("2").Equal(store.products["p2"].StockQty))
}

func TestSale_VentaExacta_DejaStockCero(t *testing.T) {
	store, _, saleUC := newFixtures()
	seedProduct(store, "p1", "Arroz", "7", "100")

	_, err := saleUC.Create(context.Background(), dto.CreateSaleRequest{
		Items: []dto.SaleItemRequest{{ProductID: "p1", Qty: dec("7"), Price: dec("150")}},
	})
	require.NoError(t, err)
	assert.True(t, store.products["p1"].StockQty.IsZero())
}

func TestSale_ProductoInexistente_RetornaNotFound(t *testing.T) {
	store, _, saleUC := newFixtures()

	_, err := saleUC.Create(context.Background(), dto.CreateSaleRequest{
		Items: []dto.SaleItemRequest{{ProductID: "no-existe", Qty: dec("1"), Price: dec("10")}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, store.sales)
}

func TestSale_ValidacionRechazaSinEscribir(t *testing.T) {
	store, _, saleUC := newFixtures()
	seedProduct(store, "p1", "Arroz", "10", "100")

	cases := []dto.CreateSaleRequest{
		{Items: nil},
		{Items: []dto.SaleItemRequest{{ProductID: "", Qty: dec("1"), Price: dec("1")}}},
		{Items: []dto.SaleItemRequest{{ProductID: "p1", Qty: dec("0"), Price: dec("1")}}},
		{Items: []dto.SaleItemRequest{{ProductID: "p1", Qty: dec("1"), Price: dec("-1")}}},
	}
	for _, in := range cases {
		_, err := saleUC.Create(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
	assert.Empty(t, store.sales)
	assert.Empty(t, store.movements)
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario combinado: entrada seguida de ventas
// ──────────────────────────────────────────────────────────────────────────────

func TestEscenario_RecepcionLuegoVentas(t *testing.T) {
	store, receiptUC, saleUC := newFixtures()
	seedProduct(store, "p1", "Arroz", "0", "0")

	_, err := receiptUC.Create(context.Background(), dto.CreateReceiptRequest{
		Items: []dto.ReceiptItemRequest{{ProductID: "p1", Qty: dec("10"), CostPrice: dec("100")}},
	})
	require.NoError(t, err)

	_, err = saleUC.Create(context.Background(), dto.CreateSaleRequest{
		Items: []dto.SaleItemRequest{{ProductID: "p1", Qty: dec("6"), Price: dec("150")}},
	})
	require.NoError(t, err)

	// Segunda venta excede lo que queda
	_, err = saleUC.Create(context.Background(), dto.CreateSaleRequest{
		Items: []dto.SaleItemRequest{{ProductID: "p1", Qty: dec("5"), Price: dec("150")}},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.True(t, dec("4").Equal(store.products["p1"].StockQty))
	// Un movimiento IN y uno OUT
	require.Len(t, store.movements, 2)
	assert.Equal(t, entity.MovementTypeIN, store.movements[0].Type)
	assert.Equal(t, entity.MovementTypeOUT, store.movements[1].Type)
}
