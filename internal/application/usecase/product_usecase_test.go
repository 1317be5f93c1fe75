package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/it-supplies-api/internal/application/audit"
	"github.com/tu-usuario/it-supplies-api/internal/application/dto"
	"github.com/tu-usuario/it-supplies-api/internal/application/usecase"
	"github.com/tu-usuario/it-supplies-api/internal/domain"
	"github.com/tu-usuario/it-supplies-api/internal/domain/entity"
)

const actorID = "00000000-0000-0000-0000-0000000000aa"

var testMeta = audit.RequestMeta{IP: "10.0.0.5", UserAgent: "test-agent"}

func TestProductCreate_CategoriaInvalida(t *testing.T) {
	repo := new(ProductRepoMock)
	sink := &SinkSpy{}
	uc := usecase.NewProductUseCase(repo, sink)

	_, err := uc.Create(context.Background(), actorID, dto.CreateProductRequest{
		Type:        "Categoría Inventada",
		Brand:       "Kingston",
		Model:       "A400",
		Description: "SSD 480GB",
		Barcode:     "7891234567890",
	}, testMeta)

	assert.ErrorIs(t, err, domain.ErrInvalidCategory)
	assert.Empty(t, sink.Entries, "una creación rechazada no debe auditarse")
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProductCreate_CamposRequeridos(t *testing.T) {
	repo := new(ProductRepoMock)
	uc := usecase.NewProductUseCase(repo, &SinkSpy{})

	_, err := uc.Create(context.Background(), actorID, dto.CreateProductRequest{
		Type:  "SSD",
		Brand: "Kingston",
		// Model, Description y Barcode ausentes
	}, testMeta)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductCreate_OK_CantidadInicialCeroYAuditoria(t *testing.T) {
	repo := new(ProductRepoMock)
	sink := &SinkSpy{}
	uc := usecase.NewProductUseCase(repo, sink)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(p *entity.Product) bool {
		return p.Quantity == 0 && p.Type == "SSD" && p.Barcode == "7891234567890" && p.ID != ""
	})).Return(nil).Once()

	out, err := uc.Create(context.Background(), actorID, dto.CreateProductRequest{
		Type:        "SSD",
		Brand:       "Kingston",
		Model:       "A400",
		Description: "SSD 480GB",
		Barcode:     "7891234567890",
	}, testMeta)

	require.NoError(t, err)
	assert.Equal(t, 0, out.Quantity)

	require.Len(t, sink.Entries, 1, "exactamente una entrada por mutación")
	assert.Equal(t, entity.ActionProductCreated, sink.Entries[0].Action)
	require.NotNil(t, sink.Entries[0].UserID)
	assert.Equal(t, actorID, *sink.Entries[0].UserID)
	repo.AssertExpectations(t)
}

func TestProductCreate_BarcodeDuplicado(t *testing.T) {
	repo := new(ProductRepoMock)
	sink := &SinkSpy{}
	uc := usecase.NewProductUseCase(repo, sink)

	repo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrDuplicateBarcode).Once()

	_, err := uc.Create(context.Background(), actorID, dto.CreateProductRequest{
		Type:        "SSD",
		Brand:       "Kingston",
		Model:       "A400",
		Description: "SSD 480GB",
		Barcode:     "7891234567890",
	}, testMeta)

	assert.ErrorIs(t, err, domain.ErrDuplicateBarcode)
	assert.Empty(t, sink.Entries)
}

// Recepción de stock: un delta positivo incrementa y audita PRODUCT_QUANTITY_ADDED
// con el contexto del llamador persistido tal cual. La respuesta sale de la
// cantidad que devolvió el UPDATE, sin relectura posterior al commit: la única
// lectura es la previa a la mutación, y devuelve la cantidad vieja.
func TestAdjustQuantity_DeltaPositivo(t *testing.T) {
	repo := new(ProductRepoMock)
	sink := &SinkSpy{}
	uc := usecase.NewProductUseCase(repo, sink)

	const productID = "p-b001"
	repo.On("GetByID", mock.Anything, productID).Return(&entity.Product{ID: productID, Quantity: 0}, nil).Once()
	repo.On("AdjustQuantity", mock.Anything, productID, 10).Return(10, nil).Once()

	reqInfo := map[string]any{"invoice": "FAC-0042"}
	out, err := uc.AdjustQuantity(context.Background(), actorID, productID, dto.AdjustQuantityRequest{
		Delta:   10,
		Context: reqInfo,
	}, testMeta)

	require.NoError(t, err)
	assert.Equal(t, 10, out.Quantity)

	require.Len(t, sink.Entries, 1)
	e := sink.Entries[0]
	assert.Equal(t, entity.ActionQuantityAdded, e.Action)
	assert.Equal(t, 10, e.Details["quantity_change"])
	assert.Equal(t, 10, e.Details["new_quantity"])
	assert.Equal(t, reqInfo, e.Details["request_info"])
	repo.AssertExpectations(t)
	repo.AssertNumberOfCalls(t, "GetByID", 1)
}

// Retiro que excede el stock: ninguna escritura, ninguna entrada de auditoría,
// y la cantidad visible no cambia.
func TestAdjustQuantity_StockInsuficiente(t *testing.T) {
	repo := new(ProductRepoMock)
	sink := &SinkSpy{}
	uc := usecase.NewProductUseCase(repo, sink)

	const productID = "p-b001"
	repo.On("GetByID", mock.Anything, productID).Return(&entity.Product{ID: productID, Quantity: 5}, nil).Once()
	repo.On("AdjustQuantity", mock.Anything, productID, -15).Return(0, domain.ErrNegativeStock).Once()

	_, err := uc.AdjustQuantity(context.Background(), actorID, productID, dto.AdjustQuantityRequest{Delta: -15}, testMeta)

	assert.ErrorIs(t, err, domain.ErrNegativeStock)
	assert.Empty(t, sink.Entries, "un ajuste rechazado no produce auditoría")
	repo.AssertExpectations(t)
}

func TestAdjustQuantity_DeltaNegativoValido(t *testing.T) {
	repo := new(ProductRepoMock)
	sink := &SinkSpy{}
	uc := usecase.NewProductUseCase(repo, sink)

	const productID = "p-b001"
	repo.On("GetByID", mock.Anything, productID).Return(&entity.Product{ID: productID, Quantity: 10}, nil).Once()
	repo.On("AdjustQuantity", mock.Anything, productID, -3).Return(7, nil).Once()

	out, err := uc.AdjustQuantity(context.Background(), actorID, productID, dto.AdjustQuantityRequest{Delta: -3}, testMeta)

	require.NoError(t, err)
	assert.Equal(t, 7, out.Quantity)
	require.Len(t, sink.Entries, 1)
	assert.Equal(t, entity.ActionQuantityRemoved, sink.Entries[0].Action)
}

func TestAdjustQuantity_DeltaCero(t *testing.T) {
	repo := new(ProductRepoMock)
	uc := usecase.NewProductUseCase(repo, &SinkSpy{})

	_, err := uc.AdjustQuantity(context.Background(), actorID, "p-b001", dto.AdjustQuantityRequest{Delta: 0}, testMeta)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	repo.AssertNotCalled(t, "AdjustQuantity", mock.Anything, mock.Anything, mock.Anything)
}

func TestAdjustQuantity_ProductoInexistente(t *testing.T) {
	repo := new(ProductRepoMock)
	uc := usecase.NewProductUseCase(repo, &SinkSpy{})

	repo.On("GetByID", mock.Anything, "no-existe").Return(nil, nil).Once()

	_, err := uc.AdjustQuantity(context.Background(), actorID, "no-existe", dto.AdjustQuantityRequest{Delta: 5}, testMeta)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	repo.AssertNotCalled(t, "AdjustQuantity", mock.Anything, mock.Anything, mock.Anything)
}

func TestProductSearch_PasaFiltros(t *testing.T) {
	repo := new(ProductRepoMock)
	uc := usecase.NewProductUseCase(repo, &SinkSpy{})

	repo.On("Search", mock.Anything, entity.ProductFilter{Brand: "King", Type: "SSD"}).
		Return([]*entity.Product{{ID: "p1", Brand: "Kingston"}}, nil).Once()

	out, err := uc.Search(context.Background(), dto.SearchProductsRequest{Brand: "King", Type: "SSD"})

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Kingston", out[0].Brand)
	repo.AssertExpectations(t)
}
