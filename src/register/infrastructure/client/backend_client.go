package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"register/src/register/domain/entity"
)

// saleResponse representa la respuesta del backend al crear una venta
type saleResponse struct {
	Success bool   `json:"success"`
	SaleID  int64  `json:"sale_id"`
	Error   string `json:"error"`
}

// searchResponse representa la respuesta de búsqueda por barcode
type searchResponse struct {
	Success bool            `json:"success"`
	Product *entity.Product `json:"product"`
	Error   string          `json:"error"`
}

// BackendClient cliente HTTP para comunicarse con el backend POS
// (productos, ventas y reportes). Un solo intento por llamada, sin
// retries automáticos; el timeout lo define el transporte.
type BackendClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewBackendClient crea una nueva instancia del cliente.
func NewBackendClient() *BackendClient {
	baseURL := os.Getenv("POS_BACKEND_URL")
	if baseURL == "" {
		baseURL = "http://localhost:5000" // Default para entorno local
	}

	return &BackendClient{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: baseURL,
	}
}

// NewBackendClientWithURL crea un cliente apuntando a una URL explícita.
func NewBackendClientWithURL(baseURL string) *BackendClient {
	c := NewBackendClient()
	c.baseURL = baseURL
	return c
}

// List obtiene el catálogo completo de productos ordenado por nombre.
func (c *BackendClient) List(ctx context.Context) ([]entity.Product, error) {
	body, err := c.get(ctx, "/api/products")
	if err != nil {
		return nil, err
	}

	var products []entity.Product
	if err := json.Unmarshal(body, &products); err != nil {
		return nil, fmt.Errorf("error unmarshalling products: %w", err)
	}
	return products, nil
}

// FindByBarcode busca un producto por código de barras.
// found=false sin error cuando el backend responde success=false.
func (c *BackendClient) FindByBarcode(ctx context.Context, barcode string) (*entity.Product, bool, error) {
	body, err := c.get(ctx, "/api/products/search/"+url.PathEscape(barcode))
	if err != nil {
		return nil, false, err
	}

	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, false, fmt.Errorf("error unmarshalling search response: %w", err)
	}
	if !resp.Success || resp.Product == nil {
		return nil, false, nil
	}
	return resp.Product, true, nil
}

// Submit envía la venta al backend y retorna el identificador asignado.
func (c *BackendClient) Submit(ctx context.Context, sale *entity.Sale) (int64, error) {
	jsonData, err := json.Marshal(sale)
	if err != nil {
		return 0, fmt.Errorf("error marshalling sale: %w", err)
	}

	endpoint := c.baseURL + "/api/sales"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return 0, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("error calling backend: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return 0, fmt.Errorf("backend returned status %d: %s", resp.StatusCode, string(body))
	}

	var saleResp saleResponse
	if err := json.Unmarshal(body, &saleResp); err != nil {
		return 0, fmt.Errorf("error unmarshalling sale response: %w", err)
	}
	if !saleResp.Success {
		return 0, fmt.Errorf("sale rejected by backend: %s", saleResp.Error)
	}

	return saleResp.SaleID, nil
}

// ListRecent retorna las ventas más recientes, nuevas primero.
func (c *BackendClient) ListRecent(ctx context.Context) ([]entity.SaleSummary, error) {
	body, err := c.get(ctx, "/api/sales")
	if err != nil {
		return nil, err
	}

	var sales []entity.SaleSummary
	if err := json.Unmarshal(body, &sales); err != nil {
		return nil, fmt.Errorf("error unmarshalling sales: %w", err)
	}
	return sales, nil
}

// Get retorna el detalle de una venta con sus líneas.
func (c *BackendClient) Get(ctx context.Context, saleID int64) (*entity.SaleDetail, error) {
	body, err := c.get(ctx, fmt.Sprintf("/api/sales/%d", saleID))
	if err != nil {
		return nil, err
	}

	var sale entity.SaleDetail
	if err := json.Unmarshal(body, &sale); err != nil {
		return nil, fmt.Errorf("error unmarshalling sale detail: %w", err)
	}
	return &sale, nil
}

// DailyReport retorna el reporte diario agregado por el backend.
func (c *BackendClient) DailyReport(ctx context.Context, date string) (*entity.DailyReport, error) {
	body, err := c.get(ctx, "/api/reports/daily?date="+url.QueryEscape(date))
	if err != nil {
		return nil, err
	}

	var report entity.DailyReport
	if err := json.Unmarshal(body, &report); err != nil {
		return nil, fmt.Errorf("error unmarshalling daily report: %w", err)
	}
	return &report, nil
}

// get ejecuta un GET contra el backend y retorna el body en 200 OK.
func (c *BackendClient) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error calling backend: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("backend returned status %d: %s", resp.StatusCode, string(body))
	}

	return body, nil
}
