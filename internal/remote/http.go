package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"combustion/internal/domain"
)

// ErrNotFound matches a *StatusError for a 404 response.
var ErrNotFound = errors.New("not found")

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Method  string
	Path    string
	Status  string
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("thermod %s %s: %s", e.Method, e.Path, e.Status)
	}
	return fmt.Sprintf("thermod %s %s: %s: %s", e.Method, e.Path, e.Status, e.Message)
}

// Is lets errors.Is(err, ErrNotFound) match 404 responses.
func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.Code == http.StatusNotFound
}

// HTTP talks to a thermod server.
type HTTP struct {
	Base string
	HTTP *http.Client
}

// NewHTTP returns a client for the server at base. A nil client means
// http.DefaultClient.
func NewHTTP(base string, client *http.Client) *HTTP {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTP{Base: strings.TrimRight(base, "/"), HTTP: client}
}

// Calculate runs a calculation on the server.
func (c *HTTP) Calculate(
	ctx context.Context,
	request domain.CalculationRequest,
) (domain.CalculationResult, error) {
	var out domain.CalculationResult
	if err := c.do(ctx, http.MethodPost, "/calculate", request, &out); err != nil {
		return domain.CalculationResult{}, err
	}
	return out, nil
}

// FetchMaterial returns one material from the server's library.
func (c *HTTP) FetchMaterial(ctx context.Context, formula domain.Formula) (domain.Material, error) {
	var out domain.Material
	if err := c.do(ctx, http.MethodGet, "/species/"+url.PathEscape(formula.String()), nil, &out); err != nil {
		return domain.Material{}, err
	}
	return out, nil
}

// ListMaterials returns the server's whole library.
func (c *HTTP) ListMaterials(ctx context.Context) ([]domain.Material, error) {
	var out []domain.Material
	if err := c.do(ctx, http.MethodGet, "/species", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PublishMaterial stores a material in the server's library.
func (c *HTTP) PublishMaterial(ctx context.Context, material domain.Material) error {
	return c.do(ctx, http.MethodPost, "/species", material, nil)
}

func (c *HTTP) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf := new(bytes.Buffer)
		if err := json.NewEncoder(buf).Encode(in); err != nil {
			return err
		}
		body = buf
	}
	req, err := http.NewRequestWithContext(ctx, method, c.Base+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		var e struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&e)
		return &StatusError{
			Method:  method,
			Path:    path,
			Status:  resp.Status,
			Code:    resp.StatusCode,
			Message: e.Error,
		}
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

var _ domain.RemoteClient = (*HTTP)(nil)
