package controllers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmacy-chatbot-backend/database"
	"pharmacy-chatbot-backend/models"
)

type memoryStore struct {
	items     map[string]models.Supplier
	lastLimit int64
	lastSkip  int64
}

func (m *memoryStore) List(_ context.Context, limit, skip int64) ([]models.Supplier, error) {
	m.lastLimit, m.lastSkip = limit, skip
	var out []models.Supplier
	for _, s := range m.items {
		out = append(out, s)
	}
	return out, nil
}

func (m *memoryStore) Get(_ context.Context, id string) (*models.Supplier, error) {
	if id == "bad" {
		return nil, database.ErrInvalidID
	}
	s, ok := m.items[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	return &s, nil
}

func (m *memoryStore) Create(_ context.Context, doc *models.Supplier) error {
	m.items["new"] = *doc
	return nil
}

func (m *memoryStore) Update(ctx context.Context, id string, doc *models.Supplier) error {
	if _, err := m.Get(ctx, id); err != nil {
		return err
	}
	m.items[id] = *doc
	return nil
}

func (m *memoryStore) Delete(ctx context.Context, id string) error {
	if _, err := m.Get(ctx, id); err != nil {
		return err
	}
	delete(m.items, id)
	return nil
}

func resourceRouter(store *memoryStore) *gin.Engine {
	r := gin.New()
	NewResourceController[models.Supplier]("supplier", store).Register(r.Group("/api/v1/suppliers"))
	return r
}

func TestResourceController_CRUD(t *testing.T) {
	store := &memoryStore{items: map[string]models.Supplier{"s1": {Name: "Acme Pharma"}}}
	r := resourceRouter(store)

	w, body := do(t, r, http.MethodGet, "/api/v1/suppliers?page=3&limit=10", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, body["data"], 1)
	assert.Equal(t, int64(10), store.lastLimit)
	assert.Equal(t, int64(20), store.lastSkip)

	w, body = do(t, r, http.MethodGet, "/api/v1/suppliers/s1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Acme Pharma", body["data"].(map[string]any)["name"])

	w, _ = do(t, r, http.MethodPost, "/api/v1/suppliers", `{"name":"MediSupply","email":"orders@medisupply.example"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "MediSupply", store.items["new"].Name)

	w, _ = do(t, r, http.MethodPut, "/api/v1/suppliers/s1", `{"name":"Acme Pharma Ltd"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Acme Pharma Ltd", store.items["s1"].Name)

	w, _ = do(t, r, http.MethodDelete, "/api/v1/suppliers/s1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, store.items, "s1")
}

func TestResourceController_Errors(t *testing.T) {
	r := resourceRouter(&memoryStore{items: map[string]models.Supplier{}})

	w, body := do(t, r, http.MethodGet, "/api/v1/suppliers/missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, false, body["success"])

	w, _ = do(t, r, http.MethodGet, "/api/v1/suppliers/bad", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = do(t, r, http.MethodPost, "/api/v1/suppliers", `{"email":"not-an-email"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, body = do(t, r, http.MethodGet, "/api/v1/suppliers", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []any{}, body["data"])
}
