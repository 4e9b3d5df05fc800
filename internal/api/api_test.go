package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/HEADSALESSDAD/inventory-mini/internal/db"
	"github.com/HEADSALESSDAD/inventory-mini/internal/model"
)

func setupTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	database := db.NewTestDB(t)
	router := NewRouter(database)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func doJSON(t *testing.T, method, url string, body any) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("building request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	return resp
}

func decodeItem(t *testing.T, resp *http.Response) model.Item {
	t.Helper()
	defer resp.Body.Close()
	var item model.Item
	if err := json.NewDecoder(resp.Body).Decode(&item); err != nil {
		t.Fatalf("decoding item: %v", err)
	}
	return item
}

func TestItemsAPIFlow(t *testing.T) {
	server := setupTestServer(t)

	// Create with untrimmed fields.
	resp := doJSON(t, "POST", server.URL+"/api/items", map[string]any{
		"name":  " Oil Filter ",
		"sku":   " TOY-OF-1 ",
		"qty":   10,
		"price": 12.50,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	created := decodeItem(t, resp)
	if created.Name != "Oil Filter" || created.SKU != "TOY-OF-1" {
		t.Errorf("expected trimmed fields, got %q / %q", created.Name, created.SKU)
	}
	if created.Price == nil || !created.Price.Equal(decimal.RequireFromString("12.5")) {
		t.Errorf("expected price 12.50, got %v", created.Price)
	}

	// Get it back.
	resp = doJSON(t, "GET", fmt.Sprintf("%s/api/items/%d", server.URL, created.ID), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	got := decodeItem(t, resp)
	if got.ID != created.ID || got.Qty != 10 {
		t.Errorf("round-trip mismatch: %+v", got)
	}

	// Partial update: only qty changes.
	resp = doJSON(t, "PUT", fmt.Sprintf("%s/api/items/%d", server.URL, created.ID), map[string]any{"qty": 3})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	updated := decodeItem(t, resp)
	if updated.Qty != 3 || updated.Name != "Oil Filter" || updated.Price == nil {
		t.Errorf("partial update touched other fields: %+v", updated)
	}

	// Delete, then get is a 404.
	resp = doJSON(t, "DELETE", fmt.Sprintf("%s/api/items/%d", server.URL, created.ID), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp = doJSON(t, "GET", fmt.Sprintf("%s/api/items/%d", server.URL, created.ID), nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp = doJSON(t, "DELETE", fmt.Sprintf("%s/api/items/%d", server.URL, created.ID), nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for repeated delete, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestListOrderingAndPagination(t *testing.T) {
	server := setupTestServer(t)

	for i := 1; i <= 3; i++ {
		resp := doJSON(t, "POST", server.URL+"/api/items", map[string]any{
			"name": fmt.Sprintf("Item %d", i),
			"sku":  fmt.Sprintf("S-%d", i),
		})
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("create %d: expected 201, got %d", i, resp.StatusCode)
		}
		resp.Body.Close()
	}

	resp := doJSON(t, "GET", server.URL+"/api/items", nil)
	defer resp.Body.Close()
	var items []model.Item
	json.NewDecoder(resp.Body).Decode(&items)
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	if items[0].Name != "Item 3" || items[2].Name != "Item 1" {
		t.Errorf("expected newest first, got %v, %v, %v", items[0].Name, items[1].Name, items[2].Name)
	}

	resp = doJSON(t, "GET", server.URL+"/api/items?skip=1&limit=1", nil)
	defer resp.Body.Close()
	var window []model.Item
	json.NewDecoder(resp.Body).Decode(&window)
	if len(window) != 1 || window[0].Name != "Item 2" {
		t.Errorf("expected window [Item 2], got %+v", window)
	}
}

func TestListEmpty(t *testing.T) {
	server := setupTestServer(t)

	resp := doJSON(t, "GET", server.URL+"/api/items", nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var raw json.RawMessage
	json.NewDecoder(resp.Body).Decode(&raw)
	if string(raw) != "[]" {
		t.Errorf("expected empty array, got %s", raw)
	}
}

func TestValidationErrorDetail(t *testing.T) {
	server := setupTestServer(t)

	resp := doJSON(t, "POST", server.URL+"/api/items", map[string]any{"qty": -1})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}

	var body struct {
		Error  string `json:"error"`
		Fields []struct {
			Field  string `json:"field"`
			Reason string `json:"reason"`
		} `json:"fields"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decoding error body: %v", err)
	}
	if body.Error != "validation failed" {
		t.Errorf("expected validation failed, got %q", body.Error)
	}

	fields := map[string]string{}
	for _, f := range body.Fields {
		fields[f.Field] = f.Reason
	}
	for _, want := range []string{"name", "sku", "qty"} {
		if _, ok := fields[want]; !ok {
			t.Errorf("expected field-level detail for %q, got %v", want, fields)
		}
	}
}

func TestUpdateErrorPaths(t *testing.T) {
	server := setupTestServer(t)

	// Valid payload, missing target.
	resp := doJSON(t, "PUT", server.URL+"/api/items/999", map[string]any{"qty": 3})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	// Invalid payload fails identically whether or not the target exists.
	resp = doJSON(t, "PUT", server.URL+"/api/items/999", map[string]any{"qty": -3})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid payload on missing id, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	created := decodeItem(t, doJSON(t, "POST", server.URL+"/api/items", map[string]any{
		"name": "Widget", "sku": "W-1", "qty": 10,
	}))
	resp = doJSON(t, "PUT", fmt.Sprintf("%s/api/items/%d", server.URL, created.ID), map[string]any{"qty": -3})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid payload on existing id, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	// Row unchanged after the rejected update.
	got := decodeItem(t, doJSON(t, "GET", fmt.Sprintf("%s/api/items/%d", server.URL, created.ID), nil))
	if got.Qty != 10 {
		t.Errorf("expected qty 10 after rejected update, got %d", got.Qty)
	}
}

func TestInvalidID(t *testing.T) {
	server := setupTestServer(t)

	resp := doJSON(t, "GET", server.URL+"/api/items/abc", nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-numeric id, got %d", resp.StatusCode)
	}
}

func TestHealth(t *testing.T) {
	server := setupTestServer(t)

	resp, err := http.Get(server.URL + "/api/health")
	if err != nil {
		t.Fatalf("health request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}
