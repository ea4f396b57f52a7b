package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/osse101/PoE2Craft_Go/internal/catalog"
)

const shippedDataDir = "../../configs/data"

var (
	catalogOnce sync.Once
	testCat     *catalog.Catalog
	testCatErr  error
)

// testCatalog loads the shipped catalog once; it serves as the ItemBuilder in handler tests
func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	catalogOnce.Do(func() {
		testCat, testCatErr = catalog.NewLoader("").Load(context.Background(), shippedDataDir)
	})
	require.NoError(t, testCatErr)
	return testCat
}

func intPtr(v int) *int { return &v }

func seedPtr(v uint64) *uint64 { return &v }

// rareArmour is a valid Rare body armour with one open prefix and two open suffixes
func rareArmour() catalog.ItemSpec {
	return catalog.ItemSpec{
		BaseName:  "Garment",
		Category:  "body_armour",
		Rarity:    "Rare",
		ItemLevel: 70,
		Prefixes:  []catalog.ModSpec{{Name: "Stalwart", Value: intPtr(60)}, {Name: "Ribbed"}},
		Suffixes:  []catalog.ModSpec{{Name: "of the Drake"}},
	}
}

func jsonBody(t *testing.T, v interface{}) *bytes.Reader {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(data)
}

func serve(h http.HandlerFunc, method, target string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(w.Body).Decode(out))
}
