package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PoE2Craft_Go/internal/catalog"
	"github.com/osse101/PoE2Craft_Go/internal/crafting"
	"github.com/osse101/PoE2Craft_Go/internal/domain"
	"github.com/osse101/PoE2Craft_Go/internal/history"
	"github.com/osse101/PoE2Craft_Go/mocks"
)

func TestHandleListCurrencies(t *testing.T) {
	svc := mocks.NewMockCraftingService(t)
	svc.On("ListCurrencies").Return([]string{"Chaos Orb", "Exalted Orb"})

	w := serve(HandleListCurrencies(svc), http.MethodGet, "/api/v1/currencies", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"names":["Chaos Orb","Exalted Orb"]}`, w.Body.String())
}

func TestHandleApplicableCurrencies(t *testing.T) {
	cat := testCatalog(t)

	t.Run("builds the item and returns names", func(t *testing.T) {
		svc := mocks.NewMockCraftingService(t)
		svc.On("ApplicableCurrencies", mock.Anything, mock.MatchedBy(func(item *domain.Item) bool {
			return item.BaseName == "Garment" && item.Rarity == domain.RarityRare && len(item.Prefixes) == 2
		})).Return([]string{"Chaos Orb"}, nil)

		w := serve(HandleApplicableCurrencies(svc, cat), http.MethodPost, "/", jsonBody(t, ItemRequest{Item: rareArmour()}))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"names":["Chaos Orb"]}`, w.Body.String())
	})

	t.Run("unknown modifier is rejected before the engine", func(t *testing.T) {
		svc := mocks.NewMockCraftingService(t)
		spec := rareArmour()
		spec.Suffixes[0].Name = "of Nothing"

		w := serve(HandleApplicableCurrencies(svc, cat), http.MethodPost, "/", jsonBody(t, ItemRequest{Item: spec}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "of Nothing")
		svc.AssertNotCalled(t, "ApplicableCurrencies", mock.Anything, mock.Anything)
	})

	t.Run("missing item fields fail validation", func(t *testing.T) {
		svc := mocks.NewMockCraftingService(t)

		w := serve(HandleApplicableCurrencies(svc, cat), http.MethodPost, "/", strings.NewReader(`{"item":{}}`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var resp ValidationErrorResponse
		decodeBody(t, w, &resp)
		assert.Equal(t, ErrMsgInvalidRequestSummary, resp.Error)
		assert.Contains(t, resp.Fields, "item.base_name")
		assert.Contains(t, resp.Fields, "item.item_level")
	})
}

func TestHandleCompatibleOmens(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		setup      func(svc *mocks.MockCraftingService)
		wantStatus int
		wantBody   string
	}{
		{
			name:   "lists omens",
			target: "/api/v1/omens?currency=Exalted+Orb",
			setup: func(svc *mocks.MockCraftingService) {
				svc.On("CompatibleOmens", "Exalted Orb").Return([]string{"Omen of Dextral Exaltation"}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"names":["Omen of Dextral Exaltation"]}`,
		},
		{
			name:       "missing currency",
			target:     "/api/v1/omens",
			setup:      func(svc *mocks.MockCraftingService) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   fmt.Sprintf(`{"error":%q}`, fmt.Sprintf(ErrMsgMissingQueryParam, QueryParamCurrency)),
		},
		{
			name:   "unknown currency",
			target: "/api/v1/omens?currency=Mirror",
			setup: func(svc *mocks.MockCraftingService) {
				svc.On("CompatibleOmens", "Mirror").Return(nil, fmt.Errorf("%w: Mirror", domain.ErrUnknownCurrency))
			},
			wantStatus: http.StatusNotFound,
			wantBody:   fmt.Sprintf(`{"error":%q}`, ErrMsgUnknownCurrencyErr),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockCraftingService(t)
			tt.setup(svc)

			w := serve(HandleCompatibleOmens(svc), http.MethodGet, tt.target, nil)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestHandleAvailableMods(t *testing.T) {
	svc := mocks.NewMockCraftingService(t)
	breakdown := &crafting.ModBreakdown{
		ModSplit: crafting.ModSplit{
			Prefixes: []crafting.AvailableMod{{Name: "Hale", Type: domain.ModTypePrefix, Tier: 3, Probability: 1}},
		},
	}
	svc.On("AvailableMods", mock.Anything, mock.AnythingOfType("*domain.Item")).Return(breakdown, nil)

	w := serve(HandleAvailableMods(svc, testCatalog(t)), http.MethodPost, "/", jsonBody(t, ItemRequest{Item: rareArmour()}))

	require.Equal(t, http.StatusOK, w.Code)
	var got crafting.ModBreakdown
	decodeBody(t, w, &got)
	require.Len(t, got.Prefixes, 1)
	assert.Equal(t, "Hale", got.Prefixes[0].Name)
}

func TestHandleCraft(t *testing.T) {
	cat := testCatalog(t)

	t.Run("success returns the item and records the attempt", func(t *testing.T) {
		svc := mocks.NewMockCraftingService(t)
		recorder := mocks.NewMockHistoryRecorder(t)

		svc.On("Apply", mock.Anything, mock.MatchedBy(func(req crafting.ApplyRequest) bool {
			return req.Currency == "Exalted Orb" && len(req.Omens) == 1 && req.Seed != nil && *req.Seed == 7
		})).Return(func(_ context.Context, req crafting.ApplyRequest) (*domain.CraftResult, error) {
			return domain.Succeeded("Added a modifier", req.Item.Clone()), nil
		})
		recorder.On("Record", mock.Anything, mock.MatchedBy(func(e *history.Entry) bool {
			return e.Success && e.Currency == "Exalted Orb" && e.ItemAfter != nil
		})).Once()

		body := CraftRequest{
			Item:     rareArmour(),
			Currency: "Exalted Orb",
			Omens:    []string{"Omen of Sinistral Exaltation"},
			Seed:     seedPtr(7),
		}
		w := serve(HandleCraft(svc, cat, recorder), http.MethodPost, "/api/v1/craft", jsonBody(t, body))

		require.Equal(t, http.StatusOK, w.Code)
		var resp CraftResponse
		decodeBody(t, w, &resp)
		assert.True(t, resp.Success)
		assert.Equal(t, "Added a modifier", resp.Message)
		require.NotNil(t, resp.ResultItem)
		assert.Equal(t, "Rare", resp.ResultItem.Rarity)
		require.Len(t, resp.ResultItem.Prefixes, 2)
		assert.Equal(t, 60, resp.ResultItem.Prefixes[0].Value)
		assert.NotEmpty(t, resp.ResultItem.Prefixes[0].Text)
		assert.NotContains(t, resp.ResultItem.Prefixes[0].Text, domain.StatPlaceholder)
	})

	t.Run("gameplay failure is a 200 with success false", func(t *testing.T) {
		svc := mocks.NewMockCraftingService(t)
		recorder := mocks.NewMockHistoryRecorder(t)

		svc.On("Apply", mock.Anything, mock.Anything).Return(domain.Failure("Item has no open suffix slots"), nil)
		recorder.On("Record", mock.Anything, mock.MatchedBy(func(e *history.Entry) bool {
			return !e.Success && e.ItemAfter == nil
		})).Once()

		body := CraftRequest{Item: rareArmour(), Currency: "Exalted Orb"}
		w := serve(HandleCraft(svc, cat, recorder), http.MethodPost, "/api/v1/craft", jsonBody(t, body))

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":false,"message":"Item has no open suffix slots","result_item":null}`, w.Body.String())
	})

	t.Run("engine errors are not recorded", func(t *testing.T) {
		svc := mocks.NewMockCraftingService(t)
		recorder := mocks.NewMockHistoryRecorder(t)

		svc.On("Apply", mock.Anything, mock.Anything).Return(nil, fmt.Errorf("%w: output invalid", domain.ErrCatalogIntegrity))

		body := CraftRequest{Item: rareArmour(), Currency: "Exalted Orb"}
		w := serve(HandleCraft(svc, cat, recorder), http.MethodPost, "/api/v1/craft", jsonBody(t, body))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, fmt.Sprintf(`{"error":%q}`, ErrMsgCatalogErrorErr), w.Body.String())
		recorder.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
	})

	t.Run("request validation", func(t *testing.T) {
		tests := []struct {
			name      string
			body      string
			wantField string
		}{
			{"missing currency", `{"item":{"base_name":"Garment","category":"body_armour","rarity":"Rare","item_level":70}}`, "currency"},
			{"blank currency", `{"item":{"base_name":"Garment","category":"body_armour","rarity":"Rare","item_level":70},"currency":"   "}`, "currency"},
			{"duplicate omens", `{"item":{"base_name":"Garment","category":"body_armour","rarity":"Rare","item_level":70},"currency":"Chaos Orb","omens":["A","A"]}`, "omens"},
			{"empty omen", `{"item":{"base_name":"Garment","category":"body_armour","rarity":"Rare","item_level":70},"currency":"Chaos Orb","omens":[""]}`, "omens[0]"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				svc := mocks.NewMockCraftingService(t)
				recorder := mocks.NewMockHistoryRecorder(t)

				w := serve(HandleCraft(svc, cat, recorder), http.MethodPost, "/api/v1/craft", strings.NewReader(tt.body))

				assert.Equal(t, http.StatusBadRequest, w.Code)
				var resp ValidationErrorResponse
				decodeBody(t, w, &resp)
				assert.Contains(t, resp.Fields, tt.wantField)
			})
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		svc := mocks.NewMockCraftingService(t)
		recorder := mocks.NewMockHistoryRecorder(t)

		w := serve(HandleCraft(svc, cat, recorder), http.MethodPost, "/api/v1/craft", strings.NewReader(`{"item":`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, fmt.Sprintf(`{"error":%q}`, ErrMsgInvalidRequest), w.Body.String())
	})
}

func TestCraftResultCanBeSentBack(t *testing.T) {
	cat := testCatalog(t)
	item, err := cat.BuildItem(func() *catalog.ItemSpec { s := rareArmour(); return &s }())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(NewItemView(item)))

	var spec catalog.ItemSpec
	require.NoError(t, json.NewDecoder(&buf).Decode(&spec))
	rebuilt, err := cat.BuildItem(&spec)
	require.NoError(t, err)
	assert.Equal(t, item, rebuilt)
}

func TestHandleCatalogVersion(t *testing.T) {
	svc := mocks.NewMockCraftingService(t)
	svc.On("CatalogVersion").Return("d41d8cd9")

	w := serve(HandleCatalogVersion(svc), http.MethodGet, "/api/v1/catalog", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"version":"d41d8cd9"}`, w.Body.String())
}

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"nil", nil, http.StatusInternalServerError, ErrMsgUnknownError},
		{"integrity", fmt.Errorf("%w: x", domain.ErrCatalogIntegrity), http.StatusInternalServerError, ErrMsgCatalogErrorErr},
		{"unknown currency", fmt.Errorf("%w: x", domain.ErrUnknownCurrency), http.StatusNotFound, ErrMsgUnknownCurrencyErr},
		{"invalid item keeps its text", fmt.Errorf("%w: level 0", domain.ErrInvalidItem), http.StatusBadRequest, "invalid item: level 0"},
		{"unknown category", domain.ErrUnknownCategory, http.StatusBadRequest, ErrMsgUnknownCategoryErr},
		{"unknown modifier", domain.ErrModifierNotFound, http.StatusBadRequest, ErrMsgModifierNotFoundErr},
		{"deadline", context.DeadlineExceeded, http.StatusGatewayTimeout, ErrMsgTimeoutError},
		{"other", errors.New("boom"), http.StatusInternalServerError, ErrMsgGenericServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := mapServiceErrorToUserMessage(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}
