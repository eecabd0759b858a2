package services

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kombo16/food-health-app/models"
)

func newWikiTestServer(t *testing.T, searchBody, extractBody string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Query().Get("action") {
		case "query":
			if r.URL.Query().Get("list") == "search" {
				fmt.Fprint(w, searchBody)
				return
			}
			fmt.Fprint(w, extractBody)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestWikipediaLookup(t *testing.T) {
	search := `{"query":{"search":[{"title":"Pizza"}]}}`
	extract := `{"query":{"pages":[{"extract":
		"Typical values per 100 g: calories 266, sugars 3.6 g, saturated fat 4.5 g, sodium 598 mg."
	}]}}`
	srv := newWikiTestServer(t, search, extract)

	svc := &WikipediaService{baseURL: srv.URL, client: srv.Client()}

	fact, err := svc.Lookup("pizza")
	require.NoError(t, err)
	require.NotNil(t, fact)
	assert.Equal(t, "pizza", fact.FoodName)
	assert.InDelta(t, 266, fact.CaloriesPer100g, 0.001)
	assert.InDelta(t, 3.6, fact.SugarG, 0.001)
	assert.InDelta(t, 4.5, fact.SaturatedFatG, 0.001)
	assert.InDelta(t, 598, fact.SodiumMg, 0.001)
	assert.Equal(t, models.SourceEncyclopedia, fact.Source)
}

func TestWikipediaLookupNoSearchHit(t *testing.T) {
	srv := newWikiTestServer(t, `{"query":{"search":[]}}`, `{}`)

	svc := &WikipediaService{baseURL: srv.URL, client: srv.Client()}

	fact, err := svc.Lookup("unobtainium")
	assert.NoError(t, err)
	assert.Nil(t, fact)
}

func TestWikipediaLookupMissingValuesStayZero(t *testing.T) {
	search := `{"query":{"search":[{"title":"Water"}]}}`
	extract := `{"query":{"pages":[{"extract":"Water is an inorganic compound."}]}}`
	srv := newWikiTestServer(t, search, extract)

	svc := &WikipediaService{baseURL: srv.URL, client: srv.Client()}

	fact, err := svc.Lookup("water")
	require.NoError(t, err)
	require.NotNil(t, fact)
	assert.Zero(t, fact.CaloriesPer100g)
	assert.Zero(t, fact.SugarG)
	assert.Zero(t, fact.SaturatedFatG)
	assert.Zero(t, fact.SodiumMg)
}

func TestExtractNumber(t *testing.T) {
	assert.InDelta(t, 3.6, extractNumber(wikiSugarPattern, "sugars 3.6 g"), 0.001)
	assert.InDelta(t, 12, extractNumber(wikiSugarPattern, "total sugar content of 12 grams"), 0.001)
	assert.InDelta(t, 598, extractNumber(wikiSodiumPattern, "sodium: 598 mg per serving"), 0.001)
	assert.InDelta(t, 4.5, extractNumber(wikiSatFatPattern, "of which saturated fat 4.5 g"), 0.001)
	assert.InDelta(t, 266, extractNumber(wikiCaloriesPattern, "calories: 266 per 100 g"), 0.001)
	assert.Zero(t, extractNumber(wikiSugarPattern, "no nutrition data here"))
	// grams stated without a number nearby never match
	assert.Zero(t, extractNumber(wikiSodiumPattern, "sodium content varies"))
}
