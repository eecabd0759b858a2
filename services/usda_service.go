package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Kombo16/food-health-app/models"
	"github.com/Kombo16/food-health-app/utils"
)

// Conservative cap under the USDA free-tier hourly quota. The counter is
// process-wide and only approximately enforced.
const usdaRequestCeiling = 950

// USDAService queries the USDA FoodData Central API.
type USDAService struct {
	apiKey   string
	baseURL  string
	client   *http.Client
	requests atomic.Int64
}

func NewUSDAService() *USDAService {
	return &USDAService{
		apiKey:  os.Getenv("USDA_API_KEY"),
		baseURL: "https://api.nal.usda.gov/fdc/v1",
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *USDAService) Source() string { return models.SourceAPI }

type usdaSearchResponse struct {
	Foods []struct {
		FdcID       int    `json:"fdcId"`
		Description string `json:"description"`
	} `json:"foods"`
}

type usdaFoodDetail struct {
	FoodNutrients []struct {
		Nutrient struct {
			Name string `json:"name"`
		} `json:"nutrient"`
		Amount float64 `json:"amount"`
	} `json:"foodNutrients"`
}

// Lookup searches FoodData Central and maps the top survey-food hit to a
// NutritionFact. Returns (nil, nil) when the API is not configured, the
// request ceiling has been reached, or no result was found.
func (s *USDAService) Lookup(foodName string) (*models.NutritionFact, error) {
	if s.apiKey == "" {
		logrus.Debug("USDA API key not configured, skipping API lookup")
		return nil, nil
	}
	if s.requests.Add(1) > usdaRequestCeiling {
		logrus.WithField("food", foodName).Warn("approaching USDA rate limit, skipping API lookup")
		return nil, nil
	}

	searchURL := fmt.Sprintf(
		"%s/foods/search?query=%s&api_key=%s&pageSize=1&dataType=%s",
		s.baseURL, url.QueryEscape(foodName), s.apiKey, url.QueryEscape("Survey (FNDDS)"),
	)
	var search usdaSearchResponse
	if err := s.getJSON(searchURL, &search); err != nil {
		return nil, fmt.Errorf("usda search for %q: %w", foodName, err)
	}
	if len(search.Foods) == 0 {
		return nil, nil
	}
	hit := search.Foods[0]

	detailURL := fmt.Sprintf("%s/food/%d?api_key=%s", s.baseURL, hit.FdcID, s.apiKey)
	var detail usdaFoodDetail
	if err := s.getJSON(detailURL, &detail); err != nil {
		return nil, fmt.Errorf("usda food detail for %q: %w", foodName, err)
	}

	nutrients := make(map[string]float64, len(detail.FoodNutrients))
	for _, n := range detail.FoodNutrients {
		nutrients[strings.ToLower(n.Nutrient.Name)] = n.Amount
	}

	return &models.NutritionFact{
		FoodName:        foodName,
		CaloriesPer100g: nutrients["energy"],
		SugarG:          firstNonZero(nutrients["sugars, total including nlea"], nutrients["total sugars"]),
		SaturatedFatG:   nutrients["fatty acids, total saturated"],
		SodiumMg:        nutrients["sodium, na"],
		Category:        utils.CategorizeFood(hit.Description),
		Source:          models.SourceAPI,
	}, nil
}

func (s *USDAService) getJSON(rawURL string, out any) error {
	resp, err := s.client.Get(rawURL)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("api error %d: %s", resp.StatusCode, string(body))
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}
	return nil
}

func firstNonZero(values ...float64) float64 {
	for _, v := range values {
		if v != 0 {
			return v
		}
	}
	return 0
}
