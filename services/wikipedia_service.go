package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/Kombo16/food-health-app/models"
	"github.com/Kombo16/food-health-app/utils"
)

// Loose numeric patterns for pulling nutrient values out of article prose.
// Best-effort only; a value that doesn't match stays at zero.
var (
	wikiSugarPattern    = regexp.MustCompile(`sugars?\D*?(\d+(?:\.\d+)?)\s*(?:g|gram)`)
	wikiSatFatPattern   = regexp.MustCompile(`saturated fat\D*?(\d+(?:\.\d+)?)\s*(?:g|gram)`)
	wikiSodiumPattern   = regexp.MustCompile(`sodium\D*?(\d+(?:\.\d+)?)\s*(?:mg|milligram)`)
	wikiCaloriesPattern = regexp.MustCompile(`calories?\D*?(\d+(?:\.\d+)?)`)
)

// WikipediaService is the encyclopedia fallback: it searches for
// "<food> nutrition", takes the first hit, and scrapes nutrient numbers out
// of the article's plain-text extract.
type WikipediaService struct {
	baseURL string
	client  *http.Client
}

func NewWikipediaService() *WikipediaService {
	return &WikipediaService{
		baseURL: "https://en.wikipedia.org/w/api.php",
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *WikipediaService) Source() string { return models.SourceEncyclopedia }

type wikiSearchResponse struct {
	Query struct {
		Search []struct {
			Title string `json:"title"`
		} `json:"search"`
	} `json:"query"`
}

type wikiExtractResponse struct {
	Query struct {
		Pages []struct {
			Extract string `json:"extract"`
		} `json:"pages"`
	} `json:"query"`
}

func (s *WikipediaService) Lookup(foodName string) (*models.NutritionFact, error) {
	title, err := s.searchTitle(foodName + " nutrition")
	if err != nil {
		return nil, err
	}
	if title == "" {
		return nil, nil
	}

	content, err := s.pageExtract(title)
	if err != nil {
		return nil, err
	}
	content = strings.ToLower(content)

	return &models.NutritionFact{
		FoodName:        foodName,
		CaloriesPer100g: extractNumber(wikiCaloriesPattern, content),
		SugarG:          extractNumber(wikiSugarPattern, content),
		SaturatedFatG:   extractNumber(wikiSatFatPattern, content),
		SodiumMg:        extractNumber(wikiSodiumPattern, content),
		Category:        utils.CategorizeFood(foodName),
		Source:          models.SourceEncyclopedia,
	}, nil
}

func (s *WikipediaService) searchTitle(query string) (string, error) {
	u := fmt.Sprintf(
		"%s?action=query&list=search&srsearch=%s&srlimit=1&format=json&formatversion=2",
		s.baseURL, url.QueryEscape(query),
	)
	var out wikiSearchResponse
	if err := s.getJSON(u, &out); err != nil {
		return "", fmt.Errorf("wikipedia search for %q: %w", query, err)
	}
	if len(out.Query.Search) == 0 {
		return "", nil
	}
	return out.Query.Search[0].Title, nil
}

func (s *WikipediaService) pageExtract(title string) (string, error) {
	u := fmt.Sprintf(
		"%s?action=query&prop=extracts&explaintext=1&titles=%s&format=json&formatversion=2",
		s.baseURL, url.QueryEscape(title),
	)
	var out wikiExtractResponse
	if err := s.getJSON(u, &out); err != nil {
		return "", fmt.Errorf("wikipedia extract for %q: %w", title, err)
	}
	if len(out.Query.Pages) == 0 {
		return "", nil
	}
	return out.Query.Pages[0].Extract, nil
}

func (s *WikipediaService) getJSON(rawURL string, out any) error {
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

func extractNumber(pattern *regexp.Regexp, content string) float64 {
	match := pattern.FindStringSubmatch(content)
	if match == nil {
		return 0
	}
	v, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0
	}
	return v
}
