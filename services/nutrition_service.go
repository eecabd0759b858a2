package services

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Kombo16/food-health-app/models"
)

// FoodStore is the persistence surface the resolver needs: a food cache keyed
// case-insensitively by name plus an append-only query log.
type FoodStore interface {
	GetFood(name string) (*models.NutritionFact, error)
	PutFood(fact *models.NutritionFact) error
	LogQuery(name string, tried SourcesTried) error
}

// NutritionSource looks a food up in one external backend. A (nil, nil)
// return means the source has no data for the food.
type NutritionSource interface {
	Source() string
	Lookup(foodName string) (*models.NutritionFact, error)
}

// ManualSource supplies nutrition facts when every automated source misses.
// Only wired in interactive (CLI) contexts; the HTTP path leaves it nil.
type ManualSource interface {
	Prompt(foodName string) (*models.NutritionFact, error)
}

// SourcesTried records which lookup steps a resolution went through.
type SourcesTried struct {
	Cache        bool
	API          bool
	Encyclopedia bool
	User         bool
}

// NutritionService resolves food names to canonical nutrition facts by
// trying the cache, then each configured source in order, then the manual
// source. The first success wins and is persisted (except cache hits).
type NutritionService struct {
	store   FoodStore
	sources []NutritionSource
	manual  ManualSource
}

func NewNutritionService(store FoodStore, sources []NutritionSource, manual ManualSource) *NutritionService {
	return &NutritionService{store: store, sources: sources, manual: manual}
}

// GetFoodNutrition returns the canonical NutritionFact for a food, or nil
// when every source misses. Source failures are logged and treated as misses;
// they never surface to the caller.
func (s *NutritionService) GetFoodNutrition(foodName string) *models.NutritionFact {
	foodName = strings.TrimSpace(foodName)
	var tried SourcesTried

	fact, err := s.store.GetFood(foodName)
	if err != nil {
		logrus.WithError(err).WithField("food", foodName).Warn("food cache lookup failed")
	}
	if fact != nil {
		tried.Cache = true
		fact.Source = models.SourceCache
		s.logQuery(foodName, tried)
		return fact
	}

	for _, source := range s.sources {
		fact, err := source.Lookup(foodName)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"food":   foodName,
				"source": source.Source(),
			}).Warn("nutrition lookup failed")
			continue
		}
		if fact == nil {
			continue
		}
		switch source.Source() {
		case models.SourceAPI:
			tried.API = true
		case models.SourceEncyclopedia:
			tried.Encyclopedia = true
		}
		s.persist(fact)
		s.logQuery(foodName, tried)
		return fact
	}

	if s.manual != nil {
		fact, err := s.manual.Prompt(foodName)
		if err != nil {
			logrus.WithError(err).WithField("food", foodName).Warn("manual nutrition input failed")
		} else if fact != nil {
			tried.User = true
			fact.Source = models.SourceUser
			s.persist(fact)
			s.logQuery(foodName, tried)
			return fact
		}
	}

	s.logQuery(foodName, tried)
	return nil
}

func (s *NutritionService) persist(fact *models.NutritionFact) {
	if err := s.store.PutFood(fact); err != nil {
		logrus.WithError(err).WithField("food", fact.FoodName).Warn("failed to cache nutrition fact")
	}
}

func (s *NutritionService) logQuery(foodName string, tried SourcesTried) {
	if err := s.store.LogQuery(foodName, tried); err != nil {
		logrus.WithError(err).WithField("food", foodName).Warn("failed to log food query")
	}
}
