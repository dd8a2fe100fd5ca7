package chatService

import (
	"context"
	"io"
	"strings"

	"LakbayLaguna/internal/api/chat"
	chatRepository "LakbayLaguna/internal/api/chat/repository"
	"LakbayLaguna/internal/entity"
	"LakbayLaguna/pkg/session"

	"github.com/sirupsen/logrus"
)

// In-memory row-set provider backing the service tests. Each fake
// filters by city the way the SQL queries do.
type fakeData struct {
	attractions    []entity.Attraction
	accommodations []entity.Accommodation
	foods          []entity.Food

	// When set, every read fails with this error, simulating a
	// database outage.
	failure error
}

type fakeRepository struct {
	data *fakeData
}

func (f *fakeRepository) NewClient(_ bool) (chatRepository.Client, error) {
	return chatRepository.Client{
		Attractions:    &fakeAttractions{data: f.data},
		Accommodations: &fakeAccommodations{data: f.data},
		Foods:          &fakeFoods{data: f.data},
		Commit:         func() error { return nil },
		Rollback:       func() error { return nil },
	}, nil
}

type fakeAttractions struct {
	data *fakeData
}

func (f *fakeAttractions) GetByCity(_ context.Context, city string) ([]entity.Attraction, error) {
	if f.data.failure != nil {
		return nil, f.data.failure
	}

	var out []entity.Attraction
	for _, a := range f.data.attractions {
		if a.City == city {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAttractions) GetByLocation(_ context.Context, city, location string) (entity.Attraction, error) {
	if f.data.failure != nil {
		return entity.Attraction{}, f.data.failure
	}

	for _, a := range f.data.attractions {
		if a.City == city && strings.EqualFold(a.Location, location) {
			return a, nil
		}
	}
	return entity.Attraction{}, chat.ErrAttractionNotFound
}

func (f *fakeAttractions) CreateAttraction(_ context.Context, attraction entity.Attraction) error {
	f.data.attractions = append(f.data.attractions, attraction)
	return nil
}

func (f *fakeAttractions) DeleteByCity(_ context.Context, city string) error {
	var kept []entity.Attraction
	for _, a := range f.data.attractions {
		if a.City != city {
			kept = append(kept, a)
		}
	}
	f.data.attractions = kept
	return nil
}

type fakeAccommodations struct {
	data *fakeData
}

func (f *fakeAccommodations) GetByCity(_ context.Context, city string) ([]entity.Accommodation, error) {
	if f.data.failure != nil {
		return nil, f.data.failure
	}

	var out []entity.Accommodation
	for _, a := range f.data.accommodations {
		if a.City == city {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAccommodations) CreateAccommodation(_ context.Context, accommodation entity.Accommodation) error {
	f.data.accommodations = append(f.data.accommodations, accommodation)
	return nil
}

func (f *fakeAccommodations) DeleteByCity(_ context.Context, city string) error {
	var kept []entity.Accommodation
	for _, a := range f.data.accommodations {
		if a.City != city {
			kept = append(kept, a)
		}
	}
	f.data.accommodations = kept
	return nil
}

type fakeFoods struct {
	data *fakeData
}

func (f *fakeFoods) GetByCity(_ context.Context, city string) ([]entity.Food, error) {
	if f.data.failure != nil {
		return nil, f.data.failure
	}

	var out []entity.Food
	for _, food := range f.data.foods {
		if food.City == city {
			out = append(out, food)
		}
	}
	return out, nil
}

func (f *fakeFoods) SearchByName(_ context.Context, city, name string) ([]entity.Food, error) {
	if f.data.failure != nil {
		return nil, f.data.failure
	}

	var out []entity.Food
	for _, food := range f.data.foods {
		if food.City == city && strings.Contains(strings.ToLower(food.Name), strings.ToLower(name)) {
			out = append(out, food)
		}
	}
	return out, nil
}

func (f *fakeFoods) CreateFood(_ context.Context, food entity.Food) error {
	f.data.foods = append(f.data.foods, food)
	return nil
}

func (f *fakeFoods) DeleteByCity(_ context.Context, city string) error {
	var kept []entity.Food
	for _, food := range f.data.foods {
		if food.City != city {
			kept = append(kept, food)
		}
	}
	f.data.foods = kept
	return nil
}

func newTestService(data *fakeData) IChatService {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return New(logger, &fakeRepository{data: data}, session.NewMemoryStore())
}

func bulletLines(answer string) []string {
	var bullets []string
	for _, line := range strings.Split(answer, "\n") {
		if strings.HasPrefix(line, "* ") {
			bullets = append(bullets, strings.TrimPrefix(line, "* "))
		}
	}
	return bullets
}
