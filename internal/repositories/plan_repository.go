package repositories

import (
	"sort"
	"sync"

	"tripwise/internal/domain"
	"tripwise/internal/domain/models"
)

// PlanRepository keeps admin plans in memory. The admin Plans screen has no
// backend persistence; the seed below is its demo data set.
type PlanRepository struct {
	mu     sync.RWMutex
	plans  map[int64]models.Plan
	nextID int64
}

// MockPlans is the seed data set of the admin Plans screen.
func MockPlans() []models.Plan {
	return []models.Plan{
		{ID: 1, Name: "Free", Price: 0, MaxDailyRequests: 3,
			Description: "3 itinerary requests per day. Basic destinations. Email support."},
		{ID: 2, Name: "Explorer", Price: 45000, MaxDailyRequests: 10,
			Description: "10 itinerary requests per day. Save itineraries as tours. Priority email support."},
		{ID: 3, Name: "Premium", Price: 99000, MaxDailyRequests: 30,
			Description: "30 itinerary requests per day. Budget optimisation. PDF export. Dedicated support."},
	}
}

func NewPlanRepository(seed []models.Plan) *PlanRepository {
	r := &PlanRepository{plans: map[int64]models.Plan{}}
	for _, p := range seed {
		r.plans[p.ID] = p
		if p.ID > r.nextID {
			r.nextID = p.ID
		}
	}
	return r
}

// List returns plans ordered by price, then id.
func (r *PlanRepository) List() []models.Plan {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Plan, 0, len(r.plans))
	for _, p := range r.plans {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Price != out[j].Price {
			return out[i].Price < out[j].Price
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (r *PlanRepository) Get(id int64) (models.Plan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.plans[id]
	if !ok {
		return models.Plan{}, domain.NotFoundError{Resource: "plan"}
	}
	return p, nil
}

func (r *PlanRepository) Create(in models.PlanInput) models.Plan {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	p := models.Plan{
		ID:               r.nextID,
		Name:             in.Name,
		Price:            in.Price,
		Description:      in.Description,
		MaxDailyRequests: in.MaxDailyRequests,
	}
	r.plans[p.ID] = p
	return p
}

func (r *PlanRepository) Update(id int64, in models.PlanInput) (models.Plan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.plans[id]; !ok {
		return models.Plan{}, domain.NotFoundError{Resource: "plan"}
	}
	p := models.Plan{
		ID:               id,
		Name:             in.Name,
		Price:            in.Price,
		Description:      in.Description,
		MaxDailyRequests: in.MaxDailyRequests,
	}
	r.plans[id] = p
	return p, nil
}

func (r *PlanRepository) Delete(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.plans[id]; !ok {
		return domain.NotFoundError{Resource: "plan"}
	}
	delete(r.plans, id)
	return nil
}
