package app

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/example/stockbook/internal/models"
	"github.com/example/stockbook/internal/ports/secondary"
)

// ============================================================================
// Mock Implementations
// ============================================================================

// mockPaddockRepository implements secondary.PaddockRepository for testing.
type mockPaddockRepository struct {
	paddocks map[int64]*models.Paddock
	nextID   int64
}

func newMockPaddockRepository() *mockPaddockRepository {
	return &mockPaddockRepository{paddocks: map[int64]*models.Paddock{}}
}

func (m *mockPaddockRepository) Save(ctx context.Context, paddock *models.Paddock) (*models.Paddock, error) {
	if paddock.ID == 0 {
		m.nextID++
		paddock.ID = m.nextID
	}
	stored := *paddock
	m.paddocks[paddock.ID] = &stored
	return &stored, nil
}

func (m *mockPaddockRepository) GetByID(ctx context.Context, id int64) (*models.Paddock, error) {
	return m.paddocks[id], nil
}

func (m *mockPaddockRepository) List(ctx context.Context) ([]*models.Paddock, error) {
	result := []*models.Paddock{}
	for _, p := range m.paddocks {
		result = append(result, p)
	}
	return result, nil
}

func (m *mockPaddockRepository) Delete(ctx context.Context, id int64) error {
	delete(m.paddocks, id)
	return nil
}

// mockMobRepository implements secondary.MobRepository for testing.
type mockMobRepository struct {
	mobs    map[int64]*models.Mob
	animals *mockAnimalRepository
	nextID  int64
}

func newMockMobRepository(animals *mockAnimalRepository) *mockMobRepository {
	return &mockMobRepository{mobs: map[int64]*models.Mob{}, animals: animals}
}

func (m *mockMobRepository) Save(ctx context.Context, mob *models.Mob) (*models.Mob, error) {
	if mob.ID == 0 {
		m.nextID++
		mob.ID = m.nextID
	}
	stored := *mob
	m.mobs[mob.ID] = &stored
	return &stored, nil
}

func (m *mockMobRepository) GetByID(ctx context.Context, id int64) (*models.Mob, error) {
	return m.mobs[id], nil
}

func (m *mockMobRepository) List(ctx context.Context) ([]*models.Mob, error) {
	result := []*models.Mob{}
	for _, mob := range m.mobs {
		result = append(result, mob)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (m *mockMobRepository) Delete(ctx context.Context, id int64) error {
	delete(m.mobs, id)
	return nil
}

func (m *mockMobRepository) AliveCount(ctx context.Context, mobID int64) (int, error) {
	count := 0
	for _, animal := range m.animals.animals {
		if animal.MobID.Valid && animal.MobID.Int64 == mobID && animal.Status == models.AnimalStatusAlive {
			count++
		}
	}
	return count, nil
}

// mockAnimalRepository implements secondary.AnimalRepository for testing.
type mockAnimalRepository struct {
	animals map[int64]*models.Animal
	nextID  int64
}

func newMockAnimalRepository() *mockAnimalRepository {
	return &mockAnimalRepository{animals: map[int64]*models.Animal{}}
}

func (m *mockAnimalRepository) Save(ctx context.Context, animal *models.Animal) (*models.Animal, error) {
	if animal.ID == 0 {
		m.nextID++
		animal.ID = m.nextID
	}
	stored := *animal
	m.animals[animal.ID] = &stored
	return &stored, nil
}

func (m *mockAnimalRepository) GetByID(ctx context.Context, id int64) (*models.Animal, error) {
	return m.animals[id], nil
}

func (m *mockAnimalRepository) GetByEID(ctx context.Context, eid string) (*models.Animal, error) {
	for _, animal := range m.animals {
		if animal.EID == eid {
			return animal, nil
		}
	}
	return nil, nil
}

func (m *mockAnimalRepository) List(ctx context.Context, status string) ([]*models.Animal, error) {
	result := []*models.Animal{}
	for _, animal := range m.animals {
		if status != "" && animal.Status != status {
			continue
		}
		result = append(result, animal)
	}
	return result, nil
}

func (m *mockAnimalRepository) ListByMob(ctx context.Context, mobID int64) ([]*models.Animal, error) {
	result := []*models.Animal{}
	for _, animal := range m.animals {
		if animal.MobID.Valid && animal.MobID.Int64 == mobID {
			result = append(result, animal)
		}
	}
	return result, nil
}

func (m *mockAnimalRepository) Search(ctx context.Context, query string) ([]*models.Animal, error) {
	q := strings.ToLower(query)
	result := []*models.Animal{}
	for _, animal := range m.animals {
		if strings.Contains(strings.ToLower(animal.EID), q) || strings.Contains(strings.ToLower(animal.VisualTag), q) {
			result = append(result, animal)
		}
	}
	return result, nil
}

func (m *mockAnimalRepository) Delete(ctx context.Context, id int64) error {
	delete(m.animals, id)
	return nil
}

func (m *mockAnimalRepository) StatusCounts(ctx context.Context) (map[string]int, error) {
	counts := map[string]int{}
	for _, animal := range m.animals {
		counts[animal.Status]++
	}
	return counts, nil
}

func (m *mockAnimalRepository) SpeciesCounts(ctx context.Context) (map[string]int, error) {
	counts := map[string]int{}
	for _, animal := range m.animals {
		if animal.Status == models.AnimalStatusAlive {
			counts[animal.Species]++
		}
	}
	return counts, nil
}

// mockProductRepository implements secondary.ProductRepository for testing.
type mockProductRepository struct {
	products map[int64]*models.Product
	nextID   int64
}

func newMockProductRepository() *mockProductRepository {
	return &mockProductRepository{products: map[int64]*models.Product{}}
}

func (m *mockProductRepository) Save(ctx context.Context, product *models.Product) (*models.Product, error) {
	if product.ID == 0 {
		m.nextID++
		product.ID = m.nextID
	}
	stored := *product
	m.products[product.ID] = &stored
	return &stored, nil
}

func (m *mockProductRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	return m.products[id], nil
}

func (m *mockProductRepository) List(ctx context.Context) ([]*models.Product, error) {
	result := []*models.Product{}
	for _, p := range m.products {
		result = append(result, p)
	}
	return result, nil
}

func (m *mockProductRepository) Delete(ctx context.Context, id int64) error {
	delete(m.products, id)
	return nil
}

// mockEventRepository implements secondary.EventRepository for testing.
type mockEventRepository struct {
	events     map[int64]*models.Event
	movements  map[int64]*models.MovementDetail
	treatments map[int64]*models.TreatmentDetail
	weighs     map[int64]*models.WeighDetail
	animals    *mockAnimalRepository
	nextID     int64
}

func newMockEventRepository(animals *mockAnimalRepository) *mockEventRepository {
	return &mockEventRepository{
		events:     map[int64]*models.Event{},
		movements:  map[int64]*models.MovementDetail{},
		treatments: map[int64]*models.TreatmentDetail{},
		weighs:     map[int64]*models.WeighDetail{},
		animals:    animals,
	}
}

func (m *mockEventRepository) Save(ctx context.Context, event *models.Event) (*models.Event, error) {
	if event.ID == 0 {
		m.nextID++
		event.ID = m.nextID
	}
	stored := *event
	m.events[event.ID] = &stored
	return &stored, nil
}

func (m *mockEventRepository) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	return m.events[id], nil
}

func (m *mockEventRepository) SaveMovement(ctx context.Context, event *models.Event, detail *models.MovementDetail) error {
	event.EventType = models.EventTypeMovement
	saved, _ := m.Save(ctx, event)
	event.ID = saved.ID
	detail.EventID = event.ID
	m.movements[event.ID] = detail
	return nil
}

func (m *mockEventRepository) SaveTreatment(ctx context.Context, event *models.Event, detail *models.TreatmentDetail) error {
	event.EventType = models.EventTypeTreatment
	saved, _ := m.Save(ctx, event)
	event.ID = saved.ID
	detail.EventID = event.ID
	m.treatments[event.ID] = detail
	return nil
}

func (m *mockEventRepository) SaveWeigh(ctx context.Context, event *models.Event, detail *models.WeighDetail) error {
	event.EventType = models.EventTypeWeigh
	saved, _ := m.Save(ctx, event)
	event.ID = saved.ID
	detail.EventID = event.ID
	m.weighs[event.ID] = detail
	return nil
}

func (m *mockEventRepository) sorted() []*models.Event {
	result := []*models.Event{}
	for _, e := range m.events {
		result = append(result, e)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].EventDate.Equal(result[j].EventDate) {
			return result[i].EventDate.After(result[j].EventDate)
		}
		return result[i].ID > result[j].ID
	})
	return result
}

func (m *mockEventRepository) ListForAnimal(ctx context.Context, animalID int64, eventType string) ([]*models.Event, error) {
	result := []*models.Event{}
	for _, e := range m.sorted() {
		if !e.AnimalID.Valid || e.AnimalID.Int64 != animalID {
			continue
		}
		if eventType != "" && e.EventType != eventType {
			continue
		}
		result = append(result, e)
	}
	return result, nil
}

func (m *mockEventRepository) ListForMob(ctx context.Context, mobID int64, eventType string) ([]*models.Event, error) {
	result := []*models.Event{}
	for _, e := range m.sorted() {
		if !e.MobID.Valid || e.MobID.Int64 != mobID {
			continue
		}
		if eventType != "" && e.EventType != eventType {
			continue
		}
		result = append(result, e)
	}
	return result, nil
}

func (m *mockEventRepository) ListRecent(ctx context.Context, limit int) ([]*models.Event, error) {
	result := m.sorted()
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *mockEventRepository) MovementDetail(ctx context.Context, eventID int64) (*models.MovementDetail, error) {
	return m.movements[eventID], nil
}

func (m *mockEventRepository) TreatmentDetail(ctx context.Context, eventID int64) (*models.TreatmentDetail, error) {
	return m.treatments[eventID], nil
}

func (m *mockEventRepository) WeighDetail(ctx context.Context, eventID int64) (*models.WeighDetail, error) {
	return m.weighs[eventID], nil
}

func (m *mockEventRepository) Delete(ctx context.Context, id int64) error {
	delete(m.events, id)
	delete(m.movements, id)
	delete(m.treatments, id)
	delete(m.weighs, id)
	return nil
}

func (m *mockEventRepository) AnimalsOnWHP(ctx context.Context, asOf time.Time) ([]*secondary.WHPRecord, error) {
	records := []*secondary.WHPRecord{}
	for eventID, detail := range m.treatments {
		event := m.events[eventID]
		if event == nil || !event.AnimalID.Valid {
			continue
		}
		animal := m.animals.animals[event.AnimalID.Int64]
		if animal == nil || animal.Status != models.AnimalStatusAlive {
			continue
		}
		restricted := (detail.MeatWHPEnd.Valid && !detail.MeatWHPEnd.Time.Before(asOf)) ||
			(detail.MilkWHPEnd.Valid && !detail.MilkWHPEnd.Time.Before(asOf)) ||
			(detail.ESIEnd.Valid && !detail.ESIEnd.Time.Before(asOf))
		if !restricted {
			continue
		}
		records = append(records, &secondary.WHPRecord{
			AnimalID:   animal.ID,
			EID:        animal.EID,
			VisualTag:  animal.VisualTag,
			EventID:    eventID,
			EventDate:  event.EventDate,
			MeatWHPEnd: detail.MeatWHPEnd,
			MilkWHPEnd: detail.MilkWHPEnd,
			ESIEnd:     detail.ESIEnd,
		})
	}
	return records, nil
}

// mockTaskRepository implements secondary.TaskRepository for testing.
type mockTaskRepository struct {
	tasks  map[int64]*models.Task
	nextID int64
}

func newMockTaskRepository() *mockTaskRepository {
	return &mockTaskRepository{tasks: map[int64]*models.Task{}}
}

func (m *mockTaskRepository) Save(ctx context.Context, task *models.Task) (*models.Task, error) {
	if task.ID == 0 {
		m.nextID++
		task.ID = m.nextID
	}
	stored := *task
	m.tasks[task.ID] = &stored
	return &stored, nil
}

func (m *mockTaskRepository) GetByID(ctx context.Context, id int64) (*models.Task, error) {
	return m.tasks[id], nil
}

func (m *mockTaskRepository) ListPending(ctx context.Context, until time.Time) ([]*models.Task, error) {
	result := []*models.Task{}
	for _, task := range m.tasks {
		if task.Completed {
			continue
		}
		if task.DueDate.Valid && task.DueDate.Time.After(until) {
			continue
		}
		result = append(result, task)
	}
	return result, nil
}

func (m *mockTaskRepository) Complete(ctx context.Context, id int64, at time.Time) error {
	if task, ok := m.tasks[id]; ok {
		task.Completed = true
		task.CompletedAt.Time = at
		task.CompletedAt.Valid = true
	}
	return nil
}

func (m *mockTaskRepository) Delete(ctx context.Context, id int64) error {
	delete(m.tasks, id)
	return nil
}

var (
	_ secondary.PaddockRepository = (*mockPaddockRepository)(nil)
	_ secondary.MobRepository     = (*mockMobRepository)(nil)
	_ secondary.AnimalRepository  = (*mockAnimalRepository)(nil)
	_ secondary.ProductRepository = (*mockProductRepository)(nil)
	_ secondary.EventRepository   = (*mockEventRepository)(nil)
	_ secondary.TaskRepository    = (*mockTaskRepository)(nil)
)
