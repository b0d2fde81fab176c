package catalog

import (
	"context"
	"encoding/json"

	"github.com/campushub/reservation-platform/internal/model"
)

// StaticItem — строка статического каталога в том виде, в каком её ведут
// руками: вместимость может лежать в любом из трёх полей в зависимости от
// категории (аудитории считают места, компьютерные классы — машины,
// оборудование — штуки).
type StaticItem struct {
	Name      string
	Category  model.ResourceCategory
	Capacity  int
	Computers int
	Quantity  int
	Building  string
	Amenities []string
}

// capacityUnits нормализует вместимость один раз при загрузке:
// capacity > computers > quantity > 1.
func (it StaticItem) capacityUnits() int {
	switch {
	case it.Capacity > 0:
		return it.Capacity
	case it.Computers > 0:
		return it.Computers
	case it.Quantity > 0:
		return it.Quantity
	default:
		return 1
	}
}

// StaticSource — резервный каталог в памяти процесса. Используется, когда
// персистентное хранилище недоступно или пусто для заданного фильтра.
type StaticSource struct {
	resources []model.Resource
	buildings []string // код корпуса по индексу ресурса
}

func NewStaticSource(items []StaticItem) *StaticSource {
	s := &StaticSource{
		resources: make([]model.Resource, 0, len(items)),
		buildings: make([]string, 0, len(items)),
	}
	for _, it := range items {
		amenities, _ := json.Marshal(it.Amenities)
		s.resources = append(s.resources, model.Resource{
			Name:          it.Name,
			Category:      it.Category,
			CapacityUnits: it.capacityUnits(),
			Amenities:     amenities,
			IsAvailable:   true,
		})
		s.buildings = append(s.buildings, it.Building)
	}
	return s
}

func (s *StaticSource) ListResources(ctx context.Context, f Filter) ([]model.Resource, error) {
	out := []model.Resource{}
	for i := range s.resources {
		r := s.resources[i]
		if matches(&r, f, s.buildings[i]) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *StaticSource) GetByName(ctx context.Context, category model.ResourceCategory, name string) (*model.Resource, error) {
	for i := range s.resources {
		r := s.resources[i]
		if r.Category == category && r.Name == name {
			return &r, nil
		}
	}
	return nil, ErrNotFound
}

// DefaultCatalog — статические данные резервного каталога. Содержимое
// согласовано с сидом персистентного каталога; расхождения между ними видны
// пользователю только в деградированном режиме.
func DefaultCatalog() []StaticItem {
	return []StaticItem{
		{Name: "Seminar Room A-101", Category: model.ResourceCategoryRoom, Capacity: 12, Building: "ENG", Amenities: []string{"whiteboard", "projector"}},
		{Name: "Seminar Room A-102", Category: model.ResourceCategoryRoom, Capacity: 8, Building: "ENG", Amenities: []string{"whiteboard"}},
		{Name: "Lecture Hall B-201", Category: model.ResourceCategoryRoom, Capacity: 40, Building: "SCI", Amenities: []string{"projector", "audio"}},
		{Name: "Computer Lab C-1", Category: model.ResourceCategoryLab, Computers: 24, Building: "ENG", Amenities: []string{"linux", "dual-monitor"}},
		{Name: "Computer Lab C-2", Category: model.ResourceCategoryLab, Computers: 16, Building: "SCI", Amenities: []string{"windows"}},
		{Name: "Chemistry Lab 3", Category: model.ResourceCategoryLab, Capacity: 20, Building: "SCI", Amenities: []string{"fume-hood"}},
		{Name: "Portable Projector", Category: model.ResourceCategoryEquipment, Quantity: 5, Building: "LIB"},
		{Name: "DSLR Camera Kit", Category: model.ResourceCategoryEquipment, Quantity: 3, Building: "LIB"},
		{Name: "VR Headset", Category: model.ResourceCategoryEquipment, Quantity: 2, Building: "ENG"},
		{Name: "Group Study Pod 1", Category: model.ResourceCategoryLibraryItem, Capacity: 6, Building: "LIB", Amenities: []string{"display"}},
		{Name: "Group Study Pod 2", Category: model.ResourceCategoryLibraryItem, Capacity: 6, Building: "LIB", Amenities: []string{"display"}},
		{Name: "Quiet Carrel 12", Category: model.ResourceCategoryLibraryItem, Building: "LIB"},
	}
}
