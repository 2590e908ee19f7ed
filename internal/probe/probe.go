// Package probe проверяет точки и прямоугольники на попадание в именованные области.
package probe

import (
	"errors"
	"math"

	"github.com/annel0/flatsquares/internal/config"
	"github.com/annel0/flatsquares/internal/logging"
	"github.com/annel0/flatsquares/internal/shape"
	"github.com/annel0/flatsquares/internal/vec"
)

// ErrNoRegions возвращается, если проверять не с чем
var ErrNoRegions = errors.New("no regions configured")

// Region именованная прямоугольная область
type Region struct {
	Name string
	Rect shape.Rectangle
}

// Query описывает проверяемую фигуру; нулевые размеры означают точку
type Query struct {
	X, Y          float64
	Width, Height float64
}

// IsPoint возвращает true для запроса без размеров
func (q Query) IsPoint() bool {
	return q.Width == 0 && q.Height == 0
}

// Result результат проверки одной области
type Result struct {
	Region     string
	Center     vec.Vector
	Empty      bool
	Contains   bool
	Intersects bool
}

// Prober только читает области после создания и безопасен для параллельного Run
type Prober struct {
	regions []Region
	logger  *logging.Logger
}

// New создаёт Prober. logger может быть nil.
func New(regions []Region, logger *logging.Logger) *Prober {
	copied := make([]Region, len(regions))
	copy(copied, regions)
	return &Prober{regions: copied, logger: logger}
}

// FromConfig строит области из конфигурации в порядке объявления
func FromConfig(cfg *config.Config, logger *logging.Logger) *Prober {
	regions := make([]Region, 0, len(cfg.Regions))
	for _, rc := range cfg.Regions {
		regions = append(regions, Region{Name: rc.Name, Rect: rc.Rectangle()})
	}
	return New(regions, logger)
}

// Validate проверяет, что есть хотя бы одна область
func (p *Prober) Validate() error {
	if len(p.regions) == 0 {
		return ErrNoRegions
	}
	return nil
}

// Regions возвращает копию списка областей
func (p *Prober) Regions() []Region {
	out := make([]Region, len(p.regions))
	copy(out, p.regions)
	return out
}

// Run проверяет запрос по всем областям
func (p *Prober) Run(q Query) []Result {
	results := make([]Result, 0, len(p.regions))
	for _, region := range p.regions {
		r := region.Rect
		res := Result{
			Region:     region.Name,
			Center:     r.Center(),
			Empty:      r.IsEmpty(),
			Contains:   r.Contains(q.X, q.Y, q.Width, q.Height),
			Intersects: r.Intersects(q.X, q.Y, q.Width, q.Height),
		}
		p.logger.Tracef("%s %v: contains=%t intersects=%t", region.Name, r, res.Contains, res.Intersects)
		results = append(results, res)
	}
	return results
}

// Hits возвращает имена областей, содержащих запрос
func (p *Prober) Hits(q Query) []string {
	var hits []string
	for _, res := range p.Run(q) {
		if res.Contains {
			hits = append(hits, res.Region)
		}
	}
	p.logger.Debugf("query %+v: %d hit(s)", q, len(hits))
	return hits
}

// Nearest находит область с ближайшим к точке центром.
// При равных расстояниях выигрывает объявленная раньше.
// NaN проигрывает любому числу; ok == false только без областей.
func (p *Prober) Nearest(point vec.Vector) (Region, float64, bool) {
	if len(p.regions) == 0 {
		return Region{}, 0, false
	}

	best := 0
	bestDist := p.regions[0].Rect.Center().Distance(point)
	for i := 1; i < len(p.regions); i++ {
		d := p.regions[i].Rect.Center().Distance(point)
		if d < bestDist || (math.IsNaN(bestDist) && !math.IsNaN(d)) {
			best, bestDist = i, d
		}
	}
	return p.regions[best], bestDist, true
}
