// internal/world/tilemap.go
package world

import (
	"fmt"
	"math"

	"go-fog-of-war/internal/config"
	"go-fog-of-war/internal/utils"
)

// TileType — тип клетки карты
type TileType uint8

const (
	Grass TileType = iota
	DryGrass
	Dirt
	Rock
	Tree
)

func (t TileType) String() string {
	switch t {
	case Grass:
		return "grass"
	case DryGrass:
		return "dry_grass"
	case Dirt:
		return "dirt"
	case Rock:
		return "rock"
	case Tree:
		return "tree"
	default:
		return "unknown"
	}
}

// IsProp сообщает, стоит ли на клетке объект поверх земли.
func (t TileType) IsProp() bool {
	return t == Rock || t == Tree
}

// TileMap — прямоугольная карта, центрированная в начале координат мира.
type TileMap struct {
	Cols, Rows int
	TileSize   float64
	Tiles      []TileType // построчно, len = Cols*Rows
	Seed       int64
}

// Generate строит карту по конфигурации. Клетка в центре карты (точка появления
// игрока) и её соседи всегда остаются без объектов.
func Generate(cfg config.WorldConfig) *TileMap {
	rng := utils.NewPRNGService(cfg.Seed)
	m := &TileMap{
		Cols:     cfg.Cols,
		Rows:     cfg.Rows,
		TileSize: float64(cfg.TileSize),
		Tiles:    make([]TileType, cfg.Cols*cfg.Rows),
		Seed:     rng.Seed(),
	}

	// Шум для подложки
	ground := []utils.WeightedEntry[TileType]{
		{Value: Grass, Weight: 6},
		{Value: DryGrass, Weight: 2},
		{Value: Dirt, Weight: 2},
	}
	for i := range m.Tiles {
		m.Tiles[i] = utils.ChooseWeighted(rng, ground)
	}

	// Сглаживание: клетка принимает тип большинства соседей, чтобы получились пятна
	for pass := 0; pass < 2; pass++ {
		m.smooth()
	}

	// Объекты
	props := []utils.WeightedEntry[TileType]{
		{Value: Rock, Weight: cfg.RockChance},
		{Value: Tree, Weight: cfg.TreeChance},
		{Value: Grass, Weight: 1 - cfg.RockChance - cfg.TreeChance}, // Grass здесь — «без объекта»
	}
	cc, cr := m.Cols/2, m.Rows/2
	for r := 0; r < m.Rows; r++ {
		for c := 0; c < m.Cols; c++ {
			if abs(c-cc) <= 1 && abs(r-cr) <= 1 {
				continue
			}
			if p := utils.ChooseWeighted(rng, props); p.IsProp() {
				m.Tiles[r*m.Cols+c] = p
			}
		}
	}
	return m
}

func (m *TileMap) smooth() {
	next := make([]TileType, len(m.Tiles))
	for r := 0; r < m.Rows; r++ {
		for c := 0; c < m.Cols; c++ {
			var counts [Dirt + 1]int
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					if t, ok := m.At(c+dc, r+dr); ok && t <= Dirt {
						counts[t]++
					}
				}
			}
			best := m.Tiles[r*m.Cols+c]
			for t := Grass; t <= Dirt; t++ {
				if counts[t] > counts[best] {
					best = t
				}
			}
			next[r*m.Cols+c] = best
		}
	}
	m.Tiles = next
}

// At возвращает клетку по индексам столбца и строки.
func (m *TileMap) At(col, row int) (TileType, bool) {
	if col < 0 || row < 0 || col >= m.Cols || row >= m.Rows {
		return 0, false
	}
	return m.Tiles[row*m.Cols+col], true
}

// Origin — мировые координаты левого верхнего угла карты.
func (m *TileMap) Origin() (float64, float64) {
	return -float64(m.Cols) * m.TileSize / 2, -float64(m.Rows) * m.TileSize / 2
}

// Bounds — мировые границы карты (minX, minY, maxX, maxY).
func (m *TileMap) Bounds() (float64, float64, float64, float64) {
	x0, y0 := m.Origin()
	return x0, y0, -x0, -y0
}

// TileAt возвращает индексы клетки, содержащей мировую точку.
func (m *TileMap) TileAt(x, y float64) (int, int, bool) {
	x0, y0 := m.Origin()
	col := int(floorDiv(x-x0, m.TileSize))
	row := int(floorDiv(y-y0, m.TileSize))
	if _, ok := m.At(col, row); !ok {
		return col, row, false
	}
	return col, row, true
}

// Describe возвращает тип клетки под мировой точкой и её индексы для HUD.
func (m *TileMap) Describe(x, y float64) string {
	col, row, ok := m.TileAt(x, y)
	if !ok {
		return "outside the map"
	}
	tile, _ := m.At(col, row)
	return fmt.Sprintf("%s (%d, %d)", tile, col, row)
}

func floorDiv(a, b float64) float64 {
	return math.Floor(a / b)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
