package geo

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const earthRadiusKm = 6371

// Point координата на карте
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// BBox прямоугольный географический фильтр (south,west,north,east)
type BBox struct {
	South float64 `json:"south"`
	West  float64 `json:"west"`
	North float64 `json:"north"`
	East  float64 `json:"east"`
}

// ParseBBox разбирает строку "south,west,north,east".
// Любой некорректный ввод даёт nil — вызывающий обязан вернуть ошибку
// валидации, а не трактовать это как "без фильтра".
func ParseBBox(s string) *BBox {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return nil
	}

	values := make([]float64, 4)
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil
		}
		values[i] = v
	}

	box := &BBox{South: values[0], West: values[1], North: values[2], East: values[3]}
	if !box.Valid() {
		return nil
	}
	return box
}

// Valid проверяет диапазоны координат и порядок сторон
func (b *BBox) Valid() bool {
	return b.South >= -90 && b.South <= 90 &&
		b.North >= -90 && b.North <= 90 &&
		b.West >= -180 && b.West <= 180 &&
		b.East >= -180 && b.East <= 180 &&
		b.South < b.North &&
		b.West < b.East
}

// Contains включающая проверка по обеим осям
func (b *BBox) Contains(p Point) bool {
	return p.Lat >= b.South && p.Lat <= b.North &&
		p.Lng >= b.West && p.Lng <= b.East
}

// Center центр прямоугольника
func (b *BBox) Center() Point {
	return Point{
		Lat: (b.South + b.North) / 2,
		Lng: (b.West + b.East) / 2,
	}
}

func (b *BBox) String() string {
	return fmt.Sprintf("%g,%g,%g,%g", b.South, b.West, b.North, b.East)
}

// Around строит BBox радиусом radiusKm вокруг точки
func Around(p Point, radiusKm float64) BBox {
	// 1 градус широты ~ 111 км, долгота сжимается к полюсам
	latDelta := radiusKm / 111
	lngDelta := radiusKm / (111 * math.Cos(p.Lat*math.Pi/180))

	return BBox{
		South: math.Max(-90, p.Lat-latDelta),
		North: math.Min(90, p.Lat+latDelta),
		West:  math.Max(-180, p.Lng-lngDelta),
		East:  math.Min(180, p.Lng+lngDelta),
	}
}

// Distance расстояние между точками в км (формула Haversine).
// Только для отображения, не для фильтрации.
func Distance(a, b Point) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}
