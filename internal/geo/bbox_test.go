package geo

import (
	"math"
	"testing"
)

func TestParseBBox(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *BBox
	}{
		{
			name:  "seoul",
			input: "37.42,126.76,37.70,127.18",
			want:  &BBox{South: 37.42, West: 126.76, North: 37.70, East: 127.18},
		},
		{
			name:  "spaces are tolerated",
			input: " 33.0, 124.5, 38.7, 132.0 ",
			want:  &BBox{South: 33.0, West: 124.5, North: 38.7, East: 132.0},
		},
		{name: "empty", input: "", want: nil},
		{name: "three values", input: "1,2,3", want: nil},
		{name: "five values", input: "1,2,3,4,5", want: nil},
		{name: "not a number", input: "a,b,c,d", want: nil},
		{name: "latitude out of range", input: "200,0,10,10", want: nil},
		{name: "longitude out of range", input: "0,-190,10,10", want: nil},
		{name: "south equals north", input: "10,0,10,10", want: nil},
		{name: "south above north", input: "20,0,10,10", want: nil},
		{name: "west above east", input: "0,50,10,40", want: nil},
		{name: "nan", input: "NaN,0,10,10", want: nil},
		{name: "inf", input: "0,0,+Inf,10", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseBBox(tt.input)
			if tt.want == nil {
				if got != nil {
					t.Fatalf("ParseBBox(%q) = %+v, want nil", tt.input, got)
				}
				return
			}
			if got == nil {
				t.Fatalf("ParseBBox(%q) = nil, want %+v", tt.input, tt.want)
			}
			if *got != *tt.want {
				t.Fatalf("ParseBBox(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestContains(t *testing.T) {
	box := BBox{South: 37.0, West: 126.0, North: 38.0, East: 127.0}

	tests := []struct {
		name  string
		point Point
		want  bool
	}{
		{"inside", Point{37.5, 126.5}, true},
		{"south edge inclusive", Point{37.0, 126.5}, true},
		{"north edge inclusive", Point{38.0, 126.5}, true},
		{"west edge inclusive", Point{37.5, 126.0}, true},
		{"east edge inclusive", Point{37.5, 127.0}, true},
		{"corner inclusive", Point{37.0, 126.0}, true},
		{"below south", Point{36.9, 126.5}, false},
		{"above north", Point{38.1, 126.5}, false},
		{"west of box", Point{37.5, 125.9}, false},
		{"east of box", Point{37.5, 127.1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := box.Contains(tt.point); got != tt.want {
				t.Fatalf("Contains(%+v) = %v, want %v", tt.point, got, tt.want)
			}
		})
	}
}

func TestDistance(t *testing.T) {
	seoul := Point{Lat: 37.5665, Lng: 126.9780}
	busan := Point{Lat: 35.1796, Lng: 129.0756}

	got := Distance(seoul, busan)
	if math.Abs(got-325) > 10 {
		t.Fatalf("Distance(seoul, busan) = %.1f km, want ~325 km", got)
	}

	if d := Distance(seoul, seoul); d != 0 {
		t.Fatalf("Distance to self = %f, want 0", d)
	}

	if a, b := Distance(seoul, busan), Distance(busan, seoul); math.Abs(a-b) > 1e-9 {
		t.Fatalf("Distance is not symmetric: %f vs %f", a, b)
	}
}

func TestAround(t *testing.T) {
	center := Point{Lat: 37.5665, Lng: 126.9780}
	box := Around(center, 5)

	if !box.Valid() {
		t.Fatalf("Around produced invalid box: %+v", box)
	}
	if !box.Contains(center) {
		t.Fatalf("box %+v does not contain its center %+v", box, center)
	}

	got := box.Center()
	if math.Abs(got.Lat-center.Lat) > 1e-6 || math.Abs(got.Lng-center.Lng) > 1e-6 {
		t.Fatalf("Center() = %+v, want %+v", got, center)
	}
}
