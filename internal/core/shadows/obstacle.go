package shadows

import (
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Record is a loosely typed obstacle as it arrives from level files or other
// callers. Keys other than the geometry fields are preserved in Obstacle.Extra.
type Record map[string]any

// Accepted field names, in priority order
var (
	xKeys      = []string{"x", "X"}
	yKeys      = []string{"y", "Y"}
	widthKeys  = []string{"width", "w", "Width", "displayWidth"}
	heightKeys = []string{"height", "h", "Height", "displayHeight"}
)

// DecodeObstacle is the ingestion adapter for loosely typed records. It picks
// the geometry from the first matching field name, coerces numbers encoded as
// strings or json.Number, and hands the result to NormalizeObstacle.
func DecodeObstacle(rec Record) Obstacle {
	used := make(map[string]bool)
	// The first alternate name holding a usable number wins
	lookup := func(keys []string) float64 {
		for _, k := range keys {
			v, ok := rec[k]
			if !ok {
				continue
			}
			used[k] = true
			if f := toFloat(v); !math.IsNaN(f) {
				return f
			}
		}
		return math.NaN()
	}

	obs := Obstacle{
		X:      lookup(xKeys),
		Y:      lookup(yKeys),
		Width:  lookup(widthKeys),
		Height: lookup(heightKeys),
	}

	for k, v := range rec {
		if used[k] {
			continue
		}
		if obs.Extra == nil {
			obs.Extra = make(map[string]any)
		}
		obs.Extra[k] = v
	}

	return NormalizeObstacle(obs)
}

// NormalizeObstacle replaces non-finite coordinates and non-finite or
// negative dimensions with 0. Every coercion is logged; the obstacle is never
// rejected.
func NormalizeObstacle(obs Obstacle) Obstacle {
	fix := func(field string, v float64, allowNegative bool) float64 {
		if !isFinite(v) {
			Logger().Warn("non-finite obstacle field coerced to 0",
				"field", field, "value", v, "id", obs.Extra["id"])
			return 0
		}
		if !allowNegative && v < 0 {
			Logger().Warn("negative obstacle dimension coerced to 0",
				"field", field, "value", v, "id", obs.Extra["id"])
			return 0
		}
		return v
	}

	obs.X = fix("x", obs.X, true)
	obs.Y = fix("y", obs.Y, true)
	obs.Width = fix("width", obs.Width, false)
	obs.Height = fix("height", obs.Height, false)
	return obs
}

// toFloat converts the value types produced by encoding/json and common Go
// callers into a float64. Anything else yields NaN.
func toFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int8:
		return float64(n)
	case int16:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case uint:
		return float64(n)
	case uint8:
		return float64(n)
	case uint16:
		return float64(n)
	case uint32:
		return float64(n)
	case uint64:
		return float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return math.NaN()
		}
		return f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return reflectFloat(v)
	}
}

// reflectFloat handles named numeric types such as `type Pixels int`
func reflectFloat(v any) float64 {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	default:
		return math.NaN()
	}
}
