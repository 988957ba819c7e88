package entity

import "encoding/json"

// The property carrying the separated-waste commodity in the municipal
// container dataset.
const WasteTypeProperty = "komodita_odpad_separovany"

// FeatureCollection mirrors the GeoJSON structure of the container dataset.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

type Feature struct {
	Type       string                 `json:"type"`
	Geometry   Geometry               `json:"geometry"`
	Properties map[string]interface{} `json:"properties"`
}

type Geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// WasteType returns the separated-waste commodity of a feature, or "" when
// the property is absent.
func (f Feature) WasteType() string {
	if v, ok := f.Properties[WasteTypeProperty].(string); ok {
		return v
	}
	return ""
}

func ParseFeatureCollection(data []byte) (*FeatureCollection, error) {
	var fc FeatureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, err
	}
	return &fc, nil
}
