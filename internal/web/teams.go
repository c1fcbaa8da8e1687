package web

// Team marker colours. Any team not listed gets FallbackColor.
var teamColors = map[string]string{
	"1팀": "red",
	"2팀": "blue",
	"3팀": "green",
}

const FallbackColor = "yellow"

// Teams is the filter order shown on the map page.
var Teams = []string{"1팀", "2팀", "3팀"}

func ColorFor(team string) string {
	if c, ok := teamColors[team]; ok {
		return c
	}
	return FallbackColor
}

func MarkerImage(team string) string {
	return "/static/marker/marker_" + ColorFor(team) + ".svg"
}

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type TeamMarker struct {
	Team  string `json:"team"`
	Color string `json:"color"`
	Image string `json:"image"`
}

// MapConfig is handed to the map script.
type MapConfig struct {
	AppKey       string       `json:"appKey"`
	Center       LatLng       `json:"center"`
	Level        int          `json:"level"`
	MarkerWidth  int          `json:"markerWidth"`
	MarkerHeight int          `json:"markerHeight"`
	Teams        []TeamMarker `json:"teams"`
	Fallback     TeamMarker   `json:"fallback"`
}

func NewMapConfig(appKey string, lat, lng float64) MapConfig {
	cfg := MapConfig{
		AppKey:       appKey,
		Center:       LatLng{Lat: lat, Lng: lng},
		Level:        3,
		MarkerWidth:  24,
		MarkerHeight: 35,
		Fallback:     TeamMarker{Color: FallbackColor, Image: MarkerImage("")},
	}
	for _, t := range Teams {
		cfg.Teams = append(cfg.Teams, TeamMarker{Team: t, Color: ColorFor(t), Image: MarkerImage(t)})
	}
	return cfg
}
