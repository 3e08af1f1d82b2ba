// internal/event/types.go
package event

const (
	VisionRadiusChanged EventType = "VisionRadiusChanged" // Радиус видимости изменён, Data: VisionRadiusData
	PauseToggled        EventType = "PauseToggled"        // Пауза включена/выключена, Data: bool
	HUDToggled          EventType = "HUDToggled"          // HUD показан/скрыт, Data: bool
)

// VisionRadiusData — данные события VisionRadiusChanged
type VisionRadiusData struct {
	Old, New float64
}
