package view

// Layout is what the renderer needs to know about the visible regions.
type Layout struct {
	PanelOpen      bool   `json:"panelOpen"`
	FormVisible    bool   `json:"formVisible"`
	ToggleVisible  bool   `json:"toggleVisible"`
	NewButtonInTop bool   `json:"newButtonInHeader"`
	ListWidth      string `json:"listWidth"`
	PanelOffset    string `json:"panelOffset"`
}

const (
	WidthFull = "full"
	WidthHalf = "half"

	OffsetOnScreen  = "translate-x-0"
	OffsetOffScreen = "translate-x-full"
)

func LayoutFor(s PanelState) Layout {
	if s == Collapsed {
		return Layout{
			NewButtonInTop: true,
			ListWidth:      WidthFull,
			PanelOffset:    OffsetOffScreen,
		}
	}
	return Layout{
		PanelOpen:     true,
		FormVisible:   s == PanelOpenWithForm,
		ToggleVisible: true,
		ListWidth:     WidthHalf,
		PanelOffset:   OffsetOnScreen,
	}
}
