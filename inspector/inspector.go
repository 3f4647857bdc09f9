package inspector

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/pond/game"
)

// Panel dimensions
const (
	PanelWidth   = 300
	PanelPadding = 10
	HeaderHeight = 30
)

// Panel colors
var (
	ColorPanelBg     = rl.Color{R: 30, G: 30, B: 35, A: 240}
	ColorPanelHeader = rl.Color{R: 45, G: 45, B: 55, A: 255}
	ColorPanelBorder = rl.Color{R: 70, G: 70, B: 80, A: 255}
	ColorHeaderText  = rl.Color{R: 255, G: 255, B: 255, A: 255}
	ColorSection     = rl.Color{R: 50, G: 50, B: 60, A: 255}
	ColorSectionText = rl.Color{R: 200, G: 200, B: 220, A: 255}
)

// Inspector tracks the selected entity and draws its details.
type Inspector struct {
	selected    ecs.Entity
	hasSelected bool
	panelX      int32
	panelY      int32
}

// NewInspector creates an inspector anchored to the right edge.
func NewInspector(screenWidth int32) *Inspector {
	ins := &Inspector{panelY: 10}
	ins.Resize(screenWidth)
	return ins
}

// Resize re-anchors the panel after a window resize.
func (ins *Inspector) Resize(screenWidth int32) {
	ins.panelX = screenWidth - PanelWidth - 10
}

// Select makes entity the inspected one.
func (ins *Inspector) Select(entity ecs.Entity) {
	ins.selected = entity
	ins.hasSelected = true
}

// Deselect clears the selection.
func (ins *Inspector) Deselect() {
	ins.hasSelected = false
}

// Selected returns the inspected entity, if any.
func (ins *Inspector) Selected() (ecs.Entity, bool) {
	return ins.selected, ins.hasSelected
}

// Contains reports whether a screen point lies over the panel.
func (ins *Inspector) Contains(x, y float32) bool {
	if !ins.hasSelected {
		return false
	}
	return x >= float32(ins.panelX) && x <= float32(ins.panelX+PanelWidth) &&
		y >= float32(ins.panelY) && y <= float32(ins.panelY+ins.panelHeight())
}

// Draw renders the panel for sel.
func (ins *Inspector) Draw(sel game.Selection) {
	height := ins.panelHeight()
	rl.DrawRectangle(ins.panelX, ins.panelY, PanelWidth, height, ColorPanelBg)
	rl.DrawRectangleLines(ins.panelX, ins.panelY, PanelWidth, height, ColorPanelBorder)

	rl.DrawRectangle(ins.panelX, ins.panelY, PanelWidth, HeaderHeight, ColorPanelHeader)
	rl.DrawText("INSPECTOR", ins.panelX+PanelPadding, ins.panelY+7, 16, ColorHeaderText)

	x := ins.panelX + PanelPadding
	y := ins.panelY + HeaderHeight + PanelPadding

	rl.DrawText(fmt.Sprintf("ID: %d  Kind: %s", sel.Identity.ID, sel.Identity.Kind), x, y, 14, ColorHeaderText)
	y += 22

	ins.drawSectionHeader(x, y, "Lifetime")
	y += 22
	y += DrawLabel(x, y, "Age", sel.AgeSec, map[string]string{"fmt": "%.1fs"})
	y += DrawLabel(x, y, "Meals", sel.Lifetime.Meals, nil)
	y += DrawLabel(x, y, "Children", sel.Lifetime.Children, nil)
	if sel.Lifetime.ParentID != 0 {
		y += DrawLabel(x, y, "Parent", sel.Lifetime.ParentID, nil)
	}
	y += 4

	ins.drawSectionHeader(x, y, "State")
	y += 22
	for _, f := range ExtractFields(&sel.Entity) {
		y += DrawField(x, y, f)
	}
}

func (ins *Inspector) drawSectionHeader(x, y int32, title string) {
	rl.DrawRectangle(x-2, y-2, PanelWidth-2*PanelPadding+4, 18, ColorSection)
	rl.DrawText(title, x+2, y, 14, ColorSectionText)
}

func (ins *Inspector) panelHeight() int32 {
	// header, identity line, two section headers, four lifetime rows and the
	// entity fields
	return HeaderHeight + PanelPadding*2 + 22*3 + 18*4 + 4 + 18*10
}

// DrawSelectionHighlight outlines the selected entity at its screen position.
func (ins *Inspector) DrawSelectionHighlight(center rl.Vector2, radius float32) {
	rl.DrawCircleLines(int32(center.X), int32(center.Y), radius+3, rl.Yellow)
}
