// Package export renders placement results to PDF layouts, QR-coded setup
// labels and DXF drawings.
package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/DrillPlan/internal/model"
)

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	statsHeight  = 20.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// maxRejectionRows caps the rejection table on the summary page.
const maxRejectionRows = 12

// ExportPDF generates a PDF with the grid layout of the accepted setups on the
// first page and a summary page with statistics and settings.
func ExportPDF(path string, result model.PlanResult) error {
	if len(result.Setups) == 0 {
		return fmt.Errorf("no setups to export")
	}
	if err := result.Settings.Grid.Validate(); err != nil {
		return fmt.Errorf("cannot draw grid: %w", err)
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	pdf.AddPage()
	renderLayoutPage(pdf, result)

	pdf.AddPage()
	renderSummaryPage(pdf, result)

	return pdf.OutputFileAndClose(path)
}

// setFill sets the fill color from a tile type.
func setFill(pdf *fpdf.Fpdf, t model.TileType) {
	c := t.Color()
	pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
}

// renderLayoutPage draws the grid, every accepted setup and the rejected
// centers on the current page.
func renderLayoutPage(pdf *fpdf.Fpdf, result model.PlanResult) {
	grid := result.Settings.Grid

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Laser Drill Layout (%d x %d tiles)", grid.Width, grid.Height)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Setups: %d | Rejected: %d | Acceptance: %.1f%% | Check mode: %s | Sweep: %s",
		len(result.Setups), len(result.Rejected), result.AcceptanceRate(),
		result.Settings.CheckMode, result.Settings.SweepOrder)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - statsHeight

	// Square tiles, sized to fit the whole grid.
	cell := math.Min(drawWidth/float64(grid.Width), drawHeight/float64(grid.Height))
	canvasW := float64(grid.Width) * cell
	canvasH := float64(grid.Height) * cell

	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	setFill(pdf, model.TileEmpty)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	drawGridLines(pdf, grid, cell, offsetX, offsetY)

	for _, s := range result.Setups {
		drawSetup(pdf, s, cell, offsetX, offsetY)
	}

	// Rejected centers get a small cross.
	pdf.SetDrawColor(255, 140, 0)
	pdf.SetLineWidth(0.2)
	for _, r := range result.Rejected {
		cx := offsetX + (float64(r.Center.X)+0.5)*cell
		cy := offsetY + (float64(r.Center.Y)+0.5)*cell
		d := cell * 0.2
		pdf.Line(cx-d, cy-d, cx+d, cy+d)
		pdf.Line(cx-d, cy+d, cx+d, cy-d)
	}

	drawDimensionAnnotations(pdf, grid, offsetX, offsetY, canvasW, canvasH)
	drawTileLegend(pdf, offsetY+canvasH+6)
}

// drawGridLines draws the tile boundaries.
func drawGridLines(pdf *fpdf.Fpdf, grid model.GridConfig, cell, offsetX, offsetY float64) {
	pdf.SetDrawColor(90, 90, 90)
	pdf.SetLineWidth(0.1)
	for x := 1; x < grid.Width; x++ {
		px := offsetX + float64(x)*cell
		pdf.Line(px, offsetY, px, offsetY+float64(grid.Height)*cell)
	}
	for y := 1; y < grid.Height; y++ {
		py := offsetY + float64(y)*cell
		pdf.Line(offsetX, py, offsetX+float64(grid.Width)*cell, py)
	}
}

// drawSetup fills the nine tiles of one setup. Lasers go first so that a
// crossing beam never hides a solid tile of a neighbour.
func drawSetup(pdf *fpdf.Fpdf, s model.LaserDrillSetup, cell, offsetX, offsetY float64) {
	pdf.SetDrawColor(30, 30, 30)
	pdf.SetLineWidth(0.2)

	inset := cell * 0.1
	draw := func(t model.Tile) {
		setFill(pdf, t.Type)
		pdf.Rect(offsetX+float64(t.Location.X)*cell+inset, offsetY+float64(t.Location.Y)*cell+inset,
			cell-2*inset, cell-2*inset, "FD")
	}

	for _, l := range s.Lasers {
		draw(l)
	}
	for _, pc := range s.PreChargers {
		draw(pc)
	}
	draw(s.Drill)
}

// drawDimensionAnnotations adds width and height labels outside the grid.
func drawDimensionAnnotations(pdf *fpdf.Fpdf, grid model.GridConfig, offsetX, offsetY, canvasW, canvasH float64) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)

	widthLabel := fmt.Sprintf("%d tiles", grid.Width)
	wLabelW := pdf.GetStringWidth(widthLabel)
	pdf.SetXY(offsetX+(canvasW-wLabelW)/2, offsetY+canvasH+1)
	pdf.CellFormat(wLabelW, 4, widthLabel, "", 0, "C", false, 0, "")

	heightLabel := fmt.Sprintf("%d tiles", grid.Height)
	pdf.TransformBegin()
	pdf.TransformRotate(90, offsetX-3, offsetY+canvasH/2)
	hLabelW := pdf.GetStringWidth(heightLabel)
	pdf.SetXY(offsetX-3-hLabelW/2, offsetY+canvasH/2-2)
	pdf.CellFormat(hLabelW, 4, heightLabel, "", 0, "C", false, 0, "")
	pdf.TransformEnd()

	pdf.SetTextColor(0, 0, 0)
}

// drawTileLegend renders one swatch per tile type below the grid.
func drawTileLegend(pdf *fpdf.Fpdf, startY float64) {
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, startY)
	pdf.CellFormat(20, 4, "Legend:", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	xPos := marginLeft + 22
	for _, t := range []model.TileType{model.TileDrill, model.TilePreCharger, model.TileLaser} {
		label := t.String()
		labelW := pdf.GetStringWidth(label) + 6

		setFill(pdf, t)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.1)
		pdf.Rect(xPos, startY+0.5, 3, 3, "FD")

		pdf.SetXY(xPos+4, startY)
		pdf.CellFormat(labelW-4, 4, label, "", 0, "L", false, 0, "")
		xPos += labelW + 2
	}

	pdf.SetDrawColor(255, 140, 0)
	pdf.Line(xPos, startY+0.5, xPos+3, startY+3.5)
	pdf.Line(xPos, startY+3.5, xPos+3, startY+0.5)
	pdf.SetXY(xPos+4, startY)
	pdf.CellFormat(30, 4, "REJECTED CENTER", "", 0, "L", false, 0, "")
}

// renderSummaryPage draws statistics, tile counts, the first rejections and
// the settings used.
func renderSummaryPage(pdf *fpdf.Fpdf, result model.PlanResult) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Placement Summary", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Overall Statistics", "", 0, "L", false, 0, "")
	y += 9

	summaryItems := []struct {
		label string
		value string
	}{
		{"Candidates Considered", fmt.Sprintf("%d", result.Candidates())},
		{"Setups Placed", fmt.Sprintf("%d", len(result.Setups))},
		{"Candidates Rejected", fmt.Sprintf("%d", len(result.Rejected))},
		{"Acceptance Rate", fmt.Sprintf("%.1f%%", result.AcceptanceRate())},
	}
	if len(result.OutOfGrid) > 0 {
		summaryItems = append(summaryItems, struct {
			label string
			value string
		}{"Outside Grid", fmt.Sprintf("%d", len(result.OutOfGrid))})
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range summaryItems {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(60, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(40, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	y += 5

	// Tile counts table
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Tile Counts", "", 0, "L", false, 0, "")
	y += 9

	counts := result.TileCounts()
	colWidths := []float64{50, 30}
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range []string{"Tile", "Count"} {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	for i, t := range []model.TileType{model.TileDrill, model.TilePreCharger, model.TileLaser} {
		y = tableRow(pdf, y, i, colWidths, []string{t.String(), fmt.Sprintf("%d", counts[t])})
	}

	// Rejection table sits to the right of the statistics.
	if len(result.Rejected) > 0 {
		renderRejectionTable(pdf, result.Rejected, marginLeft+150, marginTop+18)
	}

	y += 8
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Plan Settings", "", 0, "L", false, 0, "")
	y += 9

	settings := result.Settings
	settingsItems := []struct {
		label string
		value string
	}{
		{"Grid", fmt.Sprintf("%d x %d tiles", settings.Grid.Width, settings.Grid.Height)},
		{"Tile Size", fmt.Sprintf("%d px", settings.Grid.TileSize)},
		{"Check Mode", string(settings.CheckMode)},
		{"Sweep Order", string(settings.SweepOrder)},
	}

	pdf.SetFont("Helvetica", "", 9)
	for _, item := range settingsItems {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(50, 5, item.label+":", "", 0, "L", false, 0, "")
		pdf.CellFormat(30, 5, item.value, "", 0, "L", false, 0, "")
		y += 5
	}

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by DrillPlan - Laser Drill Layout Planner", "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

// renderRejectionTable lists the first rejections with their blockers.
func renderRejectionTable(pdf *fpdf.Fpdf, rejected []model.Rejection, x, y float64) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(x, y)
	pdf.CellFormat(100, 7, "Rejected Candidates", "", 0, "L", false, 0, "")
	y += 9

	colWidths := []float64{15, 40, 40}
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := x
	for i, header := range []string{"#", "Center", "Blocked By"} {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	shown := rejected
	if len(shown) > maxRejectionRows {
		shown = shown[:maxRejectionRows]
	}
	for i, r := range shown {
		y = tableRowAt(pdf, x, y, i, colWidths, []string{
			fmt.Sprintf("%d", i+1),
			r.Center.String(),
			r.ConflictsWith.String(),
		})
	}

	if more := len(rejected) - len(shown); more > 0 {
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetXY(x, y+1)
		pdf.CellFormat(95, 5, fmt.Sprintf("... and %d more", more), "", 0, "L", false, 0, "")
	}
}

func tableRow(pdf *fpdf.Fpdf, y float64, row int, colWidths []float64, cells []string) float64 {
	return tableRowAt(pdf, marginLeft, y, row, colWidths, cells)
}

// tableRowAt draws one bordered table row with alternating background and
// returns the y of the next row.
func tableRowAt(pdf *fpdf.Fpdf, x, y float64, row int, colWidths []float64, cells []string) float64 {
	if row%2 == 0 {
		pdf.SetFillColor(245, 245, 245)
	} else {
		pdf.SetFillColor(255, 255, 255)
	}
	xPos := x
	for j, cell := range cells {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
		xPos += colWidths[j]
	}
	return y + 6
}
