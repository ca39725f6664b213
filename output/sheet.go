package output

import (
	"errors"
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/weaming/cvd-go/cvd"
	"github.com/weaming/cvd-go/processor"
)

// DefaultSheetCell 拼图单元默认宽度（像素）
const DefaultSheetCell = 320

const (
	sheetColumns = 2
	sheetRows    = 3
	labelHeight  = 20
	sheetPadding = 8
)

// ContactSheet 将结果按 3 行 x 2 列排列成带标签的拼图
//
// 行对应缺陷类型（Protanopia, Deuteranopia, Tritanopia），列依次为
// Simulation 和 Optimization。缺失或失败的结果留空。
func ContactSheet(results []processor.Result, cellWidth int) (*image.RGBA, error) {
	if cellWidth <= 0 {
		cellWidth = DefaultSheetCell
	}

	var first *cvd.Buffer
	for _, r := range processor.Succeeded(results) {
		first = r.Image
		break
	}
	if first == nil || first.Width == 0 || first.Height == 0 {
		return nil, errors.New("没有可用于拼图的结果")
	}

	cellHeight := max(cellWidth*first.Height/first.Width, 1)
	slotW := cellWidth + 2*sheetPadding
	slotH := cellHeight + labelHeight + 2*sheetPadding

	sheet := image.NewRGBA(image.Rect(0, 0, slotW*sheetColumns, slotH*sheetRows))
	xdraw.Draw(sheet, sheet.Bounds(), image.NewUniform(color.White), image.Point{}, xdraw.Src)

	for _, r := range results {
		col, row := int(r.Transform.Kind), int(r.Transform.Deficiency)
		if col < 0 || col >= sheetColumns || row < 0 || row >= sheetRows {
			continue
		}
		origin := image.Pt(col*slotW+sheetPadding, row*slotH+sheetPadding)

		label := r.Transform.Label()
		if r.Err != nil || r.Image == nil {
			label += " (failed)"
		} else {
			dst := image.Rect(0, 0, cellWidth, cellHeight).Add(origin).Add(image.Pt(0, labelHeight))
			src := r.Image.Image()
			xdraw.CatmullRom.Scale(sheet, dst, src, src.Bounds(), xdraw.Src, nil)
		}
		drawLabel(sheet, label, origin, cellWidth)
	}
	return sheet, nil
}

// drawLabel 在单元顶部居中绘制标签
func drawLabel(dst *image.RGBA, label string, origin image.Point, width int) {
	face := basicfont.Face7x13
	textW := font.MeasureString(face, label).Ceil()
	x := origin.X + max((width-textW)/2, 0)
	y := origin.Y + labelHeight - 6

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.Black),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(label)
}
