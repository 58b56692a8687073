package card

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

// templateFile is the pre-rendered card background looked up in the assets
// directory before falling back to the drawn blank.
const templateFile = "empty.png"

// Card layout in template pixels. Text anchors are top-left corners; the
// values line up with the labels printed on the template background.
const (
	canvasWidth  = 2022
	canvasHeight = 1640

	avatarWidth  = 500
	avatarHeight = 670
	avatarLeft   = 1500
	avatarTop    = 690

	nameLeft = 630
	nameTop  = 690

	genderLeft    = 630
	ethnicityLeft = 1030
	genderTop     = 840

	yearLeft  = 630
	monthLeft = 950
	dayLeft   = 1150
	birthTop  = 980

	addressLeft     = 630
	addressTop      = 1120
	addressLineStep = 100
	addressMaxWidth = 820
	addressMaxLines = 2

	idNumberLeft = 950
	idTop        = 1475
)

// Label anchors used when drawing the blank fallback template.
const (
	labelLeft          = 360
	ethnicityLabelLeft = 880
	yearMarkLeft       = 840
	monthMarkLeft      = 1040
	dayMarkLeft        = 1260
	idLabelLeft        = 330
)

var (
	templateBackground = color.NRGBA{R: 236, G: 243, B: 249, A: 255}
	labelColor         = color.NRGBA{R: 62, G: 88, B: 128, A: 255}
	textColor          = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
)

// blankTemplate draws the fallback card background carrying the printed
// labels an asset template would normally provide.
func blankTemplate(fonts *fontSet) image.Image {
	dc := gg.NewContext(canvasWidth, canvasHeight)
	dc.SetColor(templateBackground)
	dc.Clear()

	dc.SetColor(labelColor)
	dc.SetFontFace(fonts.normal)
	ascent := ascentOf(fonts.normal)
	label := func(s string, x, y int) {
		dc.DrawString(s, float64(x), float64(y)+ascent)
	}

	label("姓名", labelLeft, nameTop)
	label("性别", labelLeft, genderTop)
	label("民族", ethnicityLabelLeft, genderTop)
	label("出生", labelLeft, birthTop)
	label("年", yearMarkLeft, birthTop)
	label("月", monthMarkLeft, birthTop)
	label("日", dayMarkLeft, birthTop)
	label("住址", labelLeft, addressTop)
	label("公民身份号码", idLabelLeft, idTop)

	return dc.Image()
}
