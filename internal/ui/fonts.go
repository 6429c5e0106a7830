package ui

import (
	"bytes"
	"log"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/goregular"
)

func (g *Game) initFonts() {
	regSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Printf("[ui] error loading regular font: %v", err)
		return
	}
	medSource, err := text.NewGoTextFaceSource(bytes.NewReader(gomedium.TTF))
	if err != nil {
		medSource = regSource
	}
	boldSource, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		boldSource = medSource
	}
	g.fontFaceSm = &text.GoTextFace{Source: regSource, Size: 11}
	g.fontFace = &text.GoTextFace{Source: medSource, Size: 15}
	g.fontFaceLg = &text.GoTextFace{Source: boldSource, Size: 22}
	g.fontFaceXl = &text.GoTextFace{Source: boldSource, Size: 28}
}
