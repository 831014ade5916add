package ui

import (
	"golang.org/x/image/font"

	"go-path-defense/pkg/render"
)

// Fonts are the faces shared by every screen.
type Fonts struct {
	Regular font.Face
	Title   font.Face
	Large   font.Face
}

func LoadFonts() (Fonts, error) {
	var f Fonts
	var err error
	if f.Regular, err = render.LoadFace(12); err != nil {
		return f, err
	}
	if f.Title, err = render.LoadFace(16); err != nil {
		return f, err
	}
	if f.Large, err = render.LoadFace(36); err != nil {
		return f, err
	}
	return f, nil
}
