package opengl

import (
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/minicore/texture"
)

// NewTexture uploads img as an RGBA texture with linear filtering and
// returns its handle. The image is flipped so that texture coordinate
// (0, 0) is its bottom-left corner.
func NewTexture(img image.Image) uint32 {
	rgba := texture.FlipVertical(texture.ToRGBA(img))
	b := rgba.Bounds()
	return newTexture(int32(b.Dx()), int32(b.Dy()), rgba.Pix)
}

// DeleteTexture releases a texture created by NewTexture.
func DeleteTexture(tex uint32) {
	if tex != 0 {
		gl.DeleteTextures(1, &tex)
	}
}

func newTexture(w, h int32, pix []byte) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, w, h, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}
