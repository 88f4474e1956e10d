package storage

import (
	"bytes"
	"image"
	"io"

	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const avatarMaxDim = 512

// EncodeAvatarWebP decodifica a imagem enviada (jpeg/png), reduz para no
// máximo 512px no maior lado e reencoda em WebP.
func EncodeAvatarWebP(r io.Reader) ([]byte, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if w > avatarMaxDim || h > avatarMaxDim {
		if w >= h {
			h = h * avatarMaxDim / w
			w = avatarMaxDim
		} else {
			w = w * avatarMaxDim / h
			h = avatarMaxDim
		}

		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
		src = dst
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, src, &webp.Options{Quality: 80}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
