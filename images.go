package blogpub

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"math"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// encodeImage loads the image at path and returns it as a JPEG data URI.
// Anything that goes wrong with a single image (unknown type, missing file,
// corrupt data) is a skip, not a failure: the empty string is returned and a
// warning logged, so one bad image never aborts a publish.
func (p *Publisher) encodeImage(path string) string {
	mimeType := mime.TypeByExtension(filepath.Ext(path))
	if !strings.HasPrefix(mimeType, "image/") {
		p.log.Warn("skipping non-image or unknown type",
			zap.String("file", filepath.Base(path)),
			zap.String("mime", mimeType))
		return ""
	}

	data, err := p.encodeJPEG(path)
	if err != nil {
		p.log.Warn("failed to encode image",
			zap.String("file", path),
			zap.Error(err))
		return ""
	}

	if len(data) > maxInlineBytes {
		p.log.Warn("image is large and may cause API errors",
			zap.String("file", filepath.Base(path)),
			zap.Int("bytes", len(data)))
	}

	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(data)
}

// encodeJPEG decodes the image at path, downscales it to maxImageWidth if it
// is wider, and re-encodes it as JPEG. Grayscale images stay single-channel;
// everything else ends up RGB, which flattens any transparency.
func (p *Publisher) encodeJPEG(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if w > maxImageWidth {
		newH := int(math.Round(float64(h) * float64(maxImageWidth) / float64(w)))
		if newH < 1 {
			newH = 1
		}
		var dst draw.Image
		if _, gray := img.(*image.Gray); gray {
			dst = image.NewGray(image.Rect(0, 0, maxImageWidth, newH))
		} else {
			dst = image.NewRGBA(image.Rect(0, 0, maxImageWidth, newH))
		}
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		p.log.Info("resized image",
			zap.String("file", filepath.Base(path)),
			zap.String("from", fmt.Sprintf("%dx%d", w, h)),
			zap.String("to", fmt.Sprintf("%dx%d", maxImageWidth, newH)))
		img = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}
