package render

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"testing"

	"preizo/internal/label"
	"preizo/internal/layout"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAssets map[layout.Logo][]byte

func (f fakeAssets) ReadLogo(logo layout.Logo) ([]byte, error) {
	data, ok := f[logo]
	if !ok {
		return nil, errors.New("no such logo")
	}
	return data, nil
}

func testPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 40, 20))
	for y := 0; y < 20; y++ {
		for x := 0; x < 40; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 30, B: 30, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func promotionPlan(logos layout.Logos) layout.Plan {
	in := label.Normalize(label.RawInput{
		Department:      "Getränke",
		ProductType:     "Aktion",
		Manufacturer:    "Obst & Co",
		ProductName:     "Apfelsaft",
		QuantityPerPack: "1",
		Unit:            "l",
		Price:           "1,99",
		Deposit:         "0,25",
		PackagingType:   "Mehrweg",
	})
	return layout.NewPlanner(logos).Plan(in)
}

func unzip(t *testing.T, data []byte) map[string][]byte {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	files := make(map[string][]byte)
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		b, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		files[f.Name] = b
	}
	return files
}

func wellFormed(t *testing.T, data []byte) {
	t.Helper()
	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		_, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return
		}
		require.NoError(t, err)
	}
}

func TestDOCX(t *testing.T) {
	assets := fakeAssets{layout.LogoPromotion: testPNG(t)}
	r := NewDOCX(assets)

	var buf bytes.Buffer
	require.NoError(t, r.Render(promotionPlan(layout.Logos{layout.LogoPromotion: true}), &buf))

	files := unzip(t, buf.Bytes())
	for _, name := range []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"word/styles.xml",
		"word/_rels/document.xml.rels",
		"word/document.xml",
		"word/media/image1.png",
	} {
		require.Contains(t, files, name)
		if name != "word/media/image1.png" {
			wellFormed(t, files[name])
		}
	}

	doc := string(files["word/document.xml"])
	assert.Contains(t, doc, "Apfelsaft")
	assert.Contains(t, doc, "Obst &amp; Co")
	assert.Contains(t, doc, "1,99€")
	assert.Contains(t, doc, `<w:color w:val="FF0000"/>`)
	assert.Contains(t, doc, `<w:highlight w:val="lightGray"/>`)
	assert.Contains(t, doc, `<w:jc w:val="center"/>`)
	assert.Contains(t, doc, `r:embed="rIdImg1"`)
	// 4x6 inch tag
	assert.Contains(t, doc, `<w:pgSz w:w="5760" w:h="8640"/>`)

	rels := string(files["word/_rels/document.xml.rels"])
	assert.Contains(t, rels, `Target="media/image1.png"`)

	assert.Equal(t, testPNG(t), files["word/media/image1.png"])
}

func TestDOCXSkipsUnreadableLogo(t *testing.T) {
	r := NewDOCX(fakeAssets{layout.LogoPromotion: []byte("not an image")})

	var buf bytes.Buffer
	require.NoError(t, r.Render(promotionPlan(layout.Logos{layout.LogoPromotion: true}), &buf))

	files := unzip(t, buf.Bytes())
	assert.NotContains(t, files, "word/media/image1.png")
	assert.NotContains(t, string(files["word/document.xml"]), "<w:drawing>")
}

func TestPDF(t *testing.T) {
	r := NewPDF(fakeAssets{layout.LogoPromotion: testPNG(t)})

	var buf bytes.Buffer
	require.NoError(t, r.Render(promotionPlan(layout.Logos{layout.LogoPromotion: true}), &buf))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
	assert.Equal(t, ".pdf", r.Extension())
	assert.Equal(t, "application/pdf", r.ContentType())
}

func TestPDFWithoutAssets(t *testing.T) {
	r := NewPDF(nil)

	var buf bytes.Buffer
	plan := layout.NewPlanner(nil).Plan(label.Normalize(label.RawInput{ProductName: "Äpfel"}))
	require.NoError(t, r.Render(plan, &buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestNew(t *testing.T) {
	r, err := New("", nil)
	require.NoError(t, err)
	assert.Equal(t, ".docx", r.Extension())

	r, err = New(" PDF ", nil)
	require.NoError(t, err)
	assert.Equal(t, ".pdf", r.Extension())

	_, err = New("odt", nil)
	assert.Error(t, err)
}

func TestRGB(t *testing.T) {
	r, g, b := rgb(layout.ColorAlert)
	assert.Equal(t, []int{255, 0, 0}, []int{r, g, b})

	r, g, b = rgb(layout.ColorDefault)
	assert.Equal(t, []int{0, 0, 0}, []int{r, g, b})
}
