package server

import (
	"mime"
	"net/http"
	"strings"

	"preizo/internal/label"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
)

// HeaderDefaulted lists the numeric fields that fell back to zero.
const HeaderDefaulted = "X-Defaulted-Fields"

type option struct {
	Value string
	Label string
}

var departmentOptions = []option{
	{"Obst & Gemüse", "Obst & Gemüse"},
	{"Trocken Sortiment", "Trocken Sortiment"},
	{"Getränke", "Getränke"},
	{"", "Sonstige"},
}

var productTypeOptions = []option{
	{"Normalpreis", "Normalpreis"},
	{"Aktion", "Aktion"},
	{"Bio", "Bio"},
}

func (s *Server) form(c *gin.Context) {
	c.HTML(http.StatusOK, "form.html", gin.H{
		"Departments":  departmentOptions,
		"ProductTypes": productTypeOptions,
	})
}

func (s *Server) generate(c *gin.Context) {
	raw, err := bindRaw(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	doc, err := s.gen.Generate(raw)
	if err != nil {
		s.logger.Error("Failed to generate price tag",
			zap.String("request_id", c.GetString(requestIDKey)),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "document could not be created"})
		return
	}

	if len(doc.Input.Defaulted) > 0 {
		c.Header(HeaderDefaulted, strings.Join(doc.Input.Defaulted, ","))
	}
	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": doc.Filename}))
	c.Data(http.StatusOK, doc.ContentType, doc.Data)
}

// bindRaw reads form posts into RawInput directly. JSON bodies go through a
// loose map so flags and numbers may be sent unquoted.
func bindRaw(c *gin.Context) (label.RawInput, error) {
	if c.ContentType() == binding.MIMEJSON {
		var values map[string]any
		if err := c.ShouldBindJSON(&values); err != nil {
			return label.RawInput{}, err
		}
		return label.RawFromValues(values)
	}

	var raw label.RawInput
	err := c.ShouldBind(&raw)
	return raw, err
}
