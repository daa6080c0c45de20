package handlers

import (
	"strings"

	"counpaign/internal/services/importer"
	"counpaign/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	importer *importer.Importer
}

func NewAdminHandler(im *importer.Importer) *AdminHandler {
	return &AdminHandler{importer: im}
}

// Import loads a fixture posted as JSON or, for any other content type, YAML.
func (h *AdminHandler) Import(c *fiber.Ctx) error {
	body := c.Body()
	if len(body) == 0 {
		return utils.BadRequest(c, "empty fixture")
	}

	var (
		f   *importer.Fixture
		err error
	)
	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON) {
		f, err = importer.ParseJSON(body)
	} else {
		f, err = importer.ParseYAML(body)
	}
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}

	counts, err := h.importer.Import(c.UserContext(), *f)
	if err != nil {
		return utils.Error(c, err)
	}
	return utils.Success(c, counts)
}
