package handlers

import (
	"bikedemand/forms"
	"bikedemand/models"
	"bikedemand/pages"
	"bikedemand/utils"
	"log"

	"github.com/gofiber/fiber/v2"
)

type pageView struct {
	Input   models.PredictionInput
	Loading bool
	Result  *utils.DemandDisplay
	Notice  *forms.Notice
	Options models.FormOptions
}

func renderPage(c *fiber.Ctx, s *pages.Session, notice *forms.Notice) error {
	return c.Render("index", pageView{
		Input:   s.Form.Input(),
		Loading: s.Form.Loading(),
		Result:  s.Page.Result(),
		Notice:  notice,
		Options: models.DefaultFormOptions(),
	})
}

// HandleIndex renders the prediction form and, once available, the result card.
// GET /
func (h *Handler) HandleIndex(c *fiber.Ctx) error {
	s, err := h.peekSession(c)
	if err != nil {
		log.Printf("Error loading session: %v", err)
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to load session")
	}
	return renderPage(c, s, nil)
}

// HandleSubmitForm applies the posted field values, requests a prediction and re-renders the page.
// POST /
func (h *Handler) HandleSubmitForm(c *fiber.Ctx) error {
	s, err := h.currentSession(c)
	if err != nil {
		log.Printf("Error loading session: %v", err)
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to load session")
	}

	args := c.Request().PostArgs()
	for _, name := range models.FieldNames {
		if !args.Has(name) {
			continue
		}
		if err := s.Form.Update(name, string(args.Peek(name))); err != nil {
			log.Printf("Error updating field %s: %v", name, err)
		}
	}

	notice := s.Submit()
	if notice.Kind == forms.NoticeSuperseded {
		return renderPage(c, s, nil)
	}
	return renderPage(c, s, &notice)
}
