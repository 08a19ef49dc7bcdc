package handlers

import (
	"bikedemand/forms"
	"bikedemand/models"
	"bikedemand/utils"
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v2"
)

// HandleHealth reports that the server is up.
// GET /api/v1/health
func HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// HandleGetOptions returns the choices for the categorical form fields.
// GET /api/v1/options
func HandleGetOptions(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "success",
		"data":   models.DefaultFormOptions(),
	})
}

// HandleGetForm returns the caller's current form values, loading flag and result.
// GET /api/v1/form
func (h *Handler) HandleGetForm(c *fiber.Ctx) error {
	s, err := h.peekSession(c)
	if err != nil {
		log.Printf("Error loading session: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to load session"})
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data": fiber.Map{
			"input":   s.Form.Input(),
			"loading": s.Form.Loading(),
			"result":  s.Page.Result(),
		},
	})
}

// HandleResetForm discards the caller's form and displayed prediction.
// DELETE /api/v1/form
func (h *Handler) HandleResetForm(c *fiber.Ctx) error {
	sess, err := h.sessions.Get(c)
	if err != nil {
		log.Printf("Error loading session: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to load session"})
	}

	h.registry.Drop(sess.ID())
	if err := sess.Destroy(); err != nil {
		log.Printf("Error destroying session: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to reset form"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandlePredict updates the caller's form from a JSON body and requests a prediction.
// Field values may be numbers or strings; missing fields keep their current value.
// POST /api/v1/predict
func (h *Handler) HandlePredict(c *fiber.Ctx) error {
	var body map[string]any
	if len(c.Body()) > 0 {
		if err := json.Unmarshal(c.Body(), &body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"status":  "error",
				"message": "Invalid request body",
			})
		}
	}

	s, err := h.currentSession(c)
	if err != nil {
		log.Printf("Error loading session: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to load session"})
	}

	for key, value := range body {
		if err := s.Form.Set(key, utils.CoerceNumber(value)); err != nil {
			log.Printf("Ignoring field %q: %v", key, err)
		}
	}

	notice := s.Submit()
	switch notice.Kind {
	case forms.NoticeSuccess:
		return c.JSON(fiber.Map{
			"status":  "success",
			"message": notice.Message,
			"data":    s.Page.Result(),
		})
	case forms.NoticeSuperseded:
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"status":  "error",
			"message": "Superseded by a newer prediction request",
		})
	default:
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"status":  "error",
			"message": notice.Message,
		})
	}
}
