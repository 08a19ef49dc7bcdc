package handlers

import (
	"bikedemand/pages"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// Handler serves the prediction page and its JSON API.
type Handler struct {
	registry *pages.Registry
	sessions *session.Store
}

// NewHandler wires the handlers to the visitor sessions they act on.
func NewHandler(registry *pages.Registry, sessions *session.Store) *Handler {
	return &Handler{
		registry: registry,
		sessions: sessions,
	}
}

// peekSession returns the visitor's live session, or an untracked blank one.
// It never starts a session, so read-only requests leave no state behind.
func (h *Handler) peekSession(c *fiber.Ctx) (*pages.Session, error) {
	sess, err := h.sessions.Get(c)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if sess.Fresh() {
		return h.registry.Blank(), nil
	}
	if s, ok := h.registry.Lookup(sess.ID()); ok {
		return s, nil
	}
	return h.registry.Blank(), nil
}

// currentSession returns the form and page of the calling visitor, starting a new session if needed.
func (h *Handler) currentSession(c *fiber.Ctx) (*pages.Session, error) {
	sess, err := h.sessions.Get(c)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	id := sess.ID()
	if err := sess.Save(); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	return h.registry.Get(id), nil
}
