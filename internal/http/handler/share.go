package handler

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"doclib/internal/service"
)

// ChangeValidityRequest is the body of POST /documents/changeLinkValidity.
// LinkUrl may be the full share URL the client was handed, or just the raw
// share id.
type ChangeValidityRequest struct {
	LinkUrl     string `json:"linkUrl"`
	NewDuration string `json:"newDuration"`
}

// GenerateShareLink mints a share link for a document with a validity of
// 1h, 1d, or 7d and returns the opaque share URL.
func GenerateShareLink(svc service.ShareService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		shareURL, err := svc.Generate(c.UserContext(), id, c.Query("duration"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.SendString(shareURL)
	}
}

// ChangeLinkValidity resets an existing link's validity to 1h or 1d. The id
// is extracted from the posted URL here, at the transport edge; the service
// only ever sees the raw id.
func ChangeLinkValidity(svc service.ShareService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req ChangeValidityRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		shareID, ok := shareIDFromLink(req.LinkUrl)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LINK", "invalid share link")
		}

		shareURL, err := svc.ChangeValidity(c.UserContext(), shareID, req.NewDuration)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.SendString(shareURL)
	}
}

// ResolveSharedLink serves a file to any holder of a live share token.
func ResolveSharedLink(svc service.ShareService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		shareID := c.Params("shareId")
		if _, err := uuid.Parse(shareID); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid share link")
		}
		fs, err := svc.Resolve(c.UserContext(), shareID)
		if err != nil {
			return writeServiceError(c, err)
		}
		return sendFileStream(c, fs)
	}
}

// shareIDFromLink accepts a raw share id or a full share URL and returns the
// well-formed id, if any. For URLs the id is the trailing path segment.
func shareIDFromLink(link string) (string, bool) {
	if _, err := uuid.Parse(link); err == nil {
		return link, true
	}
	u, err := url.Parse(link)
	if err != nil || u.Path == "" {
		return "", false
	}
	segments := strings.Split(strings.TrimRight(u.Path, "/"), "/")
	last := segments[len(segments)-1]
	if _, err := uuid.Parse(last); err != nil {
		return "", false
	}
	return last, true
}
