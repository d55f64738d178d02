package handler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"doclib/internal/service"
)

// sendFileStream writes a FileStream to the response with the original
// filename in the disposition header, not the internal stored name.
func sendFileStream(c *fiber.Ctx, fs *service.FileStream) error {
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", fs.Name))
	c.Set(fiber.HeaderContentType, fs.ContentType)
	return c.SendStream(fs.Content, int(fs.Size))
}

// ListDocuments serves the catalog: substring search on name, sort by name
// or upload date, 1-based pagination.
func ListDocuments(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, err := strconv.Atoi(c.Query("page", "1"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_PAGE", "invalid page")
		}
		pageSize, err := strconv.Atoi(c.Query("pageSize", "5"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_PAGE_SIZE", "invalid pageSize")
		}

		res, err := svc.List(c.UserContext(), service.ListOptions{
			SearchTerm: c.Query("searchTerm"),
			SortBy:     c.Query("sortBy"),
			SortOrder:  c.Query("sortOrder"),
			Page:       page,
			PageSize:   pageSize,
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// UploadDocument accepts a multipart form with a single "file" field.
func UploadDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "no file uploaded")
		}
		if fh.Size == 0 {
			return writeError(c, fiber.StatusBadRequest, "FILE_EMPTY", "file is empty")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		doc, err := svc.Upload(c.UserContext(), f, fh.Filename, ct, fh.Size)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(doc)
	}
}

// GetDocument returns a single document's metadata.
func GetDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		doc, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(doc)
	}
}

// DownloadDocument streams the file and counts the download.
func DownloadDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		fs, err := svc.Download(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return sendFileStream(c, fs)
	}
}

// PreviewDocument streams previewable types inline, honoring single byte
// ranges so large media can be seeked without a full download.
func PreviewDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		offset, length, ranged := parseRangeHeader(c.Get(fiber.HeaderRange))

		fs, err := svc.Preview(c.UserContext(), id, offset, length)
		if err != nil {
			return writeServiceError(c, err)
		}

		c.Set(fiber.HeaderAcceptRanges, "bytes")
		c.Set(fiber.HeaderContentType, fs.ContentType)
		if ranged {
			c.Set(fiber.HeaderContentRange, fmt.Sprintf("bytes %d-%d/%d", fs.Offset, fs.Offset+fs.Size-1, fs.TotalSize))
			c.Status(fiber.StatusPartialContent)
		}
		return c.SendStream(fs.Content, int(fs.Size))
	}
}

// DeleteDocument removes a document; its share links go with it.
func DeleteDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// parseRangeHeader understands a single "bytes=start-end" or "bytes=start-"
// range. Anything else (including suffix ranges) falls back to a full read.
func parseRangeHeader(h string) (offset, length int64, ok bool) {
	if !strings.HasPrefix(h, "bytes=") {
		return 0, 0, false
	}
	spec := strings.TrimPrefix(h, "bytes=")
	if strings.Contains(spec, ",") {
		return 0, 0, false
	}
	start, end, found := strings.Cut(spec, "-")
	if !found || start == "" {
		return 0, 0, false
	}
	offset, err := strconv.ParseInt(start, 10, 64)
	if err != nil || offset < 0 {
		return 0, 0, false
	}
	if end == "" {
		return offset, 0, true
	}
	last, err := strconv.ParseInt(end, 10, 64)
	if err != nil || last < offset {
		return 0, 0, false
	}
	return offset, last - offset + 1, true
}
