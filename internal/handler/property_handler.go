package handler

import (
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"ramahomes/internal/apperror"
	"ramahomes/internal/domain"
	"ramahomes/internal/middleware"
	"ramahomes/internal/repository"
	"ramahomes/internal/service"

	"github.com/gin-gonic/gin"
)

const mediaFormField = "media"

type PropertyHandler struct {
	svc          *service.PropertyService
	maxFileBytes int64
}

func NewPropertyHandler(svc *service.PropertyService, maxFileBytes int64) *PropertyHandler {
	return &PropertyHandler{svc: svc, maxFileBytes: maxFileBytes}
}

const (
	defaultLimit = 10
	maxLimit     = 50
)

// parsePagination clamps page to ≥1 and limit to [1,50]; anything
// unparsable falls back to the defaults.
func parsePagination(c *gin.Context) (page, limit int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if err != nil {
		limit = defaultLimit
	}
	if limit < 1 {
		limit = 1
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}

var allowedSortBy = map[string]bool{
	"createdAt": true,
	"updatedAt": true,
	"price":     true,
	"title":     true,
	"status":    true,
}

func parseSort(c *gin.Context) (sortBy, sortOrder string) {
	sortBy = c.Query("sortBy")
	if !allowedSortBy[sortBy] {
		sortBy = "createdAt"
	}
	sortOrder = "desc"
	if c.Query("sortOrder") == "asc" {
		sortOrder = "asc"
	}
	return sortBy, sortOrder
}

func (h *PropertyHandler) ListPublic(c *gin.Context) {
	page, limit := parsePagination(c)
	items, total, err := h.svc.List(repository.ListOptions{
		Page:          page,
		Limit:         limit,
		SortBy:        "createdAt",
		SortOrder:     "desc",
		Search:        strings.TrimSpace(c.Query("search")),
		PublishedOnly: true,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, items, page, limit, total)
}

func (h *PropertyHandler) GetPublic(c *gin.Context) {
	prop, err := h.svc.GetPublic(c.Param("idOrSlug"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, prop)
}

func (h *PropertyHandler) List(c *gin.Context) {
	page, limit := parsePagination(c)
	sortBy, sortOrder := parseSort(c)

	status := strings.ToLower(strings.TrimSpace(c.Query("status")))
	if status != "" && status != "all" && !domain.IsValidStatus(status) {
		respondError(c, apperror.Newf(http.StatusBadRequest,
			"status must be one of: all, %s.", strings.Join(domain.PropertyStatuses, ", ")))
		return
	}

	items, total, err := h.svc.List(repository.ListOptions{
		Page:      page,
		Limit:     limit,
		SortBy:    sortBy,
		SortOrder: sortOrder,
		Search:    strings.TrimSpace(c.Query("search")),
		Status:    status,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, items, page, limit, total)
}

func (h *PropertyHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	prop, err := h.svc.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, prop)
}

func (h *PropertyHandler) Create(c *gin.Context) {
	form, files, err := h.parseMultipart(c)
	if err != nil {
		respondError(c, err)
		return
	}
	admin := middleware.GetAdmin(c)

	prop, err := h.svc.Create(c.Request.Context(), admin.ID, form, files)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, prop)
}

func (h *PropertyHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	form, files, err := h.parseMultipart(c)
	if err != nil {
		respondError(c, err)
		return
	}
	admin := middleware.GetAdmin(c)

	prop, err := h.svc.Update(c.Request.Context(), admin.ID, id, form, files)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, prop)
}

func (h *PropertyHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, apperror.BadRequest("Invalid resource identifier.")
	}
	return uint(id), nil
}

// parseMultipart enforces the upload constraints (file count, per-file
// size, MIME allow-list) and buffers the files before the pipeline runs.
func (h *PropertyHandler) parseMultipart(c *gin.Context) (url.Values, []service.UploadFile, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil, apperror.BadRequest("Request must be multipart/form-data.")
	}

	fileHeaders := form.File[mediaFormField]
	if len(fileHeaders) > domain.MaxUploadFiles {
		return nil, nil, apperror.Newf(http.StatusBadRequest, "At most %d media files are allowed.", domain.MaxUploadFiles)
	}

	files := make([]service.UploadFile, 0, len(fileHeaders))
	for _, fh := range fileHeaders {
		if fh.Size > h.maxFileBytes {
			return nil, nil, apperror.Newf(http.StatusBadRequest, "File %q exceeds the upload size limit.", fh.Filename)
		}
		mimeType := fh.Header.Get("Content-Type")
		if !domain.IsAllowedMime(mimeType) {
			return nil, nil, apperror.BadRequest("Only image and video files are supported.")
		}

		f, err := fh.Open()
		if err != nil {
			return nil, nil, apperror.Wrap(http.StatusBadRequest, "Could not read uploaded file.", err)
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, nil, apperror.Wrap(http.StatusBadRequest, "Could not read uploaded file.", err)
		}

		files = append(files, service.UploadFile{
			Filename: fh.Filename,
			MimeType: mimeType,
			Size:     fh.Size,
			Data:     data,
		})
	}

	return url.Values(form.Value), files, nil
}
