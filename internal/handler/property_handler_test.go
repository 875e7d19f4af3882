package handler

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func queryContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/properties?"+rawQuery, nil)
	return c
}

func TestParsePaginationClampsLimit(t *testing.T) {
	cases := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "", 1, 10},
		{"zero limit", "limit=0", 1, 1},
		{"over max", "limit=51", 1, 50},
		{"garbage limit", "limit=abc", 1, 10},
		{"garbage page", "page=abc&limit=20", 1, 20},
		{"negative page", "page=-3", 1, 10},
		{"valid", "page=4&limit=25", 4, 25},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			page, limit := parsePagination(queryContext(t, tc.query))
			assert.Equal(t, tc.wantPage, page)
			assert.Equal(t, tc.wantLimit, limit)
		})
	}
}

func TestParseSortAllowList(t *testing.T) {
	cases := []struct {
		name      string
		query     string
		wantBy    string
		wantOrder string
	}{
		{"defaults", "", "createdAt", "desc"},
		{"price asc", "sortBy=price&sortOrder=asc", "price", "asc"},
		{"unknown column", "sortBy=password&sortOrder=asc", "createdAt", "asc"},
		{"unknown order", "sortBy=title&sortOrder=sideways", "title", "desc"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sortBy, sortOrder := parseSort(queryContext(t, tc.query))
			assert.Equal(t, tc.wantBy, sortBy)
			assert.Equal(t, tc.wantOrder, sortOrder)
		})
	}
}

type uploadPart struct {
	filename    string
	contentType string
	size        int
}

func multipartRequest(t *testing.T, fields map[string]string, parts []uploadPart) *http.Request {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for name, value := range fields {
		require.NoError(t, w.WriteField(name, value))
	}
	for _, p := range parts {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name="media"; filename=%q`, p.filename))
		header.Set("Content-Type", p.contentType)
		part, err := w.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(bytes.Repeat([]byte{0xab}, p.size))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/properties", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func uploadContext(t *testing.T, req *http.Request) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = req
	return c
}

func TestParseMultipartRejectsBadUploads(t *testing.T) {
	// a nil service backs the handler: a request that slipped past the
	// gate would panic instead of failing the assertion quietly
	h := NewPropertyHandler(nil, 1024)

	t.Run("not multipart", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/properties", bytes.NewBufferString(`{"title":"x"}`))
		req.Header.Set("Content-Type", "application/json")
		_, _, err := h.parseMultipart(uploadContext(t, req))
		require.Error(t, err)
	})

	t.Run("too many files", func(t *testing.T) {
		parts := make([]uploadPart, 13)
		for i := range parts {
			parts[i] = uploadPart{fmt.Sprintf("f%d.jpg", i), "image/jpeg", 10}
		}
		_, _, err := h.parseMultipart(uploadContext(t, multipartRequest(t, nil, parts)))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "At most 12 media files")
	})

	t.Run("oversized file", func(t *testing.T) {
		parts := []uploadPart{{"big.jpg", "image/jpeg", 2048}}
		_, _, err := h.parseMultipart(uploadContext(t, multipartRequest(t, nil, parts)))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "exceeds the upload size limit")
	})

	t.Run("disallowed mime", func(t *testing.T) {
		parts := []uploadPart{{"notes.txt", "text/plain", 10}}
		_, _, err := h.parseMultipart(uploadContext(t, multipartRequest(t, nil, parts)))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Only image and video files are supported.")
	})
}

func TestParseMultipartBuffersFilesAndFields(t *testing.T) {
	h := NewPropertyHandler(nil, 1024)

	fields := map[string]string{"title": "Lagos Villa", "price": "500000"}
	parts := []uploadPart{
		{"front.jpg", "image/jpeg", 64},
		{"tour.mp4", "video/mp4", 128},
	}
	form, files, err := h.parseMultipart(uploadContext(t, multipartRequest(t, fields, parts)))
	require.NoError(t, err)

	assert.Equal(t, "Lagos Villa", form.Get("title"))
	assert.Equal(t, "500000", form.Get("price"))

	require.Len(t, files, 2)
	assert.Equal(t, "front.jpg", files[0].Filename)
	assert.Equal(t, "image/jpeg", files[0].MimeType)
	assert.Equal(t, int64(64), files[0].Size)
	assert.Len(t, files[0].Data, 64)
	assert.Equal(t, "video/mp4", files[1].MimeType)
}

func TestCreateRejectsBadUploadBeforePipeline(t *testing.T) {
	h := NewPropertyHandler(nil, 1024)

	w := httptest.NewRecorder()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(w)
	c.Request = multipartRequest(t, nil, []uploadPart{{"notes.txt", "text/plain", 10}})

	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Only image and video files are supported.")
}
