package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestErrorUsesMatchingHTTPStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cases := map[int]int{
		CodeBadRequest:   http.StatusBadRequest,
		CodeUnauthorized: http.StatusUnauthorized,
		CodeForbidden:    http.StatusForbidden,
		CodeNotFound:     http.StatusNotFound,
		CodeInternal:     http.StatusInternalServerError,
		1234:             http.StatusInternalServerError,
	}
	for code, want := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("request_id", "rid-1")
		Error(c, code, "boom")
		if w.Code != want {
			t.Fatalf("code %d: want http %d got %d", code, want, w.Code)
		}
		var body Response
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode body failed: %v", err)
		}
		if body.StatusCode != code || body.Msg != "boom" {
			t.Fatalf("unexpected envelope: %+v", body)
		}
		data, ok := body.Data.(map[string]interface{})
		if !ok || data["request_id"] != "rid-1" {
			t.Fatalf("expected request id in data, got %+v", body.Data)
		}
	}
}

func TestCreatedAndNoContent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	Created(c, gin.H{"id": 1})
	if w.Code != http.StatusCreated {
		t.Fatalf("want 201 got %d", w.Code)
	}

	r := gin.New()
	r.DELETE("/x", func(c *gin.Context) { NoContent(c) })
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/x", nil))
	if w.Code != http.StatusNoContent || w.Body.Len() != 0 {
		t.Fatalf("want empty 204 got %d %q", w.Code, w.Body.String())
	}
}

func TestBuildPagination(t *testing.T) {
	p := BuildPagination(2, 10, 21)
	if p.TotalPage != 3 || p.Page != 2 || p.PageSize != 10 || p.Total != 21 {
		t.Fatalf("unexpected pagination: %+v", p)
	}
	if BuildPagination(1, 0, 5).TotalPage != 0 {
		t.Fatalf("zero page size should yield zero pages")
	}
}

func TestNewAPIErrorNormalizesUnknownCode(t *testing.T) {
	cause := errors.New("db down")
	apiErr := NewAPIError(1234, "boom", cause)
	if apiErr.Code != CodeInternal {
		t.Fatalf("unknown code should degrade to 500, got %d", apiErr.Code)
	}
	if !errors.Is(apiErr, cause) {
		t.Fatalf("cause should be unwrapped")
	}
	if NewAPIError(CodeNotFound, "missing", nil).Code != CodeNotFound {
		t.Fatalf("known code should be kept")
	}
}
