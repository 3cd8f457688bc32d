package response

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a48zhang/AIditor/pkg/apperror"
	"github.com/stretchr/testify/assert"
)

func TestSuccessKeepsEmptySlice(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, []string{}, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"success":true,"data":[]}`, rec.Body.String())
}

func TestSuccessWithMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, map[string]string{"id": "1"}, "Material created successfully")

	assert.JSONEq(t, `{"success":true,"data":{"id":"1"},"message":"Material created successfully"}`, rec.Body.String())
}

func TestErrorMapsKinds(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, apperror.NotFound("Material not found"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"Material not found"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	Error(rec, errors.New("pq: relation \"materials\" does not exist"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"pq: relation \"materials\" does not exist"}`, rec.Body.String())
}
