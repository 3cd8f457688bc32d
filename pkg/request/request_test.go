package request

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/a48zhang/AIditor/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryHelpers(t *testing.T) {
	q := url.Values{
		"status":     {"processed"},
		"empty":      {""},
		"start_time": {"1700000000000"},
		"bad":        {"abc"},
		"zero":       {"0"},
		"negative":   {"-5"},
		"limit":      {"20"},
	}

	require.NotNil(t, String(q, "status"))
	assert.Equal(t, "processed", *String(q, "status"))
	assert.Nil(t, String(q, "empty"))
	assert.Nil(t, String(q, "missing"))

	require.NotNil(t, Int64(q, "start_time"))
	assert.Equal(t, int64(1700000000000), *Int64(q, "start_time"))
	assert.Nil(t, Int64(q, "bad"))
	assert.Nil(t, Int64(q, "zero"))
	require.NotNil(t, Int64(q, "negative"))

	require.NotNil(t, Uint64(q, "limit"))
	assert.Equal(t, uint64(20), *Uint64(q, "limit"))
	assert.Nil(t, Uint64(q, "negative"))
	assert.Nil(t, Uint64(q, "zero"))
	assert.Nil(t, Uint64(q, "bad"))
}

func TestDecodeJSON(t *testing.T) {
	var body struct {
		Title string `json:"title"`
	}
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":"hello"}`))
	require.NoError(t, DecodeJSON(httptest.NewRecorder(), r, &body))
	assert.Equal(t, "hello", body.Title)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":`))
	err := DecodeJSON(httptest.NewRecorder(), r, &body)
	require.Error(t, err)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}
