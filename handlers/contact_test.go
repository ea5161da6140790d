package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"eliezerclean/models"
)

type fakeContactService struct {
	confirmation string
	fieldErrs    []models.FieldError
	err          error
}

func (f *fakeContactService) Submit(ctx context.Context, msg models.ContactMessage) (string, []models.FieldError, error) {
	return f.confirmation, f.fieldErrs, f.err
}

func contactRouter(svc *fakeContactService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewContactHandler(svc, zap.NewNop())
	r.POST("/api/contact", h.SubmitContact)
	r.GET("/api/contact/subjects", h.GetContactSubjects)
	return r
}

func TestSubmitContactSuccess(t *testing.T) {
	r := contactRouter(&fakeContactService{confirmation: "Mulțumim, Ana Pop!"})

	body := `{"name":"Ana Pop","email":"ana@example.com","subject":"general","message":"Aș dori o ofertă."}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Mulțumim, Ana Pop!", resp["message"])
}

func TestSubmitContactValidationErrors(t *testing.T) {
	r := contactRouter(&fakeContactService{
		fieldErrs: []models.FieldError{{Field: "email", Message: "Adresa de email nu este validă"}},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "email")
}

func TestSubmitContactDispatchFailure(t *testing.T) {
	r := contactRouter(&fakeContactService{err: errors.New("smtp down")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestGetContactSubjects(t *testing.T) {
	r := contactRouter(&fakeContactService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/contact/subjects", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Informații Generale")
}
