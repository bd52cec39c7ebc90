package controllers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gym-system/internal/controllers"
	"gym-system/internal/dto"
	"gym-system/internal/entities"
	apperrors "gym-system/pkg/errors"
	"gym-system/pkg/validation"

	"github.com/labstack/echo/v4"
)

type stubMemberService struct {
	listResult []entities.Member

	createPayload dto.CreateMemberDTO
	createItem    *entities.Member
	createErr     error

	updateItem *entities.Member
	updateErr  error

	deleteErr error
}

func (s *stubMemberService) GetMembers(ctx context.Context) ([]entities.Member, error) {
	return s.listResult, nil
}

func (s *stubMemberService) FindMember(ctx context.Context, id uint64) (*entities.Member, error) {
	return nil, apperrors.ErrNotFound
}

func (s *stubMemberService) CreateMember(ctx context.Context, payload dto.CreateMemberDTO) (*entities.Member, error) {
	s.createPayload = payload
	return s.createItem, s.createErr
}

func (s *stubMemberService) UpdateMember(ctx context.Context, id uint64, payload dto.UpdateMemberDTO) (*entities.Member, error) {
	return s.updateItem, s.updateErr
}

func (s *stubMemberService) DeleteMember(ctx context.Context, id uint64) error {
	return s.deleteErr
}

func newMemberController(service *stubMemberService) (*echo.Echo, *controllers.MemberController) {
	e := echo.New()
	e.Validator = validation.New()
	return e, controllers.NewMemberController(service, zap.NewNop())
}

func TestCreateMember(t *testing.T) {
	service := &stubMemberService{createItem: &entities.Member{ID: 1, Email: "alice.brown@email.com"}}
	e, controller := newMemberController(service)

	body := `{"first_name":"Alice","last_name":"Brown","email":"alice.brown@email.com","membership_type":"premium"}`
	req := jsonRequest(http.MethodPost, "/api/members", body)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	require.NoError(t, controller.CreateMember(ctx))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Alice", service.createPayload.FirstName)
	assert.Equal(t, "premium", service.createPayload.MembershipType)
}

func TestCreateMember_InvalidEmail(t *testing.T) {
	service := &stubMemberService{}
	e, controller := newMemberController(service)

	body := `{"first_name":"Alice","last_name":"Brown","email":"not-an-email","membership_type":"premium"}`
	req := jsonRequest(http.MethodPost, "/api/members", body)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	require.NoError(t, controller.CreateMember(ctx))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Valid email is required")
}

func TestCreateMember_DuplicateEmail(t *testing.T) {
	service := &stubMemberService{
		createErr: apperrors.NewHttpError(http.StatusBadRequest, "Member with this email already exists", nil, nil),
	}
	e, controller := newMemberController(service)

	body := `{"first_name":"Alice","last_name":"Brown","email":"alice.brown@email.com","membership_type":"premium"}`
	req := jsonRequest(http.MethodPost, "/api/members", body)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	require.NoError(t, controller.CreateMember(ctx))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "already exists")
}

func TestUpdateMember_RevalidatesRequiredFields(t *testing.T) {
	service := &stubMemberService{}
	e, controller := newMemberController(service)

	// an update without the required identity fields is rejected
	req := jsonRequest(http.MethodPut, "/api/members/1", `{"phone":"(555) 100-1001"}`)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.SetParamNames("id")
	ctx.SetParamValues("1")

	require.NoError(t, controller.UpdateMember(ctx))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	payload := decodeResponse(t, rec)
	assert.NotEmpty(t, payload["errors"])
}

func TestDeleteMember_NotFound(t *testing.T) {
	service := &stubMemberService{deleteErr: apperrors.ErrNotFound}
	e, controller := newMemberController(service)

	req := httptest.NewRequest(http.MethodDelete, "/api/members/999", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.SetParamNames("id")
	ctx.SetParamValues("999")

	require.NoError(t, controller.DeleteMember(ctx))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Member not found")
}

func TestGetMembers(t *testing.T) {
	service := &stubMemberService{listResult: []entities.Member{
		{ID: 1, FirstName: "Alice", LastName: "Brown", Email: "alice.brown@email.com"},
		{ID: 2, FirstName: "Bob", LastName: "Wilson", Email: "bob.wilson@email.com"},
	}}
	e, controller := newMemberController(service)

	req := httptest.NewRequest(http.MethodGet, "/api/members", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	require.NoError(t, controller.GetMembers(ctx))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeResponse(t, rec)["body"].([]interface{})
	require.Len(t, body, 2)
	first := body[0].(map[string]interface{})
	assert.Equal(t, "alice.brown@email.com", first["email"])
}
