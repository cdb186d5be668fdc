package handler_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"cidgate/internal/domain"
	"cidgate/internal/handler"
	"cidgate/mocks"
)

func TestUserHandler_Register_Success(t *testing.T) {
	mockSvc := new(mocks.MockRegistrationService)
	h := handler.NewUserHandler(mockSvc, testLogger())

	identity := domain.Identity{UID: "u1", Email: "a@x.com"}
	mockSvc.On("Register", mock.Anything, identity).Return(nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/register", http.NoBody)
	setIdentity(c, identity)

	h.Register(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"User registered"}`, w.Body.String())
	mockSvc.AssertExpectations(t)
}

func TestUserHandler_Register_NoIdentity(t *testing.T) {
	mockSvc := new(mocks.MockRegistrationService)
	h := handler.NewUserHandler(mockSvc, testLogger())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/register", http.NoBody)

	h.Register(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockSvc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestUserHandler_Register_StoreFailure(t *testing.T) {
	mockSvc := new(mocks.MockRegistrationService)
	h := handler.NewUserHandler(mockSvc, testLogger())

	identity := domain.Identity{UID: "u1", Email: "a@x.com"}
	mockSvc.On("Register", mock.Anything, identity).
		Return(fmt.Errorf("%w: connection reset", domain.ErrRegisterFailed))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/register", http.NoBody)
	setIdentity(c, identity)

	h.Register(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Error registering user", decodeError(t, w))
}
