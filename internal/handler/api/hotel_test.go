//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"staybook/internal/domain/user"
	"staybook/internal/handler/api"
	resdto "staybook/internal/handler/dto/response"
	"staybook/internal/usecase/commands"
	"staybook/internal/usecase/queries"
	"staybook/tests/common/builder"
	"staybook/tests/common/httptest"
	"staybook/tests/common/testutil"
	commandsmock "staybook/tests/mock/commands"
	queriesmock "staybook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type HotelHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockHotelCommands
	mockQueries  *queriesmock.MockHotelQueries
	handler      *api.HotelHandler
	actorID      uuid.UUID
	actorRole    user.Role
}

func (s *HotelHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockHotelCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockHotelQueries(s.mockCtrl)
	s.handler = api.NewHotelHandler(s.mockCommands, s.mockQueries)

	s.actorID = uuid.New()
	s.actorRole = user.RoleManager

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.actorID)
		c.Set("user_role", s.actorRole)
		c.Next()
	}

	// Setup routes
	s.router.POST("/hotels", authMiddleware, s.handler.Create)
	s.router.GET("/hotels", s.handler.List)
	s.router.GET("/hotels/:id", s.handler.Get)
	s.router.DELETE("/hotels/:id", authMiddleware, s.handler.Delete)
}

func (s *HotelHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestHotelHandlerSuite(t *testing.T) {
	suite.Run(t, new(HotelHandlerTestSuite))
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *HotelHandlerTestSuite) TestCreate() {
	url := "/hotels"

	hb := builder.NewHotelBuilder()
	reqBody := hb.BuildCreateRequestDTO()
	returnView := hb.BuildView()

	expectedCmd := commands.CreateHotelRequest{
		Name: reqBody.Name,
		City: reqBody.City,
	}

	s.Run("success: returns 201 Created", func() {
		s.mockCommands.EXPECT().
			CreateHotel(gomock.Any(), expectedCmd, s.actorID, s.actorRole).
			Return(&commands.CreateHotelResult{HotelID: returnView.ID}, nil).Times(1)
		s.mockQueries.EXPECT().
			GetByID(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.HotelResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.Name, response.Name)
		s.Equal(returnView.City, response.City)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: name (required)", mutate: testutil.Field("name", nil)},
			{name: "missing field: city (required)", mutate: testutil.Field("city", nil)},
			{name: "empty name", mutate: testutil.Field("name", "")},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 403 Forbidden for guest role", func() {
		s.mockCommands.EXPECT().
			CreateHotel(gomock.Any(), expectedCmd, s.actorID, s.actorRole).
			Return(nil, commands.ErrStaffRoleNeeded).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Manager or admin role required")
	})

	s.Run("error: 401 Unauthorized without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

// ================================================================================
// TestGet / TestList
// ================================================================================

func (s *HotelHandlerTestSuite) TestGet() {
	returnView := builder.NewHotelBuilder().BuildView()
	url := "/hotels/" + returnView.ID.String()

	s.Run("success: returns hotel without auth", func() {
		s.mockQueries.EXPECT().
			GetByID(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.HotelResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnView.ID, response.ID)
	})

	s.Run("error: 404 Not Found", func() {
		s.mockQueries.EXPECT().
			GetByID(gomock.Any(), returnView.ID).
			Return(nil, queries.ErrHotelNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Hotel not found")
	})

	s.Run("error: 400 Bad Request for invalid ID format", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/hotels/invalid-id", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid hotel ID format")
	})
}

func (s *HotelHandlerTestSuite) TestList() {
	url := "/hotels"

	s.Run("success: forwards the city filter", func() {
		items := []*queries.HotelView{
			builder.NewHotelBuilder().WithCity("Osaka").BuildView(),
		}
		s.mockQueries.EXPECT().
			List(gomock.Any(), "Osaka").
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?city=Osaka", nil, "")

		var response []*resdto.HotelResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal("Osaka", response[0].City)
	})

	s.Run("success: empty list without filter", func() {
		s.mockQueries.EXPECT().
			List(gomock.Any(), "").
			Return([]*queries.HotelView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response []*resdto.HotelResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response)
	})
}

// ================================================================================
// TestDelete
// ================================================================================

func (s *HotelHandlerTestSuite) TestDelete() {
	hotelID := uuid.New()
	url := "/hotels/" + hotelID.String()

	s.Run("success: returns 204 No Content for admin", func() {
		s.actorRole = user.RoleAdmin
		defer func() { s.actorRole = user.RoleManager }()

		s.mockCommands.EXPECT().
			DeleteHotel(gomock.Any(), hotelID, user.RoleAdmin).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "admin role required",
				commandsError:  commands.ErrAdminRoleNeeded,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Admin role required",
			},
			{
				name:           "hotel not found",
				commandsError:  commands.ErrHotelNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Hotel not found",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().
					DeleteHotel(gomock.Any(), hotelID, s.actorRole).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
